package update_booking_status

import "time"

// Request модель запроса на смену статуса бронирования
type Request struct {
	ActorID   int64  // ID пользователя, выполняющего действие
	BookingID string // ID бронирования
	Status    string // Целевой статус: "confirmed" или "cancelled"
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID        string    // ID бронирования
	Date      time.Time // Дата бронирования
	TimeSlot  string    // Метка слота
	Status    string    // Новый статус
	UpdatedAt time.Time // Время применения решения
}
