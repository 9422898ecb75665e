package create_booking

import (
	"time"
)

// Request модель запроса на создание бронирования. Это результат
// подтверждения последнего шага wizard (либо прямой вызов API).
type Request struct {
	RequesterID int64     // ID заявителя
	Date        time.Time // Дата бронирования (без времени)
	TimeSlot    string    // Метка слота, например "8:00 AM"
	SubjectName string    // Имя подопечного
	Location    string    // Местоположение (свободный текст)
	Notes       *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string    // ID созданного бронирования
	RequesterID int64     // ID заявителя
	Date        time.Time // Дата бронирования
	TimeSlot    string    // Метка слота
	Status      string    // Всегда "pending" при создании

	// Денормализованные данные заявителя
	RequesterEmail string
	RequesterName  string

	SubjectName string
	Location    string
	Notes       *string

	CreatedAt time.Time
}
