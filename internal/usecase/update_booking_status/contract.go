package update_booking_status

import (
	"context"
	"time"

	"github.com/careconnect/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Notifier интерфейс отправки уведомлений
type Notifier interface {
	// StatusUpdated отправляет ровно одно событие status-update заявителю
	StatusUpdated(ctx context.Context, booking *domain.Booking)
}

// Recorder интерфейс записи метрик
type Recorder interface {
	RecordStatusChange(status string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}
