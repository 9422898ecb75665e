package create_booking

import (
	"context"
	"time"

	"github.com/careconnect/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) error
}

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*domain.User, error)
}

// Notifier интерфейс диспетчера уведомлений. Отправка fire-and-forget:
// реализация сама логирует неудачи и ничего не возвращает.
type Notifier interface {
	BookingCreated(ctx context.Context, booking *domain.Booking, adminAddress string)
}

// Recorder интерфейс для бизнес-метрик
type Recorder interface {
	IncBookingsCreated()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
