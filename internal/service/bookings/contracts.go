package bookings

import (
	"context"

	"github.com/careconnect/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// UserServiceClient интерфейс клиента сервиса пользователей
type UserServiceClient interface {
	IsAdmin(ctx context.Context, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
