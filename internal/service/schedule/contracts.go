package schedule

import (
	"context"

	"github.com/careconnect/booking-service/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигурации расписания
type ConfigRepository interface {
	Get(ctx context.Context) (*domain.ScheduleConfig, error)
	Set(ctx context.Context, cfg *domain.ScheduleConfig) error
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
