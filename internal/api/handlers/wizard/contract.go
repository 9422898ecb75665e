package wizard

import (
	"context"

	"github.com/careconnect/booking-service/internal/booking/wizard"
	createBooking "github.com/careconnect/booking-service/internal/usecase/create_booking"
	getAvailableSlots "github.com/careconnect/booking-service/internal/usecase/get_available_slots"
)

// SessionStore интерфейс хранилища сессий wizard
type SessionStore interface {
	Start(ownerID int64) (string, *wizard.State)
	Get(id string, ownerID int64) (*wizard.State, error)
	Delete(id string)
	Active() int
}

// GetAvailableSlotsUseCase проверяет дату и дает список меток слотов для
// шага calendar
type GetAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// CreateBookingUseCase создает бронирование на шаге submit
type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Recorder интерфейс записи метрик
type Recorder interface {
	SetWizardSessions(n int)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
