package get_user_bookings

import (
	"context"

	"github.com/careconnect/booking-service/internal/service/bookings/models"
)

type BookingService interface {
	ListByRequester(ctx context.Context, requesterID, userID int64) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
