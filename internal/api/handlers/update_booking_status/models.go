package update_booking_status

import (
	"time"

	"github.com/careconnect/booking-service/internal/domain"
	updateBookingStatus "github.com/careconnect/booking-service/internal/usecase/update_booking_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"` // "confirmed" | "cancelled"
}

// UpdateStatusResponse HTTP response model
type UpdateStatusResponse struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	TimeSlot  string `json:"timeSlot"`
	Status    string `json:"status"`
	UpdatedAt string `json:"updatedAt"` // RFC 3339
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateBookingStatus.Response) *UpdateStatusResponse {
	return &UpdateStatusResponse{
		ID:        resp.ID,
		Date:      resp.Date.Format(domain.DateFormat),
		TimeSlot:  resp.TimeSlot,
		Status:    resp.Status,
		UpdatedAt: resp.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
