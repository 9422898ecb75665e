package wizard

import (
	"time"

	wizardState "github.com/careconnect/booking-service/internal/booking/wizard"
	"github.com/careconnect/booking-service/internal/domain"
	createBooking "github.com/careconnect/booking-service/internal/usecase/create_booking"
)

// SelectSlotRequest HTTP request model шага calendar
type SelectSlotRequest struct {
	Date     string `json:"date"`     // "2025-10-15"
	TimeSlot string `json:"timeSlot"` // "8:00 AM"
}

// EnterDetailsRequest HTTP request model шага details
type EnterDetailsRequest struct {
	SubjectName string  `json:"subjectName"`
	Location    string  `json:"location"`
	Notes       *string `json:"notes,omitempty"`
}

// StateResponse HTTP представление состояния сессии wizard
type StateResponse struct {
	SessionID   string  `json:"sessionId"`
	Step        string  `json:"step"`
	Date        string  `json:"date,omitempty"` // YYYY-MM-DD
	TimeSlot    string  `json:"timeSlot,omitempty"`
	SubjectName string  `json:"subjectName,omitempty"`
	Location    string  `json:"location,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

// SubmitResponse HTTP ответ успешной отправки
type SubmitResponse struct {
	SessionID string           `json:"sessionId"`
	Step      string           `json:"step"` // всегда "submitted"
	Booking   *BookingResponse `json:"booking"`
}

// BookingResponse созданное бронирование
type BookingResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	TimeSlot  string  `json:"timeSlot"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"` // RFC 3339
}

// FromState конвертирует состояние wizard в HTTP response
func FromState(sessionID string, s *wizardState.State) *StateResponse {
	resp := &StateResponse{
		SessionID:   sessionID,
		Step:        string(s.Step),
		TimeSlot:    s.TimeSlot,
		SubjectName: s.SubjectName,
		Location:    s.Location,
		Notes:       s.Notes,
	}
	if !s.Date.IsZero() {
		resp.Date = s.Date.Format(domain.DateFormat)
	}
	return resp
}

// FromCreateBookingResponse конвертирует ответ use case в HTTP response
func FromCreateBookingResponse(sessionID string, resp *createBooking.Response) *SubmitResponse {
	return &SubmitResponse{
		SessionID: sessionID,
		Step:      string(wizardState.StepSubmitted),
		Booking: &BookingResponse{
			ID:        resp.ID,
			Date:      resp.Date.Format(domain.DateFormat),
			TimeSlot:  resp.TimeSlot,
			Status:    resp.Status,
			Notes:     resp.Notes,
			CreatedAt: resp.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
