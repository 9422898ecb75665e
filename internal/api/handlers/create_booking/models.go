package create_booking

import (
	"time"

	"github.com/careconnect/booking-service/internal/domain"
	createBooking "github.com/careconnect/booking-service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"`     // "2025-10-15"
	TimeSlot    string  `json:"timeSlot"` // "8:00 AM"
	SubjectName string  `json:"subjectName"`
	Location    string  `json:"location"`
	Notes       *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             string  `json:"id"`
	RequesterID    int64   `json:"requesterId"`
	RequesterEmail string  `json:"requesterEmail"`
	RequesterName  string  `json:"requesterName"`
	SubjectName    string  `json:"subjectName"`
	Location       string  `json:"location"`
	Date           string  `json:"date"` // YYYY-MM-DD
	TimeSlot       string  `json:"timeSlot"`
	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"` // RFC 3339
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(requesterID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RequesterID: requesterID,
		Date:        date,
		TimeSlot:    r.TimeSlot,
		SubjectName: r.SubjectName,
		Location:    r.Location,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		RequesterID:    resp.RequesterID,
		RequesterEmail: resp.RequesterEmail,
		RequesterName:  resp.RequesterName,
		SubjectName:    resp.SubjectName,
		Location:       resp.Location,
		Date:           resp.Date.Format(domain.DateFormat),
		TimeSlot:       resp.TimeSlot,
		Notes:          resp.Notes,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
