package models

import (
	"time"

	"github.com/careconnect/booking-service/internal/domain"
)

// BookingResponse бронирование в представлении API
type BookingResponse struct {
	ID             string    `json:"id"`
	RequesterID    int64     `json:"requesterId"`
	RequesterEmail string    `json:"requesterEmail"`
	RequesterName  string    `json:"requesterName"`
	SubjectName    string    `json:"subjectName"`
	Location       string    `json:"location"`
	Date           string    `json:"date"` // YYYY-MM-DD
	TimeSlot       string    `json:"timeSlot"`
	Notes          *string   `json:"notes,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain бронирование в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:             b.ID,
		RequesterID:    b.RequesterID,
		RequesterEmail: b.RequesterEmail,
		RequesterName:  b.RequesterName,
		SubjectName:    b.SubjectName,
		Location:       b.Location,
		Date:           b.Date.Format(domain.DateFormat),
		TimeSlot:       b.TimeSlot,
		Notes:          b.Notes,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain бронирований в ответ API
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result, Total: len(result)}
}
