package get_available_slots

import (
	"github.com/careconnect/booking-service/internal/domain"
	getAvailableSlots "github.com/careconnect/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse один слот дня
type SlotResponse struct {
	Label     string `json:"label"` // "8:00 AM"
	Available bool   `json:"available"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"` // YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *SlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Label: s.Label, Available: s.Available})
	}
	return &SlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
