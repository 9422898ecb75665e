package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/careconnect/booking-service/internal/api/handlers"
	"github.com/careconnect/booking-service/internal/domain"
	getAvailableSlots "github.com/careconnect/booking-service/internal/usecase/get_available_slots"
)

const (
	msgMissingDate = "query parameter 'date' is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgDateInPast  = "date is in the past"
	msgDateTooFar  = "date is too far in the future"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrDateInPast):
			h.logger.Warn("GET /slots - Date in past: date=%s", rawDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /slots - Date too far in future: date=%s", rawDate)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Returned %d slots for date=%s", len(result.Slots), rawDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
