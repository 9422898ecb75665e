package export_bookings

import (
	"errors"
	"net/http"

	"github.com/careconnect/booking-service/internal/api/handlers"
	"github.com/careconnect/booking-service/internal/api/middleware"
	"github.com/careconnect/booking-service/internal/service/bookings"
)

const (
	msgMissingUserID = "missing user ID"
	msgForbidden     = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/export - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	csvData, err := h.service.ExportCSV(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/export - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/export - Failed to export bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/export - Exported bookings: user_id=%d, size=%d bytes", userID, len(csvData))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}
