package wizard

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/careconnect/booking-service/internal/api/handlers"
	"github.com/careconnect/booking-service/internal/api/middleware"
	wizardState "github.com/careconnect/booking-service/internal/booking/wizard"
	"github.com/careconnect/booking-service/internal/domain"
	createBooking "github.com/careconnect/booking-service/internal/usecase/create_booking"
	getAvailableSlots "github.com/careconnect/booking-service/internal/usecase/get_available_slots"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgMissingUserID      = "missing user ID"
	msgSessionNotFound    = "wizard session not found or expired"
	msgDateNotSelectable  = "date is not selectable"
	msgInvalidTimeSlot    = "time slot is not in the current schedule"
	msgMissingSubjectName = "subject name is required"
	msgMissingLocation    = "location is required"
	msgWrongStep          = "operation is not valid for the current step"
	msgNotReadyToSubmit   = "wizard is not ready to submit"
	msgSlotTaken          = "the selected time slot was taken, please pick another one"
)

// Handler обслуживает все маршруты wizard. Сессии живут в памяти процесса
// и привязаны к пользователю из X-User-ID.
type Handler struct {
	sessions      SessionStore
	slotsUseCase  GetAvailableSlotsUseCase
	createUseCase CreateBookingUseCase
	recorder      Recorder // может быть nil, если метрики выключены
	logger        Logger
}

func NewHandler(
	sessions SessionStore,
	slotsUseCase GetAvailableSlotsUseCase,
	createUseCase CreateBookingUseCase,
	recorder Recorder,
	logger Logger,
) *Handler {
	return &Handler{
		sessions:      sessions,
		slotsUseCase:  slotsUseCase,
		createUseCase: createUseCase,
		recorder:      recorder,
		logger:        logger,
	}
}

// HandleStart POST /api/v1/wizard
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	sessionID, state := h.sessions.Start(userID)
	h.trackSessions()

	h.logger.Info("POST /wizard - Session started: session_id=%s, user_id=%d", sessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromState(sessionID, state))
}

// HandleGet GET /api/v1/wizard/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, FromState(sessionID, state))
}

// HandleSelectSlot POST /api/v1/wizard/{sessionId}/slot
func (h *Handler) HandleSelectSlot(w http.ResponseWriter, r *http.Request) {
	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		h.logger.Warn("POST /wizard/{id}/slot - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Окно бронирования и список меток проверяет движок слотов
	slots, err := h.slotsUseCase.Execute(r.Context(), &getAvailableSlots.Request{Date: date})
	selectable := true
	var labels []string
	switch {
	case errors.Is(err, getAvailableSlots.ErrDateInPast),
		errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
		selectable = false
	case err != nil:
		h.logger.Error("POST /wizard/{id}/slot - Failed to get slots: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	default:
		labels = make([]string, 0, len(slots.Slots))
		for _, s := range slots.Slots {
			labels = append(labels, s.Label)
		}
	}

	if err := state.SelectSlot(date, req.TimeSlot, labels, selectable); err != nil {
		h.respondTransitionError(w, "POST /wizard/{id}/slot", sessionID, err)
		return
	}

	h.logger.Info("POST /wizard/{id}/slot - Slot selected: session_id=%s, date=%s, slot=%s",
		sessionID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromState(sessionID, state))
}

// HandleEnterDetails POST /api/v1/wizard/{sessionId}/details
func (h *Handler) HandleEnterDetails(w http.ResponseWriter, r *http.Request) {
	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}

	var req EnterDetailsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/details - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := state.EnterDetails(req.SubjectName, req.Location, req.Notes); err != nil {
		h.respondTransitionError(w, "POST /wizard/{id}/details", sessionID, err)
		return
	}

	h.logger.Info("POST /wizard/{id}/details - Details entered: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromState(sessionID, state))
}

// HandleBack POST /api/v1/wizard/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := state.Back(); err != nil {
		h.respondTransitionError(w, "POST /wizard/{id}/back", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromState(sessionID, state))
}

// HandleReset POST /api/v1/wizard/{sessionId}/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}

	state.Reset()

	h.logger.Info("POST /wizard/{id}/reset - Session reset: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, FromState(sessionID, state))
}

// HandleSubmit POST /api/v1/wizard/{sessionId}/submit
//
// Конфликт на отправке (слот заняли, пока пользователь шел по шагам)
// возвращает wizard на шаг calendar, сохранив введенные данные.
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	sessionID, state, ok := h.session(w, r)
	if !ok {
		return
	}

	if !state.ReadyToSubmit() {
		h.logger.Warn("POST /wizard/{id}/submit - Not ready: session_id=%s, step=%s", sessionID, state.Step)
		handlers.RespondConflict(w, msgNotReadyToSubmit)
		return
	}

	result, err := h.createUseCase.Execute(r.Context(), &createBooking.Request{
		RequesterID: userID,
		Date:        state.Date,
		TimeSlot:    state.TimeSlot,
		SubjectName: state.SubjectName,
		Location:    state.Location,
		Notes:       state.Notes,
	})
	if err != nil {
		if errors.Is(err, createBooking.ErrSlotNotAvailable) {
			state.ReturnToCalendar()
			h.logger.Warn("POST /wizard/{id}/submit - Slot taken, back to calendar: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)
			return
		}
		h.logger.Error("POST /wizard/{id}/submit - Failed to create booking: session_id=%s, error=%v",
			sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if err := state.MarkSubmitted(); err != nil {
		// ReadyToSubmit проверен выше, сюда попасть нельзя
		h.logger.Error("POST /wizard/{id}/submit - Unexpected transition error: session_id=%s, error=%v",
			sessionID, err)
	}
	h.sessions.Delete(sessionID)
	h.trackSessions()

	h.logger.Info("POST /wizard/{id}/submit - Booking created: session_id=%s, booking_id=%s, user_id=%d",
		sessionID, result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromCreateBookingResponse(sessionID, result))
}

// session извлекает сессию текущего пользователя из URL; при ошибке сам
// пишет ответ и возвращает ok=false
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (string, *wizardState.State, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return "", nil, false
	}

	sessionID := mux.Vars(r)["sessionId"]
	state, err := h.sessions.Get(sessionID, userID)
	if err != nil {
		h.logger.Warn("Wizard session not found: session_id=%s, user_id=%d", sessionID, userID)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return "", nil, false
	}
	return sessionID, state, true
}

func (h *Handler) respondTransitionError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, wizardState.ErrDateNotSelectable):
		h.logger.Warn("%s - Date not selectable: session_id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgDateNotSelectable)

	case errors.Is(err, wizardState.ErrInvalidTimeSlot):
		h.logger.Warn("%s - Invalid time slot: session_id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgInvalidTimeSlot)

	case errors.Is(err, wizardState.ErrMissingSubjectName):
		h.logger.Warn("%s - Missing subject name: session_id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgMissingSubjectName)

	case errors.Is(err, wizardState.ErrMissingLocation):
		h.logger.Warn("%s - Missing location: session_id=%s", op, sessionID)
		handlers.RespondBadRequest(w, msgMissingLocation)

	case errors.Is(err, wizardState.ErrWrongStep):
		h.logger.Warn("%s - Wrong step: session_id=%s", op, sessionID)
		handlers.RespondConflict(w, msgWrongStep)

	default:
		h.logger.Error("%s - Unexpected error: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) trackSessions() {
	if h.recorder != nil {
		h.recorder.SetWizardSessions(h.sessions.Active())
	}
}
