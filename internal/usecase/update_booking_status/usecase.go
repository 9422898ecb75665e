package update_booking_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/careconnect/booking-service/internal/domain"
	storage "github.com/careconnect/booking-service/internal/infra/storage/bookings"
)

// UseCase use case для принятия решения по бронированию (подтвердить или
// отменить). Доступен только администратору.
type UseCase struct {
	bookingRepo  BookingRepository
	userClient   UserServiceClient
	notifier     Notifier
	recorder     Recorder // может быть nil, если метрики выключены
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	notifier Notifier,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		notifier:     notifier,
		recorder:     recorder,
		timeProvider: RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case смены статуса.
// Разрешен только переход pending -> confirmed и pending -> cancelled;
// решенный статус терминален, независимо от направления.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingStatus: actor=%d, booking=%s, status=%s",
		req.ActorID, req.BookingID, req.Status)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateBookingStatus: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем права: менять статус может только администратор
	isAdmin, err := uc.userClient.IsAdmin(ctx, req.ActorID)
	if err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to check admin role for id=%d: %v", req.ActorID, err)
		return nil, fmt.Errorf("%w: failed to check admin role: %v", ErrInternal, err)
	}
	if !isAdmin {
		uc.logger.Warn("UpdateBookingStatus: user id=%d is not an admin", req.ActorID)
		return nil, ErrAccessDenied
	}

	// 3. Загружаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBookingStatus: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBookingStatus: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Решенный статус терминален
	if booking.IsDecided() {
		uc.logger.Warn("UpdateBookingStatus: booking id=%s already decided (%s)",
			booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: current status is %q", ErrAlreadyDecided, booking.Status)
	}

	newStatus := domain.BookingStatus(req.Status)

	// 5. Применяем решение
	if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, newStatus); err != nil {
		uc.logger.Error("UpdateBookingStatus: failed to persist status for id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to persist status: %v", ErrInternal, err)
	}
	booking.Status = newStatus

	if uc.recorder != nil {
		uc.recorder.RecordStatusChange(string(newStatus))
	}

	uc.logger.Info("UpdateBookingStatus: booking id=%s is now %s", booking.ID, newStatus)

	// 6. Ровно одно событие status-update заявителю. Статус уже записан;
	// неудача отправки логируется внутри notifier и не откатывает решение.
	uc.notifier.StatusUpdated(ctx, booking)

	return &Response{
		ID:        booking.ID,
		Date:      booking.Date,
		TimeSlot:  booking.TimeSlot,
		Status:    string(booking.Status),
		UpdatedAt: uc.timeProvider.Now(),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}
	if req.BookingID == "" {
		return fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}

	// Целевым статусом может быть только решение; "pending" сюда не входит
	for _, status := range domain.DecidedStatuses {
		if domain.BookingStatus(req.Status) == status {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
}
