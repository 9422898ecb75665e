package get_available_slots

import (
	"context"
	"fmt"

	"github.com/careconnect/booking-service/internal/domain"
)

// UseCase use case для получения слотов на дату с признаком доступности
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s",
		req.UserID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем конфигурацию расписания (дефолты, если не сохранялась)
	config, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, config.MaxAdvanceDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Генерируем метки слотов. Вырожденная конфигурация дает пустой
	// список, это не ошибка.
	labels := generateSlots(config)
	if len(labels) == 0 {
		uc.logger.Warn("GetAvailableSlots: schedule config produces no slots (start=%s, end=%s, duration=%d)",
			config.WorkingHoursStart, config.WorkingHoursEnd, config.SlotDurationMinutes)
		return &Response{Date: req.Date, Slots: []domain.Slot{}}, nil
	}

	// 6. Получаем бронирования на эту дату
	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Классифицируем каждый слот как свободный или занятый
	slots := make([]domain.Slot, 0, len(labels))
	for _, label := range labels {
		slots = append(slots, domain.Slot{
			Label:     label,
			Available: isSlotAvailable(req.Date, label, bookings),
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s",
		len(slots), req.Date.Format(domain.DateFormat))

	return &Response{Date: req.Date, Slots: slots}, nil
}
