package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/careconnect/booking-service/internal/domain"
	userClient "github.com/careconnect/booking-service/internal/integrations/userservice"
)

// UseCase use case для создания бронирования (шаг confirmation -> submitted)
type UseCase struct {
	bookingRepo  BookingRepository
	configRepo   ConfigRepository
	userClient   UserServiceClient
	notifier     Notifier
	recorder     Recorder // может быть nil, если метрики выключены
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	configRepo ConfigRepository,
	userClient UserServiceClient,
	notifier Notifier,
	recorder Recorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		configRepo:   configRepo,
		userClient:   userClient,
		notifier:     notifier,
		recorder:     recorder,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Известная гонка: слот не блокируется на время прохождения wizard, и два
// клиента могут отправить одинаковый (date, time) до того, как любой из них
// будет записан. Хранилище дает только last-write-wins по всей коллекции,
// без compare-and-set, поэтому оба бронирования принимаются как отдельные
// pending записи - дубль разруливает администратор вручную. Повторная
// проверка доступности ниже закрывает только окно между просмотром
// календаря и отправкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: requester=%d, date=%s, slot=%s",
		req.RequesterID, req.Date.Format(domain.DateFormat), req.TimeSlot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль заявителя - его данные денормализуются в
	// бронирование и дальше не синхронизируются
	user, err := uc.userClient.GetUser(ctx, req.RequesterID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.RequesterID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.RequesterID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 4. Получаем конфигурацию расписания
	config, err := uc.configRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	// 5. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, config.MaxAdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем, что метка слота из сгенерированного списка
	if err := validateTimeSlot(req.TimeSlot, generateSlots(config)); err != nil {
		uc.logger.Warn("CreateBooking: slot %q is not produced by the current schedule", req.TimeSlot)
		return nil, err
	}

	// 7. Повторная проверка доступности по свежему чтению коллекции
	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	if !isSlotAvailable(req.Date, req.TimeSlot, bookings) {
		uc.logger.Warn("CreateBooking: slot (%s, %s) already taken",
			req.Date.Format(domain.DateFormat), req.TimeSlot)
		return nil, ErrSlotNotAvailable
	}

	// 8. Создаем бронирование в статусе pending
	booking := &domain.Booking{
		ID:             uuid.NewString(),
		RequesterID:    user.ID,
		RequesterEmail: user.Email,
		RequesterName:  user.Name,
		SubjectName:    req.SubjectName,
		Location:       req.Location,
		Date:           truncateToDay(req.Date),
		TimeSlot:       req.TimeSlot,
		Notes:          req.Notes,
		Status:         domain.StatusPending,
		CreatedAt:      now,
	}

	if err := uc.bookingRepo.Create(ctx, booking); err != nil {
		uc.logger.Error("CreateBooking: failed to persist booking: %v", err)
		return nil, fmt.Errorf("%w: failed to persist booking: %v", ErrInternal, err)
	}

	if uc.recorder != nil {
		uc.recorder.IncBookingsCreated()
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)

	// 9. Отправляем два события: admin-notify и user-confirm.
	// Запись уже закоммичена; неудача отправки логируется внутри notifier
	// и не откатывает бронирование.
	uc.notifier.BookingCreated(ctx, booking, config.NotificationAddress)

	return &Response{
		ID:             booking.ID,
		RequesterID:    booking.RequesterID,
		RequesterEmail: booking.RequesterEmail,
		RequesterName:  booking.RequesterName,
		SubjectName:    booking.SubjectName,
		Location:       booking.Location,
		Date:           booking.Date,
		TimeSlot:       booking.TimeSlot,
		Notes:          booking.Notes,
		Status:         string(booking.Status),
		CreatedAt:      booking.CreatedAt,
	}, nil
}
