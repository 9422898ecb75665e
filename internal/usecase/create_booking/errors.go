package create_booking

import "errors"

var (
	// ErrUserNotFound возвращается, когда заявитель не найден в UserService
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrDateInPast возвращается, когда дата бронирования уже прошла
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда метка слота не из сгенерированного списка
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят неотмененным бронированием.
	// Это обязательная повторная проверка на момент отправки: слот мог быть
	// занят между просмотром календаря и подтверждением.
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrMissingSubjectName возвращается, когда не заполнено имя подопечного
	ErrMissingSubjectName = errors.New("create_booking: subject name is required")

	// ErrMissingLocation возвращается, когда не заполнено местоположение
	ErrMissingLocation = errors.New("create_booking: location is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
