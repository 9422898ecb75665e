package update_booking_status

import "errors"

// Ошибки уровня use case. Хендлер маппит их на HTTP статусы через errors.Is.
var (
	// ErrAccessDenied менять статус может только администратор
	ErrAccessDenied = errors.New("update_booking_status.usecase: access denied")

	// ErrBookingNotFound бронирование с таким ID не найдено
	ErrBookingNotFound = errors.New("update_booking_status.usecase: booking not found")

	// ErrInvalidStatus запрошенный статус не входит в множество допустимых
	ErrInvalidStatus = errors.New("update_booking_status.usecase: invalid status")

	// ErrAlreadyDecided бронирование уже подтверждено или отменено,
	// решенный статус терминален
	ErrAlreadyDecided = errors.New("update_booking_status.usecase: booking already decided")

	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("update_booking_status.usecase: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("update_booking_status.usecase: internal error")
)
