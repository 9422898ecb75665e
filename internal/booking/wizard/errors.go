package wizard

import "errors"

var (
	// ErrWrongStep операция не соответствует текущему шагу wizard
	ErrWrongStep = errors.New("booking.wizard: operation not valid for current step")

	// ErrDateNotSelectable дата вне окна бронирования
	ErrDateNotSelectable = errors.New("booking.wizard: date is not selectable")

	// ErrInvalidTimeSlot метка слота не из текущего расписания
	ErrInvalidTimeSlot = errors.New("booking.wizard: time slot is not in the schedule")

	// ErrMissingSubjectName не указано имя подопечного
	ErrMissingSubjectName = errors.New("booking.wizard: subject name is required")

	// ErrMissingLocation не указано местоположение
	ErrMissingLocation = errors.New("booking.wizard: location is required")

	// ErrSessionNotFound сессия не найдена или истекла
	ErrSessionNotFound = errors.New("booking.wizard: session not found or expired")
)
