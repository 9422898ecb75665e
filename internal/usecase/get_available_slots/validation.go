package get_available_slots

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate проверяет, что дата входит в окно бронирования
func validateDate(requestDate, now time.Time, maxAdvanceDays int) error {
	if isDateInPast(requestDate, now) {
		return ErrDateInPast
	}

	if !isDateSelectable(requestDate, now, maxAdvanceDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}
