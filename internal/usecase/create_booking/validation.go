package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/careconnect/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.SubjectName) == "" {
		return ErrMissingSubjectName
	}
	if len(req.SubjectName) > domain.MaxSubjectNameLength {
		return fmt.Errorf("%w: subject name exceeds %d characters", ErrInvalidInput, domain.MaxSubjectNameLength)
	}

	if strings.TrimSpace(req.Location) == "" {
		return ErrMissingLocation
	}
	if len(req.Location) > domain.MaxLocationLength {
		return fmt.Errorf("%w: location exceeds %d characters", ErrInvalidInput, domain.MaxLocationLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата входит в окно бронирования
func validateDate(bookingDate, now time.Time, maxAdvanceDays int) error {
	if isDateInPast(bookingDate, now) {
		return ErrDateInPast
	}

	today := truncateToDay(now)
	maxDate := today.AddDate(0, 0, maxAdvanceDays)

	if truncateToDay(bookingDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}

// validateTimeSlot проверяет, что метка слота есть в списке, который
// генерирует текущая конфигурация. Метка - единственная идентичность
// времени, поэтому сравнение строковое.
func validateTimeSlot(label string, generated []string) error {
	for _, candidate := range generated {
		if candidate == label {
			return nil
		}
	}
	return ErrInvalidTimeSlot
}

// isSlotAvailable проверяет, что слот (date, label) не занят неотмененным
// бронированием
func isSlotAvailable(date time.Time, label string, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.BlocksSlot() && b.OnDate(date) && b.TimeSlot == label {
			return false
		}
	}
	return true
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
