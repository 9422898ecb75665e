package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.OnDate(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
	err    error
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.ScheduleConfig, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.config, nil
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookings []*domain.Booking, cfg *domain.ScheduleConfig, now time.Time) *UseCase {
	uc := NewUseCase(&fakeBookingRepo{bookings: bookings}, &fakeConfigRepo{config: cfg}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	cfg := &domain.ScheduleConfig{
		WorkingHoursStart:   "07:00",
		WorkingHoursEnd:     "09:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
	}

	taken := &domain.Booking{ID: "1", Date: date, TimeSlot: "8:00 AM", Status: domain.StatusPending}

	uc := newTestUseCase([]*domain.Booking{taken}, cfg, now)

	resp, err := uc.Execute(context.Background(), &Request{UserID: 42, Date: date})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, []domain.Slot{
		{Label: "7:00 AM", Available: true},
		{Label: "7:30 AM", Available: true},
		{Label: "8:00 AM", Available: false},
		{Label: "8:30 AM", Available: true},
	}, resp.Slots)
}

func TestUseCase_Execute_DateValidation(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	cfg := &domain.ScheduleConfig{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
	}

	uc := newTestUseCase(nil, cfg, now)

	_, err := uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, -1)})
	assert.ErrorIs(t, err, ErrDateInPast)

	_, err = uc.Execute(context.Background(), &Request{Date: now.AddDate(0, 0, 31)})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUseCase_Execute_DegenerateConfig(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	cfg := &domain.ScheduleConfig{
		WorkingHoursStart:   "17:00",
		WorkingHoursEnd:     "09:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
	}

	uc := newTestUseCase(nil, cfg, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: now})
	require.NoError(t, err, "degenerate config must degrade to an empty list, not fail")
	assert.Empty(t, resp.Slots)
}
