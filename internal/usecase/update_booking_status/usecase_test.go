package update_booking_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
	storage "github.com/careconnect/booking-service/internal/infra/storage/bookings"
)

type fakeBookingRepo struct {
	bookings  map[string]*domain.Booking
	updateErr error
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id string, status domain.BookingStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	b, ok := f.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeUserClient struct {
	admins map[int64]bool
}

func (f *fakeUserClient) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.admins[userID], nil
}

type fakeNotifier struct {
	statusEvents []*domain.Booking
}

func (f *fakeNotifier) StatusUpdated(_ context.Context, booking *domain.Booking) {
	f.statusEvents = append(f.statusEvents, booking)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	adminID = int64(1)
	userID  = int64(42)
)

func newFixture(bookings ...*domain.Booking) (*UseCase, *fakeBookingRepo, *fakeNotifier) {
	repo := &fakeBookingRepo{bookings: make(map[string]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}

	notifier := &fakeNotifier{}
	users := &fakeUserClient{admins: map[int64]bool{adminID: true}}

	uc := NewUseCase(repo, users, notifier, nil, nopLogger{})
	return uc, repo, notifier
}

func pendingBooking(id string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		RequesterID: userID,
		Date:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "8:00 AM",
		Status:      domain.StatusPending,
	}
}

func TestUseCase_Execute_ConfirmsPending(t *testing.T) {
	uc, repo, notifier := newFixture(pendingBooking("b-1"))

	resp, err := uc.Execute(context.Background(), &Request{
		ActorID:   adminID,
		BookingID: "b-1",
		Status:    "confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings["b-1"].Status)

	// Ровно одно событие status-update
	require.Len(t, notifier.statusEvents, 1)
	assert.Equal(t, "b-1", notifier.statusEvents[0].ID)
	assert.Equal(t, domain.StatusConfirmed, notifier.statusEvents[0].Status)
}

func TestUseCase_Execute_CancelsPending(t *testing.T) {
	uc, repo, notifier := newFixture(pendingBooking("b-1"))

	resp, err := uc.Execute(context.Background(), &Request{
		ActorID:   adminID,
		BookingID: "b-1",
		Status:    "cancelled",
	})
	require.NoError(t, err)

	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, domain.StatusCancelled, repo.bookings["b-1"].Status)
	assert.Len(t, notifier.statusEvents, 1)
}

func TestUseCase_Execute_DecidedIsTerminal(t *testing.T) {
	tests := []struct {
		name    string
		current domain.BookingStatus
		target  string
	}{
		{"confirmed stays confirmed", domain.StatusConfirmed, "cancelled"},
		{"cancelled stays cancelled", domain.StatusCancelled, "confirmed"},
		{"confirmed cannot be re-confirmed", domain.StatusConfirmed, "confirmed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pendingBooking("b-1")
			b.Status = tt.current
			uc, repo, notifier := newFixture(b)

			_, err := uc.Execute(context.Background(), &Request{
				ActorID:   adminID,
				BookingID: "b-1",
				Status:    tt.target,
			})
			assert.ErrorIs(t, err, ErrAlreadyDecided)
			assert.Equal(t, tt.current, repo.bookings["b-1"].Status)
			assert.Empty(t, notifier.statusEvents)
		})
	}
}

func TestUseCase_Execute_NonAdminDenied(t *testing.T) {
	uc, repo, notifier := newFixture(pendingBooking("b-1"))

	_, err := uc.Execute(context.Background(), &Request{
		ActorID:   userID,
		BookingID: "b-1",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.bookings["b-1"].Status)
	assert.Empty(t, notifier.statusEvents)
}

func TestUseCase_Execute_InvalidStatus(t *testing.T) {
	uc, _, notifier := newFixture(pendingBooking("b-1"))

	for _, status := range []string{"pending", "done", "CONFIRMED", ""} {
		_, err := uc.Execute(context.Background(), &Request{
			ActorID:   adminID,
			BookingID: "b-1",
			Status:    status,
		})
		assert.Error(t, err, "status %q must be rejected", status)
	}
	assert.Empty(t, notifier.statusEvents)
}

func TestUseCase_Execute_BookingNotFound(t *testing.T) {
	uc, _, notifier := newFixture()

	_, err := uc.Execute(context.Background(), &Request{
		ActorID:   adminID,
		BookingID: "missing",
		Status:    "confirmed",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Empty(t, notifier.statusEvents)
}
