package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/integrations/userservice"
	"github.com/careconnect/booking-service/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings  []*domain.Booking
	createErr error
	listErr   error
}

func (f *fakeBookingRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.OnDate(date) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.bookings = append(f.bookings, booking)
	return nil
}

type fakeConfigRepo struct {
	config *domain.ScheduleConfig
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.ScheduleConfig, error) {
	return f.config, nil
}

type fakeUserClient struct {
	users map[int64]*domain.User
}

func (f *fakeUserClient) GetUser(_ context.Context, userID int64) (*domain.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, userservice.ErrUserNotFound
	}
	return user, nil
}

type recordedEvent struct {
	kind         string
	bookingID    string
	adminAddress string
}

type fakeNotifier struct {
	events []recordedEvent
}

func (f *fakeNotifier) BookingCreated(_ context.Context, booking *domain.Booking, adminAddress string) {
	// Диспетчер отправляет ровно два события на создание
	f.events = append(f.events,
		recordedEvent{kind: "admin-notify", bookingID: booking.ID, adminAddress: adminAddress},
		recordedEvent{kind: "user-confirm", bookingID: booking.ID},
	)
}

type fixedTime struct{ now time.Time }

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc       *UseCase
	repo     *fakeBookingRepo
	notifier *fakeNotifier
}

func newFixture(existing []*domain.Booking) *fixture {
	repo := &fakeBookingRepo{bookings: existing}
	notifier := &fakeNotifier{}

	cfg := &domain.ScheduleConfig{
		WorkingHoursStart:   "07:00",
		WorkingHoursEnd:     "09:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
		NotificationAddress: "care-team@careconnect.example",
	}

	users := &fakeUserClient{users: map[int64]*domain.User{
		42: {ID: 42, Email: "maria@example.com", Name: "Maria Lang", Role: domain.RoleUser},
	}}

	uc := NewUseCase(repo, &fakeConfigRepo{config: cfg}, users, notifier, nil, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, repo: repo, notifier: notifier}
}

func validRequest() *Request {
	return &Request{
		RequesterID: 42,
		Date:        time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "8:00 AM",
		SubjectName: "Rose Lang",
		Location:    "Willow Creek, room 204",
		Notes:       ptr.Ptr("prefers mornings"),
	}
}

func TestUseCase_Execute_CreatesPendingBooking(t *testing.T) {
	fx := newFixture(nil)

	resp, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "maria@example.com", resp.RequesterEmail)
	assert.Equal(t, "Maria Lang", resp.RequesterName)
	assert.Equal(t, "8:00 AM", resp.TimeSlot)

	// Ровно одно бронирование записано
	require.Len(t, fx.repo.bookings, 1)
	assert.Equal(t, domain.StatusPending, fx.repo.bookings[0].Status)

	// Ровно два события уведомлений: admin-notify и user-confirm
	require.Len(t, fx.notifier.events, 2)
	assert.Equal(t, "admin-notify", fx.notifier.events[0].kind)
	assert.Equal(t, "care-team@careconnect.example", fx.notifier.events[0].adminAddress)
	assert.Equal(t, "user-confirm", fx.notifier.events[1].kind)
	assert.Equal(t, resp.ID, fx.notifier.events[1].bookingID)
}

func TestUseCase_Execute_UniqueIDs(t *testing.T) {
	fx := newFixture(nil)

	first, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	second := validRequest()
	second.TimeSlot = "8:30 AM"
	resp, err := fx.uc.Execute(context.Background(), second)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, resp.ID)
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	taken := &domain.Booking{ID: "existing", Date: date, TimeSlot: "8:00 AM", Status: domain.StatusPending}

	fx := newFixture([]*domain.Booking{taken})

	_, err := fx.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// Ничего не записано и не отправлено
	assert.Len(t, fx.repo.bookings, 1)
	assert.Empty(t, fx.notifier.events)
}

func TestUseCase_Execute_CancelledBookingFreesSlot(t *testing.T) {
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	cancelled := &domain.Booking{ID: "old", Date: date, TimeSlot: "8:00 AM", Status: domain.StatusCancelled}

	fx := newFixture([]*domain.Booking{cancelled})

	resp, err := fx.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "8:00 AM", resp.TimeSlot)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantErr error
	}{
		{
			name:    "missing subject name",
			mutate:  func(r *Request) { r.SubjectName = "   " },
			wantErr: ErrMissingSubjectName,
		},
		{
			name:    "missing location",
			mutate:  func(r *Request) { r.Location = "" },
			wantErr: ErrMissingLocation,
		},
		{
			name:    "slot label not in schedule",
			mutate:  func(r *Request) { r.TimeSlot = "6:00 AM" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "label format mismatch is rejected",
			mutate:  func(r *Request) { r.TimeSlot = "08:00" },
			wantErr: ErrInvalidTimeSlot,
		},
		{
			name:    "date in the past",
			mutate:  func(r *Request) { r.Date = time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrDateInPast,
		},
		{
			name:    "date past the horizon",
			mutate:  func(r *Request) { r.Date = time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrDateTooFarInFuture,
		},
		{
			name:    "unknown requester id",
			mutate:  func(r *Request) { r.RequesterID = 999 },
			wantErr: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(nil)

			req := validRequest()
			tt.mutate(req)

			_, err := fx.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, fx.repo.bookings, "failed submission must persist nothing")
			assert.Empty(t, fx.notifier.events, "failed submission must notify nobody")
		})
	}
}

func TestUseCase_Execute_PersistFailureSkipsNotifications(t *testing.T) {
	fx := newFixture(nil)
	fx.repo.createErr = errors.New("disk full")

	_, err := fx.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)

	assert.Empty(t, fx.notifier.events)
}
