package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
	"github.com/careconnect/booking-service/pkg/ptr"
)

func newRepo() *Repository {
	return NewRepository(kv.NewMemoryStore())
}

func booking(id string, requesterID int64, date time.Time, slot string) *domain.Booking {
	return &domain.Booking{
		ID:             id,
		RequesterID:    requesterID,
		RequesterEmail: "maria@example.com",
		RequesterName:  "Maria Lang",
		SubjectName:    "Rose Lang",
		Location:       "Willow Creek, room 204",
		Date:           date,
		TimeSlot:       slot,
		Notes:          ptr.Ptr("prefers mornings"),
		Status:         domain.StatusPending,
		CreatedAt:      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_EmptyCollection(t *testing.T) {
	repo := newRepo()

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := newRepo()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), booking("b-1", 42, date, "8:00 AM")))

	got, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "b-1", got.ID)
	assert.Equal(t, int64(42), got.RequesterID)
	assert.Equal(t, "8:00 AM", got.TimeSlot)
	assert.True(t, got.Date.Equal(date))
	require.NotNil(t, got.Notes)
	assert.Equal(t, "prefers mornings", *got.Notes)
	assert.Equal(t, domain.StatusPending, got.Status)
}

func TestRepository_ListPreservesInsertionOrder(t *testing.T) {
	repo := newRepo()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	for _, id := range []string{"b-1", "b-2", "b-3"} {
		require.NoError(t, repo.Create(context.Background(), booking(id, 42, date, "8:00 AM")))
	}

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "b-1", all[0].ID)
	assert.Equal(t, "b-2", all[1].ID)
	assert.Equal(t, "b-3", all[2].ID)
}

func TestRepository_ListByDate(t *testing.T) {
	repo := newRepo()
	june5 := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	june6 := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), booking("b-1", 42, june5, "8:00 AM")))
	require.NoError(t, repo.Create(context.Background(), booking("b-2", 42, june6, "8:00 AM")))
	require.NoError(t, repo.Create(context.Background(), booking("b-3", 7, june5, "8:30 AM")))

	onJune5, err := repo.ListByDate(context.Background(), june5)
	require.NoError(t, err)
	require.Len(t, onJune5, 2)
	assert.Equal(t, "b-1", onJune5[0].ID)
	assert.Equal(t, "b-3", onJune5[1].ID)
}

func TestRepository_ListByRequester(t *testing.T) {
	repo := newRepo()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), booking("b-1", 42, date, "8:00 AM")))
	require.NoError(t, repo.Create(context.Background(), booking("b-2", 7, date, "8:30 AM")))

	mine, err := repo.ListByRequester(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b-1", mine[0].ID)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo := newRepo()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), booking("b-1", 42, date, "8:00 AM")))
	require.NoError(t, repo.UpdateStatus(context.Background(), "b-1", domain.StatusConfirmed))

	got, err := repo.GetByID(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	// Остальные поля не тронуты
	assert.Equal(t, "8:00 AM", got.TimeSlot)

	err = repo.UpdateStatus(context.Background(), "missing", domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo := newRepo()
	date := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(context.Background(), booking("b-1", 42, date, "8:00 AM")))
	require.NoError(t, repo.Create(context.Background(), booking("b-2", 42, date, "8:30 AM")))

	require.NoError(t, repo.Delete(context.Background(), "b-1"))

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b-2", all[0].ID)

	err = repo.Delete(context.Background(), "b-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
