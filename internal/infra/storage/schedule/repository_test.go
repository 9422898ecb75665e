package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
)

func defaults() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
		NotificationAddress: "care-team@example.com",
	}
}

func TestRepository_GetReturnsDefaultsBeforeFirstSave(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), defaults())

	cfg, err := repo.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09:00", cfg.WorkingHoursStart.String())
	assert.Equal(t, "17:00", cfg.WorkingHoursEnd.String())
	assert.Equal(t, 30, cfg.SlotDurationMinutes)
	assert.Equal(t, 30, cfg.MaxAdvanceDays)
	assert.Equal(t, "care-team@example.com", cfg.NotificationAddress)
}

func TestRepository_GetReturnsCopyOfDefaults(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), defaults())

	first, err := repo.Get(context.Background())
	require.NoError(t, err)
	first.SlotDurationMinutes = 99

	second, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, second.SlotDurationMinutes)
}

func TestRepository_SetThenGet(t *testing.T) {
	repo := NewRepository(kv.NewMemoryStore(), defaults())

	updated := &domain.ScheduleConfig{
		WorkingHoursStart:   "07:00",
		WorkingHoursEnd:     "09:00",
		SlotDurationMinutes: 45,
		MaxAdvanceDays:      14,
		NotificationAddress: "night-shift@example.com",
	}
	require.NoError(t, repo.Set(context.Background(), updated))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "07:00", got.WorkingHoursStart.String())
	assert.Equal(t, "09:00", got.WorkingHoursEnd.String())
	assert.Equal(t, 45, got.SlotDurationMinutes)
	assert.Equal(t, 14, got.MaxAdvanceDays)
	assert.Equal(t, "night-shift@example.com", got.NotificationAddress)
}

func TestRepository_SetOverwritesWholesale(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewRepository(store, defaults())

	require.NoError(t, repo.Set(context.Background(), &domain.ScheduleConfig{
		WorkingHoursStart:   "07:00",
		WorkingHoursEnd:     "09:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
	}))
	require.NoError(t, repo.Set(context.Background(), &domain.ScheduleConfig{
		WorkingHoursStart:   "10:00",
		WorkingHoursEnd:     "12:00",
		SlotDurationMinutes: 60,
		MaxAdvanceDays:      7,
	}))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.WorkingHoursStart.String())
	assert.Equal(t, 60, got.SlotDurationMinutes)
	assert.Equal(t, 7, got.MaxAdvanceDays)
	// Поле, не указанное во второй записи, не наследуется из первой
	assert.Equal(t, "", got.NotificationAddress)
}
