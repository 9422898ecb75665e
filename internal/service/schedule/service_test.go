package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careconnect/booking-service/internal/domain"
	scheduleRepo "github.com/careconnect/booking-service/internal/infra/storage/schedule"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
	"github.com/careconnect/booking-service/internal/service/schedule/models"
	"github.com/careconnect/booking-service/pkg/ptr"
)

type fakeUserClient struct {
	admins map[int64]bool
}

func (f *fakeUserClient) IsAdmin(_ context.Context, userID int64) (bool, error) {
	return f.admins[userID], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const (
	adminID = int64(1)
	userID  = int64(42)
)

func defaults() domain.ScheduleConfig {
	return domain.ScheduleConfig{
		WorkingHoursStart:   "09:00",
		WorkingHoursEnd:     "17:00",
		SlotDurationMinutes: 30,
		MaxAdvanceDays:      30,
		NotificationAddress: "care-team@careconnect.example",
	}
}

func newService(t *testing.T) *Service {
	t.Helper()

	repo := scheduleRepo.NewRepository(kv.NewMemoryStore(), defaults())
	users := &fakeUserClient{admins: map[int64]bool{adminID: true}}
	return NewService(repo, users, nopLogger{})
}

func TestService_Get_ReturnsDefaultsBeforeFirstSave(t *testing.T) {
	svc := newService(t)

	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09:00", cfg.WorkingHoursStart)
	assert.Equal(t, "17:00", cfg.WorkingHoursEnd)
	assert.Equal(t, 30, cfg.SlotDurationMinutes)
	assert.Equal(t, 30, cfg.MaxAdvanceDays)
}

func TestService_Update_MergesPartialFields(t *testing.T) {
	svc := newService(t)

	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:              adminID,
		WorkingHoursStart:   ptr.Ptr("07:00"),
		SlotDurationMinutes: ptr.Ptr(45),
	})
	require.NoError(t, err)

	assert.Equal(t, "07:00", resp.WorkingHoursStart)
	assert.Equal(t, 45, resp.SlotDurationMinutes)
	// Неуказанные поля остаются прежними
	assert.Equal(t, "17:00", resp.WorkingHoursEnd)
	assert.Equal(t, 30, resp.MaxAdvanceDays)

	// Обновление персистентно
	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "07:00", got.WorkingHoursStart)
	assert.Equal(t, 45, got.SlotDurationMinutes)
}

func TestService_Update_AdminOnly(t *testing.T) {
	svc := newService(t)

	_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:            userID,
		WorkingHoursStart: ptr.Ptr("07:00"),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_Update_RejectsMalformedTime(t *testing.T) {
	svc := newService(t)

	for _, raw := range []string{"7:00", "25:00", "09:60", "abc", ""} {
		_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
			UserID:            adminID,
			WorkingHoursStart: ptr.Ptr(raw),
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "value %q must be rejected", raw)
	}
}

func TestService_Update_RejectsOutOfRangeValues(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{
			name: "zero slot duration",
			req:  &models.UpdateConfigRequest{UserID: adminID, SlotDurationMinutes: ptr.Ptr(0)},
		},
		{
			name: "negative slot duration",
			req:  &models.UpdateConfigRequest{UserID: adminID, SlotDurationMinutes: ptr.Ptr(-30)},
		},
		{
			name: "slot longer than a working day",
			req:  &models.UpdateConfigRequest{UserID: adminID, SlotDurationMinutes: ptr.Ptr(481)},
		},
		{
			name: "negative advance days",
			req:  &models.UpdateConfigRequest{UserID: adminID, MaxAdvanceDays: ptr.Ptr(-1)},
		},
		{
			name: "advance days over a year",
			req:  &models.UpdateConfigRequest{UserID: adminID, MaxAdvanceDays: ptr.Ptr(366)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	// Отклоненные значения не должны были перезаписать конфигурацию
	cfg, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.SlotDurationMinutes)
	assert.Equal(t, 30, cfg.MaxAdvanceDays)
}

func TestService_Update_AllowsDegenerateWindow(t *testing.T) {
	svc := newService(t)

	// start >= end закрывает запись: движок слотов вернет пустой список
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:            adminID,
		WorkingHoursStart: ptr.Ptr("17:00"),
		WorkingHoursEnd:   ptr.Ptr("09:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "17:00", resp.WorkingHoursStart)
	assert.Equal(t, "09:00", resp.WorkingHoursEnd)
}
