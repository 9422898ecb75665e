package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/internal/infra/storage/kv"
	"github.com/careconnect/booking-service/pkg/types"
)

// configKey ключ конфигурации расписания в key-value хранилище
const configKey = "schedule_config"

// Repository хранит единственную конфигурацию расписания как JSON документ.
// Пока администратор ничего не сохранил, Get возвращает дефолты - отдельной
// операции "создать конфигурацию" нет.
type Repository struct {
	store    kv.Store
	defaults domain.ScheduleConfig
}

// NewRepository создает репозиторий конфигурации с дефолтными значениями
func NewRepository(store kv.Store, defaults domain.ScheduleConfig) *Repository {
	return &Repository{store: store, defaults: defaults}
}

// storedConfig персистентное представление конфигурации
type storedConfig struct {
	WorkingHoursStart   string `json:"workingHoursStart"` // HH:MM
	WorkingHoursEnd     string `json:"workingHoursEnd"`   // HH:MM
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	MaxAdvanceDays      int    `json:"maxAdvanceDays"`
	NotificationAddress string `json:"notificationAddress"`
}

// Get возвращает текущую конфигурацию, либо дефолты, если она не сохранялась
func (r *Repository) Get(ctx context.Context) (*domain.ScheduleConfig, error) {
	raw, err := r.store.Get(ctx, configKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		cfg := r.defaults
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrStorage, err)
	}

	var stored storedConfig
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("%w: Get - %v", ErrDecode, err)
	}

	return &domain.ScheduleConfig{
		WorkingHoursStart:   types.TimeString(stored.WorkingHoursStart),
		WorkingHoursEnd:     types.TimeString(stored.WorkingHoursEnd),
		SlotDurationMinutes: stored.SlotDurationMinutes,
		MaxAdvanceDays:      stored.MaxAdvanceDays,
		NotificationAddress: stored.NotificationAddress,
	}, nil
}

// Set целиком перезаписывает конфигурацию. Слияние частичных обновлений -
// забота вызывающей стороны.
func (r *Repository) Set(ctx context.Context, cfg *domain.ScheduleConfig) error {
	stored := storedConfig{
		WorkingHoursStart:   cfg.WorkingHoursStart.String(),
		WorkingHoursEnd:     cfg.WorkingHoursEnd.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		MaxAdvanceDays:      cfg.MaxAdvanceDays,
		NotificationAddress: cfg.NotificationAddress,
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: Set - %v", ErrEncode, err)
	}

	if err := r.store.Set(ctx, configKey, raw); err != nil {
		return fmt.Errorf("%w: Set - %v", ErrStorage, err)
	}
	return nil
}
