package models

import (
	"github.com/careconnect/booking-service/internal/domain"
)

// ConfigResponse конфигурация расписания в представлении API
type ConfigResponse struct {
	WorkingHoursStart   string `json:"workingHoursStart"` // HH:MM
	WorkingHoursEnd     string `json:"workingHoursEnd"`   // HH:MM
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
	MaxAdvanceDays      int    `json:"maxAdvanceDays"`
	NotificationAddress string `json:"notificationAddress"`
}

// UpdateConfigRequest частичное обновление конфигурации: nil поля
// не меняются
type UpdateConfigRequest struct {
	UserID              int64   `json:"-"`
	WorkingHoursStart   *string `json:"workingHoursStart,omitempty"`
	WorkingHoursEnd     *string `json:"workingHoursEnd,omitempty"`
	SlotDurationMinutes *int    `json:"slotDurationMinutes,omitempty"`
	MaxAdvanceDays      *int    `json:"maxAdvanceDays,omitempty"`
	NotificationAddress *string `json:"notificationAddress,omitempty"`
}

// FromDomainConfig конвертирует domain конфигурацию в ответ API
func FromDomainConfig(cfg *domain.ScheduleConfig) *ConfigResponse {
	return &ConfigResponse{
		WorkingHoursStart:   cfg.WorkingHoursStart.String(),
		WorkingHoursEnd:     cfg.WorkingHoursEnd.String(),
		SlotDurationMinutes: cfg.SlotDurationMinutes,
		MaxAdvanceDays:      cfg.MaxAdvanceDays,
		NotificationAddress: cfg.NotificationAddress,
	}
}
