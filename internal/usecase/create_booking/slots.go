package create_booking

import (
	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/pkg/types"
)

// generateSlots генерирует метки слотов по конфигурации расписания.
// Логика совпадает с get_available_slots: слот попадает в список, пока его
// начало строго раньше конца рабочих часов; вырожденная конфигурация дает
// пустой список.
func generateSlots(cfg *domain.ScheduleConfig) []string {
	if cfg.SlotDurationMinutes <= 0 {
		return []string{}
	}

	start, err := cfg.WorkingHoursStart.Minutes()
	if err != nil {
		return []string{}
	}
	end, err := cfg.WorkingHoursEnd.Minutes()
	if err != nil {
		return []string{}
	}
	if start >= end {
		return []string{}
	}

	labels := make([]string, 0, (end-start)/cfg.SlotDurationMinutes+1)
	for m := start; m < end; m += cfg.SlotDurationMinutes {
		labels = append(labels, minutesToLabel(m))
	}
	return labels
}

// minutesToLabel рендерит минуты с полуночи в 12-часовую метку ("7:05 AM").
// Вызывается только для значений внутри рабочих часов, ошибки невозможны.
func minutesToLabel(minutes int) string {
	ts, err := types.NewTimeStringFromMinutes(minutes)
	if err != nil {
		return ""
	}
	label, err := ts.Label12Hour()
	if err != nil {
		return ""
	}
	return label
}
