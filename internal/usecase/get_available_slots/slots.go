package get_available_slots

import (
	"time"

	"github.com/careconnect/booking-service/internal/domain"
	"github.com/careconnect/booking-service/pkg/types"
)

// generateSlots генерирует упорядоченный список меток слотов на день.
// Слоты идут от начала рабочих часов с шагом slotDuration; слот попадает в
// список, пока его НАЧАЛО строго раньше конца рабочих часов - влезает ли
// конец слота в рабочие часы, не проверяется. Метки рендерятся в 12-часовом
// формате ("7:00 AM").
//
// Функция чистая и детерминированная: одни и те же входные данные всегда
// дают одну и ту же последовательность. Вырожденная конфигурация
// (start >= end, duration <= 0, некорректное время) дает пустой список,
// а не ошибку - администратор мог транзиентно сохранить невалидное значение.
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

// isDateSelectable проверяет, что дата входит в окно бронирования:
// today <= date <= today + maxAdvanceDays. Сравниваются только даты,
// время обнуляется.
func isDateSelectable(date, now time.Time, maxAdvanceDays int) bool {
	dateOnly := truncateToDay(date)
	today := truncateToDay(now)
	maxDate := today.AddDate(0, 0, maxAdvanceDays)

	return !dateOnly.Before(today) && !dateOnly.After(maxDate)
}

// isSlotAvailable проверяет, что слот (date, label) не занят: в наборе нет
// неотмененного бронирования с таким же (date, label). Отмененные
// бронирования слот не блокируют.
func isSlotAvailable(date time.Time, label string, bookings []*domain.Booking) bool {
	for _, b := range bookings {
		if b.BlocksSlot() && b.OnDate(date) && b.TimeSlot == label {
			return false
		}
	}
	return true
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

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return truncateToDay(date).Before(truncateToDay(now))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
