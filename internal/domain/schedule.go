package domain

import "github.com/careconnect/booking-service/pkg/types"

// ScheduleConfig represents the administrator-controlled parameters that
// govern slot generation and the booking horizon. There is a single
// configuration for the whole facility; updates overwrite the previous
// value wholesale, no history is kept.
type ScheduleConfig struct {
	WorkingHoursStart   types.TimeString
	WorkingHoursEnd     types.TimeString
	SlotDurationMinutes int
	MaxAdvanceDays      int
	NotificationAddress string // destination for admin notifications
}

// IsDegenerate reports whether the configuration cannot produce any slots.
// A degenerate configuration is a caller error, not a failure: an
// administrator may transiently save an invalid value, and slot generation
// must degrade to an empty list.
func (c *ScheduleConfig) IsDegenerate() bool {
	if c.SlotDurationMinutes <= 0 {
		return true
	}
	if c.WorkingHoursStart.Validate() != nil || c.WorkingHoursEnd.Validate() != nil {
		return true
	}
	return !c.WorkingHoursStart.IsBefore(c.WorkingHoursEnd)
}
