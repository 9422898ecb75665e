package domain

import "github.com/careconnect/booking-service/pkg/types"

// Default schedule configuration, used until an administrator saves one
const (
	DefaultWorkingHoursStart   types.TimeString = "09:00"
	DefaultWorkingHoursEnd     types.TimeString = "17:00"
	DefaultSlotDurationMinutes                  = 30
	DefaultMaxAdvanceDays                       = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours
	MinMaxAdvanceDays      = 0
	MaxMaxAdvanceDays      = 365 // 1 year
	MaxNotesLength         = 500
	MaxSubjectNameLength   = 200
	MaxLocationLength      = 500
)

// DateFormat is the wire format for calendar dates (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DecidedStatuses статусы, которые администратор может выставить
// бронированию в статусе pending
var DecidedStatuses = []BookingStatus{
	StatusConfirmed,
	StatusCancelled,
}
