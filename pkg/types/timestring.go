package types

import (
	"errors"
	"fmt"
	"time"
)

// TimeString is a wall-clock time of day in canonical "HH:MM" (24-hour) form.
// It carries no date and no timezone; the facility operates in a single
// implicit timezone.
type TimeString string

var (
	// ErrInvalidFormat is returned when a string is not a valid HH:MM time
	ErrInvalidFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrOutOfRange is returned when arithmetic crosses a day boundary
	ErrOutOfRange = errors.New("time is out of the 00:00-23:59 range")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses s and returns it in canonical form.
func NewTimeStringFromString(s string) (TimeString, error) {
	h, m, err := parseHHMM(s)
	if err != nil {
		return "", err
	}
	return TimeString(fmt.Sprintf("%02d:%02d", h, m)), nil
}

// NewTimeStringFromMinutes converts minutes since midnight to a TimeString.
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= 24*60 {
		return "", ErrOutOfRange
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate reports whether the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	_, _, err := parseHHMM(string(t))
	return err
}

// IsZero reports whether the value is unset.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Minutes returns the number of minutes since midnight.
// Returns an error for malformed values.
func (t TimeString) Minutes() (int, error) {
	h, m, err := parseHHMM(string(t))
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight is an error: working hours never wrap a day.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	cur, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(cur + minutes)
}

// IsBefore reports whether t is strictly earlier than other.
// Malformed values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// Label12Hour renders the time in 12-hour clock form with an AM/PM suffix,
// e.g. "7:00 AM", "12:30 PM". This is the form slot labels are published in;
// the label is the sole identity of a time of day for bookings.
func (t TimeString) Label12Hour() (string, error) {
	h, m, err := parseHHMM(string(t))
	if err != nil {
		return "", err
	}

	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}

	hour12 := h % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, m, suffix), nil
}

func parseHHMM(s string) (hour, minute int, err error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrInvalidFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, ErrInvalidFormat
		}
	}

	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')

	if hour > 23 || minute > 59 {
		return 0, 0, ErrInvalidFormat
	}
	return hour, minute, nil
}
