package domain

// Slot represents a discrete bookable time-of-day label on a given date,
// together with its availability against the current booking set.
type Slot struct {
	Label     string // e.g. "8:00 AM"
	Available bool
}
