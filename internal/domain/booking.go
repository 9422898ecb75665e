package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a requested video-connection session between a family
// member and a cared-for person at a specific date and time slot.
type Booking struct {
	ID string // opaque unique id, generated at creation time

	// Requester data, denormalized at booking time. Not re-synced if the
	// user profile changes later.
	RequesterID    int64
	RequesterEmail string
	RequesterName  string

	// Subject of the connection
	SubjectName string
	Location    string

	Date     time.Time // calendar date, time component is ignored
	TimeSlot string    // slot label, e.g. "8:00 AM"; sole identity of a time of day

	Notes  *string
	Status BookingStatus

	CreatedAt time.Time
}

// BlocksSlot reports whether this booking occupies its (date, time) slot.
// Cancelled bookings free their slot for reuse.
func (b *Booking) BlocksSlot() bool {
	return b.Status != StatusCancelled
}

// IsDecided reports whether an administrator has already confirmed or
// cancelled the booking. Decided bookings accept no further status
// transitions; deletion stays possible in any status.
func (b *Booking) IsDecided() bool {
	return b.Status == StatusConfirmed || b.Status == StatusCancelled
}

// OnDate reports whether the booking falls on the given calendar date.
func (b *Booking) OnDate(date time.Time) bool {
	y1, m1, d1 := b.Date.Date()
	y2, m2, d2 := date.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
