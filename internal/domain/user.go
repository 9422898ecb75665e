package domain

// UserRole represents the role of a user in the system
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User is the user-service entity consumed by the booking lifecycle.
// The booking service never creates or mutates users; it reads profiles to
// denormalize requester data and to answer the admin capability check.
type User struct {
	ID    int64
	Email string
	Name  string
	Role  UserRole
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
