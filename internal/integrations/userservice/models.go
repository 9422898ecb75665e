package userservice

import "github.com/careconnect/booking-service/internal/domain"

// User модель пользователя из UserService
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // "user" | "admin"
}

// ToDomain конвертирует ответ сервиса в domain модель
func (u *User) ToDomain() *domain.User {
	return &domain.User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  domain.UserRole(u.Role),
	}
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
