package notifications

import "context"

// EventKind вид события жизненного цикла бронирования
type EventKind string

const (
	// KindAdminNotify новое бронирование, письмо администратору
	KindAdminNotify EventKind = "admin-notify"

	// KindUserConfirm новое бронирование, подтверждение заявителю
	KindUserConfirm EventKind = "user-confirm"

	// KindStatusUpdate смена статуса, письмо заявителю
	KindStatusUpdate EventKind = "status-update"
)

// Message то, что уходит во внешний email-коллаборатор. Сервис не зависит
// от гарантий доставки и не читает подтверждения.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"htmlBody"`
	TextBody string `json:"textBody"`
}

// Sink интерфейс внешнего отправителя писем
type Sink interface {
	Send(ctx context.Context, msg Message) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Recorder интерфейс для учета результатов отправки (метрики)
type Recorder interface {
	RecordNotification(kind, result string)
}
