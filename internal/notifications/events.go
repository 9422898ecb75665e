package notifications

import (
	"fmt"
	"html"

	"github.com/careconnect/booking-service/internal/domain"
)

// buildAdminNotify собирает письмо администратору о новом бронировании
func buildAdminNotify(b *domain.Booking, adminAddress string) Message {
	subject := fmt.Sprintf("New connection request: %s on %s at %s",
		b.SubjectName, b.Date.Format(domain.DateFormat), b.TimeSlot)

	text := fmt.Sprintf(
		"A new video connection has been requested.\n\n"+
			"Requested by: %s <%s>\n"+
			"For: %s\n"+
			"Location: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Notes: %s\n\n"+
			"Booking ID: %s\n",
		b.RequesterName, b.RequesterEmail,
		b.SubjectName, b.Location,
		b.Date.Format(domain.DateFormat), b.TimeSlot,
		notesOrDash(b.Notes), b.ID,
	)

	return Message{
		To:       adminAddress,
		Subject:  subject,
		HTMLBody: toHTML(text),
		TextBody: text,
	}
}

// buildUserConfirm собирает подтверждение заявителю
func buildUserConfirm(b *domain.Booking) Message {
	subject := fmt.Sprintf("We received your connection request for %s", b.Date.Format(domain.DateFormat))

	text := fmt.Sprintf(
		"Hi %s,\n\n"+
			"We received your request to connect with %s on %s at %s.\n"+
			"The request is pending review; you will get another email once it is confirmed.\n\n"+
			"Booking ID: %s\n",
		b.RequesterName, b.SubjectName,
		b.Date.Format(domain.DateFormat), b.TimeSlot, b.ID,
	)

	return Message{
		To:       b.RequesterEmail,
		Subject:  subject,
		HTMLBody: toHTML(text),
		TextBody: text,
	}
}

// buildStatusUpdate собирает письмо заявителю о смене статуса
func buildStatusUpdate(b *domain.Booking) Message {
	subject := fmt.Sprintf("Your connection request for %s is %s",
		b.Date.Format(domain.DateFormat), b.Status)

	text := fmt.Sprintf(
		"Hi %s,\n\n"+
			"Your request to connect with %s on %s at %s is now %s.\n\n"+
			"Booking ID: %s\n",
		b.RequesterName, b.SubjectName,
		b.Date.Format(domain.DateFormat), b.TimeSlot, b.Status, b.ID,
	)

	return Message{
		To:       b.RequesterEmail,
		Subject:  subject,
		HTMLBody: toHTML(text),
		TextBody: text,
	}
}

func notesOrDash(notes *string) string {
	if notes == nil || *notes == "" {
		return "-"
	}
	return *notes
}

// toHTML оборачивает plain text в минимальный HTML. Настоящие шаблоны
// писем живут во внешнем отправителе.
func toHTML(text string) string {
	return "<html><body><pre>" + html.EscapeString(text) + "</pre></body></html>"
}
