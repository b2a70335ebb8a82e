package drafts

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dmukh/SPJ-VenueService/internal/domain"
)

// NoBookingsPlaceholder фиксированный текст, когда бронирований еще нет
// Возвращается вместо черновика, это не ошибка
const NoBookingsPlaceholder = "No recent bookings available. Please secure a slot to generate a template."

// Compose собирает черновик сообщения по последнему бронированию
//
// Чистая функция: вызывающий код обязан перегенерировать черновик после
// каждого изменения набора бронирований, push-уведомлений нет
func Compose(latest *domain.Reservation, style domain.DraftStyle, recipients []string) string {
	if latest == nil {
		return NoBookingsPlaceholder
	}

	if style == domain.DraftStyleChat {
		return composeChat(latest)
	}
	return composeEmail(latest, recipients)
}

// composeEmail формальный черновик письма для административной команды
func composeEmail(res *domain.Reservation, recipients []string) string {
	subject := fmt.Sprintf("Venue Reservation Request - %s", res.Venue)
	if res.EventType != "" {
		subject = fmt.Sprintf("[%s] %s", res.EventType, subject)
	}

	return fmt.Sprintf(`Subject: %s

Dear Admin Team,

This message serves as a formal request to reserve %s for an upcoming event.

Reservation Details:
- Date: %s
- Time Slot: %s
- Requested By: %s

We kindly request you to review and approve this reservation at your earliest convenience.

Best regards,

%s
SPJIMR Bhavan's Campus

---
Recipients: %s
`, subject, res.Venue, res.Date, res.TimeSlot, res.RequestedBy, res.RequestedBy, strings.Join(recipients, ", "))
}

// composeChat одна неформальная строка для чата
func composeChat(res *domain.Reservation) string {
	return fmt.Sprintf("Hey everyone! %s is booked on %s (%s) - come join us!",
		res.Venue, res.Date, res.TimeSlot)
}

// GmailLink строит ссылку на окно написания письма в Gmail из черновика
// Для placeholder и черновиков без темы возвращает пустую строку
func GmailLink(draft string) string {
	if draft == "" || draft == NoBookingsPlaceholder {
		return ""
	}

	lines := strings.Split(draft, "\n")
	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Subject: ") {
		return ""
	}

	subject := strings.TrimSpace(strings.TrimPrefix(lines[0], "Subject: "))
	body := strings.TrimSpace(strings.Join(lines[1:], "\n"))

	params := url.Values{
		"view": {"cm"},
		"fs":   {"1"},
		"su":   {subject},
		"body": {body},
	}

	return "https://mail.google.com/mail/?" + params.Encode()
}
