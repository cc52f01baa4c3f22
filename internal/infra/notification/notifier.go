// Package notification tells the operator about new appointments over a
// configurable channel. Delivery is a single best-effort attempt.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "bdgaraj/internal/delivery/context"
	"bdgaraj/internal/domain/entity"
	"bdgaraj/internal/domain/service"
)

// Message is what a sender delivers to the operator channel.
type Message struct {
	Channel       string `json:"to"`
	Body          string `json:"body"`
	AppointmentID string `json:"appointment_id"`
	RequestID     string `json:"request_id,omitempty"`
}

// sender performs one delivery attempt.
type sender interface {
	Send(ctx context.Context, msg *Message) error
	Name() string
}

type notifier struct {
	sender  sender
	channel string
	timeout time.Duration
	logger  *slog.Logger
}

func newNotifier(s sender, channel string, timeout time.Duration, logger *slog.Logger) service.Notifier {
	return &notifier{
		sender:  s,
		channel: channel,
		timeout: timeout,
		logger:  logger,
	}
}

// Notify formats the appointment and delivers it once. Failures are logged and
// reported as false.
func (n *notifier) Notify(ctx context.Context, appointment *entity.Appointment) bool {
	logger := deliverycontext.LoggerOrDefault(ctx, n.logger).With(
		slog.String("provider", n.sender.Name()),
		slog.String("appointment_id", appointment.ID),
	)

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	msg := &Message{
		Channel:       n.channel,
		Body:          FormatAppointmentMessage(appointment),
		AppointmentID: appointment.ID,
		RequestID:     deliverycontext.RequestIDFromContext(ctx),
	}

	if err := n.sender.Send(ctx, msg); err != nil {
		logger.Error("Appointment notification failed", slog.Any("error", err))

		return false
	}

	logger.Info("Appointment notification sent", slog.String("channel", n.channel))

	return true
}

// FormatAppointmentMessage renders the operator message for a new appointment.
func FormatAppointmentMessage(a *entity.Appointment) string {
	notes := strings.TrimSpace(a.Notes)
	if notes == "" {
		notes = "Yok"
	}

	var b strings.Builder
	b.WriteString("🏍️ YENİ RANDEVU!\n\n")
	fmt.Fprintf(&b, "👤 Müşteri: %s\n", a.CustomerName)
	fmt.Fprintf(&b, "📞 Telefon: %s\n", a.Phone)
	fmt.Fprintf(&b, "📧 E-posta: %s\n", a.Email)
	fmt.Fprintf(&b, "🔧 Hizmet: %s\n", a.Service)
	fmt.Fprintf(&b, "📅 Tarih: %s\n", a.Date)
	fmt.Fprintf(&b, "🕐 Saat: %s\n", a.Time)
	fmt.Fprintf(&b, "📝 Not: %s\n\n", notes)
	fmt.Fprintf(&b, "Randevu ID: %s", a.ID)

	return b.String()
}
