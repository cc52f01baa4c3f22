package notification

import (
	"context"
	"log/slog"

	deliverycontext "bdgaraj/internal/delivery/context"
)

// logSender writes the message to the log instead of delivering it.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Name() string { return "log" }

func (s *logSender) Send(ctx context.Context, msg *Message) error {
	deliverycontext.LoggerOrDefault(ctx, s.logger).Info("[MOCK WhatsApp] Message to operator",
		slog.String("to", msg.Channel),
		slog.String("body", msg.Body),
	)

	return nil
}
