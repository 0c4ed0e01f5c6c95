package notifications

import (
	"context"
	"log/slog"

	"dispatch/internal/core/ports"
)

// Sender delivers a single notification to its recipient.
type Sender interface {
	Send(ctx context.Context, notification ports.Notification) error
}

// LogSender writes notifications to the structured log instead of sending
// them anywhere. Stands in for a real mail gateway in development and tests.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a Sender that logs every notification.
func NewLogSender(logger *slog.Logger) LogSender {
	return LogSender{
		logger: logger.With("component", "log_sender"),
	}
}

// Send logs the notification at info level.
func (s LogSender) Send(ctx context.Context, notification ports.Notification) error {
	s.logger.InfoContext(ctx, "Notification delivered",
		"recipient_id", notification.RecipientID.String(),
		"subject", notification.Subject,
		"body", notification.Body,
	)
	return nil
}
