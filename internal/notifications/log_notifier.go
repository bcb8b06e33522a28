package notifications

import (
	"context"
	"log/slog"

	"portfolio/internal/observability"
)

// LogNotifier writes notifications to the structured log. It stands in for
// the Mailer when mail is disabled.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier returns a LogNotifier writing to logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyContact(ctx context.Context, c ContactNotification) error {
	n.logger.InfoContext(ctx, "contact notification",
		slog.String("from_name", c.FromName),
		slog.String("from_email", c.FromEmail),
		slog.String("subject", c.Subject),
		slog.Int("body_length", len(c.Body)),
	)
	observability.NotificationsSent.WithLabelValues("log", "sent").Inc()
	return nil
}
