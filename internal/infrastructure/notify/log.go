package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// LogNotifier writes notifications to the log instead of delivering them.
// Used in development when no SMTP relay is configured.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, notification ports.Notification) error {
	n.log.Info().
		Int64("article_id", notification.ArticleID).
		Str("subject", notification.Subject).
		Strs("recipients", notification.Recipients).
		Msg("notification (log delivery)")
	return nil
}
