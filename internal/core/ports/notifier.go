package ports

import "context"

// Notification is a single outbound message fanned out to a set of
// subscriber email addresses when an article is approved.
type Notification struct {
	ArticleID  int64
	Subject    string
	Body       string
	Recipients []string
}

// Notifier delivers a notification. Implementations are best-effort; the
// caller treats any returned error as non-fatal.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// NotificationDispatcher decouples notification delivery from the approval
// write. Enqueue never blocks the approval transaction outcome.
type NotificationDispatcher interface {
	Enqueue(n Notification)
}
