package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// notifiedTTL bounds how long the at-most-once marker is kept. A re-approval
// past this window would notify subscribers again; in practice approvals of
// the same article happen within minutes of each other.
const notifiedTTL = 30 * 24 * time.Hour

// NotificationDedup guards subscriber notifications so that an article mails
// its readers at most once, even when it is approved repeatedly.
// Key format: notified:article:<id>
type NotificationDedup struct {
	client *redis.Client
}

// NewNotificationDedup creates a NotificationDedup wrapping the given Redis client.
func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// AlreadyNotified reports whether subscribers were already notified for this article.
func (d *NotificationDedup) AlreadyNotified(ctx context.Context, articleID int64) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(articleID)).Result()
	if err != nil {
		return false, fmt.Errorf("notification dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkNotified records that subscribers were notified (expires after notifiedTTL).
func (d *NotificationDedup) MarkNotified(ctx context.Context, articleID int64) error {
	return d.client.Set(ctx, d.key(articleID), "1", notifiedTTL).Err()
}

func (d *NotificationDedup) key(articleID int64) string {
	return fmt.Sprintf("notified:article:%d", articleID)
}
