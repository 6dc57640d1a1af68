package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

type SubscriptionRepository struct {
	db *sql.DB
}

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) SubscribePublisher(ctx context.Context, readerID, publisherID int64) error {
	const query = `
INSERT INTO publisher_subscriptions (reader_id, publisher_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, readerID, publisherID); err != nil {
		return fmt.Errorf("subscribe publisher: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) UnsubscribePublisher(ctx context.Context, readerID, publisherID int64) error {
	const query = `DELETE FROM publisher_subscriptions WHERE reader_id = $1 AND publisher_id = $2`
	if _, err := r.db.ExecContext(ctx, query, readerID, publisherID); err != nil {
		return fmt.Errorf("unsubscribe publisher: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) SubscribeJournalist(ctx context.Context, readerID, journalistID int64) error {
	const query = `
INSERT INTO journalist_subscriptions (reader_id, journalist_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, readerID, journalistID); err != nil {
		return fmt.Errorf("subscribe journalist: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) UnsubscribeJournalist(ctx context.Context, readerID, journalistID int64) error {
	const query = `DELETE FROM journalist_subscriptions WHERE reader_id = $1 AND journalist_id = $2`
	if _, err := r.db.ExecContext(ctx, query, readerID, journalistID); err != nil {
		return fmt.Errorf("unsubscribe journalist: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) SubscribedPublisherIDs(ctx context.Context, readerID int64) ([]int64, error) {
	const query = `SELECT publisher_id FROM publisher_subscriptions WHERE reader_id = $1`
	return r.listIDs(ctx, query, readerID)
}

func (r *SubscriptionRepository) SubscribedJournalistIDs(ctx context.Context, readerID int64) ([]int64, error) {
	const query = `SELECT journalist_id FROM journalist_subscriptions WHERE reader_id = $1`
	return r.listIDs(ctx, query, readerID)
}

// SubscriberEmails resolves the notification recipient set: readers
// subscribed to the publisher unioned with readers subscribed to the
// journalist. UNION deduplicates; readers without an email are skipped.
func (r *SubscriptionRepository) SubscriberEmails(ctx context.Context, publisherID *int64, journalistID int64) ([]string, error) {
	const query = `
SELECT u.email
FROM users u
JOIN publisher_subscriptions ps ON ps.reader_id = u.id
WHERE ps.publisher_id = $1 AND u.email <> ''
UNION
SELECT u.email
FROM users u
JOIN journalist_subscriptions js ON js.reader_id = u.id
WHERE js.journalist_id = $2 AND u.email <> ''`

	// A NULL publisher matches no subscription rows, leaving only the
	// journalist half of the union.
	rows, err := r.db.QueryContext(ctx, query, publisherID, journalistID)
	if err != nil {
		return nil, fmt.Errorf("subscriber emails: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("subscriber emails: scan: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *SubscriptionRepository) listIDs(ctx context.Context, query string, arg int64) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("subscription ids: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("subscription ids: scan: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
