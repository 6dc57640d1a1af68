package ports

import "context"

// SubscriptionRepository manages the reader-owned subscription edges and the
// reverse lookups needed for notification fan-out.
type SubscriptionRepository interface {
	// Subscribe/Unsubscribe pairs are idempotent: subscribing twice or
	// removing a missing edge is not an error.
	SubscribePublisher(ctx context.Context, readerID, publisherID int64) error
	UnsubscribePublisher(ctx context.Context, readerID, publisherID int64) error
	SubscribeJournalist(ctx context.Context, readerID, journalistID int64) error
	UnsubscribeJournalist(ctx context.Context, readerID, journalistID int64) error

	SubscribedPublisherIDs(ctx context.Context, readerID int64) ([]int64, error)
	SubscribedJournalistIDs(ctx context.Context, readerID int64) ([]int64, error)

	// SubscriberEmails returns the distinct, non-empty email addresses of
	// readers subscribed to the given publisher (when non-nil) or to the
	// given journalist.
	SubscriberEmails(ctx context.Context, publisherID *int64, journalistID int64) ([]string, error)
}
