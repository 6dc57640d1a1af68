package ports

import "context"

// SubscriptionService manages a reader's subscription edges. Callers are
// role-gated at the transport layer; targets are validated here (subscribing
// to a non-journalist user is a validation error).
type SubscriptionService interface {
	SubscribePublisher(ctx context.Context, readerID, publisherID int64) error
	UnsubscribePublisher(ctx context.Context, readerID, publisherID int64) error
	SubscribeJournalist(ctx context.Context, readerID, journalistID int64) error
	UnsubscribeJournalist(ctx context.Context, readerID, journalistID int64) error
}
