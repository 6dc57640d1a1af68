package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

type subscriptionService struct {
	subs       ports.SubscriptionRepository
	users      ports.UserRepository
	publishers ports.PublisherRepository
	log        zerolog.Logger
}

// NewSubscriptionService returns a SubscriptionService implementation.
func NewSubscriptionService(
	subs ports.SubscriptionRepository,
	users ports.UserRepository,
	publishers ports.PublisherRepository,
	log zerolog.Logger,
) ports.SubscriptionService {
	return &subscriptionService{subs: subs, users: users, publishers: publishers, log: log}
}

func (s *subscriptionService) SubscribePublisher(ctx context.Context, readerID, publisherID int64) error {
	if _, err := s.publishers.Get(ctx, publisherID); err != nil {
		return err
	}
	if err := s.subs.SubscribePublisher(ctx, readerID, publisherID); err != nil {
		return err
	}
	s.log.Info().Int64("reader_id", readerID).Int64("publisher_id", publisherID).Msg("publisher subscription added")
	return nil
}

func (s *subscriptionService) UnsubscribePublisher(ctx context.Context, readerID, publisherID int64) error {
	return s.subs.UnsubscribePublisher(ctx, readerID, publisherID)
}

// SubscribeJournalist validates the target: the subscribed-to user must hold
// the journalist role. Subscribing to a reader or editor is a validation
// error, not a silent accept.
func (s *subscriptionService) SubscribeJournalist(ctx context.Context, readerID, journalistID int64) error {
	target, err := s.users.FindByID(ctx, journalistID)
	if err != nil {
		return err
	}
	if target.Role != domain.RoleJournalist {
		return fmt.Errorf("%w: can only subscribe to journalists", domain.ErrValidation)
	}
	if err := s.subs.SubscribeJournalist(ctx, readerID, journalistID); err != nil {
		return err
	}
	s.log.Info().Int64("reader_id", readerID).Int64("journalist_id", journalistID).Msg("journalist subscription added")
	return nil
}

func (s *subscriptionService) UnsubscribeJournalist(ctx context.Context, readerID, journalistID int64) error {
	return s.subs.UnsubscribeJournalist(ctx, readerID, journalistID)
}
