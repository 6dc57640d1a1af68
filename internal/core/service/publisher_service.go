package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

type publisherService struct {
	publishers ports.PublisherRepository
	users      ports.UserRepository
	log        zerolog.Logger
}

// NewPublisherService returns a PublisherService implementation.
func NewPublisherService(publishers ports.PublisherRepository, users ports.UserRepository, log zerolog.Logger) ports.PublisherService {
	return &publisherService{publishers: publishers, users: users, log: log}
}

func (s *publisherService) Create(ctx context.Context, name string) (*domain.Publisher, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: publisher name is required", domain.ErrValidation)
	}
	created, err := s.publishers.Create(ctx, &domain.Publisher{Name: name})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("publisher_id", created.ID).Str("name", name).Msg("publisher created")
	return created, nil
}

func (s *publisherService) List(ctx context.Context) ([]*domain.Publisher, error) {
	return s.publishers.List(ctx)
}

// AddStaff attaches a user to the publisher's editors or journalists set
// according to the user's role. Readers cannot be publisher staff.
func (s *publisherService) AddStaff(ctx context.Context, publisherID, userID int64) error {
	if _, err := s.publishers.Get(ctx, publisherID); err != nil {
		return err
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	switch user.Role {
	case domain.RoleEditor:
		err = s.publishers.AddEditor(ctx, publisherID, userID)
	case domain.RoleJournalist:
		err = s.publishers.AddJournalist(ctx, publisherID, userID)
	default:
		return fmt.Errorf("%w: publisher staff must be editors or journalists", domain.ErrValidation)
	}
	if err != nil {
		return err
	}

	s.log.Info().
		Int64("publisher_id", publisherID).
		Int64("user_id", userID).
		Str("role", user.Role).
		Msg("publisher staff added")
	return nil
}
