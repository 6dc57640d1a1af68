package ports

import (
	"context"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

// PublisherService covers publisher administration: creation, listing, and
// staff assignment. Staff users are attached to the editors or journalists
// set according to their role.
type PublisherService interface {
	Create(ctx context.Context, name string) (*domain.Publisher, error)
	List(ctx context.Context) ([]*domain.Publisher, error)
	AddStaff(ctx context.Context, publisherID, userID int64) error
}
