package ports

import (
	"context"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

// PublisherRepository defines persistence for publishers and their staff sets.
type PublisherRepository interface {
	Create(ctx context.Context, p *domain.Publisher) (*domain.Publisher, error)
	Get(ctx context.Context, id int64) (*domain.Publisher, error)
	List(ctx context.Context) ([]*domain.Publisher, error)

	AddEditor(ctx context.Context, publisherID, userID int64) error
	AddJournalist(ctx context.Context, publisherID, userID int64) error
}
