package ports

import (
	"context"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

// CreateArticleInput carries the data needed to author a new article.
type CreateArticleInput struct {
	Title       string
	Content     string
	PublisherID *int64 // optional: the article may be unaffiliated
	AuthorID    int64
}

// FeedInput identifies the caller of the personalized feed. Role is used to
// enforce that only readers may query it.
type FeedInput struct {
	Role     string
	ReaderID int64
}

// ArticleService defines the content workflow use cases.
type ArticleService interface {
	// Create validates the author's role before persisting anything.
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)

	// Approve transitions the article to approved, stamped with the acting
	// editor and the current time, and triggers the best-effort subscriber
	// notification. Notification failures never surface to the caller.
	Approve(ctx context.Context, articleID, editorID int64) (*domain.Article, error)

	// Feed returns the reader's subscription-filtered approved articles.
	// Returns domain.ErrForbidden for any non-reader role.
	Feed(ctx context.Context, input FeedInput) ([]ArticleView, error)

	// ListApproved is the public wall: all approved articles, newest first.
	ListApproved(ctx context.Context) ([]ArticleView, error)

	// ListPending is the editor review queue: unapproved articles, newest first.
	ListPending(ctx context.Context) ([]ArticleView, error)
}
