package ports

import (
	"context"
	"time"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

// ArticleView is the read projection used by every listing: the article plus
// the display names resolved from its relations. Publisher is nil for
// unaffiliated articles.
type ArticleView struct {
	ID         int64
	Title      string
	Content    string
	CreatedAt  time.Time
	Approved   bool
	Publisher  *string
	Journalist string
}

// ArticleRepository defines persistence operations for articles.
//
// All listings order by created_at descending with id ascending as the
// tie-break, so articles created in the same instant keep insertion order.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Get(ctx context.Context, id int64) (*domain.Article, error)

	// Approve stamps approved, approved_by and approved_at in a single
	// statement and returns the updated article. Returns
	// domain.ErrArticleNotFound when no row matches.
	Approve(ctx context.Context, id, editorID int64, at time.Time) (*domain.Article, error)

	// ListApproved returns all approved articles, newest first.
	ListApproved(ctx context.Context) ([]ArticleView, error)

	// ListPending returns all unapproved articles, newest first.
	ListPending(ctx context.Context) ([]ArticleView, error)

	// ListBySubscriptions returns approved articles whose publisher is in
	// publisherIDs or whose journalist is in journalistIDs. An empty slice
	// matches nothing for that clause.
	ListBySubscriptions(ctx context.Context, publisherIDs, journalistIDs []int64) ([]ArticleView, error)
}
