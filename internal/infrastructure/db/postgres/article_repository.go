package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	"github.com/pressroom/newsroom-api/internal/core/ports"
)

// viewColumns are the projection columns shared by every listing query.
var viewColumns = []string{
	"a.id", "a.title", "a.content", "a.created_at", "a.approved",
	"p.name AS publisher_name", "j.username AS journalist_username",
}

type ArticleRepository struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new article row. The creation timestamp is assigned by the
// database and never updated afterwards.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	const query = `
INSERT INTO articles (title, content, journalist_id, publisher_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at, approved`

	created := *a
	err := r.db.QueryRowContext(ctx, query, a.Title, a.Content, a.JournalistID, a.PublisherID).
		Scan(&created.ID, &created.CreatedAt, &created.Approved)
	if err != nil {
		return nil, fmt.Errorf("article create: %w", err)
	}
	return &created, nil
}

func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	const query = `
SELECT id, title, content, created_at, journalist_id, publisher_id, approved, approved_by, approved_at
FROM articles
WHERE id = $1`

	var a domain.Article
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedAt,
		&a.JournalistID, &a.PublisherID, &a.Approved, &a.ApprovedBy, &a.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("article get: %w", err)
	}
	return &a, nil
}

// Approve stamps the three approval fields in one UPDATE. There is no guard
// on the current state: a second approval re-stamps the row (last writer
// wins).
func (r *ArticleRepository) Approve(ctx context.Context, id, editorID int64, at time.Time) (*domain.Article, error) {
	const query = `
UPDATE articles
SET approved = true, approved_by = $2, approved_at = $3
WHERE id = $1
RETURNING id, title, content, created_at, journalist_id, publisher_id, approved, approved_by, approved_at`

	var a domain.Article
	err := r.db.QueryRowContext(ctx, query, id, editorID, at).Scan(
		&a.ID, &a.Title, &a.Content, &a.CreatedAt,
		&a.JournalistID, &a.PublisherID, &a.Approved, &a.ApprovedBy, &a.ApprovedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("article approve: %w", err)
	}
	return &a, nil
}

func (r *ArticleRepository) ListApproved(ctx context.Context) ([]ports.ArticleView, error) {
	return r.listViews(ctx, r.viewQuery().Where(sq.Eq{"a.approved": true}))
}

func (r *ArticleRepository) ListPending(ctx context.Context) ([]ports.ArticleView, error) {
	return r.listViews(ctx, r.viewQuery().Where(sq.Eq{"a.approved": false}))
}

// ListBySubscriptions returns approved articles matching either subscription
// clause. squirrel renders an empty id slice as a FALSE predicate, so an
// empty subscription set matches nothing for that clause.
func (r *ArticleRepository) ListBySubscriptions(ctx context.Context, publisherIDs, journalistIDs []int64) ([]ports.ArticleView, error) {
	query := r.viewQuery().
		Where(sq.Eq{"a.approved": true}).
		Where(sq.Or{
			sq.Eq{"a.publisher_id": publisherIDs},
			sq.Eq{"a.journalist_id": journalistIDs},
		})
	return r.listViews(ctx, query)
}

// viewQuery is the shared SELECT for listing projections. Ordering is newest
// first with the article id breaking ties, so same-instant articles keep
// insertion order.
func (r *ArticleRepository) viewQuery() sq.SelectBuilder {
	return r.sb.Select(viewColumns...).
		From("articles a").
		LeftJoin("publishers p ON p.id = a.publisher_id").
		Join("users j ON j.id = a.journalist_id").
		OrderBy("a.created_at DESC", "a.id ASC")
}

func (r *ArticleRepository) listViews(ctx context.Context, query sq.SelectBuilder) ([]ports.ArticleView, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("article list: build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("article list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	views := make([]ports.ArticleView, 0, 32)
	for rows.Next() {
		var v ports.ArticleView
		var publisher sql.NullString
		if err := rows.Scan(&v.ID, &v.Title, &v.Content, &v.CreatedAt, &v.Approved, &publisher, &v.Journalist); err != nil {
			return nil, fmt.Errorf("article list: scan: %w", err)
		}
		if publisher.Valid {
			v.Publisher = &publisher.String
		}
		views = append(views, v)
	}
	return views, rows.Err()
}
