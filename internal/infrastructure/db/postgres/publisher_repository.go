package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

type PublisherRepository struct {
	db *sql.DB
}

func NewPublisherRepository(db *sql.DB) *PublisherRepository {
	return &PublisherRepository{db: db}
}

func (r *PublisherRepository) Create(ctx context.Context, p *domain.Publisher) (*domain.Publisher, error) {
	const query = `
INSERT INTO publishers (name)
VALUES ($1)
RETURNING id, created_at`

	created := *p
	err := r.db.QueryRowContext(ctx, query, p.Name).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrPublisherExists
		}
		return nil, fmt.Errorf("publisher create: %w", err)
	}
	return &created, nil
}

func (r *PublisherRepository) Get(ctx context.Context, id int64) (*domain.Publisher, error) {
	const query = `SELECT id, name, created_at FROM publishers WHERE id = $1`

	var p domain.Publisher
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPublisherNotFound
		}
		return nil, fmt.Errorf("publisher get: %w", err)
	}
	return &p, nil
}

func (r *PublisherRepository) List(ctx context.Context) ([]*domain.Publisher, error) {
	const query = `SELECT id, name, created_at FROM publishers ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("publisher list: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var publishers []*domain.Publisher
	for rows.Next() {
		var p domain.Publisher
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("publisher list: scan: %w", err)
		}
		publishers = append(publishers, &p)
	}
	return publishers, rows.Err()
}

// AddEditor attaches a user to the publisher's editor set. Duplicate
// assignments are ignored.
func (r *PublisherRepository) AddEditor(ctx context.Context, publisherID, userID int64) error {
	const query = `
INSERT INTO publisher_editors (publisher_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, publisherID, userID); err != nil {
		return fmt.Errorf("publisher add editor: %w", err)
	}
	return nil
}

// AddJournalist attaches a user to the publisher's journalist set. Duplicate
// assignments are ignored.
func (r *PublisherRepository) AddJournalist(ctx context.Context, publisherID, userID int64) error {
	const query = `
INSERT INTO publisher_journalists (publisher_id, user_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, publisherID, userID); err != nil {
		return fmt.Errorf("publisher add journalist: %w", err)
	}
	return nil
}
