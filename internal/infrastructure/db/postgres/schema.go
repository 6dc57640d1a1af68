package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Bootstrap creates the schema if it does not exist yet. It is idempotent and
// runs once at startup, decoupled from request handling: every statement uses
// IF NOT EXISTS so redeploys are safe no-ops.
//
// Referential behavior encodes the content lifecycle:
//   - deleting a journalist cascades to their articles
//   - deleting a publisher detaches its articles (publisher_id set to NULL)
//   - deleting either side of a subscription removes the edge
func Bootstrap(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            BIGSERIAL PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			email         TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			role          TEXT NOT NULL CHECK (role IN ('reader', 'editor', 'journalist')),
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS publishers (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS publisher_editors (
			publisher_id BIGINT NOT NULL REFERENCES publishers(id) ON DELETE CASCADE,
			user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (publisher_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS publisher_journalists (
			publisher_id BIGINT NOT NULL REFERENCES publishers(id) ON DELETE CASCADE,
			user_id      BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (publisher_id, user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS publisher_subscriptions (
			reader_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			publisher_id BIGINT NOT NULL REFERENCES publishers(id) ON DELETE CASCADE,
			PRIMARY KEY (reader_id, publisher_id)
		)`,
		`CREATE TABLE IF NOT EXISTS journalist_subscriptions (
			reader_id     BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			journalist_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			PRIMARY KEY (reader_id, journalist_id)
		)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id            BIGSERIAL PRIMARY KEY,
			title         TEXT NOT NULL,
			content       TEXT NOT NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			journalist_id BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			publisher_id  BIGINT REFERENCES publishers(id) ON DELETE SET NULL,
			approved      BOOLEAN NOT NULL DEFAULT false,
			approved_by   BIGINT REFERENCES users(id) ON DELETE SET NULL,
			approved_at   TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_approved_created ON articles (approved, created_at DESC, id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_publisher ON articles (publisher_id)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_journalist ON articles (journalist_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
