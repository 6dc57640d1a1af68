package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pressroom/newsroom-api/internal/core/domain"
	pg "github.com/pressroom/newsroom-api/internal/infrastructure/db/postgres"
)

func userRow(u *domain.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "username", "email", "password_hash", "role", "created_at", "updated_at",
	}).AddRow(u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt, u.UpdatedAt)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now().UTC()
	want := &domain.User{
		ID: 30, Username: "rita", Email: "rita@example.com",
		PasswordHash: "hash", Role: domain.RoleReader, CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery("FROM users").
		WithArgs("rita").
		WillReturnRows(userRow(want))

	repo := pg.NewUserRepository(db)
	got, err := repo.FindByUsername(context.Background(), "rita")
	if err != nil {
		t.Fatalf("FindByUsername err=%v", err)
	}
	if got.ID != want.ID || got.Role != want.Role || got.Email != want.Email {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "username", "email", "password_hash", "role", "created_at", "updated_at",
		}))

	repo := pg.NewUserRepository(db)
	if _, err := repo.FindByID(context.Background(), 99); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	repo := pg.NewUserRepository(db)
	_, err := repo.Create(context.Background(), &domain.User{Username: "rita", Role: domain.RoleReader})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}
