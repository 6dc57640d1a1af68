package ports

import (
	"context"

	"github.com/pressroom/newsroom-api/internal/core/domain"
)

// AuthService implements account registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password, email, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
