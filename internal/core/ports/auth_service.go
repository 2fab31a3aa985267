package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Authenticate resolves a session id to its user id or fails with domain.ErrUnauthorized.
	Authenticate(ctx context.Context, sessionID string) (string, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
