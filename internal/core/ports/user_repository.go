package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

// UserRepository is the credential store.
type UserRepository interface {
	// Create persists a new user and returns it with its assigned ID.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByUsername returns domain.ErrUserNotFound when absent.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// FindByID returns domain.ErrUserNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users that exist among ids; unknown ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
}
