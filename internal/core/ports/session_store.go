package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

// SessionStore holds live sessions. Expired sessions are treated as absent.
type SessionStore interface {
	Save(ctx context.Context, s *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id string) error
}
