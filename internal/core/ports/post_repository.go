package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

// PostRepository persists posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	// List returns all posts newest first.
	List(ctx context.Context) ([]*domain.Post, error)
}
