package ports

import (
	"context"
	"io"

	"github.com/comunidad/social-api/internal/core/domain"
)

// MediaInput is an uploaded file attached to a new post.
type MediaInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// CreatePostInput is the DTO passed from the transport layer to PostService.
type CreatePostInput struct {
	ActorID string
	Caption string
	Media   *MediaInput // optional
}

type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	List(ctx context.Context) ([]*domain.Post, error)
}
