package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

// CreateEventInput is the DTO passed from the transport layer to EventService.
type CreateEventInput struct {
	ActorID     string
	Title       string
	Description string
	Date        string
	Time        string
	Place       string
}

type EventService interface {
	Create(ctx context.Context, in CreateEventInput) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}
