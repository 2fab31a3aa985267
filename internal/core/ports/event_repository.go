package ports

import (
	"context"

	"github.com/comunidad/social-api/internal/core/domain"
)

// EventRepository persists community events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	// List returns all events sorted ascending by (date, time).
	List(ctx context.Context) ([]*domain.Event, error)
}
