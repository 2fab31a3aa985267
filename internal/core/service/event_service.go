package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

type EventService struct {
	events ports.EventRepository
	users  ports.UserRepository
	log    zerolog.Logger
	now    func() time.Time
}

func NewEventService(events ports.EventRepository, users ports.UserRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, users: users, log: log, now: time.Now}
}

// Create stamps the event with the acting user. Authentication is enforced
// upstream by the session gate.
func (s *EventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	ev := &domain.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		Date:        strings.TrimSpace(in.Date),
		Time:        strings.TrimSpace(in.Time),
		Place:       strings.TrimSpace(in.Place),
		CreatedBy:   in.ActorID,
		CreatedAt:   s.now().UTC(),
	}
	if ev.Title == "" || ev.Date == "" || ev.Time == "" || ev.Place == "" {
		return nil, fmt.Errorf("create event: %w", domain.ErrMissingField)
	}

	created, err := s.events.Create(ctx, ev)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", in.ActorID).Msg("failed to create event")
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().Str("event_id", created.ID).Str("user_id", in.ActorID).Msg("event created")
	return created, nil
}

// List returns every event soonest first with owners resolved.
func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	slices.SortStableFunc(events, func(a, b *domain.Event) int {
		switch {
		case a.Before(b):
			return -1
		case b.Before(a):
			return 1
		}
		return 0
	})

	owners := make([]string, len(events))
	for i, ev := range events {
		owners[i] = ev.CreatedBy
	}
	creators, err := resolveCreators(ctx, s.users, owners)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, ev := range events {
		ev.Creator = creators[ev.CreatedBy]
	}
	return events, nil
}
