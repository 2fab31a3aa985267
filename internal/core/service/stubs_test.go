package service

import (
	"context"
	"fmt"
	"time"

	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	createErr error
	findErr   error
	nextID    int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	stored := cloneUser(user)
	stored.ID = fmt.Sprintf("u%d", r.nextID)
	r.byID[stored.ID] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.byID {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) ([]*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

type stubSessionStore struct {
	byID      map[string]*domain.Session
	saveErr   error
	getErr    error
	deleteErr error
	deleted   []string
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{byID: make(map[string]*domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, sess *domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	clone := *sess
	s.byID[sess.ID] = &clone
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	sess, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	clone := *sess
	return &clone, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, id)
	delete(s.byID, id)
	return nil
}

type stubEventRepo struct {
	events    []*domain.Event
	createErr error
	listErr   error
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *e
	clone.ID = fmt.Sprintf("e%d", len(r.events)+1)
	r.events = append(r.events, &clone)
	out := clone
	return &out, nil
}

func (r *stubEventRepo) List(_ context.Context) ([]*domain.Event, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Event, len(r.events))
	for i, e := range r.events {
		clone := *e
		out[i] = &clone
	}
	return out, nil
}

type stubPostRepo struct {
	posts     []*domain.Post
	createErr error
	listErr   error
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	clone := *p
	clone.ID = fmt.Sprintf("p%d", len(r.posts)+1)
	r.posts = append(r.posts, &clone)
	out := clone
	return &out, nil
}

func (r *stubPostRepo) List(_ context.Context) ([]*domain.Post, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*domain.Post, len(r.posts))
	for i, p := range r.posts {
		clone := *p
		out[i] = &clone
	}
	return out, nil
}

type stubMedia struct {
	ref    string
	err    error
	stored []ports.MediaInput
}

func (m *stubMedia) Store(_ context.Context, in ports.MediaInput) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.stored = append(m.stored, in)
	return m.ref, nil
}

// fixedClock returns a clock that advances one minute per call.
func fixedClock(start time.Time) func() time.Time {
	current := start
	return func() time.Time {
		t := current
		current = current.Add(time.Minute)
		return t
	}
}
