package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

// DefaultSessionTTL is the fixed lifetime of a session from issuance.
const DefaultSessionTTL = 24 * time.Hour

// AuthService implements registration, login, logout and session resolution.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, ttl time.Duration, log zerolog.Logger) *AuthService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &AuthService{users: users, sessions: sessions, ttl: ttl, log: log, now: time.Now}
}

// Register creates the account and logs the new user in. The uniqueness check
// is check-then-insert and therefore best-effort under concurrent sign-ups.
func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("register: %w", domain.ErrMissingField)
	}

	_, err := s.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, nil, domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, nil, fmt.Errorf("register: lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("register: hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("register: create user: %w", err)
	}

	sess, err := s.issueSession(ctx, created.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return publicUser(created), sess, nil
}

// Login verifies the credentials. Unknown usernames and wrong passwords fail
// with distinct errors.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, nil, domain.ErrUserNotFound
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("login: lookup user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrBadPassword
	}

	sess, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return publicUser(user), sess, nil
}

// Logout destroys the session. Unknown or empty ids are not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	s.log.Debug().Str("session_id", sessionID).Msg("session destroyed")
	return nil
}

func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (string, error) {
	if sessionID == "" {
		return "", domain.ErrUnauthorized
	}

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return "", domain.ErrUnauthorized
		}
		return "", fmt.Errorf("authenticate: %w", err)
	}

	// The store expires keys on its own; this covers clock skew with it.
	if sess.Expired(s.now()) {
		return "", domain.ErrUnauthorized
	}
	return sess.UserID, nil
}

// Profile returns the public view of the authenticated user. A user deleted
// out-of-band leaves a dangling session, which is reported as unauthorized.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("profile: %w", err)
	}
	return publicUser(user), nil
}

func (s *AuthService) issueSession(ctx context.Context, userID string) (*domain.Session, error) {
	sess := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return sess, nil
}

func publicUser(u *domain.User) *domain.User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
