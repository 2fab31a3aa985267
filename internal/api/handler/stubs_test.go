package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/comunidad/social-api/internal/api/session"
	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn     func(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	loginFn        func(ctx context.Context, username, password string) (*domain.User, *domain.Session, error)
	logoutFn       func(ctx context.Context, sessionID string) error
	authenticateFn func(ctx context.Context, sessionID string) (string, error)
	profileFn      func(ctx context.Context, userID string) (*domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	return s.registerFn(ctx, username, password)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	return s.logoutFn(ctx, sessionID)
}

func (s *stubAuthService) Authenticate(ctx context.Context, sessionID string) (string, error) {
	return s.authenticateFn(ctx, sessionID)
}

func (s *stubAuthService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	return s.profileFn(ctx, userID)
}

// stubCookies stores the session id in plain text.
type stubCookies struct {
	issueErr error
}

func (s *stubCookies) Issue(sess *domain.Session) (*http.Cookie, error) {
	if s.issueErr != nil {
		return nil, s.issueErr
	}
	return &http.Cookie{Name: session.CookieName, Value: sess.ID, Path: "/", HttpOnly: true}, nil
}

func (s *stubCookies) Read(r *http.Request) (string, error) {
	ck, err := r.Cookie(session.CookieName)
	if err != nil {
		return "", session.ErrNoCookie
	}
	return ck.Value, nil
}

func (s *stubCookies) Clear() *http.Cookie {
	return &http.Cookie{Name: session.CookieName, Value: "", Path: "/", MaxAge: -1}
}

type stubEventService struct {
	createFn func(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error)
	listFn   func(ctx context.Context) ([]*domain.Event, error)
}

func (s *stubEventService) Create(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, in)
}

func (s *stubEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.listFn(ctx)
}

type stubPostService struct {
	createFn func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error)
	listFn   func(ctx context.Context) ([]*domain.Post, error)
}

func (s *stubPostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, in)
}

func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.listFn(ctx)
}

var createdAt = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// authed marks the context as passed through the session gate.
func authed(c echo.Context, userID string) echo.Context {
	c.Set(session.UserIDKey, userID)
	return c
}
