package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api/session"
	"github.com/comunidad/social-api/internal/core/domain"
)

type stubReader struct {
	sid string
	err error
}

func (s stubReader) Read(*http.Request) (string, error) { return s.sid, s.err }

type stubAuthenticator struct {
	userID string
	err    error
	gotSID string
}

func (s *stubAuthenticator) Authenticate(_ context.Context, sid string) (string, error) {
	s.gotSID = sid
	return s.userID, s.err
}

func runGate(t *testing.T, reader SessionReader, auth SessionAuthenticator, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Session(reader, auth, zerolog.Nop())(next)(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, err
}

func TestSession_ValidSession(t *testing.T) {
	auth := &stubAuthenticator{userID: "u1"}
	called := false

	rec, err := runGate(t, stubReader{sid: "sid-1"}, auth, func(c echo.Context) error {
		called = true
		if c.Get(session.UserIDKey) != "u1" {
			t.Fatalf("user id not set, got %v", c.Get(session.UserIDKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if auth.gotSID != "sid-1" {
		t.Fatalf("Authenticate got sid %q", auth.gotSID)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSession_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		reader stubReader
		auth   *stubAuthenticator
	}{
		{"missing cookie", stubReader{err: session.ErrNoCookie}, &stubAuthenticator{}},
		{"tampered cookie", stubReader{err: session.ErrInvalidCookie}, &stubAuthenticator{}},
		{"expired session", stubReader{sid: "sid"}, &stubAuthenticator{err: domain.ErrUnauthorized}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := runGate(t, tc.reader, tc.auth, func(c echo.Context) error {
				t.Fatalf("should not reach next")
				return nil
			})

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401 HTTPError, got %v", err)
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestSession_StoreFailureIsNotUnauthorized(t *testing.T) {
	storeErr := errors.New("redis down")
	_, err := runGate(t, stubReader{sid: "sid"}, &stubAuthenticator{err: storeErr}, func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
}
