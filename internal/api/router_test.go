package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/comunidad/social-api/internal/api/handler"
	"github.com/comunidad/social-api/internal/api/session"
	"github.com/comunidad/social-api/internal/core/domain"
	"github.com/comunidad/social-api/internal/core/ports"
)

// fakeAuth keeps sessions in a map.
type fakeAuth struct {
	sessions map[string]string
}

func (f *fakeAuth) Register(ctx context.Context, username, password string) (*domain.User, *domain.Session, error) {
	return f.Login(ctx, username, password)
}

func (f *fakeAuth) Login(_ context.Context, username, password string) (*domain.User, *domain.Session, error) {
	if password != "pw123" {
		return nil, nil, domain.ErrBadPassword
	}
	sess := &domain.Session{ID: "sid-" + username, UserID: "id-" + username, ExpiresAt: time.Now().Add(time.Hour)}
	f.sessions[sess.ID] = sess.UserID
	return &domain.User{ID: sess.UserID, Username: username}, sess, nil
}

func (f *fakeAuth) Logout(_ context.Context, sid string) error {
	delete(f.sessions, sid)
	return nil
}

func (f *fakeAuth) Authenticate(_ context.Context, sid string) (string, error) {
	userID, ok := f.sessions[sid]
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

func (f *fakeAuth) Profile(_ context.Context, userID string) (*domain.User, error) {
	return &domain.User{ID: userID, Username: strings.TrimPrefix(userID, "id-")}, nil
}

type fakeEvents struct{ created []*domain.Event }

func (f *fakeEvents) Create(_ context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	ev := &domain.Event{ID: "e1", Title: in.Title, Date: in.Date, Time: in.Time, Place: in.Place, CreatedBy: in.ActorID}
	f.created = append(f.created, ev)
	return ev, nil
}

func (f *fakeEvents) List(context.Context) ([]*domain.Event, error) { return f.created, nil }

type fakePosts struct{}

func (fakePosts) Create(_ context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	return &domain.Post{ID: "p1", Caption: in.Caption, CreatedBy: in.ActorID}, nil
}

func (fakePosts) List(context.Context) ([]*domain.Post, error) { return nil, nil }

func newTestRouter(t *testing.T) (http.Handler, *fakeEvents) {
	t.Helper()
	public := t.TempDir()
	if err := os.WriteFile(filepath.Join(public, "login.html"), []byte("<html>login</html>"), 0o644); err != nil {
		t.Fatalf("write login.html: %v", err)
	}

	events := &fakeEvents{}
	reg := prometheus.NewRegistry()
	e := NewRouter(Deps{
		Auth:    &fakeAuth{sessions: map[string]string{}},
		Events:  events,
		Posts:   fakePosts{},
		Cookies: session.NewCookieCodec("test-secret", false),
		Health: map[string]handler.PingFunc{
			"mongodb": func(context.Context) error { return nil },
		},
		Log:         zerolog.Nop(),
		CORSOrigins: []string{"*"},
		PublicDir:   public,
		UploadDir:   t.TempDir(),
		Registerer:  reg,
		Gatherer:    reg,
	})
	return e, events
}

func do(h http.Handler, method, target, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func TestRouter_RootRedirectsToLogin(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/", "")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login.html" {
		t.Fatalf("expected redirect to /login.html, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = do(h, http.MethodGet, "/login.html", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "login") {
		t.Fatalf("static page not served: %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, r := range []struct{ method, path string }{
		{http.MethodGet, "/api/perfil"},
		{http.MethodPost, "/api/events"},
		{http.MethodPost, "/api/posts"},
	} {
		rec := do(h, r.method, r.path, "")
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", r.method, r.path, rec.Code)
		}
		if msg := errorOf(t, rec); msg != "no autorizado" {
			t.Fatalf("%s %s: unexpected error %q", r.method, r.path, msg)
		}
	}
}

func TestRouter_LoginThenCreateEvent(t *testing.T) {
	h, events := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/login", `{"username":"alice","password":"pw123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", rec.Code)
	}
	var cookie *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == session.CookieName {
			cookie = ck
		}
	}
	if cookie == nil {
		t.Fatalf("login did not set the session cookie")
	}

	rec = do(h, http.MethodPost, "/api/events",
		`{"title":"Meetup","date":"2025-01-01","time":"18:00","place":"Hall"}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("create event: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	var ev map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &ev); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if ev["createdBy"] != "id-alice" || len(events.created) != 1 {
		t.Fatalf("unexpected event: %v", ev)
	}

	rec = do(h, http.MethodPost, "/api/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}

	rec = do(h, http.MethodGet, "/api/perfil", "", cookie)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("perfil after logout: expected 401, got %d", rec.Code)
	}
}

func TestRouter_LoginBadPassword(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodPost, "/api/login", `{"username":"alice","password":"wrong"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if msg := errorOf(t, rec); msg != "Contraseña incorrecta" {
		t.Fatalf("unexpected error %q", msg)
	}
}

func TestRouter_OperationalEndpoints(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		if rec := do(h, http.MethodGet, path, ""); rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
		}
	}
}

func TestRouter_PublicListings(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, path := range []string{"/api/events", "/api/posts"} {
		rec := do(h, http.MethodGet, path, "")
		if rec.Code != http.StatusOK || strings.TrimSpace(rec.Body.String()) != "[]" {
			t.Fatalf("GET %s: got %d %q", path, rec.Code, rec.Body.String())
		}
	}
}
