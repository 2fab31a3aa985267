package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/comunidad/social-api/internal/core/domain"
)

var t0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newCodec(secret string, now time.Time) *CookieCodec {
	cc := NewCookieCodec(secret, false)
	cc.now = func() time.Time { return now }
	return cc
}

func requestWith(ck *http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if ck != nil {
		req.AddCookie(ck)
	}
	return req
}

func TestCookieCodec_RoundTrip(t *testing.T) {
	cc := newCodec("secret", t0)
	sess := &domain.Session{ID: "sid-1", UserID: "u1", ExpiresAt: t0.Add(24 * time.Hour)}

	ck, err := cc.Issue(sess)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !ck.HttpOnly || ck.Path != "/" || ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected cookie attributes: %+v", ck)
	}
	if ck.MaxAge != int((24 * time.Hour).Seconds()) {
		t.Fatalf("MaxAge = %d", ck.MaxAge)
	}

	sid, err := cc.Read(requestWith(ck))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if sid != "sid-1" {
		t.Fatalf("sid = %q, want sid-1", sid)
	}
}

func TestCookieCodec_Missing(t *testing.T) {
	cc := newCodec("secret", t0)
	if _, err := cc.Read(requestWith(nil)); !errors.Is(err, ErrNoCookie) {
		t.Fatalf("expected ErrNoCookie, got %v", err)
	}
}

func TestCookieCodec_Expired(t *testing.T) {
	issuer := newCodec("secret", t0)
	ck, err := issuer.Issue(&domain.Session{ID: "sid", ExpiresAt: t0.Add(time.Hour)})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	later := newCodec("secret", t0.Add(25*time.Hour))
	if _, err := later.Read(requestWith(ck)); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCookieCodec_WrongSecret(t *testing.T) {
	ck, err := newCodec("secret", t0).Issue(&domain.Session{ID: "sid", ExpiresAt: t0.Add(time.Hour)})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := newCodec("other", t0).Read(requestWith(ck)); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCookieCodec_Garbage(t *testing.T) {
	cc := newCodec("secret", t0)
	ck := &http.Cookie{Name: CookieName, Value: "not-a-token"}
	if _, err := cc.Read(requestWith(ck)); !errors.Is(err, ErrInvalidCookie) {
		t.Fatalf("expected ErrInvalidCookie, got %v", err)
	}
}

func TestCookieCodec_Clear(t *testing.T) {
	ck := newCodec("secret", t0).Clear()
	if ck.Name != CookieName || ck.Value != "" || ck.MaxAge >= 0 {
		t.Fatalf("unexpected clear cookie: %+v", ck)
	}
}
