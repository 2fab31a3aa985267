// Package session carries the server-side session id between requests in a
// signed cookie.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comunidad/social-api/internal/core/domain"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "comunidad.sid"

	// UserIDKey is the echo context key under which the gate stores the
	// authenticated user id.
	UserIDKey = "user_id"
)

var (
	ErrNoCookie      = errors.New("session cookie missing")
	ErrInvalidCookie = errors.New("session cookie invalid")
)

// CookieCodec signs session ids into an HS256 token stored in an HttpOnly
// cookie. The token expiry matches the session's fixed expiry; it is never
// extended.
type CookieCodec struct {
	secret []byte
	secure bool
	now    func() time.Time
}

func NewCookieCodec(secret string, secure bool) *CookieCodec {
	return &CookieCodec{secret: []byte(secret), secure: secure, now: time.Now}
}

// Issue returns the cookie to set after a successful register or login.
func (cc *CookieCodec) Issue(s *domain.Session) (*http.Cookie, error) {
	claims := jwt.RegisteredClaims{
		ID:        s.ID,
		Subject:   s.UserID,
		IssuedAt:  jwt.NewNumericDate(cc.now()),
		ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cc.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session cookie: %w", err)
	}

	maxAge := int(s.ExpiresAt.Sub(cc.now()).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cc.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Read extracts the session id from the request cookie. It fails with
// ErrNoCookie when there is no cookie and ErrInvalidCookie when the token is
// tampered, expired or signed with another key.
func (cc *CookieCodec) Read(r *http.Request) (string, error) {
	ck, err := r.Cookie(CookieName)
	if err != nil || ck.Value == "" {
		return "", ErrNoCookie
	}

	var claims jwt.RegisteredClaims
	_, err = jwt.ParseWithClaims(ck.Value, &claims, func(*jwt.Token) (any, error) {
		return cc.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(cc.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if claims.ID == "" {
		return "", ErrInvalidCookie
	}
	return claims.ID, nil
}

// Clear returns a cookie that removes the session cookie from the browser.
func (cc *CookieCodec) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cc.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
