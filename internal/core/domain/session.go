package domain

import "time"

// Session ties an opaque identifier to an authenticated user until ExpiresAt.
// Lifetime is fixed at issuance and never extended.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the session is past its lifetime at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
