package domain

import "time"

// Post is a short text publication with an optional media attachment.
type Post struct {
	ID        string
	Caption   string
	Media     string // public path or URL of the stored media; empty when none
	CreatedBy string
	CreatedAt time.Time

	// Creator is resolved on listing only.
	Creator *Creator
}
