package domain

import "time"

// User models a registered account. The password hash never leaves the
// service layer in a response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Creator is the public projection of a User attached to the records it owns.
type Creator struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
