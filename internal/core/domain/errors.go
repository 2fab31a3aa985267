package domain

import "errors"

var (
	ErrMissingField = errors.New("missing required field")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrBadPassword  = errors.New("wrong password")

	ErrUnauthorized    = errors.New("unauthorized")
	ErrSessionNotFound = errors.New("session not found")
)
