package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUsernameTaken      = errors.New("username exists")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrSessionNotFound    = errors.New("session not found")
	// ErrNotFound covers ownership-scoped resources. A row owned by another
	// user maps to the same error as a truly absent row so that existence
	// never leaks across accounts.
	ErrNotFound = errors.New("not found")
)
