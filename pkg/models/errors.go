package models

import "errors"

// Error kinds surfaced to the user. Handlers map these to HTTP statuses;
// repositories and services wrap them with context via fmt.Errorf and %w.
var (
	ErrValidation         = errors.New("missing or invalid required field")
	ErrNotFound           = errors.New("not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIncorrectPassword  = errors.New("incorrect password")
	ErrStoreUnavailable   = errors.New("store unavailable")
)
