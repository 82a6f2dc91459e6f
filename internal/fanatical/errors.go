package fanatical

import "errors"

// Common API errors.
var (
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when authentication fails.
	ErrUnauthorized = errors.New("unauthorized — check your bearer token")
	// ErrForbidden is returned when authorization fails.
	ErrForbidden = errors.New("forbidden — token may be expired")
)
