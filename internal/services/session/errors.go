package session

import "errors"

// Session-related errors
var (
	// Validation errors
	ErrEmptyTitle   = errors.New("session title cannot be empty")
	ErrTitleTooLong = errors.New("session title cannot exceed 100 characters")
	ErrInvalidID    = errors.New("invalid session ID")

	// Business logic errors
	ErrSessionNotFound = errors.New("session not found")
)
