package chat

import "errors"

// Chat-related errors
var (
	// Validation errors
	ErrEmptyMessage   = errors.New("message cannot be empty or whitespace")
	ErrMessageTooLong = errors.New("message cannot exceed 4000 characters")
	ErrInvalidSession = errors.New("invalid session ID")
	ErrInvalidMessage = errors.New("invalid message ID")

	// Business logic errors
	ErrMessageNotFound = errors.New("message not found")
)
