package models

import "errors"

// Domain-level errors shared across services and repositories
var (
	// ErrSessionNotFound indicates the session ID resolves to no row
	ErrSessionNotFound = errors.New("session not found")

	// ErrMessageNotFound indicates the message ID resolves to no row
	ErrMessageNotFound = errors.New("message not found")

	// ErrHoldingNotFound indicates no holding exists for the symbol
	ErrHoldingNotFound = errors.New("no holding found for symbol")
)
