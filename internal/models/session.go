package models

import (
	"time"

	"github.com/subbu1996/folio/internal/types"
)

// Session represents one chat conversation. Sessions are listed in the
// sidebar most-recent-first and own their messages (deleting a session
// cascades to its messages).
type Session struct {
	ID        types.SessionID
	Title     string
	CreatedAt time.Time
}

// DefaultSessionTitle is the title given to sessions created from the
// "New Chat" action before the user renames them.
const DefaultSessionTitle = "New Chat"
