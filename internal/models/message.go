package models

import (
	"time"

	"github.com/subbu1996/folio/internal/types"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one folio knows how to render.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single transcript entry. Assistant messages may carry a
// Thinking trace: the intermediate worker-agent output collected while
// the reply was produced, shown dimmed above the reply.
type Message struct {
	ID        types.MessageID
	SessionID types.SessionID
	Role      Role
	Content   string
	Thinking  string
	CreatedAt time.Time
}
