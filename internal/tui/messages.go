package tui

import (
	"time"

	"github.com/subbu1996/folio/internal/agent"
)

// StreamChunkMsg carries one chunk from the in-flight response.
type StreamChunkMsg struct {
	Chunk agent.Chunk
}

// StreamClosedMsg signals that the response channel closed.
type StreamClosedMsg struct{}

// SpinnerTickMsg advances the thinking animation while streaming.
type SpinnerTickMsg struct {
	At time.Time
}

// StatusMsg shows a transient message in the status bar.
type StatusMsg struct {
	Text string
}
