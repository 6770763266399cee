package tui

import (
	"context"
	"log/slog"
	"time"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/agent"
	"github.com/subbu1996/folio/internal/config"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/services/chat"
	"github.com/subbu1996/folio/internal/services/session"
	"github.com/subbu1996/folio/internal/types"
)

// Mode identifies which view has keyboard focus.
type Mode int

const (
	ChatMode Mode = iota
	RenameMode
	DeleteConfirmMode
	HelpMode
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	config *config.Config
	styles Styles

	sessions  session.Service
	chat      chat.Service
	assistant *agent.Supervisor

	mode           Mode
	sessionList    []*models.Session
	activeSession  types.SessionID
	transcript     []*models.Message
	sidebarVisible bool

	composer    Composer
	renameInput textinput.Model

	viewport      viewport.Model
	viewportReady bool

	width  int
	height int

	// Streaming state for the in-flight assistant response
	streaming      bool
	streamCancel   context.CancelFunc
	streamChan     <-chan agent.Chunk
	streamContent  string
	streamThinking []string
	pendingMessage types.MessageID
	spinnerFrame   int

	status string
}

// InitialModel creates the TUI model, loading sessions from the store
// and opening the most recent one. A session is created when none exist.
func InitialModel(ctx context.Context, sessions session.Service, chatSvc chat.Service, assistant *agent.Supervisor, cfg *config.Config) Model {
	m := Model{
		ctx:            ctx,
		config:         cfg,
		styles:         NewStyles(cfg.ColorScheme),
		sessions:       sessions,
		chat:           chatSvc,
		assistant:      assistant,
		mode:           ChatMode,
		sidebarVisible: true,
		composer:       NewComposer(cfg.KeyMappings),
	}

	ti := textinput.New()
	ti.Placeholder = "Session title"
	ti.CharLimit = 100
	m.renameInput = ti

	m.reloadSessions()
	if len(m.sessionList) == 0 {
		created, err := sessions.CreateSession(ctx, "")
		if err != nil {
			slog.Error("failed to create initial session", "error", err)
		} else {
			m.sessionList = []*models.Session{created}
		}
	}
	if len(m.sessionList) > 0 {
		m.setActiveSession(m.sessionList[0].ID)
	}

	return m
}

// Init initializes the Bubble Tea application.
func (m Model) Init() tea.Cmd {
	return m.composer.Focus()
}

// reloadSessions refreshes the sidebar list, most recent first.
func (m *Model) reloadSessions() {
	list, err := m.sessions.GetAllSessions(m.ctx)
	if err != nil {
		slog.Error("failed to load sessions", "error", err)
		return
	}
	m.sessionList = list
}

// setActiveSession switches the transcript to the given session.
func (m *Model) setActiveSession(id types.SessionID) {
	m.activeSession = id
	transcript, err := m.chat.GetTranscript(m.ctx, id)
	if err != nil {
		slog.Error("failed to load transcript", "session", id, "error", err)
		transcript = nil
	}
	m.transcript = transcript
	m.refreshViewport(true)
}

// activeIndex returns the position of the active session in the list,
// or -1 when it is missing.
func (m *Model) activeIndex() int {
	for i, s := range m.sessionList {
		if s.ID == m.activeSession {
			return i
		}
	}
	return -1
}

// ActiveSession exposes the current session ID for tests.
func (m Model) ActiveSession() types.SessionID {
	return m.activeSession
}

// Transcript exposes the loaded messages for tests.
func (m Model) Transcript() []*models.Message {
	return m.transcript
}

// Streaming reports whether a response is in flight.
func (m Model) Streaming() bool {
	return m.streaming
}

// spinnerTick schedules the next thinking-animation frame.
func spinnerTick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg{At: t}
	})
}

// waitForChunk re-arms the subscription to the response channel. Each
// received chunk produces one message; the update loop re-subscribes
// until a terminal chunk arrives.
func waitForChunk(ch <-chan agent.Chunk) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return StreamClosedMsg{}
		}
		return StreamChunkMsg{Chunk: chunk}
	}
}
