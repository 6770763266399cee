package tui

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/agent"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/services/chat"
)

// Update is the main update dispatcher that handles all messages and
// updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Check if context is cancelled (graceful shutdown)
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case StreamChunkMsg:
		return m.handleStreamChunk(msg.Chunk)

	case StreamClosedMsg:
		// The channel closed after its terminal chunk; nothing left to do
		return m, nil

	case SpinnerTickMsg:
		if !m.streaming {
			return m, nil
		}
		m.spinnerFrame++
		m.refreshViewport(true)
		return m, spinnerTick()

	case StatusMsg:
		m.status = msg.Text
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg dispatches key messages to the appropriate mode handler.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case RenameMode:
		return m.handleRenameMode(msg)
	case DeleteConfirmMode:
		return m.handleDeleteConfirmMode(msg)
	case HelpMode:
		return m.handleHelpMode(msg)
	default:
		return m.handleChatMode(msg)
	}
}

// ============================================================================
// CHAT MODE
// ============================================================================

func (m Model) handleChatMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	km := m.config.KeyMappings

	switch key {
	case km.Quit:
		if m.streamCancel != nil {
			m.streamCancel()
		}
		return m, tea.Quit

	case km.Send:
		switch m.composer.Decide(key, m.streaming) {
		case actionStop:
			return m.stopStream()
		case actionSubmit:
			return m.sendDraft()
		default:
			// Blank draft, swallow the key
			return m, nil
		}

	case km.NewChat:
		return m.createSession()

	case km.RenameChat:
		return m.enterRenameMode()

	case km.DeleteChat:
		if m.streaming {
			m.status = "Finish or stop the response first"
			return m, nil
		}
		if m.activeIndex() >= 0 {
			m.mode = DeleteConfirmMode
		}
		return m, nil

	case km.PrevSession:
		return m.selectSession(-1)

	case km.NextSession:
		return m.selectSession(1)

	case km.ToggleSidebar:
		m.sidebarVisible = !m.sidebarVisible
		m.resizeComponents()
		return m, nil

	case km.ScrollUp, km.ScrollDown:
		// The viewport's default keymap covers these
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case km.ShowHelp:
		m.mode = HelpMode
		return m, nil
	}

	// Everything else, the newline binding included, edits the draft
	var cmd tea.Cmd
	m.composer, cmd = m.composer.Update(msg)
	return m, cmd
}

// sendDraft stores the user message, creates the assistant placeholder
// and kicks off the streaming response.
func (m Model) sendDraft() (tea.Model, tea.Cmd) {
	draft := m.composer.Value()

	userMsg, err := m.chat.AddUserMessage(m.ctx, m.activeSession, draft)
	if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrInvalidSession) {
		// Nothing to send to, or nothing to send; swallow the key
		return m, nil
	}
	if err != nil {
		slog.Error("failed to store user message", "error", err)
		m.status = "Could not send the message"
		return m, nil
	}

	m.composer.Reset()
	m.transcript = append(m.transcript, userMsg)
	m.autoTitleSession(draft)

	placeholder, err := m.chat.BeginAssistantMessage(m.ctx, m.activeSession)
	if err != nil {
		slog.Error("failed to create assistant placeholder", "error", err)
		m.status = "Could not start the response"
		m.refreshViewport(true)
		return m, nil
	}
	m.transcript = append(m.transcript, placeholder)
	m.pendingMessage = placeholder.ID

	streamCtx, cancel := context.WithCancel(m.ctx)
	m.streamCancel = cancel
	m.streamChan = m.assistant.Respond(streamCtx, draft)
	m.streaming = true
	m.streamContent = ""
	m.streamThinking = nil
	m.spinnerFrame = 0
	m.status = ""
	m.refreshViewport(true)

	return m, tea.Batch(waitForChunk(m.streamChan), spinnerTick())
}

// autoTitleSession names a fresh session after its first message.
func (m *Model) autoTitleSession(draft string) {
	idx := m.activeIndex()
	if idx < 0 || m.sessionList[idx].Title != models.DefaultSessionTitle {
		return
	}
	if len(m.transcript) != 1 {
		return
	}

	title := strings.TrimSpace(draft)
	if line, _, found := strings.Cut(title, "\n"); found {
		title = line
	}
	const maxAutoTitle = 40
	title = truncateRunes(title, maxAutoTitle)

	if err := m.sessions.RenameSession(m.ctx, m.activeSession, title); err != nil {
		slog.Warn("failed to auto-title session", "error", err)
		return
	}
	m.sessionList[idx].Title = title
}

// stopStream cancels the in-flight response. The stream goroutine
// answers with a stop chunk that finalizes the partial message.
func (m Model) stopStream() (tea.Model, tea.Cmd) {
	if m.streamCancel != nil {
		m.streamCancel()
	}
	return m, nil
}

// handleStreamChunk folds one response chunk into the model and re-arms
// the subscription until a terminal chunk arrives.
func (m Model) handleStreamChunk(chunk agent.Chunk) (tea.Model, tea.Cmd) {
	switch chunk.Kind {
	case agent.ChunkThinking:
		m.streamThinking = append(m.streamThinking, chunk.Text)
		m.refreshViewport(true)
		return m, waitForChunk(m.streamChan)

	case agent.ChunkContent:
		m.streamContent += chunk.Text
		m.refreshViewport(true)
		return m, waitForChunk(m.streamChan)

	case agent.ChunkStopped:
		m.status = "Response stopped"
		return m.finishStream(m.streamContent)

	case agent.ChunkError:
		return m.finishStream(chunk.Text)

	default: // agent.ChunkDone
		return m.finishStream(m.streamContent)
	}
}

// finishStream persists the final content into the placeholder message
// and leaves streaming mode.
func (m Model) finishStream(content string) (tea.Model, tea.Cmd) {
	thinking := strings.Join(m.streamThinking, "\n")
	if err := m.chat.FinalizeAssistantMessage(m.ctx, m.pendingMessage, content, thinking); err != nil {
		slog.Error("failed to finalize assistant message", "error", err)
	}

	// The placeholder is the tail of the transcript; fill it in place
	if n := len(m.transcript); n > 0 && m.transcript[n-1].ID == m.pendingMessage {
		m.transcript[n-1].Content = content
		m.transcript[n-1].Thinking = thinking
	}

	if m.streamCancel != nil {
		m.streamCancel()
		m.streamCancel = nil
	}
	m.streaming = false
	m.streamContent = ""
	m.streamThinking = nil
	m.refreshViewport(true)
	return m, nil
}

// ============================================================================
// SESSION OPERATIONS
// ============================================================================

func (m Model) createSession() (tea.Model, tea.Cmd) {
	if m.streaming {
		m.status = "Finish or stop the response first"
		return m, nil
	}

	created, err := m.sessions.CreateSession(m.ctx, "")
	if err != nil {
		slog.Error("failed to create session", "error", err)
		m.status = "Could not create a new chat"
		return m, nil
	}

	m.reloadSessions()
	m.setActiveSession(created.ID)
	m.status = ""
	return m, nil
}

// selectSession moves the active session up or down the sidebar list.
func (m Model) selectSession(delta int) (tea.Model, tea.Cmd) {
	if m.streaming {
		m.status = "Finish or stop the response first"
		return m, nil
	}

	idx := m.activeIndex()
	if idx < 0 {
		return m, nil
	}
	next := idx + delta
	if next < 0 || next >= len(m.sessionList) {
		return m, nil
	}
	m.setActiveSession(m.sessionList[next].ID)
	return m, nil
}

func (m Model) enterRenameMode() (tea.Model, tea.Cmd) {
	idx := m.activeIndex()
	if idx < 0 {
		return m, nil
	}
	m.mode = RenameMode
	m.renameInput.SetValue(m.sessionList[idx].Title)
	m.composer.Blur()
	return m, m.renameInput.Focus()
}

// ============================================================================
// RENAME MODE
// ============================================================================

func (m Model) handleRenameMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := m.renameInput.Value()
		if err := m.sessions.RenameSession(m.ctx, m.activeSession, title); err != nil {
			slog.Error("failed to rename session", "error", err)
			m.status = "Could not rename: " + err.Error()
		} else {
			m.reloadSessions()
			m.status = ""
		}
		return m.leaveDialog()

	case "esc":
		return m.leaveDialog()
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// ============================================================================
// DELETE CONFIRMATION MODE
// ============================================================================

func (m Model) handleDeleteConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		fallback, err := m.sessions.DeleteSession(m.ctx, m.activeSession)
		if err != nil {
			slog.Error("failed to delete session", "error", err)
			m.status = "Could not delete the chat"
			return m.leaveDialog()
		}

		m.reloadSessions()
		if fallback == nil {
			// Last session gone, start a fresh one
			created, err := m.sessions.CreateSession(m.ctx, "")
			if err != nil {
				slog.Error("failed to create replacement session", "error", err)
				return m.leaveDialog()
			}
			m.reloadSessions()
			fallback = created
		}
		m.setActiveSession(fallback.ID)
		m.status = ""
		return m.leaveDialog()

	case "n", "esc":
		return m.leaveDialog()
	}

	return m, nil
}

// ============================================================================
// HELP MODE
// ============================================================================

func (m Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case m.config.KeyMappings.Quit:
		return m, tea.Quit
	}
	return m.leaveDialog()
}

// leaveDialog returns to chat mode with the composer focused.
func (m Model) leaveDialog() (tea.Model, tea.Cmd) {
	m.mode = ChatMode
	m.renameInput.Blur()
	return m, m.composer.Focus()
}

// ============================================================================
// RESIZE
// ============================================================================

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.resizeComponents()
	return m, nil
}

func (m *Model) resizeComponents() {
	contentWidth := m.chatWidth()

	m.composer.SetWidth(contentWidth - 2)

	if !m.viewportReady {
		m.viewport = newTranscriptViewport()
		m.viewportReady = true
	}
	m.viewport.SetWidth(contentWidth)
	m.viewport.SetHeight(m.transcriptHeight())
	m.refreshViewport(true)
}

// chatWidth is the width left for the transcript and composer once the
// sidebar takes its share.
func (m Model) chatWidth() int {
	w := m.width
	if m.sidebarVisible {
		w -= sidebarWidth
	}
	return max(w, 20)
}

// transcriptHeight is the room left for the viewport after the composer
// and the status bar.
func (m Model) transcriptHeight() int {
	return max(m.height-composerHeight-statusBarHeight, 1)
}
