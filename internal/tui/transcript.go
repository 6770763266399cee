package tui

import (
	"fmt"
	"strings"
	"sync"

	"charm.land/bubbles/v2/viewport"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"

	"github.com/subbu1996/folio/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached markdown renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// renderMarkdown renders assistant markdown, falling back to the raw
// text when the renderer is unavailable.
func renderMarkdown(content string, width int) string {
	renderer, err := getRenderer(width)
	if err == nil {
		if rendered, err := renderer.Render(content); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return content
}

func newTranscriptViewport() viewport.Model {
	vp := viewport.New()
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true
	return vp
}

// spinnerFrames is the typing indicator shown while a response streams.
var spinnerFrames = []string{"", ".", "..", "..."}

// refreshViewport re-renders the transcript into the viewport.
func (m *Model) refreshViewport(gotoBottom bool) {
	if !m.viewportReady {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	if gotoBottom {
		m.viewport.GotoBottom()
	}
}

// renderTranscript renders every message as a chat bubble. The last
// message gets the live streaming state while a response is in flight.
func (m *Model) renderTranscript() string {
	width := m.chatWidth()
	if len(m.transcript) == 0 {
		return m.styles.Subtle.Render("No messages yet. Ask about your portfolio.")
	}

	var blocks []string
	for i, msg := range m.transcript {
		last := i == len(m.transcript)-1
		if last && m.streaming && msg.Role == models.RoleAssistant {
			blocks = append(blocks, m.renderStreamingMessage(width))
			continue
		}
		blocks = append(blocks, m.renderMessage(msg, width))
	}
	return strings.Join(blocks, "\n\n")
}

// renderMessage renders one finished message.
func (m *Model) renderMessage(msg *models.Message, width int) string {
	bubbleWidth := max(width*3/4, 24)

	if msg.Role == models.RoleUser {
		bubble := m.styles.UserBubble.Width(bubbleWidth).Render(msg.Content)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right,
			m.styles.Subtle.Render("You")+"\n"+bubble)
	}

	var parts []string
	if msg.Thinking != "" {
		parts = append(parts, m.renderThinking(msg.Thinking, bubbleWidth))
	}
	body := renderMarkdown(msg.Content, bubbleWidth-4)
	parts = append(parts, m.styles.AgentBubble.Width(bubbleWidth).Render(body))

	return m.styles.Subtle.Render("Assistant") + "\n" + strings.Join(parts, "\n")
}

// renderStreamingMessage renders the in-flight response: the thinking
// trace so far plus the partial content with a typing indicator.
func (m *Model) renderStreamingMessage(width int) string {
	bubbleWidth := max(width*3/4, 24)

	var parts []string
	if len(m.streamThinking) > 0 {
		parts = append(parts, m.renderThinking(strings.Join(m.streamThinking, "\n"), bubbleWidth))
	}

	dots := spinnerFrames[m.spinnerFrame%len(spinnerFrames)]
	body := m.streamContent
	if body == "" {
		body = m.styles.Thinking.Render("thinking" + dots)
	} else {
		body += dots
	}
	parts = append(parts, m.styles.AgentBubble.Width(bubbleWidth).Render(body))

	header := m.styles.Subtle.Render("Assistant") + " " + m.styles.StopNotice.Render("(enter to stop)")
	return header + "\n" + strings.Join(parts, "\n")
}

// renderThinking renders the agent trace section above the reply.
func (m *Model) renderThinking(thinking string, width int) string {
	header := m.styles.Thinking.Render(fmt.Sprintf("Thinking (%d steps)", strings.Count(thinking, "\n")+1))
	body := m.styles.Thinking.Width(width).Render(thinking)
	return header + "\n" + body
}
