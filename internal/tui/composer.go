package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/config"
)

// composerAction is the outcome of a key press in the composer.
type composerAction int

const (
	// actionPassThrough hands the key to the textarea for editing,
	// including the newline binding.
	actionPassThrough composerAction = iota

	// actionSubmit sends the current draft.
	actionSubmit

	// actionIgnore swallows the key without any effect. An Enter press
	// on a blank draft lands here.
	actionIgnore

	// actionStop interrupts the in-flight response.
	actionStop
)

// Composer is the multi-line message input at the bottom of the chat.
type Composer struct {
	textarea textarea.Model
	sendKey  string
}

// NewComposer builds the input with the newline binding moved off of
// Enter so that Enter is free to submit.
func NewComposer(km config.KeyMappings) Composer {
	ta := textarea.New()
	ta.Placeholder = "Ask about your portfolio..."
	ta.CharLimit = 4000
	ta.SetHeight(3)
	ta.ShowLineNumbers = false

	ta.KeyMap.InsertNewline = key.NewBinding(
		key.WithKeys(km.InsertNewline, "alt+enter", "ctrl+j"),
		key.WithHelp(km.InsertNewline, "new line"),
	)

	return Composer{
		textarea: ta,
		sendKey:  km.Send,
	}
}

// Decide classifies a key press. The caller is responsible for acting
// on the result; the composer itself never sends.
//
// The rules, in order:
//   - the send key while a response is streaming stops the stream
//   - the send key with a blank draft does nothing
//   - the send key with content submits
//   - every other key, the newline binding included, edits the draft
func (c *Composer) Decide(keyName string, streaming bool) composerAction {
	if keyName != c.sendKey {
		return actionPassThrough
	}
	if streaming {
		return actionStop
	}
	if strings.TrimSpace(c.textarea.Value()) == "" {
		return actionIgnore
	}
	return actionSubmit
}

// Update handles messages
func (c Composer) Update(msg tea.Msg) (Composer, tea.Cmd) {
	var cmd tea.Cmd
	c.textarea, cmd = c.textarea.Update(msg)
	return c, cmd
}

// View renders the text area
func (c Composer) View() string {
	return c.textarea.View()
}

// Value returns the current draft
func (c Composer) Value() string {
	return c.textarea.Value()
}

// Reset clears the draft after a successful send
func (c *Composer) Reset() {
	c.textarea.Reset()
}

// SetValue replaces the draft, used by tests
func (c *Composer) SetValue(s string) {
	c.textarea.SetValue(s)
}

// SetWidth resizes the input to the available width
func (c *Composer) SetWidth(w int) {
	c.textarea.SetWidth(w)
}

// Focus focuses the composer
func (c *Composer) Focus() tea.Cmd {
	return c.textarea.Focus()
}

// Blur removes focus
func (c *Composer) Blur() {
	c.textarea.Blur()
}

// Focused returns whether the composer is focused
func (c *Composer) Focused() bool {
	return c.textarea.Focused()
}
