package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/config"
)

// TestComposerDecide covers the full Enter handling table: plain Enter
// submits, Shift+Enter edits, a blank draft swallows the key, Enter
// during streaming stops, and any other key edits the draft.
func TestComposerDecide(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		draft     string
		streaming bool
		want      composerAction
	}{
		{
			name:  "enter with content submits",
			key:   "enter",
			draft: "What is my XIRR?",
			want:  actionSubmit,
		},
		{
			name:  "shift+enter passes through for a newline",
			key:   "shift+enter",
			draft: "line one",
			want:  actionPassThrough,
		},
		{
			name:  "enter with empty draft is swallowed",
			key:   "enter",
			draft: "",
			want:  actionIgnore,
		},
		{
			name:  "enter with whitespace draft is swallowed",
			key:   "enter",
			draft: "   \n\t ",
			want:  actionIgnore,
		},
		{
			name:      "enter during streaming stops the response",
			key:       "enter",
			draft:     "",
			streaming: true,
			want:      actionStop,
		},
		{
			name:  "ordinary key passes through",
			key:   "a",
			draft: "",
			want:  actionPassThrough,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer(config.DefaultKeyMappings())
			c.SetValue(tt.draft)

			if got := c.Decide(tt.key, tt.streaming); got != tt.want {
				t.Errorf("Decide(%q, streaming=%v) = %v, want %v",
					tt.key, tt.streaming, got, tt.want)
			}
		})
	}
}

// TestComposerShiftEnterInsertsNewline verifies the rebound newline
// binding: Shift+Enter splits the draft across lines inside the
// textarea instead of submitting.
func TestComposerShiftEnterInsertsNewline(t *testing.T) {
	c := NewComposer(config.DefaultKeyMappings())
	c.Focus()

	for _, r := range "abc" {
		c, _ = c.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}

	c, _ = c.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter, Mod: tea.ModShift}))

	for _, r := range "def" {
		c, _ = c.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}

	want := "abc\ndef"
	if got := c.Value(); got != want {
		t.Errorf("Draft after Shift+Enter = %q, want %q", got, want)
	}
}

// TestComposerPlainEnterDoesNotEdit confirms plain Enter no longer maps
// to the textarea's newline binding once rebound.
func TestComposerPlainEnterDoesNotEdit(t *testing.T) {
	c := NewComposer(config.DefaultKeyMappings())
	c.Focus()
	c.SetValue("draft")

	c, _ = c.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))

	if strings.Contains(c.Value(), "\n") {
		t.Errorf("Plain Enter inserted a newline: %q", c.Value())
	}
}

// TestComposerCustomSendKey confirms the send key follows the keymap.
func TestComposerCustomSendKey(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.Send = "ctrl+s"
	c := NewComposer(km)
	c.SetValue("draft")

	if got := c.Decide("ctrl+s", false); got != actionSubmit {
		t.Errorf("Decide(ctrl+s) = %v, want actionSubmit", got)
	}
	if got := c.Decide("enter", false); got != actionPassThrough {
		t.Errorf("Decide(enter) with remapped send = %v, want actionPassThrough", got)
	}
}

// TestComposerResetClearsDraft verifies the draft clears after a send.
func TestComposerResetClearsDraft(t *testing.T) {
	c := NewComposer(config.DefaultKeyMappings())
	c.SetValue("something")
	c.Reset()

	if c.Value() != "" {
		t.Errorf("Expected empty draft after Reset, got %q", c.Value())
	}
}
