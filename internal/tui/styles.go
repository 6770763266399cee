package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/subbu1996/folio/internal/config"
)

// Styles holds the pre-built lipgloss styles for the chat view.
type Styles struct {
	Title  lipgloss.Style
	Subtle lipgloss.Style
	Normal lipgloss.Style

	SidebarSession lipgloss.Style
	SidebarActive  lipgloss.Style

	UserBubble  lipgloss.Style
	AgentBubble lipgloss.Style
	Thinking    lipgloss.Style

	Composer        lipgloss.Style
	ComposerFocused lipgloss.Style

	StatusBar  lipgloss.Style
	StopNotice lipgloss.Style

	Dialog       lipgloss.Style
	DeleteDialog lipgloss.Style
}

// NewStyles derives the style set from the active color scheme.
func NewStyles(cs config.ColorScheme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(cs.Title)),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Subtle)),

		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Normal)),

		SidebarSession: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Normal)).
			Padding(0, 1),

		SidebarActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Accent)).
			Bold(true).
			Padding(0, 1),

		UserBubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.UserBubbleBorder)).
			Background(lipgloss.Color(cs.UserBubbleBg)).
			Padding(0, 1),

		AgentBubble: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.AgentBubbleBorder)).
			Background(lipgloss.Color(cs.AgentBubbleBg)).
			Padding(0, 1),

		Thinking: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Thinking)).
			Italic(true),

		Composer: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.ComposerBorder)),

		ComposerFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.ComposerFocusedBorder)),

		StatusBar: lipgloss.NewStyle().
			Background(lipgloss.Color(cs.StatusBarBg)).
			Foreground(lipgloss.Color(cs.StatusBarText)).
			Padding(0, 1),

		StopNotice: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Stop)).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.Create)).
			Padding(1, 2),

		DeleteDialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(cs.Delete)).
			Padding(1, 2),
	}
}
