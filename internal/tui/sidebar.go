package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// renderSidebar renders the session list, most recent first, with the
// active session highlighted.
func (m *Model) renderSidebar(height int) string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Chats"))
	b.WriteString("\n\n")

	for _, s := range m.sessionList {
		title := s.Title
		if lipgloss.Width(title) > sidebarWidth-4 {
			title = truncateRunes(title, sidebarWidth-5) + "…"
		}

		line := m.styles.SidebarSession.Render(title)
		if s.ID == m.activeSession {
			line = m.styles.SidebarActive.Render("▸ " + title)
		}
		b.WriteString(line)
		b.WriteString("\n")

		b.WriteString(m.styles.Subtle.Padding(0, 1).Render(s.CreatedAt.Format("Jan 2 15:04")))
		b.WriteString("\n")
	}

	style := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(height).
		Background(lipgloss.Color(m.config.ColorScheme.SidebarBackground)).
		Padding(0, 1)
	return style.Render(b.String())
}

// truncateRunes cuts s to at most n runes so multi-byte titles never
// get split mid-character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
