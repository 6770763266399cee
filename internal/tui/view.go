package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

const (
	sidebarWidth    = 28
	composerHeight  = 5
	statusBarHeight = 1
)

// View renders the current state of the application.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(m.config.ColorScheme.Background)

	// Wait for terminal size to be initialized
	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	base := m.renderChatScreen()

	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(base),
	}

	var modal string
	switch m.mode {
	case RenameMode:
		modal = m.renderRenameDialog()
	case DeleteConfirmMode:
		modal = m.renderDeleteDialog()
	case HelpMode:
		modal = m.renderHelp()
	}

	if layer := centeredLayer(modal, m.width, m.height); layer != nil {
		layers = append(layers, layer)
	}

	canvas := lipgloss.NewCanvas(layers...)
	view.Content = canvas.Render()
	return view
}

// renderChatScreen composes the sidebar, transcript, composer and
// status bar.
func (m Model) renderChatScreen() string {
	transcript := m.viewport.View()

	composerStyle := m.styles.Composer
	if m.composer.Focused() {
		composerStyle = m.styles.ComposerFocused
	}
	composer := composerStyle.Width(m.chatWidth() - 2).Render(m.composer.View())

	chatColumn := lipgloss.JoinVertical(
		lipgloss.Left,
		transcript,
		composer,
		m.renderStatusBar(),
	)

	if !m.sidebarVisible {
		return chatColumn
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderSidebar(m.height),
		chatColumn,
	)
}

// renderStatusBar shows either the transient status or the key hints.
func (m Model) renderStatusBar() string {
	km := m.config.KeyMappings

	text := m.status
	if text == "" {
		if m.streaming {
			text = fmt.Sprintf("streaming... %s to stop", km.Send)
		} else {
			text = fmt.Sprintf("%s send · %s new line · %s new chat · %s help",
				km.Send, km.InsertNewline, km.NewChat, km.ShowHelp)
		}
	}

	return m.styles.StatusBar.Width(m.chatWidth()).Render(text)
}

func (m Model) renderRenameDialog() string {
	content := m.styles.Title.Render("Rename chat") + "\n\n" +
		m.renameInput.View() + "\n\n" +
		m.styles.Subtle.Render("enter save · esc cancel")
	return m.styles.Dialog.Render(content)
}

func (m Model) renderDeleteDialog() string {
	title := ""
	if idx := m.activeIndex(); idx >= 0 {
		title = m.sessionList[idx].Title
	}

	content := m.styles.Title.Render("Delete chat") + "\n\n" +
		fmt.Sprintf("Delete %q and all its messages?", title) + "\n\n" +
		m.styles.Subtle.Render("y delete · n cancel")
	return m.styles.DeleteDialog.Render(content)
}

func (m Model) renderHelp() string {
	km := m.config.KeyMappings

	rows := []struct {
		key  string
		desc string
	}{
		{km.Send, "send message"},
		{km.InsertNewline, "insert new line"},
		{km.Send, "stop a streaming response"},
		{km.NewChat, "new chat"},
		{km.RenameChat, "rename chat"},
		{km.DeleteChat, "delete chat"},
		{km.PrevSession, "previous chat"},
		{km.NextSession, "next chat"},
		{km.ToggleSidebar, "toggle sidebar"},
		{km.ScrollUp, "scroll up"},
		{km.ScrollDown, "scroll down"},
		{km.Quit, "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Keys"))
	b.WriteString("\n\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "%s  %s\n",
			m.styles.Normal.Width(14).Render(row.key),
			m.styles.Subtle.Render(row.desc))
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Subtle.Render("any key to close"))

	return m.styles.Dialog.Render(b.String())
}

// centeredLayer places content at the center of the screen, or returns
// nil when there is nothing to place.
func centeredLayer(content string, screenWidth, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := (screenWidth - lipgloss.Width(content)) / 2
	y := (screenHeight - lipgloss.Height(content)) / 2

	return lipgloss.NewLayer(content).X(max(x, 0)).Y(max(y, 0))
}
