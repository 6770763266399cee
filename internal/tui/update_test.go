package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/agent"
	"github.com/subbu1996/folio/internal/config"
	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/services/chat"
	"github.com/subbu1996/folio/internal/services/session"
	"github.com/subbu1996/folio/internal/testutil"
)

func setupTestModel(t *testing.T) Model {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SeedHolding(t, db, "RELIANCE.BSE", "Reliance Industries", "Energy", 10, 2400, 2900)
	testutil.SeedTransaction(t, db, "RELIANCE.BSE", -24000, "2024-01-15 10:00:00")

	repo := database.NewRepository(db)
	cfg := &config.Config{
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}

	m := InitialModel(
		context.Background(),
		session.NewService(repo),
		chat.NewService(repo),
		agent.NewSupervisor(repo),
		cfg,
	)

	// Initialize terminal size so the viewport exists
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = updated.(Model)
	m.composer.Focus()
	return m
}

func pressEnter(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter}))
	return updated.(Model)
}

// drainStream pumps the response channel through Update until the
// stream finishes, the way the re-armed subscription command does.
func drainStream(t *testing.T, m Model) Model {
	t.Helper()
	for m.Streaming() {
		msg := waitForChunk(m.streamChan)()
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func TestInitialModelCreatesSession(t *testing.T) {
	m := setupTestModel(t)

	if m.ActiveSession() == "" {
		t.Fatal("Expected an active session on startup")
	}
	if len(m.sessionList) != 1 {
		t.Errorf("Expected 1 session, got %d", len(m.sessionList))
	}
	if m.sessionList[0].Title != models.DefaultSessionTitle {
		t.Errorf("Expected default title, got %q", m.sessionList[0].Title)
	}
}

func TestEnterSendsDraft(t *testing.T) {
	m := setupTestModel(t)
	m.composer.SetValue("What is my portfolio worth?")

	m = pressEnter(t, m)

	if !m.Streaming() {
		t.Fatal("Expected a streaming response after send")
	}
	if m.composer.Value() != "" {
		t.Errorf("Expected composer cleared after send, got %q", m.composer.Value())
	}
	// User message plus assistant placeholder
	if len(m.Transcript()) != 2 {
		t.Fatalf("Expected 2 transcript messages, got %d", len(m.Transcript()))
	}
	if m.Transcript()[0].Role != models.RoleUser {
		t.Errorf("Expected first message from user, got %q", m.Transcript()[0].Role)
	}

	m = drainStream(t, m)
	answer := m.Transcript()[1]
	if answer.Content == "" {
		t.Error("Expected assistant content after stream finished")
	}
	if answer.Thinking == "" {
		t.Error("Expected a thinking trace on the assistant message")
	}
}

func TestEnterWithBlankDraftDoesNothing(t *testing.T) {
	m := setupTestModel(t)

	for _, draft := range []string{"", "   ", " \n\t "} {
		m.composer.SetValue(draft)
		m = pressEnter(t, m)

		if m.Streaming() {
			t.Fatalf("Draft %q should not have been sent", draft)
		}
		if len(m.Transcript()) != 0 {
			t.Fatalf("Draft %q produced transcript messages", draft)
		}
	}
}

func TestEnterWithoutSessionDoesNothing(t *testing.T) {
	m := setupTestModel(t)
	m.activeSession = ""
	m.composer.SetValue("hello")

	m = pressEnter(t, m)

	if m.Streaming() {
		t.Fatal("Enter without a session should not start a response")
	}
	if len(m.Transcript()) != 0 {
		t.Errorf("Expected no transcript messages, got %d", len(m.Transcript()))
	}
	if m.status != "" {
		t.Errorf("Expected no status message, got %q", m.status)
	}
	if m.composer.Value() != "hello" {
		t.Errorf("Expected draft to survive, got %q", m.composer.Value())
	}
}

func TestTwoEntersSendTwoMessages(t *testing.T) {
	m := setupTestModel(t)

	m.composer.SetValue("first question")
	m = pressEnter(t, m)
	m = drainStream(t, m)

	m.composer.SetValue("second question")
	m = pressEnter(t, m)
	m = drainStream(t, m)

	// Two user messages and two assistant replies
	if len(m.Transcript()) != 4 {
		t.Fatalf("Expected 4 transcript messages, got %d", len(m.Transcript()))
	}
	if m.Transcript()[0].Content != "first question" {
		t.Errorf("Unexpected first message: %q", m.Transcript()[0].Content)
	}
	if m.Transcript()[2].Content != "second question" {
		t.Errorf("Unexpected third message: %q", m.Transcript()[2].Content)
	}
}

func TestMultilineDraftSendsAsOneMessage(t *testing.T) {
	m := setupTestModel(t)

	// Type two lines joined by Shift+Enter, then send with Enter
	for _, r := range "hi" {
		updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		m = updated.(Model)
	}
	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter, Mod: tea.ModShift}))
	m = updated.(Model)
	for _, r := range "portfolio" {
		updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
		m = updated.(Model)
	}

	if !strings.Contains(m.composer.Value(), "\n") {
		t.Fatalf("Expected a multiline draft, got %q", m.composer.Value())
	}

	m = pressEnter(t, m)
	if len(m.Transcript()) < 1 {
		t.Fatal("Expected the draft to send")
	}
	if want := "hi\nportfolio"; m.Transcript()[0].Content != want {
		t.Errorf("Expected content %q, got %q", want, m.Transcript()[0].Content)
	}
	m = drainStream(t, m)
}

func TestEnterDuringStreamingStops(t *testing.T) {
	m := setupTestModel(t)
	m.composer.SetValue("What is my portfolio worth?")
	m = pressEnter(t, m)

	if !m.Streaming() {
		t.Fatal("Expected a streaming response")
	}

	// Enter now stops instead of sending
	m = pressEnter(t, m)
	m = drainStream(t, m)

	if m.Streaming() {
		t.Error("Expected streaming to end after stop")
	}
	if m.status != "Response stopped" {
		t.Errorf("Expected stop status, got %q", m.status)
	}
}

func TestNewChatSwitchesSession(t *testing.T) {
	m := setupTestModel(t)
	first := m.ActiveSession()

	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: 'n', Mod: tea.ModCtrl}))
	m = updated.(Model)

	if m.ActiveSession() == first {
		t.Error("Expected a new active session")
	}
	if len(m.sessionList) != 2 {
		t.Errorf("Expected 2 sessions, got %d", len(m.sessionList))
	}
}

func TestSessionAutoTitle(t *testing.T) {
	m := setupTestModel(t)
	m.composer.SetValue("How concentrated is my sector exposure?")
	m = pressEnter(t, m)
	m = drainStream(t, m)

	idx := m.activeIndex()
	if idx < 0 {
		t.Fatal("Active session missing from list")
	}
	if got := m.sessionList[idx].Title; got != "How concentrated is my sector exposure?" {
		t.Errorf("Expected auto-title from first message, got %q", got)
	}
}

func TestSessionAutoTitleTruncatesOnRunes(t *testing.T) {
	m := setupTestModel(t)
	draft := strings.Repeat("₹", 10) + strings.Repeat("x", 35)
	m.composer.SetValue(draft)
	m = pressEnter(t, m)
	m = drainStream(t, m)

	idx := m.activeIndex()
	if idx < 0 {
		t.Fatal("Active session missing from list")
	}
	got := m.sessionList[idx].Title
	if want := strings.Repeat("₹", 10) + strings.Repeat("x", 30); got != want {
		t.Errorf("Expected 40-rune title, got %q", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{in: "short", n: 10, want: "short"},
		{in: "exact", n: 5, want: "exact"},
		{in: "longer title", n: 6, want: "longer"},
		{in: "₹₹₹₹₹", n: 3, want: "₹₹₹"},
		{in: "रिलायंस की समीक्षा", n: 8, want: "रिलायंस "},
	}

	for _, tt := range tests {
		if got := truncateRunes(tt.in, tt.n); got != tt.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestDeleteLastSessionCreatesReplacement(t *testing.T) {
	m := setupTestModel(t)
	original := m.ActiveSession()

	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: 'x', Mod: tea.ModCtrl}))
	m = updated.(Model)
	if m.mode != DeleteConfirmMode {
		t.Fatal("Expected delete confirmation mode")
	}

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Text: "y", Code: 'y'}))
	m = updated.(Model)

	if m.mode != ChatMode {
		t.Error("Expected to return to chat mode")
	}
	if m.ActiveSession() == original {
		t.Error("Expected the deleted session to be replaced")
	}
	if len(m.sessionList) != 1 {
		t.Errorf("Expected 1 replacement session, got %d", len(m.sessionList))
	}
}

func TestRenameSessionFlow(t *testing.T) {
	m := setupTestModel(t)

	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: 'r', Mod: tea.ModCtrl}))
	m = updated.(Model)
	if m.mode != RenameMode {
		t.Fatal("Expected rename mode")
	}

	m.renameInput.SetValue("Quarterly check-in")
	m = pressEnter(t, m)

	if m.mode != ChatMode {
		t.Error("Expected to return to chat mode")
	}
	idx := m.activeIndex()
	if idx < 0 || m.sessionList[idx].Title != "Quarterly check-in" {
		t.Errorf("Expected renamed session, got %q", m.sessionList[idx].Title)
	}
}

func TestHelpModeOpensAndCloses(t *testing.T) {
	m := setupTestModel(t)

	updated, _ := m.Update(tea.KeyPressMsg(tea.Key{Code: 'g', Mod: tea.ModCtrl}))
	m = updated.(Model)
	if m.mode != HelpMode {
		t.Fatal("Expected help mode")
	}

	updated, _ = m.Update(tea.KeyPressMsg(tea.Key{Text: "q", Code: 'q'}))
	m = updated.(Model)
	if m.mode != ChatMode {
		t.Error("Expected help to close on any key")
	}
}
