package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/testutil"
	"github.com/subbu1996/folio/internal/types"
)

func setupService(t *testing.T) (Service, types.SessionID) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	repo := database.NewRepository(db)
	created, err := repo.CreateSession(context.Background(), "Test Chat")
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return NewService(repo), created.ID
}

func TestAddUserMessageValidation(t *testing.T) {
	svc, sessionID := setupService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "empty draft", content: "", wantErr: ErrEmptyMessage},
		{name: "whitespace draft", content: "   \n\t  ", wantErr: ErrEmptyMessage},
		{name: "too long", content: strings.Repeat("x", 4001), wantErr: ErrMessageTooLong},
		{name: "valid message", content: "What is my XIRR?", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddUserMessage(ctx, sessionID, tt.content)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAddUserMessagePreservesContent(t *testing.T) {
	svc, sessionID := setupService(t)
	ctx := context.Background()

	// Interior newlines from Shift+Enter must survive storage untouched
	content := "line one\nline two\nline three"
	msg, err := svc.AddUserMessage(ctx, sessionID, content)
	if err != nil {
		t.Fatalf("AddUserMessage failed: %v", err)
	}
	if msg.Content != content {
		t.Errorf("Expected content %q, got %q", content, msg.Content)
	}
	if msg.Role != models.RoleUser {
		t.Errorf("Expected user role, got %q", msg.Role)
	}
}

func TestTranscriptOrder(t *testing.T) {
	svc, sessionID := setupService(t)
	ctx := context.Background()

	if _, err := svc.AddUserMessage(ctx, sessionID, "first question"); err != nil {
		t.Fatalf("AddUserMessage failed: %v", err)
	}
	placeholder, err := svc.BeginAssistantMessage(ctx, sessionID)
	if err != nil {
		t.Fatalf("BeginAssistantMessage failed: %v", err)
	}
	if err := svc.FinalizeAssistantMessage(ctx, placeholder.ID, "first answer", "traced"); err != nil {
		t.Fatalf("FinalizeAssistantMessage failed: %v", err)
	}
	if _, err := svc.AddUserMessage(ctx, sessionID, "second question"); err != nil {
		t.Fatalf("AddUserMessage failed: %v", err)
	}

	transcript, err := svc.GetTranscript(ctx, sessionID)
	if err != nil {
		t.Fatalf("GetTranscript failed: %v", err)
	}
	if len(transcript) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(transcript))
	}

	wantContents := []string{"first question", "first answer", "second question"}
	for i, want := range wantContents {
		if transcript[i].Content != want {
			t.Errorf("Message %d: expected %q, got %q", i, want, transcript[i].Content)
		}
	}
	if transcript[1].Thinking != "traced" {
		t.Errorf("Expected thinking trace on assistant message, got %q", transcript[1].Thinking)
	}
}

func TestFinalizeAssistantMessageNotFound(t *testing.T) {
	svc, _ := setupService(t)

	err := svc.FinalizeAssistantMessage(context.Background(), 9999, "content", "")
	if !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("Expected ErrMessageNotFound, got %v", err)
	}
}

func TestInvalidSessionRejected(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	if _, err := svc.AddUserMessage(ctx, "", "hello"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Expected ErrInvalidSession, got %v", err)
	}
	if _, err := svc.GetTranscript(ctx, ""); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("Expected ErrInvalidSession, got %v", err)
	}
}
