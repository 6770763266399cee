// Package chat holds the business rules for composing and persisting
// chat messages.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

const maxMessageLength = 4000

// Service defines all chat message operations
type Service interface {
	// GetTranscript returns a session's messages in send order.
	GetTranscript(ctx context.Context, sessionID types.SessionID) ([]*models.Message, error)

	// AddUserMessage validates and stores a user message. Drafts that
	// are empty or whitespace-only are rejected with ErrEmptyMessage.
	AddUserMessage(ctx context.Context, sessionID types.SessionID, content string) (*models.Message, error)

	// BeginAssistantMessage stores an empty assistant placeholder that
	// the streaming response fills in.
	BeginAssistantMessage(ctx context.Context, sessionID types.SessionID) (*models.Message, error)

	// FinalizeAssistantMessage writes the streamed content and thinking
	// trace into the placeholder.
	FinalizeAssistantMessage(ctx context.Context, id types.MessageID, content, thinking string) error
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new chat service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) GetTranscript(ctx context.Context, sessionID types.SessionID) ([]*models.Message, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	messages, err := s.repo.GetMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	return messages, nil
}

func (s *service) AddUserMessage(ctx context.Context, sessionID types.SessionID, content string) (*models.Message, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyMessage
	}
	if len(content) > maxMessageLength {
		return nil, ErrMessageTooLong
	}

	msg, err := s.repo.AddMessage(ctx, sessionID, models.RoleUser, content, "")
	if err != nil {
		return nil, fmt.Errorf("failed to store user message: %w", err)
	}
	return msg, nil
}

func (s *service) BeginAssistantMessage(ctx context.Context, sessionID types.SessionID) (*models.Message, error) {
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	msg, err := s.repo.AddMessage(ctx, sessionID, models.RoleAssistant, "", "")
	if err != nil {
		return nil, fmt.Errorf("failed to store assistant placeholder: %w", err)
	}
	return msg, nil
}

func (s *service) FinalizeAssistantMessage(ctx context.Context, id types.MessageID, content, thinking string) error {
	if id <= 0 {
		return ErrInvalidMessage
	}
	err := s.repo.UpdateMessageContent(ctx, id, content, thinking)
	if errors.Is(err, models.ErrMessageNotFound) {
		return ErrMessageNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to finalize assistant message: %w", err)
	}
	return nil
}
