package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

const maxTitleLength = 100

// Service defines all session-related business operations
type Service interface {
	CreateSession(ctx context.Context, title string) (*models.Session, error)
	GetAllSessions(ctx context.Context) ([]*models.Session, error)
	GetSessionByID(ctx context.Context, id types.SessionID) (*models.Session, error)
	RenameSession(ctx context.Context, id types.SessionID, title string) error

	// DeleteSession removes a session and its messages, and returns the
	// session that should become active next: the most recently created
	// survivor, or nil when none remain.
	DeleteSession(ctx context.Context, id types.SessionID) (*models.Session, error)
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new session service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// CreateSession creates a session, defaulting the title when blank.
func (s *service) CreateSession(ctx context.Context, title string) (*models.Session, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = models.DefaultSessionTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}

	created, err := s.repo.CreateSession(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetAllSessions lists sessions, most recently created first.
func (s *service) GetAllSessions(ctx context.Context) ([]*models.Session, error) {
	sessions, err := s.repo.GetAllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

func (s *service) GetSessionByID(ctx context.Context, id types.SessionID) (*models.Session, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	found, err := s.repo.GetSessionByID(ctx, id)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return found, nil
}

// RenameSession validates and applies a new title.
func (s *service) RenameSession(ctx context.Context, id types.SessionID, title string) error {
	if id == "" {
		return ErrInvalidID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return ErrTitleTooLong
	}

	err := s.repo.RenameSession(ctx, id, title)
	if errors.Is(err, models.ErrSessionNotFound) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to rename session: %w", err)
	}
	return nil
}

func (s *service) DeleteSession(ctx context.Context, id types.SessionID) (*models.Session, error) {
	if id == "" {
		return nil, ErrInvalidID
	}

	err := s.repo.DeleteSession(ctx, id)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}

	// Session list comes back most recently created first, so the first
	// survivor is the fallback.
	remaining, err := s.repo.GetAllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions after delete: %w", err)
	}
	if len(remaining) == 0 {
		return nil, nil
	}
	return remaining[0], nil
}
