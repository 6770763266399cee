package database

import (
	"context"
	"database/sql"

	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*SessionRepo
	*MessageRepo
	*PortfolioRepo
}

// NewRepository creates a new Repository instance wrapping the given
// database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SessionRepo:   &SessionRepo{db: db},
		MessageRepo:   &MessageRepo{db: db},
		PortfolioRepo: &PortfolioRepo{db: db},
	}
}

// Wrapper methods for SessionRepo, named for the DataStore interface
func (r *Repository) CreateSession(ctx context.Context, title string) (*models.Session, error) {
	return r.SessionRepo.Create(ctx, title)
}

func (r *Repository) GetAllSessions(ctx context.Context) ([]*models.Session, error) {
	return r.SessionRepo.GetAll(ctx)
}

func (r *Repository) GetSessionByID(ctx context.Context, id types.SessionID) (*models.Session, error) {
	return r.SessionRepo.GetByID(ctx, id)
}

func (r *Repository) RenameSession(ctx context.Context, id types.SessionID, title string) error {
	return r.SessionRepo.Rename(ctx, id, title)
}

func (r *Repository) DeleteSession(ctx context.Context, id types.SessionID) error {
	return r.SessionRepo.Delete(ctx, id)
}

// Wrapper methods for MessageRepo
func (r *Repository) AddMessage(ctx context.Context, sessionID types.SessionID, role models.Role, content, thinking string) (*models.Message, error) {
	return r.MessageRepo.Add(ctx, sessionID, role, content, thinking)
}

func (r *Repository) GetMessagesBySession(ctx context.Context, sessionID types.SessionID) ([]*models.Message, error) {
	return r.MessageRepo.GetBySession(ctx, sessionID)
}

func (r *Repository) UpdateMessageContent(ctx context.Context, id types.MessageID, content, thinking string) error {
	return r.MessageRepo.UpdateContent(ctx, id, content, thinking)
}
