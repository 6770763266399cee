// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

// DataStore defines the unified interface for all data operations needed
// by the TUI and services. This interface enables substituting fakes in
// unit tests.
type DataStore interface {
	// Sessions
	CreateSession(ctx context.Context, title string) (*models.Session, error)
	GetAllSessions(ctx context.Context) ([]*models.Session, error)
	GetSessionByID(ctx context.Context, id types.SessionID) (*models.Session, error)
	RenameSession(ctx context.Context, id types.SessionID, title string) error
	DeleteSession(ctx context.Context, id types.SessionID) error

	// Messages
	AddMessage(ctx context.Context, sessionID types.SessionID, role models.Role, content, thinking string) (*models.Message, error)
	GetMessagesBySession(ctx context.Context, sessionID types.SessionID) ([]*models.Message, error)
	UpdateMessageContent(ctx context.Context, id types.MessageID, content, thinking string) error
}

// PortfolioStore is the read surface the agent workers need.
type PortfolioStore interface {
	GetPortfolio(ctx context.Context) (*models.Portfolio, error)
	GetHolding(ctx context.Context, symbol string) (*models.Holding, error)
	GetHoldings(ctx context.Context) ([]models.Holding, error)
	GetWatchlist(ctx context.Context) ([]string, error)
}
