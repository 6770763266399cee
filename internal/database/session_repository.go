package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

// SessionRepo handles all session-related database operations.
type SessionRepo struct {
	db *sql.DB
}

// Create inserts a new session with a fresh UUID and returns it.
func (r *SessionRepo) Create(ctx context.Context, title string) (*models.Session, error) {
	id := types.SessionID(uuid.NewString())

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, title) VALUES (?, ?)`,
		id.String(), title,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session '%s': %w", title, err)
	}

	// Retrieve the created session to get the timestamp
	return r.GetByID(ctx, id)
}

// GetAll returns all sessions ordered most-recent-first, matching the
// sidebar ordering.
func (r *SessionRepo) GetAll(ctx context.Context) ([]*models.Session, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT session_id, title, created_at
		 FROM sessions
		 ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		s := &models.Session{}
		if err := rows.Scan(&s.ID, &s.Title, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetByID returns a single session or models.ErrSessionNotFound.
func (r *SessionRepo) GetByID(ctx context.Context, id types.SessionID) (*models.Session, error) {
	s := &models.Session{}
	err := r.db.QueryRowContext(ctx,
		`SELECT session_id, title, created_at FROM sessions WHERE session_id = ?`,
		id.String(),
	).Scan(&s.ID, &s.Title, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session %s: %w", id, err)
	}
	return s, nil
}

// Rename updates the session title.
func (r *SessionRepo) Rename(ctx context.Context, id types.SessionID, title string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sessions SET title = ? WHERE session_id = ?`,
		title, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to rename session %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session. Messages cascade via the foreign key.
func (r *SessionRepo) Delete(ctx context.Context, id types.SessionID) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE session_id = ?`, id.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrSessionNotFound
	}
	return nil
}
