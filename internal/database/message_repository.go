package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/types"
)

// MessageRepo handles all message-related database operations.
type MessageRepo struct {
	db *sql.DB
}

// Add inserts a message and returns it with its assigned ID and timestamp.
// Thinking may be empty; it is stored as NULL so the transcript query can
// distinguish "no trace" from an empty trace.
func (r *MessageRepo) Add(ctx context.Context, sessionID types.SessionID, role models.Role, content, thinking string) (*models.Message, error) {
	var thinkingArg any
	if thinking != "" {
		thinkingArg = thinking
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (session_id, role, content, thinking)
		 VALUES (?, ?, ?, ?)`,
		sessionID.String(), string(role), content, thinkingArg,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert message for session %s: %w", sessionID, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get message ID after insert: %w", err)
	}

	msg := &models.Message{}
	var thinkingCol sql.NullString
	err = r.db.QueryRowContext(ctx,
		`SELECT id, session_id, role, content, thinking, created_at
		 FROM messages WHERE id = ?`,
		id,
	).Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &thinkingCol, &msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to read back message %d: %w", id, err)
	}
	msg.Thinking = thinkingCol.String

	return msg, nil
}

// GetBySession returns all messages for a session in insertion order.
func (r *MessageRepo) GetBySession(ctx context.Context, sessionID types.SessionID) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, session_id, role, content, thinking, created_at
		 FROM messages
		 WHERE session_id = ?
		 ORDER BY id ASC`,
		sessionID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var messages []*models.Message
	for rows.Next() {
		msg := &models.Message{}
		var thinkingCol sql.NullString
		if err := rows.Scan(
			&msg.ID, &msg.SessionID, &msg.Role, &msg.Content, &thinkingCol, &msg.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}
		msg.Thinking = thinkingCol.String
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return messages, nil
}

// UpdateContent replaces a message's content and thinking trace. Used to
// finalize the placeholder assistant message once streaming completes.
func (r *MessageRepo) UpdateContent(ctx context.Context, id types.MessageID, content, thinking string) error {
	var thinkingArg any
	if thinking != "" {
		thinkingArg = thinking
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE messages SET content = ?, thinking = ? WHERE id = ?`,
		content, thinkingArg, id.ToInt64(),
	)
	if err != nil {
		return fmt.Errorf("failed to update message %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrMessageNotFound
	}
	return nil
}
