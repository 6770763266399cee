package types

// ID type aliases give the bare identifiers flowing between the UI,
// services and repositories some semantic weight.

// SessionID identifies a chat session. Sessions use UUID strings so IDs
// stay stable across exports and merges of the chat database.
type SessionID string

// MessageID identifies a single message within a session. Messages use
// the SQLite rowid.
type MessageID int64

// String returns the raw UUID string.
func (id SessionID) String() string {
	return string(id)
}

// ToInt64 converts the alias back to int64 for database parameters.
func (id MessageID) ToInt64() int64 {
	return int64(id)
}
