// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	// Enable foreign key constraints
	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}

// createTestSchema creates the complete database schema for testing
func createTestSchema(db *sql.DB) error {
	schema := `
	-- Chat sessions
	CREATE TABLE IF NOT EXISTS sessions (
		session_id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Messages, owned by sessions
	CREATE TABLE IF NOT EXISTS messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT NOT NULL,
		role TEXT NOT NULL,
		content TEXT NOT NULL,
		thinking TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_messages_session
	ON messages(session_id, id);

	-- Portfolio holdings
	CREATE TABLE IF NOT EXISTS holdings (
		symbol TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sector TEXT NOT NULL,
		quantity REAL NOT NULL,
		avg_price REAL NOT NULL,
		last_price REAL NOT NULL
	);

	-- Portfolio cash flows (negative = buy, positive = sell)
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		symbol TEXT NOT NULL,
		amount REAL NOT NULL,
		tx_date DATETIME NOT NULL
	);

	-- Watchlist symbols
	CREATE TABLE IF NOT EXISTS watchlist (
		symbol TEXT PRIMARY KEY
	);
	`

	_, err := db.Exec(schema)
	return err
}

// SeedHolding inserts one holding row for portfolio tests.
func SeedHolding(t *testing.T, db *sql.DB, symbol, name, sector string, quantity, avgPrice, lastPrice float64) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO holdings (symbol, name, sector, quantity, avg_price, last_price)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		symbol, name, sector, quantity, avgPrice, lastPrice,
	)
	if err != nil {
		t.Fatalf("Failed to seed holding %s: %v", symbol, err)
	}
}

// SeedTransaction inserts one cash-flow row for portfolio tests.
func SeedTransaction(t *testing.T, db *sql.DB, symbol string, amount float64, date string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO transactions (symbol, amount, tx_date) VALUES (?, ?, ?)`,
		symbol, amount, date,
	)
	if err != nil {
		t.Fatalf("Failed to seed transaction for %s: %v", symbol, err)
	}
}
