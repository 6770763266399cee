package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds the demo portfolio
// if the holdings table is empty.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Chat sessions
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Messages, owned by sessions
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			thinking TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_messages_session
		ON messages(session_id, id)
	`)
	if err != nil {
		return err
	}

	// Portfolio holdings
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS holdings (
			symbol TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			sector TEXT NOT NULL,
			quantity REAL NOT NULL,
			avg_price REAL NOT NULL,
			last_price REAL NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Portfolio cash flows (negative = buy, positive = sell)
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS transactions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			symbol TEXT NOT NULL,
			amount REAL NOT NULL,
			tx_date DATETIME NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Watchlist symbols
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS watchlist (
			symbol TEXT PRIMARY KEY
		)
	`)
	if err != nil {
		return err
	}

	return seedDemoPortfolio(ctx, db)
}

// seedDemoPortfolio inserts the demo holdings if the table is empty.
// The agent answers portfolio questions against this data until a real
// broker import exists.
func seedDemoPortfolio(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM holdings").Scan(&count)
	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	holdings := []struct {
		symbol   string
		name     string
		sector   string
		quantity float64
		avgPrice float64
		lastPr   float64
	}{
		{"RELIANCE.BSE", "Reliance Industries", "Energy", 50, 2210.00, 2486.50},
		{"TCS.BSE", "Tata Consultancy Services", "Technology", 30, 3150.00, 3472.25},
		{"HDFCBANK.BSE", "HDFC Bank", "Banking", 80, 1425.00, 1529.10},
		{"INFY.BSE", "Infosys", "Technology", 60, 1380.00, 1344.90},
		{"ITC.BSE", "ITC", "FMCG", 200, 312.00, 428.75},
	}

	for _, h := range holdings {
		_, err := db.ExecContext(ctx,
			`INSERT INTO holdings (symbol, name, sector, quantity, avg_price, last_price)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			h.symbol, h.name, h.sector, h.quantity, h.avgPrice, h.lastPr,
		)
		if err != nil {
			return err
		}
	}

	transactions := []struct {
		symbol string
		amount float64
		date   string
	}{
		{"RELIANCE.BSE", -110500.00, "2022-04-12 10:00:00"},
		{"TCS.BSE", -94500.00, "2022-07-01 10:00:00"},
		{"HDFCBANK.BSE", -114000.00, "2023-01-18 10:00:00"},
		{"INFY.BSE", -82800.00, "2023-06-09 10:00:00"},
		{"ITC.BSE", -62400.00, "2024-02-23 10:00:00"},
	}

	for _, t := range transactions {
		_, err := db.ExecContext(ctx,
			`INSERT INTO transactions (symbol, amount, tx_date) VALUES (?, ?, ?)`,
			t.symbol, t.amount, t.date,
		)
		if err != nil {
			return err
		}
	}

	watchlist := []string{"BHARTIARTL.BSE", "LT.BSE", "SBIN.BSE"}
	for _, symbol := range watchlist {
		_, err := db.ExecContext(ctx,
			`INSERT INTO watchlist (symbol) VALUES (?)`, symbol,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
