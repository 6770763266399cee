package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/subbu1996/folio/internal/models"
)

// PortfolioRepo handles all portfolio-related database operations.
type PortfolioRepo struct {
	db *sql.DB
}

// GetPortfolio loads the full portfolio: holdings, transactions and
// watchlist in one shot, the shape the agent workers consume.
func (r *PortfolioRepo) GetPortfolio(ctx context.Context) (*models.Portfolio, error) {
	holdings, err := r.GetHoldings(ctx)
	if err != nil {
		return nil, err
	}

	transactions, err := r.GetTransactions(ctx)
	if err != nil {
		return nil, err
	}

	watchlist, err := r.GetWatchlist(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Portfolio{
		Holdings:     holdings,
		Transactions: transactions,
		Watchlist:    watchlist,
	}, nil
}

// GetHoldings returns all holdings ordered by symbol.
func (r *PortfolioRepo) GetHoldings(ctx context.Context) ([]models.Holding, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT symbol, name, sector, quantity, avg_price, last_price
		 FROM holdings
		 ORDER BY symbol`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		var h models.Holding
		if err := rows.Scan(
			&h.Symbol, &h.Name, &h.Sector, &h.Quantity, &h.AvgPrice, &h.LastPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan holding row: %w", err)
		}
		holdings = append(holdings, h)
	}

	return holdings, rows.Err()
}

// GetHolding returns one holding by symbol or models.ErrHoldingNotFound.
func (r *PortfolioRepo) GetHolding(ctx context.Context, symbol string) (*models.Holding, error) {
	h := &models.Holding{}
	err := r.db.QueryRowContext(ctx,
		`SELECT symbol, name, sector, quantity, avg_price, last_price
		 FROM holdings WHERE symbol = ?`,
		symbol,
	).Scan(&h.Symbol, &h.Name, &h.Sector, &h.Quantity, &h.AvgPrice, &h.LastPrice)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrHoldingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding %s: %w", symbol, err)
	}
	return h, nil
}

// GetTransactions returns all cash flows in date order.
func (r *PortfolioRepo) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT symbol, amount, tx_date
		 FROM transactions
		 ORDER BY tx_date ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.Symbol, &t.Amount, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, t)
	}

	return transactions, rows.Err()
}

// GetWatchlist returns the watched symbols.
func (r *PortfolioRepo) GetWatchlist(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT symbol FROM watchlist ORDER BY symbol`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}
	defer rows.Close()

	var symbols []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan watchlist row: %w", err)
		}
		symbols = append(symbols, s)
	}

	return symbols, rows.Err()
}

// UpdateLastPrice updates the mock market price for a symbol.
func (r *PortfolioRepo) UpdateLastPrice(ctx context.Context, symbol string, price float64) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE holdings SET last_price = ? WHERE symbol = ?`,
		price, symbol,
	)
	if err != nil {
		return fmt.Errorf("failed to update price for %s: %w", symbol, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrHoldingNotFound
	}
	return nil
}
