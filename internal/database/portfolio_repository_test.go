package database

import (
	"context"
	"errors"
	"testing"

	"github.com/subbu1996/folio/internal/models"
	"github.com/subbu1996/folio/internal/testutil"
)

func TestGetPortfolio(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	testutil.SeedHolding(t, db, "TCS.BSE", "Tata Consultancy Services", "Technology", 30, 3150, 3472.25)
	testutil.SeedHolding(t, db, "ITC.BSE", "ITC", "FMCG", 200, 312, 428.75)
	testutil.SeedTransaction(t, db, "TCS.BSE", -94500, "2022-07-01 10:00:00")

	portfolio, err := repo.GetPortfolio(ctx)
	if err != nil {
		t.Fatalf("GetPortfolio failed: %v", err)
	}

	if len(portfolio.Holdings) != 2 {
		t.Errorf("len(Holdings) = %d, want 2", len(portfolio.Holdings))
	}
	if len(portfolio.Transactions) != 1 {
		t.Errorf("len(Transactions) = %d, want 1", len(portfolio.Transactions))
	}

	// Holdings ordered by symbol: ITC before TCS
	if portfolio.Holdings[0].Symbol != "ITC.BSE" {
		t.Errorf("first holding = %s, want ITC.BSE", portfolio.Holdings[0].Symbol)
	}
}

func TestGetHoldingNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetHolding(context.Background(), "MISSING.BSE")
	if !errors.Is(err, models.ErrHoldingNotFound) {
		t.Errorf("GetHolding error = %v, want ErrHoldingNotFound", err)
	}
}

func TestUpdateLastPrice(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	testutil.SeedHolding(t, db, "INFY.BSE", "Infosys", "Technology", 60, 1380, 1344.90)

	if err := repo.UpdateLastPrice(ctx, "INFY.BSE", 1402.15); err != nil {
		t.Fatalf("UpdateLastPrice failed: %v", err)
	}

	h, err := repo.GetHolding(ctx, "INFY.BSE")
	if err != nil {
		t.Fatalf("GetHolding failed: %v", err)
	}
	if h.LastPrice != 1402.15 {
		t.Errorf("LastPrice = %v, want 1402.15", h.LastPrice)
	}
}

func TestUpdateLastPriceNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewRepository(db)

	err := repo.UpdateLastPrice(context.Background(), "MISSING.BSE", 1)
	if !errors.Is(err, models.ErrHoldingNotFound) {
		t.Errorf("UpdateLastPrice error = %v, want ErrHoldingNotFound", err)
	}
}
