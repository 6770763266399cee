package models

import "time"

// Holding is one position in the demo portfolio.
type Holding struct {
	Symbol   string
	Name     string
	Sector   string
	Quantity float64
	AvgPrice float64
	// LastPrice is the most recent (mock) market price for the symbol.
	LastPrice float64
}

// CostValue returns the invested amount for the holding.
func (h Holding) CostValue() float64 {
	return h.Quantity * h.AvgPrice
}

// MarketValue returns the current value of the holding.
func (h Holding) MarketValue() float64 {
	return h.Quantity * h.LastPrice
}

// Transaction is a portfolio cash flow. Amount is negative for buys and
// positive for sells, matching the sign convention XIRR expects.
type Transaction struct {
	Symbol string
	Amount float64
	Date   time.Time
}

// Portfolio bundles holdings with the cash-flow history and watchlist.
type Portfolio struct {
	Holdings     []Holding
	Transactions []Transaction
	Watchlist    []string
}

// TotalCost returns the invested amount across all holdings.
func (p Portfolio) TotalCost() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.CostValue()
	}
	return total
}

// TotalValue returns the current market value across all holdings.
func (p Portfolio) TotalValue() float64 {
	var total float64
	for _, h := range p.Holdings {
		total += h.MarketValue()
	}
	return total
}
