// Package analytics implements the portfolio math the agent workers
// report on: XIRR, CAGR, P&L, sector exposure and drawdown. All
// functions are pure and deterministic.
package analytics

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/subbu1996/folio/internal/models"
)

var (
	// ErrNoCashFlows indicates XIRR was asked for with no transactions
	ErrNoCashFlows = errors.New("no cash flows to compute XIRR from")

	// ErrNoConvergence indicates Newton-Raphson failed to converge
	ErrNoConvergence = errors.New("XIRR iteration did not converge")

	// ErrInvalidPeriod indicates CAGR was asked for over a non-positive period
	ErrInvalidPeriod = errors.New("CAGR period must be positive")
)

const (
	newtonMaxIterations = 100
	newtonTolerance     = 1e-7
	daysPerYear         = 365.0
)

// xnpv computes net present value for irregular intervals. Flows are
// discounted from the earliest date in the series.
func xnpv(rate float64, flows []models.Transaction, asOf time.Time, terminal float64) float64 {
	if len(flows) == 0 {
		return terminal
	}

	minDate := flows[0].Date
	for _, f := range flows[1:] {
		if f.Date.Before(minDate) {
			minDate = f.Date
		}
	}

	total := 0.0
	for _, f := range flows {
		years := f.Date.Sub(minDate).Hours() / 24 / daysPerYear
		total += f.Amount / math.Pow(1+rate, years)
	}

	// Treat the current value as a final sale today
	years := asOf.Sub(minDate).Hours() / 24 / daysPerYear
	total += terminal / math.Pow(1+rate, years)

	return total
}

// XIRR computes the annualized internal rate of return for the given
// cash flows plus the current portfolio value treated as a terminal
// inflow at asOf, using Newton-Raphson with a numeric derivative.
// Returns a fraction (0.12 = 12%).
func XIRR(flows []models.Transaction, currentValue float64, asOf time.Time) (float64, error) {
	if len(flows) == 0 {
		return 0, ErrNoCashFlows
	}

	rate := 0.1 // initial guess, matches the usual convention
	for i := 0; i < newtonMaxIterations; i++ {
		value := xnpv(rate, flows, asOf, currentValue)
		if math.Abs(value) < newtonTolerance {
			return rate, nil
		}

		// Numeric derivative
		const h = 1e-6
		derivative := (xnpv(rate+h, flows, asOf, currentValue) - value) / h
		if derivative == 0 || math.IsNaN(derivative) || math.IsInf(derivative, 0) {
			return 0, ErrNoConvergence
		}

		next := rate - value/derivative
		if next <= -1 {
			// Rates at or below -100% blow up the discounting; clamp
			next = (rate - 1) / 2
		}
		if math.Abs(next-rate) < newtonTolerance {
			return next, nil
		}
		rate = next
	}

	return 0, ErrNoConvergence
}

// CAGR computes the compound annual growth rate as a fraction.
func CAGR(initialValue, finalValue, years float64) (float64, error) {
	if years <= 0 {
		return 0, ErrInvalidPeriod
	}
	if initialValue <= 0 {
		return 0, ErrInvalidPeriod
	}
	return math.Pow(finalValue/initialValue, 1/years) - 1, nil
}

// HoldingPnL is the per-holding profit and loss breakdown.
type HoldingPnL struct {
	Symbol     string
	Invested   float64
	Current    float64
	Absolute   float64
	Percentage float64
}

// PnLSummary aggregates holding-level P&L.
type PnLSummary struct {
	Holdings      []HoldingPnL
	TotalInvested float64
	TotalCurrent  float64
	TotalAbsolute float64
	TotalPercent  float64
}

// PnL computes profit and loss per holding and in total.
func PnL(holdings []models.Holding) PnLSummary {
	summary := PnLSummary{}
	for _, h := range holdings {
		invested := h.CostValue()
		current := h.MarketValue()
		entry := HoldingPnL{
			Symbol:   h.Symbol,
			Invested: invested,
			Current:  current,
			Absolute: current - invested,
		}
		if invested != 0 {
			entry.Percentage = (current - invested) / invested * 100
		}
		summary.Holdings = append(summary.Holdings, entry)
		summary.TotalInvested += invested
		summary.TotalCurrent += current
	}
	summary.TotalAbsolute = summary.TotalCurrent - summary.TotalInvested
	if summary.TotalInvested != 0 {
		summary.TotalPercent = summary.TotalAbsolute / summary.TotalInvested * 100
	}
	return summary
}

// SectorExposure is one sector's share of the portfolio by market value.
type SectorExposure struct {
	Sector  string
	Value   float64
	Percent float64
}

// Exposure computes sector weights by current market value, sorted by
// descending weight with sector name as tiebreaker.
func Exposure(holdings []models.Holding) []SectorExposure {
	totals := make(map[string]float64)
	var grandTotal float64
	for _, h := range holdings {
		value := h.MarketValue()
		totals[h.Sector] += value
		grandTotal += value
	}

	exposures := make([]SectorExposure, 0, len(totals))
	for sector, value := range totals {
		e := SectorExposure{Sector: sector, Value: value}
		if grandTotal != 0 {
			e.Percent = value / grandTotal * 100
		}
		exposures = append(exposures, e)
	}

	sort.Slice(exposures, func(i, j int) bool {
		if exposures[i].Percent != exposures[j].Percent {
			return exposures[i].Percent > exposures[j].Percent
		}
		return exposures[i].Sector < exposures[j].Sector
	})

	return exposures
}

// MaxDrawdown returns the worst peak-to-trough decline of the series as
// a negative percentage (0 for flat or rising series).
func MaxDrawdown(series []float64) float64 {
	if len(series) == 0 {
		return 0
	}

	peak := series[0]
	maxDD := 0.0
	for _, v := range series {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (v - peak) / peak
			if dd < maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD * 100
}
