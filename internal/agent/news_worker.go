package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/subbu1996/folio/internal/database"
)

// newsWorker is "The Analyst": it surfaces recent headlines and a rough
// sentiment read for the symbols the user holds or watches.
type newsWorker struct {
	store database.PortfolioStore
}

type headline struct {
	symbol    string
	text      string
	sentiment string
}

// Canned wire until a real news feed is plugged in. Keyed by the base
// symbol, without the exchange suffix.
var newsWire = map[string][]headline{
	"RELIANCE": {
		{symbol: "RELIANCE", text: "Reliance retail arm reports double-digit festive quarter growth", sentiment: "positive"},
		{symbol: "RELIANCE", text: "Refining margins narrow as crude volatility persists", sentiment: "negative"},
	},
	"TCS": {
		{symbol: "TCS", text: "TCS wins multi-year cloud modernization deal with European insurer", sentiment: "positive"},
	},
	"HDFCBANK": {
		{symbol: "HDFCBANK", text: "HDFC Bank net interest margin steadies after merger digestion", sentiment: "neutral"},
	},
	"INFY": {
		{symbol: "INFY", text: "Infosys trims full-year revenue guidance on discretionary spend slowdown", sentiment: "negative"},
	},
	"ITC": {
		{symbol: "ITC", text: "ITC hotels demerger record date set, analysts see value unlock", sentiment: "positive"},
	},
	"SBIN": {
		{symbol: "SBIN", text: "SBI posts record quarterly profit on treasury gains", sentiment: "positive"},
	},
}

func (w *newsWorker) name() string {
	return "News Agent"
}

func (w *newsWorker) run(ctx context.Context, query string) (*workerResult, error) {
	symbols, err := w.relevantSymbols(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resolving symbols for news: %w", err)
	}

	res := &workerResult{}
	res.thinking = append(res.thinking,
		fmt.Sprintf("Scanning headlines for %d symbols.", len(symbols)))

	var b strings.Builder
	b.WriteString("**Recent headlines**\n\n")

	found := 0
	for _, symbol := range symbols {
		for _, h := range newsWire[baseSymbol(symbol)] {
			fmt.Fprintf(&b, "- %s: %s _(%s)_\n", h.symbol, h.text, h.sentiment)
			found++
		}
	}

	if found == 0 {
		b.WriteString("No fresh headlines for your symbols right now.")
		res.thinking = append(res.thinking, "No matching headlines on the wire.")
	} else {
		res.thinking = append(res.thinking,
			fmt.Sprintf("Found %d headlines, tagged sentiment per item.", found))
	}

	res.sections = append(res.sections, strings.TrimRight(b.String(), "\n"))
	return res, nil
}

// relevantSymbols returns symbols named in the query, or the full set
// of held plus watched symbols when the query names none.
func (w *newsWorker) relevantSymbols(ctx context.Context, query string) ([]string, error) {
	holdings, err := w.store.GetHoldings(ctx)
	if err != nil {
		return nil, err
	}
	watchlist, err := w.store.GetWatchlist(ctx)
	if err != nil {
		return nil, err
	}

	all := make([]string, 0, len(holdings)+len(watchlist))
	for _, h := range holdings {
		all = append(all, h.Symbol)
	}
	all = append(all, watchlist...)

	upper := strings.ToUpper(query)
	var named []string
	for _, symbol := range all {
		if strings.Contains(upper, baseSymbol(symbol)) {
			named = append(named, symbol)
		}
	}
	if len(named) > 0 {
		return named, nil
	}
	return all, nil
}

// baseSymbol strips the exchange suffix, RELIANCE.BSE becomes RELIANCE.
func baseSymbol(symbol string) string {
	base, _, _ := strings.Cut(symbol, ".")
	return base
}
