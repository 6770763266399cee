// Package agent implements the assistant that answers chat queries. A
// supervisor routes each query to worker agents (portfolio analytics,
// news) and streams the combined answer back as chunks.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/subbu1996/folio/internal/database"
)

// worker is one specialist the supervisor can delegate to.
type worker interface {
	name() string
	run(ctx context.Context, query string) (*workerResult, error)
}

// Supervisor routes queries to workers and streams their answers.
type Supervisor struct {
	portfolio worker
	news      worker

	// chunkDelay paces content chunks so streaming is visible in the
	// UI. Zero disables pacing, which tests rely on.
	chunkDelay time.Duration
}

// Option configures a Supervisor.
type Option func(*Supervisor)

// WithChunkDelay sets the pause between streamed content chunks.
func WithChunkDelay(d time.Duration) Option {
	return func(s *Supervisor) {
		s.chunkDelay = d
	}
}

// NewSupervisor builds the default supervisor over the given store.
func NewSupervisor(store database.PortfolioStore, opts ...Option) *Supervisor {
	s := &Supervisor{
		portfolio: &portfolioWorker{store: store},
		news:      &newsWorker{store: store},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Respond answers the query on a channel of chunks. The channel carries
// zero or more ChunkThinking and ChunkContent chunks, then exactly one
// terminal chunk, then closes. Cancel ctx to stop mid-stream.
func (s *Supervisor) Respond(ctx context.Context, query string) <-chan Chunk {
	out := make(chan Chunk)
	go func() {
		defer close(out)
		s.respond(ctx, query, out)
	}()
	return out
}

func (s *Supervisor) respond(ctx context.Context, query string, out chan<- Chunk) {
	workers := s.route(query)

	if !s.emit(ctx, out, Chunk{
		Kind: ChunkThinking,
		Text: fmt.Sprintf("**[Supervisor]**: Routing query to %s.", workerNames(workers)),
	}) {
		return
	}

	var sections []string
	for _, w := range workers {
		res, err := w.run(ctx, query)
		if err != nil {
			slog.Error("worker failed", "worker", w.name(), "error", err)
			s.emit(ctx, out, Chunk{
				Kind: ChunkError,
				Text: "Sorry, I hit a problem while working on that. Please try again.",
			})
			return
		}
		for _, line := range res.thinking {
			if !s.emit(ctx, out, Chunk{
				Kind: ChunkThinking,
				Text: fmt.Sprintf("**[%s]**: %s", w.name(), line),
			}) {
				return
			}
		}
		sections = append(sections, res.sections...)
	}

	answer := strings.Join(sections, "\n\n")
	for _, fragment := range splitStream(answer) {
		if !s.emit(ctx, out, Chunk{Kind: ChunkContent, Text: fragment}) {
			return
		}
		if s.chunkDelay > 0 {
			select {
			case <-time.After(s.chunkDelay):
			case <-ctx.Done():
				s.sendStopped(out)
				return
			}
		}
	}

	s.emit(ctx, out, Chunk{Kind: ChunkDone})
}

// route picks the workers for a query. Portfolio questions go to the
// quant, news questions to the analyst, mixed queries to both with the
// portfolio answer first, and anything else gets the portfolio overview.
func (s *Supervisor) route(query string) []worker {
	q := strings.ToLower(query)

	wantNews := containsAny(q, "news", "headline", "sentiment", "article", "announcement")
	wantPortfolio := containsAny(q,
		"portfolio", "holding", "position", "stock", "value", "worth",
		"xirr", "cagr", "return", "pnl", "p&l", "profit", "loss", "gain",
		"exposure", "sector", "allocation", "performance", "drawdown", "risk")

	switch {
	case wantPortfolio && wantNews:
		return []worker{s.portfolio, s.news}
	case wantNews:
		return []worker{s.news}
	default:
		return []worker{s.portfolio}
	}
}

// emit sends a chunk unless the context is already cancelled. When the
// context wins it sends ChunkStopped instead and reports false. The
// upfront check keeps the outcome deterministic once cancel happened.
func (s *Supervisor) emit(ctx context.Context, out chan<- Chunk, c Chunk) bool {
	select {
	case <-ctx.Done():
		s.sendStopped(out)
		return false
	default:
	}

	select {
	case <-ctx.Done():
		s.sendStopped(out)
		return false
	case out <- c:
		return true
	}
}

// sendStopped delivers the terminal stop chunk. Consumers drain the
// channel until it closes, so a plain send cannot deadlock.
func (s *Supervisor) sendStopped(out chan<- Chunk) {
	out <- Chunk{Kind: ChunkStopped}
}

func workerNames(workers []worker) string {
	names := make([]string, len(workers))
	for i, w := range workers {
		names[i] = w.name()
	}
	return strings.Join(names, " and ")
}

// splitStream breaks the answer into word-boundary fragments so the UI
// can render it incrementally.
func splitStream(answer string) []string {
	const wordsPerChunk = 4

	words := strings.SplitAfter(answer, " ")
	var fragments []string
	for start := 0; start < len(words); start += wordsPerChunk {
		end := min(start+wordsPerChunk, len(words))
		fragments = append(fragments, strings.Join(words[start:end], ""))
	}
	return fragments
}
