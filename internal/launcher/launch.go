// Package launcher wires the application together and runs the TUI.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/subbu1996/folio/internal/agent"
	"github.com/subbu1996/folio/internal/config"
	"github.com/subbu1996/folio/internal/database"
	"github.com/subbu1996/folio/internal/logging"
	"github.com/subbu1996/folio/internal/services/chat"
	"github.com/subbu1996/folio/internal/services/session"
	"github.com/subbu1996/folio/internal/tui"
)

// streamPacing is the delay between streamed chunks so responses read
// as typed rather than appearing at once.
const streamPacing = 30 * time.Millisecond

// Launch starts the TUI application
func Launch() error {
	// Initialize logging to file before anything else
	if err := logging.Init(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	initCtx := context.Background()
	db, err := database.InitDB(initCtx)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	// database cleanup
	defer func() {
		// Allow time for in-flight operations to complete
		drainCtx, drainCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer drainCancel()

		select {
		case <-drainCtx.Done():
			slog.Info("drain period complete, closing database")
		case <-time.After(100 * time.Millisecond):
		}

		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	repo := database.NewRepository(db)
	sessions := session.NewService(repo)
	chatSvc := chat.NewService(repo)
	assistant := agent.NewSupervisor(repo, agent.WithChunkDelay(streamPacing))

	model := tui.InitialModel(ctx, sessions, chatSvc, assistant, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Give the program a moment to wind down in-flight queries
		time.Sleep(2 * time.Second)
	}

	return nil
}
