// Package launcher wires the application and runs the interactive board.
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/database"
	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/logging"
	"github.com/thenoetrevino/tiles/internal/tui/core"
)

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
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}

	projectsFile, err := config.ProjectsFilePath()
	if err != nil {
		return fmt.Errorf("failed to locate projects file: %w", err)
	}

	// In-process bus: store mutations reach the board as RefreshMsg
	bus := events.NewBus(0)
	defer func() {
		if err := bus.Close(); err != nil {
			slog.Error("error closing event bus", "error", err)
		}
	}()

	// Launch history is optional, tiles still work without it
	var repo database.DataStore
	db, err := database.InitDB(ctx)
	if err != nil {
		slog.Warn("launch history unavailable", "error", err)
	} else {
		repo = database.NewRepository(db)
		defer func() {
			if err := db.Close(); err != nil {
				slog.Error("error closing database", "error", err)
			}
		}()
	}

	application := app.New(projectsFile, repo, cfg,
		app.WithEventPublisher(bus),
		app.WithLogger(logging.Logger),
	)
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing application", "error", err)
		}
	}()

	// A broken projects file is reported on the board, not fatal
	loadErr := application.Load(ctx)

	tuiApp := core.New(ctx, application, cfg, loadErr)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
