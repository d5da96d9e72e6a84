// Package cli holds the shared plumbing of the tiles command line: the
// application context, output formatting and exit codes.
package cli

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container with services
	Config *config.Config
	db     *sql.DB
}

// NewCLI loads configuration, opens the launch history and reads the
// projects file. History is optional: when the database cannot be opened
// the CLI runs without it.
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load configuration, using defaults", "error", err)
		cfg = config.Default()
	}

	projectsFile, err := config.ProjectsFilePath()
	if err != nil {
		return nil, fmt.Errorf("failed to locate projects file: %w", err)
	}

	var repo database.DataStore
	db, err := database.InitDB(ctx)
	if err != nil {
		slog.Warn("launch history unavailable", "error", err)
	} else {
		repo = database.NewRepository(db)
	}

	c := &CLI{
		App:    app.New(projectsFile, repo, cfg),
		Config: cfg,
		db:     db,
	}

	if err := c.App.Load(ctx); err != nil {
		_ = c.Close()
		return nil, err
	}
	return c, nil
}

// NewCLIWithApp wraps an already built application
func NewCLIWithApp(application *app.App, cfg *config.Config) *CLI {
	if cfg == nil {
		cfg = config.Default()
	}
	return &CLI{App: application, Config: cfg}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.db != nil {
		if err := c.db.Close(); err != nil {
			return fmt.Errorf("failed to close history database: %w", err)
		}
		c.db = nil
	}
	return c.App.Close()
}
