package app

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/database"
	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/platform"
	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

// App holds all application services and provides dependency injection.
// Both the CLI and the TUI build one per process.
type App struct {
	// History layer (direct database access), nil when disabled
	repo database.DataStore

	// Event system for live updates
	eventClient events.EventPublisher

	store    *store.Store
	resolver *resolver.Resolver
	logger   *slog.Logger

	// Service layer (business logic)
	ProjectService projectservice.Service
}

// New creates a new App with all services initialized. repo may be nil,
// which disables launch history. The project list is empty until Load.
func New(projectsFile string, repo database.DataStore, cfg *config.Config, opts ...Option) *App {
	c := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	system := projectservice.System{
		Spawner:   platform.NewSpawner(cfg.Launch.Terminal),
		Opener:    platform.NewOpener(),
		Clipboard: platform.NewClipboard(),
	}
	if c.system != nil {
		system = *c.system
	}

	res := resolver.New(cfg.Launch.Shell)
	st := store.New(projectsFile, res, c.eventClient, c.storeOptions...)

	return &App{
		repo:           repo,
		eventClient:    c.eventClient,
		store:          st,
		resolver:       res,
		logger:         c.logger,
		ProjectService: projectservice.NewService(st, res, repo, system, c.eventClient),
	}
}

// Load reads the projects file. A read failure leaves an empty list and is
// returned so the caller can report it.
func (a *App) Load(ctx context.Context) error {
	if err := a.ProjectService.Reload(ctx); err != nil {
		a.logger.Error("failed to load projects", "path", a.store.Path(), "error", err)
		return err
	}
	a.logger.Debug("projects loaded", "path", a.store.Path())
	return nil
}

// ProjectsFile returns the location of the projects file
func (a *App) ProjectsFile() string {
	return a.store.Path()
}

// Resolver returns the launch resolver shared with the store
func (a *App) Resolver() *resolver.Resolver {
	return a.resolver
}

// Repo returns the launch history repository, or nil when history is off
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Events returns the publisher shared by the store and service, may be nil
func (a *App) Events() events.EventPublisher {
	return a.eventClient
}

// Close performs cleanup of application resources. The database and the
// event bus are owned by the caller.
func (a *App) Close() error {
	return nil
}
