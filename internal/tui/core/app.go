package core

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/handlers"
	"github.com/thenoetrevino/tiles/internal/tui/modelops"
	"github.com/thenoetrevino/tiles/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
// It delegates all operations to the handlers and render subpackages.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model and the current project list.
// loadErr is the projects file load error, if any, shown as a banner.
func New(ctx context.Context, a *app.App, cfg *config.Config, loadErr error) *App {
	model := tui.InitialModel(ctx, a, cfg, loadErr)
	modelops.ReloadProjects(&model)
	return &App{model: &model}
}

// Init initializes the Bubble Tea application.
func (a *App) Init() tea.Cmd {
	return a.model.Init()
}

// Update handles all messages and updates the model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := handlers.Update(a.model, msg)
	return a, cmd
}

// View renders the current state of the application.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
