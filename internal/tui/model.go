package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// serviceTimeout bounds each call into the project service
const serviceTimeout = 10 * time.Second

// Model represents the application state for the TUI
type Model struct {
	// Ctx is the application context, cancelled on shutdown
	Ctx context.Context

	App    *app.App
	Config *config.Config
	Keys   KeyMap

	AppState          *state.AppState
	UiState           *state.UIState
	FormState         *state.FormState
	ViewerState       *state.ViewerState
	NotificationState *state.NotificationState

	// EventChan delivers store change events; nil when no bus is wired
	EventChan           <-chan events.Event
	SubscriptionStarted bool
}

// InitialModel creates and initializes the TUI model.
// loadErr is the error from reading the projects file, shown as a banner.
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config, loadErr error) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme.Init(cfg.ColorScheme)

	m := Model{
		Ctx:               ctx,
		App:               a,
		Config:            cfg,
		Keys:              NewKeyMap(cfg.KeyMappings),
		AppState:          state.NewAppState(nil),
		UiState:           state.NewUIState(),
		FormState:         state.NewFormState(),
		ViewerState:       state.NewViewerState(),
		NotificationState: state.NewNotificationState(),
	}

	if loadErr != nil {
		m.NotificationState.Add(state.LevelError, fmt.Sprintf("Could not read projects file: %v", loadErr))
	}

	if bus := a.Events(); bus != nil {
		eventChan, err := bus.Listen(ctx)
		if err != nil {
			slog.Warn("failed to subscribe to change events", "error", err)
		} else {
			m.EventChan = eventChan
		}
	}

	return m
}

// Init starts the program; the event subscription starts on the first update.
func (m Model) Init() tea.Cmd {
	return nil
}

// ServiceContext returns a child context with a timeout for service calls
func (m *Model) ServiceContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(m.Ctx, serviceTimeout)
}

// SelectedProject returns the highlighted project
func (m *Model) SelectedProject() (models.Project, bool) {
	return m.AppState.ProjectAt(m.UiState.Selected())
}

// Notify shows a banner
func (m *Model) Notify(level state.NotificationLevel, format string, args ...any) {
	m.NotificationState.Add(level, fmt.Sprintf(format, args...))
}

// HandleError logs err and shows it as an error banner prefixed by action
func (m *Model) HandleError(action string, err error) {
	slog.Error(action, "error", err)
	m.NotificationState.Add(state.LevelError, action+": "+err.Error())
}
