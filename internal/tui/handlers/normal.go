package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/modelops"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to specific handlers.
func HandleNormalMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	m.NotificationState.Clear()

	key := msg.String()
	km := m.Config.KeyMappings

	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.LaunchProject:
		return handleLaunch(m)
	case km.TestLaunch:
		return handleTestLaunch(m)
	case km.AddProject:
		return openAddForm(m)
	case km.EditProject:
		return openSettingsForm(m)
	case km.DeleteProject:
		return openDeleteForm(m)
	case km.ChangeIcon:
		return openIconForm(m)
	case km.MoveTileLeft:
		return handleMoveTile(m, -1)
	case km.MoveTileRight:
		return handleMoveTile(m, 1)
	case km.OpenDirectory:
		return handleOpenDirectory(m)
	case km.CopyPath:
		return handleCopyPath(m)
	case km.ViewReadme:
		return openReadme(m)
	case km.ViewHistory:
		return openHistory(m)
	case km.Refresh:
		return handleRefresh(m)
	case km.PrevTile, "left":
		m.UiState.MoveSelection(-1, m.AppState.Len())
	case km.NextTile, "right":
		m.UiState.MoveSelection(1, m.AppState.Len())
	case km.TileUp, "up":
		m.UiState.MoveRow(-1, m.AppState.Len())
	case km.TileDown, "down":
		m.UiState.MoveRow(1, m.AppState.Len())
	case "home":
		m.UiState.SetSelected(0)
	case "end":
		m.UiState.SetSelected(m.AppState.Len() - 1)
	}
	return nil
}

// handleLaunch starts the selected project. Configuration errors leave
// everything untouched; spawn failures are journaled by the service.
func handleLaunch(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	_, err := m.App.ProjectService.Launch(ctx, p.ID)
	switch {
	case err == nil:
		m.Notify(state.LevelInfo, "Launched %s", p.Name)
	case resolver.IsConfigError(err):
		slog.Warn("launch blocked", "project_id", p.ID, "error", err)
		m.Notify(state.LevelError, "Cannot launch %s: %v", p.Name, err)
	default:
		m.HandleError("Launch of "+p.Name+" failed", err)
	}

	modelops.ReloadLastLaunch(m, p.ID)
	return nil
}

// handleTestLaunch runs the selected tile's command without journaling it
func handleTestLaunch(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}
	testLaunch(m, p.Command, p.Path)
	return nil
}

func testLaunch(m *tui.Model, command, path string) {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	if err := m.App.ProjectService.TestLaunch(ctx, command, path); err != nil {
		if resolver.IsConfigError(err) {
			m.Notify(state.LevelError, "Test launch blocked: %v", err)
			return
		}
		m.HandleError("Test launch failed", err)
		return
	}
	m.Notify(state.LevelInfo, "Test launch started: %s", command)
}

func handleMoveTile(m *tui.Model, delta int) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	if err := m.App.ProjectService.MoveProject(ctx, p.ID, delta); err != nil {
		m.HandleError("Move failed", err)
		return nil
	}

	modelops.ReloadProjects(m)
	modelops.SelectProject(m, p.ID)
	return nil
}

func handleOpenDirectory(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	if err := m.App.ProjectService.OpenDirectory(ctx, p.ID); err != nil {
		m.HandleError("Could not open "+p.Path, err)
		return nil
	}
	m.Notify(state.LevelInfo, "Opened %s", p.Path)
	return nil
}

func handleCopyPath(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	path, err := m.App.ProjectService.CopyPath(ctx, p.ID)
	if err != nil {
		m.HandleError("Copy failed", err)
		return nil
	}
	m.Notify(state.LevelInfo, "Copied %s", path)
	return nil
}

// handleRefresh re-reads the projects file from disk
func handleRefresh(m *tui.Model) tea.Cmd {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	err := m.App.ProjectService.Reload(ctx)
	modelops.ReloadProjects(m)
	if err != nil {
		m.HandleError("Reload failed", err)
		return nil
	}
	m.Notify(state.LevelInfo, "Reloaded %d projects", m.AppState.Len())
	return nil
}

// HandleDrop registers the paths in a bracketed paste, which is how
// terminals deliver files dropped onto the window.
func HandleDrop(m *tui.Model, text string) tea.Cmd {
	m.NotificationState.Clear()

	paths := projectservice.ParseDroppedPaths(text)
	if len(paths) == 0 {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	added, err := m.App.ProjectService.RegisterPaths(ctx, paths)
	modelops.ReloadProjects(m)
	if len(added) > 0 {
		modelops.SelectProject(m, added[len(added)-1].ID)
	}

	switch {
	case err == nil && len(added) == 1:
		m.Notify(state.LevelInfo, "Added %s", added[0].Name)
	case err == nil:
		m.Notify(state.LevelInfo, "Added %d projects", len(added))
	case len(added) > 0:
		slog.Warn("drop partially failed", "added", len(added), "error", err)
		m.Notify(state.LevelWarning, "Added %d of %d: %v", len(added), len(paths), firstError(err))
	default:
		m.HandleError("Nothing added", firstError(err))
	}
	return nil
}

// firstError returns the first error of a joined error
func firstError(err error) error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		if errs := joined.Unwrap(); len(errs) > 0 {
			return errs[0]
		}
	}
	return err
}
