package modelops

import (
	"log/slog"

	"github.com/thenoetrevino/tiles/internal/resolver"
	"github.com/thenoetrevino/tiles/internal/tui"
)

// ReloadProjects re-reads the project list from the service and refreshes
// the per-tile launch status and icon headers. The selection follows the
// previously highlighted project when it still exists.
func ReloadProjects(m *tui.Model) {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	selectedID := ""
	if p, ok := m.SelectedProject(); ok {
		selectedID = p.ID
	}

	projects, err := m.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		slog.Error("Error reloading projects", "error", err)
		return
	}
	m.AppState.SetProjects(projects)

	for _, p := range projects {
		loadIcon(m, p.ID, p.IconPath)

		last, err := m.App.ProjectService.LastLaunch(ctx, p.ID)
		if err != nil {
			slog.Warn("Error loading last launch", "project_id", p.ID, "error", err)
			continue
		}
		m.AppState.SetLastLaunch(p.ID, last)
	}

	if selectedID != "" {
		SelectProject(m, selectedID)
	}
	m.UiState.ClampSelection(m.AppState.Len())
}

// ReloadLastLaunch refreshes the launch status of one project
func ReloadLastLaunch(m *tui.Model, projectID string) {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	last, err := m.App.ProjectService.LastLaunch(ctx, projectID)
	if err != nil {
		slog.Warn("Error loading last launch", "project_id", projectID, "error", err)
		return
	}
	m.AppState.SetLastLaunch(projectID, last)
}

// SelectProject highlights the project with the given id if it is on the board
func SelectProject(m *tui.Model, id string) bool {
	i := m.AppState.IndexOf(id)
	if i < 0 {
		return false
	}
	m.UiState.SetSelected(i)
	return true
}

// loadIcon reads the icon header for a tile; failures fall back to the glyph
func loadIcon(m *tui.Model, id, path string) {
	if path == "" {
		m.AppState.ClearIcon(id)
		return
	}
	info, err := resolver.LoadIcon(path)
	if err != nil {
		slog.Debug("icon unavailable, using default glyph", "project_id", id, "icon", path, "error", err)
		m.AppState.ClearIcon(id)
		return
	}
	m.AppState.SetIcon(id, info)
}
