package handlers

import (
	"errors"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/huhforms"
	"github.com/thenoetrevino/tiles/internal/tui/layers"
	"github.com/thenoetrevino/tiles/internal/tui/modelops"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// browseKey switches the add dialog to the directory picker
const browseKey = "ctrl+o"

// ============================================================================
// OPENING FORMS
// ============================================================================

// openForm installs form as the active dialog and switches mode
func openForm(m *tui.Model, mode state.Mode, form *huh.Form, accent string) tea.Cmd {
	m.FormState.Form = form.
		WithTheme(huhforms.CreateTilesTheme(m.Config.ColorScheme, accent)).
		WithWidth(formWidth(m))
	m.UiState.SetMode(mode)
	return m.FormState.Form.Init()
}

func openAddForm(m *tui.Model) tea.Cmd {
	m.FormState.Clear()
	return openForm(m, state.AddProjectMode, huhforms.CreateAddProjectForm(&m.FormState.AddPath), theme.Create)
}

// openBrowseForm starts the picker at the typed directory, falling back to home
func openBrowseForm(m *tui.Model) tea.Cmd {
	start := browseStart(m.FormState.AddPath)
	m.FormState.Clear()
	return openForm(m, state.BrowseDirMode, huhforms.CreateBrowseForm(&m.FormState.BrowseDir, start), theme.Create)
}

func openSettingsForm(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}
	m.FormState.Clear()
	m.FormState.EditingID = p.ID
	m.FormState.Fields = p.Fields()
	return reopenSettingsForm(m)
}

// reopenSettingsForm rebuilds the settings dialog over the values already
// bound in FormState, used after a test launch or a rejected save
func reopenSettingsForm(m *tui.Model) tea.Cmd {
	form := huhforms.CreateSettingsForm(&m.FormState.Fields, &m.FormState.Action)
	return openForm(m, state.EditProjectMode, form, theme.Edit)
}

func openIconForm(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}
	m.FormState.Clear()
	m.FormState.EditingID = p.ID

	start := p.Path
	if p.IconPath != "" {
		start = filepath.Dir(p.IconPath)
	}
	return openForm(m, state.IconPickerMode, huhforms.CreateIconForm(&m.FormState.IconPath, browseStart(start)), theme.Accent)
}

func openDeleteForm(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}
	m.FormState.Clear()
	m.FormState.EditingID = p.ID
	return openForm(m, state.DeleteConfirmMode, huhforms.CreateDeleteForm(p.Name, &m.FormState.ConfirmDelete), theme.Delete)
}

// closeForm drops the dialog and returns to the board
func closeForm(m *tui.Model) {
	m.FormState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

// ============================================================================
// FORM UPDATES
// ============================================================================

// UpdateForm forwards every message to the open form and acts on completion.
// This is separated out because forms need to receive ALL messages, not just KeyMsg
func UpdateForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	if !m.FormState.HasForm() {
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch m.UiState.Mode() {
		case state.EditProjectMode:
			if keyMsg.String() == m.Config.KeyMappings.SaveForm {
				m.FormState.Action = state.ActionSave
				return completeForm(m)
			}
		case state.AddProjectMode:
			if keyMsg.String() == browseKey {
				return openBrowseForm(m)
			}
		}
	}

	model, cmd := m.FormState.Form.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.FormState.Form = form
	}

	switch m.FormState.Form.State {
	case huh.StateCompleted:
		return completeForm(m)
	case huh.StateAborted:
		closeForm(m)
		return nil
	}
	return cmd
}

// completeForm applies the values of the finished dialog
func completeForm(m *tui.Model) tea.Cmd {
	switch m.UiState.Mode() {
	case state.AddProjectMode:
		registerPath(m, m.FormState.AddPath)
	case state.BrowseDirMode:
		if m.FormState.BrowseDir != "" {
			registerPath(m, m.FormState.BrowseDir)
		}
	case state.EditProjectMode:
		return completeSettings(m)
	case state.IconPickerMode:
		completeIcon(m)
	case state.DeleteConfirmMode:
		completeDelete(m)
	}
	closeForm(m)
	return nil
}

func registerPath(m *tui.Model, path string) {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	p, err := m.App.ProjectService.RegisterPath(ctx, path)
	modelops.ReloadProjects(m)
	if p.ID != "" {
		modelops.SelectProject(m, p.ID)
	}
	if err != nil {
		m.HandleError("Could not add "+path, err)
		return
	}
	m.Notify(state.LevelInfo, "Added %s", p.Name)
}

// completeSettings saves or test-launches from the settings dialog. The
// dialog stays open after a test launch and after a rejected save.
func completeSettings(m *tui.Model) tea.Cmd {
	fields := m.FormState.Fields

	if m.FormState.Action == state.ActionTest {
		testLaunch(m, fields.Command, fields.Path)
		return reopenSettingsForm(m)
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	p, err := m.App.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{
		ID:             m.FormState.EditingID,
		Name:           &fields.Name,
		Path:           &fields.Path,
		Command:        &fields.Command,
		IconPath:       &fields.IconPath,
		RunAsAdmin:     &fields.RunAsAdmin,
		StartMinimized: &fields.StartMinimized,
	})
	if err != nil {
		m.HandleError("Settings not saved", err)
		if isValidationError(err) {
			return reopenSettingsForm(m)
		}
		closeForm(m)
		return nil
	}

	closeForm(m)
	modelops.ReloadProjects(m)
	modelops.SelectProject(m, p.ID)
	m.Notify(state.LevelInfo, "Saved %s", p.Name)
	return nil
}

func completeIcon(m *tui.Model) {
	if m.FormState.IconPath == "" {
		return
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	icon := m.FormState.IconPath
	p, err := m.App.ProjectService.UpdateProject(ctx, projectservice.UpdateProjectRequest{
		ID:       m.FormState.EditingID,
		IconPath: &icon,
	})
	if err != nil {
		m.HandleError("Icon not changed", err)
		return
	}

	modelops.ReloadProjects(m)
	if _, err := resolver.LoadIcon(icon); err != nil {
		m.Notify(state.LevelWarning, "%s cannot be read, %s keeps the default glyph", filepath.Base(icon), p.Name)
		return
	}
	m.Notify(state.LevelInfo, "Icon of %s changed", p.Name)
}

func completeDelete(m *tui.Model) {
	if !m.FormState.ConfirmDelete {
		return
	}

	id := m.FormState.EditingID
	name := id
	if i := m.AppState.IndexOf(id); i >= 0 {
		p, _ := m.AppState.ProjectAt(i)
		name = p.Name
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	if err := m.App.ProjectService.DeleteProject(ctx, id); err != nil {
		m.HandleError("Delete failed", err)
		return
	}

	modelops.ReloadProjects(m)
	m.Notify(state.LevelInfo, "Deleted %s", name)
}

// ============================================================================
// HELPERS
// ============================================================================

// formWidth is the inner width available to a dialog
func formWidth(m *tui.Model) int {
	width, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height())
	return max(width-4, 10)
}

// browseStart returns dir when it names an existing directory, else home
func browseStart(dir string) string {
	if dir != "" {
		if abs, err := projectservice.NormalizePath(dir); err == nil {
			if info, err := os.Stat(abs); err == nil && info.IsDir() {
				return abs
			}
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func isValidationError(err error) bool {
	return errors.Is(err, projectservice.ErrEmptyName) ||
		errors.Is(err, projectservice.ErrNameTooLong) ||
		errors.Is(err, projectservice.ErrEmptyPath)
}
