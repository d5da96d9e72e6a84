package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/modelops"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	// Start listening for store changes on the first update
	var subCmd tea.Cmd
	if m.EventChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		subCmd = modelops.SubscribeToEvents(m)
	}

	switch msg := msg.(type) {
	case tui.RefreshMsg:
		modelops.ReloadProjects(m)
		return tea.Batch(subCmd, modelops.SubscribeToEvents(m))

	case tea.WindowSizeMsg:
		return tea.Batch(subCmd, HandleWindowResize(m, msg))

	case tea.PasteMsg:
		// a paste into an open text field is typing, not a drop
		if m.UiState.Mode() == state.NormalMode {
			return tea.Batch(subCmd, HandleDrop(m, msg.Content))
		}
	}

	// Forms need ALL messages, not just key presses
	if isFormMode(m.UiState.Mode()) {
		return tea.Batch(subCmd, UpdateForm(m, msg))
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return tea.Batch(subCmd, HandleKeyMsg(m, msg))
	case tea.MouseWheelMsg:
		if isViewerMode(m.UiState.Mode()) {
			return tea.Batch(subCmd, UpdateViewer(m, msg))
		}
	}

	return subCmd
}

// HandleKeyMsg dispatches key events to the handler for the current mode.
func HandleKeyMsg(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	case state.ReadmeMode, state.HistoryMode:
		return HandleViewerMode(m, msg)
	}
	return nil
}

// HandleWindowResize records the new terminal size and resizes open panes.
func HandleWindowResize(m *tui.Model, msg tea.WindowSizeMsg) tea.Cmd {
	m.UiState.SetWidth(msg.Width)
	m.UiState.SetHeight(msg.Height)
	m.NotificationState.SetWindowSize(msg.Width, msg.Height)

	if m.FormState.HasForm() {
		m.FormState.Form = m.FormState.Form.WithWidth(formWidth(m))
	}
	if isViewerMode(m.UiState.Mode()) {
		resizeViewer(m)
	}
	return nil
}

func isFormMode(mode state.Mode) bool {
	switch mode {
	case state.AddProjectMode, state.BrowseDirMode, state.EditProjectMode,
		state.IconPickerMode, state.DeleteConfirmMode:
		return true
	}
	return false
}

func isViewerMode(mode state.Mode) bool {
	return mode == state.ReadmeMode || mode == state.HistoryMode
}
