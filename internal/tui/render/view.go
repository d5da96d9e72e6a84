package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/notifications"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)
	view.WindowTitle = "tiles"

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The board is always drawn; dialogs and panes float above it
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewBoard(m)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.AddProjectMode, state.BrowseDirMode, state.EditProjectMode,
		state.IconPickerMode, state.DeleteConfirmMode:
		modalLayer = RenderFormLayer(m)
	case state.ReadmeMode, state.HistoryMode:
		modalLayer = RenderViewerLayer(m)
		view.MouseMode = tea.MouseModeCellMotion
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer.Z(1))
	}

	for _, l := range m.NotificationState.GetLayers(notifications.Render) {
		layers = append(layers, l.Z(2))
	}

	view.Content = lipgloss.NewCompositor(layers...).Render()
	return view
}
