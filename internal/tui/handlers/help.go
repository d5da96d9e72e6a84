package handlers

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// HandleHelpMode handles input in the help screen.
func HandleHelpMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter", "space":
		m.UiState.SetMode(state.NormalMode)
	case "ctrl+c":
		return tea.Quit
	}
	return nil
}
