package handlers

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/layers"
	"github.com/thenoetrevino/tiles/internal/tui/markdown"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

// viewerChrome is the border, padding, title and footer around the viewport
const (
	viewerChromeWidth  = 4
	viewerChromeHeight = 6
)

// ============================================================================
// README / HISTORY VIEWER
// ============================================================================

// HandleViewerMode handles keys while the README or history pane is open.
func HandleViewerMode(m *tui.Model, msg tea.KeyMsg) tea.Cmd {
	km := m.Config.KeyMappings

	switch msg.String() {
	case "esc", km.Quit, km.ViewReadme, km.ViewHistory:
		closeViewer(m)
		return nil
	case km.OpenDirectory:
		if m.UiState.Mode() == state.ReadmeMode {
			return handleOpenReadme(m)
		}
		return nil
	case "ctrl+c":
		return tea.Quit
	}

	return UpdateViewer(m, msg)
}

// UpdateViewer forwards scrolling input to the viewport
func UpdateViewer(m *tui.Model, msg tea.Msg) tea.Cmd {
	vp, cmd := m.ViewerState.Viewport.Update(msg)
	m.ViewerState.Viewport = vp
	return cmd
}

func openReadme(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	path, content, err := m.App.ProjectService.ReadReadme(ctx, p.ID)
	if err != nil {
		if errors.Is(err, resolver.ErrNoReadme) {
			m.Notify(state.LevelInfo, "%s has no README", p.Name)
			return nil
		}
		m.HandleError("Could not read README", err)
		return nil
	}

	m.ViewerState.Open(p.Name+" · README", path, content, true)
	m.UiState.SetMode(state.ReadmeMode)
	resizeViewer(m)
	return nil
}

// handleOpenReadme hands the README to the default application
func handleOpenReadme(m *tui.Model) tea.Cmd {
	p, ok := m.SelectedProject()
	if !ok {
		return nil
	}

	ctx, cancel := m.ServiceContext()
	defer cancel()

	path, err := m.App.ProjectService.OpenReadme(ctx, p.ID)
	if err != nil {
		m.HandleError("Could not open README", err)
		return nil
	}
	m.Notify(state.LevelInfo, "Opened %s", path)
	return nil
}

// openHistory shows the selected project's launches, or every project's
// when the board is empty
func openHistory(m *tui.Model) tea.Cmd {
	ctx, cancel := m.ServiceContext()
	defer cancel()

	limit := m.Config.HistoryLimit

	var (
		title    string
		launches []*models.Launch
		err      error
	)
	if p, ok := m.SelectedProject(); ok {
		title = p.Name + " · launches"
		launches, err = m.App.ProjectService.History(ctx, p.ID, limit)
	} else {
		title = "Recent launches"
		launches, err = m.App.ProjectService.RecentLaunches(ctx, limit)
	}
	if err != nil {
		m.HandleError("Could not load history", err)
		return nil
	}

	m.ViewerState.Open(title, "", FormatHistory(launches), false)
	m.UiState.SetMode(state.HistoryMode)
	resizeViewer(m)
	return nil
}

func closeViewer(m *tui.Model) {
	m.ViewerState.Close()
	m.UiState.SetMode(state.NormalMode)
}

// resizeViewer fits the viewport into the modal and re-renders markdown
// at the new wrap width
func resizeViewer(m *tui.Model) {
	width, height := layers.ModalSize(m.UiState.Width(), m.UiState.Height())
	innerWidth := max(width-viewerChromeWidth, 1)
	m.ViewerState.SetSize(innerWidth, max(height-viewerChromeHeight, 1))

	content := m.ViewerState.Raw
	if m.ViewerState.Markdown {
		content = markdown.Render(content, innerWidth)
	}
	m.ViewerState.SetContent(content)
}

// FormatHistory renders launches one per line, newest first
func FormatHistory(launches []*models.Launch) string {
	if len(launches) == 0 {
		return "No launches recorded yet."
	}

	var b strings.Builder
	for i, l := range launches {
		if i > 0 {
			b.WriteString("\n")
		}

		mark := "✓"
		if l.Failed() {
			mark = "✗"
		}

		flags := ""
		if l.Elevated {
			flags += " [admin]"
		}
		if l.Minimized {
			flags += " [min]"
		}

		fmt.Fprintf(&b, "%s %s  %s  %s%s",
			mark, l.LaunchedAt.Local().Format("2006-01-02 15:04"), l.ProjectName, l.Command, flags)
		if l.LaunchedBy != "" {
			fmt.Fprintf(&b, "  (%s)", l.LaunchedBy)
		}
		if l.Error != "" {
			fmt.Fprintf(&b, "\n    %s", l.Error)
		}
	}
	return b.String()
}
