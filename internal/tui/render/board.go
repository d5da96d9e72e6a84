package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// tileInnerWidth is the text width inside a tile's border and padding
const tileInnerWidth = state.TileWidth - 6

// ViewBoard renders the header, the tile grid and the status bar
func ViewBoard(m *tui.Model) string {
	header := renderHeader(m)
	bar := renderStatusBar(m)

	gridHeight := max(m.UiState.Height()-lipgloss.Height(header)-lipgloss.Height(bar), 0)
	grid := lipgloss.NewStyle().
		Width(m.UiState.Width()).
		Height(gridHeight).
		MaxHeight(gridHeight).
		Render(renderGrid(m))

	return lipgloss.JoinVertical(lipgloss.Left, header, grid, bar)
}

func renderHeader(m *tui.Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title)).
		Render("tiles")

	count := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(fmt.Sprintf("  %d projects · %s", m.AppState.Len(), shortenHome(m.App.ProjectsFile())))

	return lipgloss.NewStyle().
		Padding(0, 1).
		MarginBottom(1).
		Render(title + count)
}

// renderGrid lays tiles out row by row starting at the scroll row
func renderGrid(m *tui.Model) string {
	projects := m.AppState.Projects()
	if len(projects) == 0 {
		return renderEmptyBoard(m)
	}

	cols := m.UiState.Columns()
	first := m.UiState.ScrollRow() * cols
	last := min(first+m.UiState.VisibleRows()*cols, len(projects))

	var rows []string
	for start := first; start < last; start += cols {
		end := min(start+cols, last)
		tiles := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			tiles = append(tiles, RenderTile(m, projects[i], i == m.UiState.Selected()))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderEmptyBoard(m *tui.Model) string {
	km := m.Config.KeyMappings
	msg := fmt.Sprintf("No projects yet.\n\nPress %s to add a directory, or drop folders onto this window.", km.AddProject)

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Padding(1, 2).
		Render(msg)
}

// RenderTile draws one project tile
func RenderTile(m *tui.Model, p models.Project, selected bool) string {
	glyph := resolver.DefaultGlyph(p)
	if _, ok := m.AppState.Icon(p.ID); ok {
		glyph = "◉"
	}

	titleLine := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Glyph)).Render(glyph) + " " +
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Title)).
			Render(truncate(p.Name, tileInnerWidth-2))

	subtle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))

	var commandLine string
	if strings.TrimSpace(p.Command) == "" {
		commandLine = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).Render("no command")
	} else {
		commandLine = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal)).
			Render(truncate(p.Command, tileInnerWidth))
	}

	pathLine := subtle.Render(truncateLeft(shortenHome(p.Path), tileInnerWidth))

	content := lipgloss.NewStyle().
		Width(tileInnerWidth).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			titleLine,
			commandLine,
			pathLine,
			renderLaunchStatus(m.AppState.LastLaunch(p.ID), p),
		))

	border, bg := theme.TileBorder, theme.TileBg
	if selected {
		border, bg = theme.SelectedBorder, theme.SelectedBg
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		MarginRight(1).
		MarginBottom(1).
		Render(content)
}

// renderLaunchStatus shows the outcome of the last launch plus launch flags
func renderLaunchStatus(last *models.Launch, p models.Project) string {
	var parts []string
	switch {
	case last == nil:
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render("never launched"))
	case last.Failed():
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Delete)).
			Render("✗ "+humanize.RelTime(last.LaunchedAt, time.Now(), "ago", "from now")))
	default:
		parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Create)).
			Render("✓ "+humanize.RelTime(last.LaunchedAt, time.Now(), "ago", "from now")))
	}

	if p.RunAsAdmin {
		parts = append(parts, "⚑")
	}
	if p.StartMinimized {
		parts = append(parts, "▁")
	}
	return strings.Join(parts, " ")
}

// renderStatusBar shows the latest notification or the key hints
func renderStatusBar(m *tui.Model) string {
	var text string
	if p, ok := m.SelectedProject(); ok {
		text = fmt.Sprintf("%s  %s", p.ShortID(), shortenHome(p.Path))
	}

	hints := make([]string, 0, len(m.Keys.ShortHelp()))
	for _, b := range m.Keys.ShortHelp() {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	right := strings.Join(hints, " · ")

	width := m.UiState.Width()
	gap := max(width-lipgloss.Width(text)-lipgloss.Width(right)-2, 1)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Foreground(lipgloss.Color(theme.StatusBarText)).
		Width(width).
		MaxHeight(1).
		Padding(0, 1).
		Render(text + strings.Repeat(" ", gap) + right)
}

// ============================================================================
// TEXT HELPERS
// ============================================================================

// truncate cuts s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// truncateLeft keeps the end of s, which is the informative part of a path
func truncateLeft(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > width {
		r = r[1:]
	}
	return "…" + string(r)
}

// shortenHome replaces the home directory prefix with ~
func shortenHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(path, home+string(os.PathSeparator)); ok {
		return "~" + string(os.PathSeparator) + rest
	}
	return path
}
