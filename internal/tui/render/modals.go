package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/layers"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// modalBox is the frame shared by dialogs and panes
func modalBox(accent string, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Background(lipgloss.Color(theme.Background)).
		Padding(1, 1).
		Width(width)
}

func modalTitle(text, accent string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent)).Render(text)
}

func modalHint(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle)).Render(text)
}

// RenderFormLayer renders the open huh form as a centered dialog
func RenderFormLayer(m *tui.Model) *lipgloss.Layer {
	if m.FormState.Form == nil {
		return nil
	}

	km := m.Config.KeyMappings
	var title, accent, hint string
	switch m.UiState.Mode() {
	case state.AddProjectMode:
		title, accent = "New Project", theme.Create
		hint = "enter: add · ctrl+o: browse · esc: cancel"
	case state.BrowseDirMode:
		title, accent = "New Project", theme.Create
		hint = "l/→: open folder · h/←: up · enter: select · esc: cancel"
	case state.EditProjectMode:
		title, accent = "Settings", theme.Edit
		if p, ok := m.SelectedProject(); ok {
			title = "Settings · " + p.Name
		}
		hint = fmt.Sprintf("%s: save · tab: next field · esc: cancel", km.SaveForm)
	case state.IconPickerMode:
		title, accent = "Icon", theme.Accent
		hint = "enter: choose · esc: cancel"
	case state.DeleteConfirmMode:
		title, accent = "Delete Project", theme.Delete
		hint = "←/→: choose · enter: confirm · esc: cancel"
	}

	width, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height())
	content := lipgloss.JoinVertical(lipgloss.Left,
		modalTitle(title, accent),
		"",
		m.FormState.Form.View(),
		"",
		modalHint(hint),
	)

	return layers.CreateCenteredLayer(modalBox(accent, width).Render(content), m.UiState.Width(), m.UiState.Height())
}

// RenderViewerLayer renders the README or history pane
func RenderViewerLayer(m *tui.Model) *lipgloss.Layer {
	width, _ := layers.ModalSize(m.UiState.Width(), m.UiState.Height())

	vp := m.ViewerState.Viewport
	footer := fmt.Sprintf("%3.f%% · j/k scroll · esc close", vp.ScrollPercent()*100)
	if m.UiState.Mode() == state.ReadmeMode {
		footer += fmt.Sprintf(" · %s open externally", m.Config.KeyMappings.OpenDirectory)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		modalTitle(m.ViewerState.Title, theme.Accent),
		vp.View(),
		modalHint(footer),
	)

	box := modalBox(theme.Accent, width).Padding(0, 1).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the key binding reference
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent)).Bold(true).Width(8)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))
	groupStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Title)).Bold(true).Underline(true)

	var columns []string
	for _, g := range m.Keys.HelpGroups() {
		lines := []string{groupStyle.Render(g.Title)}
		for _, b := range g.Bindings {
			lines = append(lines, keyStyle.Render(b.Help().Key)+descStyle.Render(b.Help().Desc))
		}
		columns = append(columns, lipgloss.NewStyle().MarginRight(3).Render(strings.Join(lines, "\n")))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	if lipgloss.Width(body) > m.UiState.Width()-6 {
		body = lipgloss.JoinVertical(lipgloss.Left, columns...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		modalTitle("Keyboard Shortcuts", theme.Accent),
		"",
		body,
		"",
		modalHint("Drop folders onto the window to add them · esc: close"),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Background(lipgloss.Color(theme.Background)).
		Padding(1, 2).
		Render(content)

	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}
