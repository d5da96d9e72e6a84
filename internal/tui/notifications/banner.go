// Package notifications draws the banners stacked in the top-right corner.
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tiles/internal/tui/state"
	"github.com/thenoetrevino/tiles/internal/tui/theme"
)

// maxMessageWidth wraps long error chains so banners stay in the corner
const maxMessageWidth = 48

// banner is the look of one notification level
type banner struct {
	icon, title string
	fg, bg      string
}

// bannerFor reads the theme at call time so a reloaded scheme applies.
// Unknown levels render as info.
func bannerFor(level state.NotificationLevel) banner {
	switch level {
	case state.LevelWarning:
		return banner{"⚠", "Warning", theme.WarningFg, theme.WarningBg}
	case state.LevelError:
		return banner{"✕", "Error", theme.ErrorFg, theme.ErrorBg}
	default:
		return banner{"●", "Info", theme.InfoFg, theme.InfoBg}
	}
}

// Render draws n as a bordered banner with a titled header
func Render(n state.Notification) string {
	b := bannerFor(n.Level)

	header := b.icon + " " + b.title
	width := min(max(lipgloss.Width(header), lipgloss.Width(n.Message)), maxMessageWidth)

	text := lipgloss.NewStyle().
		Foreground(lipgloss.Color(b.fg)).
		Width(width)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.fg)).
		Background(lipgloss.Color(b.bg)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			text.Bold(true).Render(header),
			text.Render(n.Message),
		))
}
