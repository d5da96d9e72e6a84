package notifications

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

func TestRender_LevelTitles(t *testing.T) {
	tests := []struct {
		level state.NotificationLevel
		title string
	}{
		{state.LevelInfo, "Info"},
		{state.LevelWarning, "Warning"},
		{state.LevelError, "Error"},
		{state.NotificationLevel(42), "Info"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			out := Render(state.Notification{Level: tt.level, Message: "launched api"})
			if !strings.Contains(out, tt.title) {
				t.Errorf("Render() missing title %q:\n%s", tt.title, out)
			}
			if !strings.Contains(out, "launched api") {
				t.Errorf("Render() missing message:\n%s", out)
			}
		})
	}
}

func TestRender_WrapsLongMessages(t *testing.T) {
	msg := strings.Repeat("spawn failed ", 20)

	out := Render(state.Notification{Level: state.LevelError, Message: msg})

	// border and padding add four cells
	if w := lipgloss.Width(out); w > maxMessageWidth+4 {
		t.Errorf("banner width = %d, want at most %d", w, maxMessageWidth+4)
	}
	if lipgloss.Height(out) < 4 {
		t.Errorf("long message was not wrapped:\n%s", out)
	}
}
