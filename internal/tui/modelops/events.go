package modelops

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/tui"
)

// SubscribeToEvents returns a command that waits for the next store change
// and turns it into a RefreshMsg. Returns nil if EventChan is not set.
func SubscribeToEvents(m *tui.Model) tea.Cmd {
	if m.EventChan == nil {
		return nil
	}

	ch, ctx := m.EventChan, m.Ctx
	return func() tea.Msg {
		select {
		case event, ok := <-ch:
			if !ok {
				return nil
			}
			return tui.RefreshMsg{Event: event}
		case <-ctx.Done():
			return nil
		}
	}
}
