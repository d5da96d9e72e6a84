package tui

import "github.com/thenoetrevino/tiles/internal/events"

// RefreshMsg is sent when the project store reports a change
type RefreshMsg struct {
	Event events.Event
}
