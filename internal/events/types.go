package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventProjectsChanged EventType = "projects_changed"
	EventProjectLaunched EventType = "project_launched"
)

// Event is a change notification. Receivers re-read the full project list;
// the payload only narrows what changed.
type Event struct {
	Type       EventType
	ProjectID  string    // "" = more than one project or the whole list
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing, assigned on delivery
}
