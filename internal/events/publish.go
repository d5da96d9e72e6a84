package events

import (
	"log/slog"
)

// Publish sends event once. A failure is logged and returned; callers
// treat it as non-fatal since a missed event only delays a UI refresh.
func Publish(publisher EventPublisher, event Event) error {
	if publisher == nil {
		return nil
	}

	if err := publisher.SendEvent(event); err != nil {
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"project_id", event.ProjectID,
			"error", err)
		return err
	}
	return nil
}
