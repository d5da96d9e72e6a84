package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
type EventPublisher interface {
	// SendEvent queues an event for delivery to listeners
	SendEvent(event Event) error

	// Listen returns a channel of batched events, closed when ctx ends or
	// the publisher is closed
	Listen(ctx context.Context) (<-chan Event, error)

	// Close flushes pending events and stops all goroutines
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
