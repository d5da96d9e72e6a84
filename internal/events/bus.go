package events

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"
)

const (
	defaultDebounce   = 50 * time.Millisecond
	queueSize         = 100
	subscriberBufSize = 16
)

// Bus is an in-process event publisher. Events sent within one debounce
// window are coalesced into a single event and fanned out to every
// listener. Slow listeners miss events rather than block the sender.
type Bus struct {
	mu          sync.Mutex
	queue       chan Event
	debounce    time.Duration
	subscribers map[int]chan Event
	nextSubID   int
	sequence    int64
	closed      bool

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	batcherDone chan struct{}
}

// NewBus creates a bus and starts its batching goroutine. A zero debounce
// reads TILES_EVENT_DEBOUNCE_MS, falling back to 50ms.
func NewBus(debounce time.Duration) *Bus {
	if debounce <= 0 {
		debounce = defaultDebounce
		if envVal := os.Getenv("TILES_EVENT_DEBOUNCE_MS"); envVal != "" {
			if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
				debounce = time.Duration(parsed) * time.Millisecond
			}
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &Bus{
		queue:       make(chan Event, queueSize),
		debounce:    debounce,
		subscribers: make(map[int]chan Event),
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}

	go b.startBatcher()

	return b
}

// SendEvent queues an event. It never blocks; a full queue returns
// ErrQueueFull.
func (b *Bus) SendEvent(event Event) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBusClosed
	}

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	select {
	case b.queue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Listen registers a listener. The returned channel is closed when ctx is
// cancelled or the bus is closed.
func (b *Bus) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrBusClosed
	}
	id := b.nextSubID
	b.nextSubID++
	ch := make(chan Event, subscriberBufSize)
	b.subscribers[id] = ch
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
		case <-b.batcherDone:
		}
		b.unsubscribe(id)
	}()

	return ch, nil
}

func (b *Bus) unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subscribers[id]; ok {
		delete(b.subscribers, id)
		close(ch)
	}
}

// Close flushes pending events and closes every listener channel.
// Calling Close more than once is safe.
func (b *Bus) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()

	b.cancel()
	<-b.batcherDone

	b.mu.Lock()
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
	b.mu.Unlock()

	return nil
}

// startBatcher coalesces queued events and delivers at most one event per
// debounce tick. Events from several projects collapse to ProjectID "".
func (b *Bus) startBatcher() {
	defer close(b.batcherDone)

	ticker := time.NewTicker(b.debounce)
	defer ticker.Stop()

	var pending bool
	var batch Event

	merge := func(event Event) {
		if !pending {
			pending = true
			batch = event
			return
		}
		if batch.ProjectID != event.ProjectID {
			batch.ProjectID = ""
		}
		if batch.Type != event.Type {
			batch.Type = EventProjectsChanged
		}
		if event.Timestamp.After(batch.Timestamp) {
			batch.Timestamp = event.Timestamp
		}
	}

	flushPending := func() {
		if !pending {
			return
		}
		b.deliver(batch)
		pending = false
	}

	for {
		select {
		case <-b.ctx.Done():
			// drain whatever was queued before Close
			for {
				select {
				case event := <-b.queue:
					merge(event)
				default:
					flushPending()
					return
				}
			}

		case event := <-b.queue:
			merge(event)

		case <-ticker.C:
			flushPending()
		}
	}
}

func (b *Bus) deliver(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sequence++
	event.SequenceID = b.sequence

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			slog.Debug("dropping event for slow listener", "listener", id, "event_type", event.Type)
		}
	}
}
