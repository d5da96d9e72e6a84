package testutil

import (
	"sync"

	"github.com/thenoetrevino/tiles/internal/resolver"
)

// FakeSpawner records invocations instead of starting processes
type FakeSpawner struct {
	mu      sync.Mutex
	Spawned []resolver.Invocation
	Err     error
}

// Spawn implements platform.Spawner
func (f *FakeSpawner) Spawn(inv resolver.Invocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	f.Spawned = append(f.Spawned, inv)
	return nil
}

// Count returns the number of successful spawns
func (f *FakeSpawner) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Spawned)
}

// FakeOpener records opened paths
type FakeOpener struct {
	Opened []string
	Err    error
}

// Open implements platform.Opener
func (f *FakeOpener) Open(path string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Opened = append(f.Opened, path)
	return nil
}

// FakeClipboard keeps the last written text
type FakeClipboard struct {
	Text string
	Err  error
}

// WriteText implements platform.Clipboard
func (f *FakeClipboard) WriteText(text string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Text = text
	return nil
}
