// Package platform talks to the operating system on behalf of the launcher:
// it starts shell processes, opens paths with their default handler and
// writes to the clipboard.
package platform

import (
	"errors"

	"github.com/thenoetrevino/tiles/internal/resolver"
)

var (
	// ErrNoTerminal means no terminal emulator could be found to host a shell
	ErrNoTerminal = errors.New("no terminal emulator found")
	// ErrClipboardUnavailable means the system clipboard cannot be written
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// Spawner starts launch invocations without waiting for them
type Spawner interface {
	Spawn(inv resolver.Invocation) error
}

// Opener opens a path with the desktop's default handler
type Opener interface {
	Open(path string) error
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteText(text string) error
}
