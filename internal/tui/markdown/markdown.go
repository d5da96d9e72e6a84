// Package markdown renders README files for the TUI viewer.
package markdown

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// style is fixed because querying the terminal background from inside a
// running program races with the input reader
const style = "dark"

var (
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	wrap     = -1
)

// Render returns glamour output for content wrapped at width.
// On any renderer failure the raw text is returned.
func Render(content string, width int) string {
	r := rendererFor(width)
	if r == nil {
		return content
	}
	out, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(out, "\n")
}

func rendererFor(width int) *glamour.TermRenderer {
	mu.Lock()
	defer mu.Unlock()

	width = max(width, 0)
	if renderer != nil && wrap == width {
		return renderer
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		renderer = nil
		return nil
	}
	renderer, wrap = r, width
	return renderer
}
