package platform

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard writes through github.com/atotto/clipboard
type SystemClipboard struct{}

// NewClipboard returns the system clipboard
func NewClipboard() SystemClipboard {
	return SystemClipboard{}
}

// WriteText replaces the clipboard contents with text
func (SystemClipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}
