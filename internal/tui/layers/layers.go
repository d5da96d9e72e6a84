// Package layers provides utility functions for placing modal layers
package layers

import "charm.land/lipgloss/v2"

const (
	// ModalMinWidth is the narrowest a form or viewer modal is drawn
	ModalMinWidth = 40
	// ModalMaxWidth caps form width on wide terminals
	ModalMaxWidth = 80
	// ModalWidthNumerator / ModalWidthDivisor is the share of the screen a modal takes
	ModalWidthNumerator = 3
	ModalWidthDivisor   = 4
	// ModalChromeHeight covers border, padding and the title line
	ModalChromeHeight = 6
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// ModalSize returns the outer width and height of a centered modal for the
// given screen, clamped so it never exceeds the screen.
func ModalSize(screenWidth, screenHeight int) (int, int) {
	width := screenWidth * ModalWidthNumerator / ModalWidthDivisor
	width = min(max(width, ModalMinWidth), ModalMaxWidth)
	width = min(width, screenWidth)

	height := max(screenHeight*ModalWidthNumerator/ModalWidthDivisor, ModalChromeHeight+1)
	height = min(height, screenHeight)

	return width, height
}
