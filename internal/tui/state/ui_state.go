package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode        Mode = iota // Default tile navigation mode
	AddProjectMode                // Typing a directory to register
	BrowseDirMode                 // Picking a directory with the file picker
	EditProjectMode               // Settings form for the selected tile
	IconPickerMode                // Picking an .ico file for the selected tile
	DeleteConfirmMode             // Confirming tile deletion
	ReadmeMode                    // Reading the selected project's README
	HistoryMode                   // Reading the launch journal
	HelpMode                      // Displaying help screen
)

// Tile geometry in terminal cells, including border and margin
const (
	TileWidth  = 26
	TileHeight = 7

	// StatusBarHeight is reserved below the grid
	StatusBarHeight = 1
	// HeaderHeight is reserved above the grid for the title line
	HeaderHeight = 2
)

// UIState manages the user interface state.
// This includes tile selection, grid scrolling, terminal dimensions,
// and the current interaction mode.
type UIState struct {
	// selected is the index of the highlighted tile
	selected int

	// scrollRow is the first grid row drawn
	scrollRow int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Selected returns the index of the highlighted tile.
func (s *UIState) Selected() int {
	return s.selected
}

// SetSelected highlights tile i and scrolls it into view.
// Negative indexes are clamped to zero.
func (s *UIState) SetSelected(i int) {
	s.selected = max(i, 0)
	s.syncScroll()
}

// ClampSelection keeps the selection inside a list of n tiles.
func (s *UIState) ClampSelection(n int) {
	if n <= 0 {
		s.SetSelected(0)
		return
	}
	if s.selected >= n {
		s.SetSelected(n - 1)
	}
}

// MoveSelection moves the highlight by delta tiles, stopping at either end.
func (s *UIState) MoveSelection(delta, n int) {
	if n <= 0 {
		return
	}
	s.SetSelected(min(max(s.selected+delta, 0), n-1))
}

// MoveRow moves the highlight one grid row up (dir < 0) or down (dir > 0).
// Moving down from a partial last row lands on the final tile.
func (s *UIState) MoveRow(dir, n int) {
	if n <= 0 {
		return
	}
	target := s.selected + dir*s.Columns()
	switch {
	case target < 0:
		return
	case target >= n:
		if s.selected/s.Columns() == (n-1)/s.Columns() {
			return
		}
		target = n - 1
	}
	s.SetSelected(target)
}

// Columns returns how many tiles fit on one grid row.
func (s *UIState) Columns() int {
	return max(s.width/TileWidth, 1)
}

// VisibleRows returns how many grid rows fit between header and status bar.
func (s *UIState) VisibleRows() int {
	return max((s.height-HeaderHeight-StatusBarHeight)/TileHeight, 1)
}

// ScrollRow returns the first grid row drawn.
func (s *UIState) ScrollRow() int {
	return s.scrollRow
}

func (s *UIState) syncScroll() {
	row := s.selected / s.Columns()
	if row < s.scrollRow {
		s.scrollRow = row
	}
	if visible := s.VisibleRows(); row >= s.scrollRow+visible {
		s.scrollRow = row - visible + 1
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.syncScroll()
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
	s.syncScroll()
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode sets the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
