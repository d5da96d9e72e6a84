package state

import "charm.land/bubbles/v2/viewport"

// ViewerState backs the scrollable README and history panes.
type ViewerState struct {
	// Title is shown above the pane
	Title string
	// Source is the README path, empty for history
	Source string
	// Raw is the unrendered content, kept so a resize can re-render it
	Raw string
	// Markdown marks Raw as markdown to be rendered with glamour
	Markdown bool

	Viewport viewport.Model
}

// NewViewerState creates an empty ViewerState.
func NewViewerState() *ViewerState {
	return &ViewerState{Viewport: viewport.New()}
}

// Open replaces the pane content and scrolls to the top.
func (s *ViewerState) Open(title, source, raw string, markdown bool) {
	s.Title = title
	s.Source = source
	s.Raw = raw
	s.Markdown = markdown
	s.Viewport.GotoTop()
}

// SetSize resizes the viewport.
func (s *ViewerState) SetSize(width, height int) {
	s.Viewport.SetWidth(max(width, 1))
	s.Viewport.SetHeight(max(height, 1))
}

// SetContent sets the rendered text shown in the viewport.
func (s *ViewerState) SetContent(content string) {
	s.Viewport.SetContent(content)
}

// Close drops the content.
func (s *ViewerState) Close() {
	s.Title = ""
	s.Source = ""
	s.Raw = ""
	s.Markdown = false
	s.Viewport.SetContent("")
}
