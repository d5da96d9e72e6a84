package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/tiles/internal/models"
)

// Settings form actions
const (
	ActionSave = "save"
	ActionTest = "test"
)

// FormState holds the active huh form and the values its fields are bound to.
// Only one form is open at a time; the mode says which one.
type FormState struct {
	// Form is the open form, nil in normal mode
	Form *huh.Form

	// AddPath is bound to the add-project input
	AddPath string

	// BrowseDir is bound to the directory picker
	BrowseDir string

	// EditingID is the project the settings form edits
	EditingID string
	// Fields is bound to the settings form inputs
	Fields models.ProjectFields
	// Action is the button chosen on the settings form
	Action string

	// IconPath is bound to the icon picker
	IconPath string

	// ConfirmDelete is bound to the delete confirmation
	ConfirmDelete bool
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// HasForm reports whether a form is open.
func (s *FormState) HasForm() bool {
	return s.Form != nil
}

// Clear closes the form and resets every bound value.
func (s *FormState) Clear() {
	*s = FormState{}
}

// HasSettingsChanges reports whether the settings form differs from original.
func (s *FormState) HasSettingsChanges(original models.ProjectFields) bool {
	return s.Fields != original
}
