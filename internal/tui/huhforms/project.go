package huhforms

import (
	"errors"
	"strings"
	"unicode/utf8"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

// MaxNameLength matches the limit enforced by the project service
const MaxNameLength = 100

// pickerHeight is the number of entries the file pickers show
const pickerHeight = 12

var (
	errPathRequired = errors.New("enter a directory")
	errNameRequired = errors.New("name cannot be empty")
	errNameTooLong  = errors.New("name is too long")
)

// ValidateName checks a display name the way the service will.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errNameRequired
	case utf8.RuneCountInString(name) > MaxNameLength:
		return errNameTooLong
	}
	return nil
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return errPathRequired
	}
	return nil
}

// CreateAddProjectForm creates the form for registering a directory by path
func CreateAddProjectForm(path *string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("path").
			Title("Add project").
			Description("Directory to register. A file adds its parent folder.").
			Placeholder("~/code/my-project").
			Validate(validatePath).
			Value(path),
	))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}

// CreateBrowseForm creates a directory picker rooted at start
func CreateBrowseForm(dir *string, start string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewFilePicker().
			Key("dir").
			Title("Choose a project directory").
			Description("l/→ opens a folder, enter selects it").
			CurrentDirectory(start).
			DirAllowed(true).
			FileAllowed(false).
			Picking(true).
			Height(pickerHeight).
			Value(dir),
	))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateSettingsForm creates the settings dialog for one project.
// The Action select decides whether completing the form saves or test-launches.
func CreateSettingsForm(fields *models.ProjectFields, action *string) *huh.Form {
	*action = state.ActionSave

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("name").
			Title("Name").
			CharLimit(MaxNameLength).
			Validate(ValidateName).
			Value(&fields.Name),

		huh.NewInput().
			Key("path").
			Title("Directory").
			Value(&fields.Path),

		huh.NewInput().
			Key("command").
			Title("Command").
			Placeholder("npm start").
			Value(&fields.Command),

		huh.NewInput().
			Key("icon").
			Title("Icon").
			Description("Path to an .ico file, empty for the default glyph").
			Value(&fields.IconPath),

		huh.NewConfirm().
			Key("admin").
			Title("Run as administrator").
			Affirmative("Yes").
			Negative("No").
			Value(&fields.RunAsAdmin),

		huh.NewConfirm().
			Key("minimized").
			Title("Start minimized").
			Affirmative("Yes").
			Negative("No").
			Value(&fields.StartMinimized),

		huh.NewSelect[string]().
			Key("action").
			Title("Action").
			Options(
				huh.NewOption("Save", state.ActionSave),
				huh.NewOption("Test command", state.ActionTest),
			).
			Value(action),
	))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}

// CreateIconForm creates an .ico file picker rooted at the project directory
func CreateIconForm(iconPath *string, start string) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewFilePicker().
			Key("icon").
			Title("Choose an icon").
			CurrentDirectory(start).
			AllowedTypes([]string{".ico"}).
			FileAllowed(true).
			DirAllowed(false).
			Picking(true).
			Height(pickerHeight).
			Value(iconPath),
	))
	return form.WithKeyMap(CreateKeyMap())
}

// CreateDeleteForm creates the confirmation shown before removing a tile
func CreateDeleteForm(name string, confirm *bool) *huh.Form {
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Key("confirm").
			Title("Delete " + name + "?").
			Description("The tile is removed; the folder on disk is not touched.").
			Affirmative("Delete").
			Negative("Cancel").
			Value(confirm),
	))
	return form.WithKeyMap(CreateKeyMap()).WithShowHelp(false)
}
