package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

// ResolveProject looks a project up by full id or unique id prefix
func ResolveProject(ctx context.Context, c *CLI, arg string) (models.Project, error) {
	id, err := c.App.ProjectService.ResolveID(ctx, arg)
	if err != nil {
		return models.Project{}, err
	}
	return c.App.ProjectService.GetProjectByID(ctx, id)
}

// SuggestionFor returns a hint for the errors users can fix themselves
func SuggestionFor(err error) string {
	switch {
	case errors.Is(err, resolver.ErrEmptyCommand):
		return "Set a command with: tiles edit <id> --command \"...\""
	case errors.Is(err, resolver.ErrMissingDirectory):
		return "Point the project at an existing directory with: tiles edit <id> --path <dir>"
	case errors.Is(err, projectservice.ErrAmbiguousID):
		return "Use more characters of the id; see: tiles list"
	case errors.Is(err, projectservice.ErrProjectNotFound):
		return "List projects with: tiles list"
	case errors.Is(err, store.ErrLoad):
		return "Fix or remove the projects file, or set TILES_PROJECTS_FILE"
	default:
		return ""
	}
}

// FormatFlags renders the launch flags of a project, "-" when none are set
func FormatFlags(p models.Project) string {
	switch {
	case p.RunAsAdmin && p.StartMinimized:
		return "admin, minimized"
	case p.RunAsAdmin:
		return "admin"
	case p.StartMinimized:
		return "minimized"
	default:
		return "-"
	}
}

// FormatAge renders how long ago t was, relative to now. Launches older
// than a month show their date.
func FormatAge(t, now time.Time) string {
	if now.Sub(t) > humanize.Month {
		return t.Format("2006-01-02")
	}
	return humanize.RelTime(t, now, "ago", "from now")
}
