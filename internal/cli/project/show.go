package project

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	"github.com/thenoetrevino/tiles/internal/cli/styles"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show tile details",
		Long:  "Display the settings of a tile, its resolved launch invocation and its last launch.",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	project, err := cli.ResolveProject(ctx, cliInstance, args[0])
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	// best effort: a project without history still shows
	last, _ := cliInstance.App.ProjectService.LastLaunch(ctx, project.ID)
	inv, invErr := cliInstance.App.Resolver().BuildLaunchInvocation(project)

	if formatter.Quiet {
		formatter.Println(project.ID)
		return nil
	}

	if formatter.JSON {
		fields := map[string]any{
			"project":     project,
			"last_launch": last,
		}
		if invErr != nil {
			fields["launch_error"] = invErr.Error()
		} else {
			fields["invocation"] = inv
		}
		return formatter.JSONSuccess(fields)
	}

	formatter.Println(styles.RenderCard(renderProject(project, inv, invErr, last)))
	return nil
}

func renderProject(p models.Project, inv resolver.Invocation, invErr error, last *models.Launch) string {
	var content strings.Builder

	glyph := styles.GlyphStyle.Render(resolver.DefaultGlyph(p))
	content.WriteString(glyph + " " + styles.TitleStyle.Render(p.Name))
	content.WriteString("\n")
	content.WriteString(styles.SubtitleStyle.Render(p.ID))
	content.WriteString("\n\n")

	content.WriteString(styles.RenderField("Path", p.Path) + "\n")
	content.WriteString(styles.RenderField("Command", orNone(p.Command)) + "\n")
	content.WriteString(styles.RenderField("Icon", orNone(p.IconPath)) + "\n")
	content.WriteString(styles.RenderField("Flags", cli.FormatFlags(p)) + "\n")

	content.WriteString(styles.SectionStyle.Render("Launch"))
	content.WriteString("\n")
	if invErr != nil {
		content.WriteString(styles.WarningStyle.Render("NOT LAUNCHABLE") + " " + invErr.Error() + "\n")
	} else {
		content.WriteString(styles.ValueStyle.Render(fmt.Sprintf("%s %s", inv.Executable, strings.Join(inv.Args, " "))) + "\n")
	}

	if last != nil {
		content.WriteString(styles.SectionStyle.Render("Last launch"))
		content.WriteString("\n")
		content.WriteString(fmt.Sprintf("%s %s by %s", styles.RenderStatus(last), cli.FormatAge(last.LaunchedAt, time.Now()), last.LaunchedBy))
		if last.Error != "" {
			content.WriteString("\n" + styles.SubtitleStyle.Render(last.Error))
		}
	}

	return content.String()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
