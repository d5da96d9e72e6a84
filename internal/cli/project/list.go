package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	"github.com/thenoetrevino/tiles/internal/cli/styles"
	"github.com/thenoetrevino/tiles/internal/resolver"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all launch tiles",
		Long:    "List all launch tiles in display order.",
		Args:    cobra.NoArgs,
		RunE:    runList,
	}
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	projects, err := cliInstance.App.ProjectService.GetAllProjects(ctx)
	if err != nil {
		return formatter.Fail("PROJECT_FETCH_ERROR", err)
	}

	// Output in appropriate format
	if formatter.Quiet {
		// Just print IDs (one per line)
		for _, p := range projects {
			formatter.Println(p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"projects": projects})
	}

	// Human-readable output
	if len(projects) == 0 {
		formatter.Println("No projects found")
		return nil
	}

	formatter.Printf("Found %d projects:\n\n", len(projects))
	for _, p := range projects {
		command := p.Command
		if command == "" {
			command = "(no command)"
		}
		formatter.Printf("  %s %s  %s\n", styles.GlyphStyle.Render(resolver.DefaultGlyph(p)), p.ShortID(), styles.TitleStyle.Render(p.Name))
		formatter.Printf("      %s  %s\n", styles.SubtitleStyle.Render(p.Path), command)
	}

	return nil
}
