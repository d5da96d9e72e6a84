package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// OpenCmd returns the open subcommand
func OpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a tile's directory in the file manager",
		Args:  cobra.ExactArgs(1),
		RunE:  runOpen,
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ProjectService.OpenDirectory(ctx, project.ID); err != nil {
		return formatter.Fail("OPEN_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"path": project.Path})
	}

	formatter.Printf("✓ Opened %s\n", project.Path)
	return nil
}
