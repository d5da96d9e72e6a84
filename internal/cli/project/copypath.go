package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// CopyPathCmd returns the copy-path subcommand
func CopyPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy-path <id>",
		Short: "Copy a tile's directory to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE:  runCopyPath,
	}
}

func runCopyPath(cmd *cobra.Command, args []string) error {
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

	path, err := cliInstance.App.ProjectService.CopyPath(ctx, project.ID)
	if err != nil {
		return formatter.Fail("CLIPBOARD_ERROR", err)
	}

	if formatter.Quiet {
		formatter.Println(path)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"path": path})
	}

	formatter.Printf("✓ Copied %s\n", path)
	return nil
}
