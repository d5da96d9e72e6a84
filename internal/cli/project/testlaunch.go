package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// TestCmd returns the test subcommand
func TestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Try a command before saving it",
		Long: `Run a command in a directory exactly as a tile would, without flags and
without recording it in the launch history.

Examples:
  tiles test --command "npm start" --path ~/code/web
`,
		Args: cobra.NoArgs,
		RunE: runTest,
	}

	cmd.Flags().String("command", "", "Command to run")
	cmd.Flags().String("path", ".", "Working directory")

	return cmd
}

func runTest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	command, _ := cmd.Flags().GetString("command")
	path, _ := cmd.Flags().GetString("path")
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	if err := cliInstance.App.ProjectService.TestLaunch(ctx, command, path); err != nil {
		return formatter.Fail("LAUNCH_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"command": command, "path": path})
	}

	formatter.Printf("✓ Started: %s\n", command)
	return nil
}
