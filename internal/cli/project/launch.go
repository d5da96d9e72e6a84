package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// LaunchCmd returns the launch subcommand
func LaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <id>",
		Short: "Launch a tile's command in a new terminal",
		Long: `Start the tile's command in a new shell window opened in the project
directory. The shell stays open after the command finishes.

A tile with an empty command or a missing directory is not launched and
exits with code 5.`,
		Args: cobra.ExactArgs(1),
		RunE: runLaunch,
	}
}

func runLaunch(cmd *cobra.Command, args []string) error {
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

	launch, err := cliInstance.App.ProjectService.Launch(ctx, project.ID)
	if err != nil {
		return formatter.Fail("LAUNCH_ERROR", err)
	}

	if formatter.Quiet {
		formatter.Println(project.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"launch": launch})
	}

	formatter.Printf("✓ Launched '%s': %s\n", project.Name, launch.Command)
	return nil
}
