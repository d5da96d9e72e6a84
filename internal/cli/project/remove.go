package project

import (
	"bufio"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// RemoveCmd returns the remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a tile",
		Long:    "Remove a tile and its launch history (requires confirmation unless --force, --quiet or --json).",
		Args:    cobra.ExactArgs(1),
		RunE:    runRemove,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation")

	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	force, _ := cmd.Flags().GetBool("force")
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

	// Ask for confirmation unless force, quiet or json mode
	if !force && !formatter.Quiet && !formatter.JSON {
		formatter.Printf("Remove project '%s' (%s)? (y/N): ", project.Name, project.Path)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			formatter.Println("Cancelled")
			return nil
		}
	}

	if err := cliInstance.App.ProjectService.DeleteProject(ctx, project.ID); err != nil {
		return formatter.Fail("DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"project_id": project.ID})
	}

	formatter.Printf("✓ Project '%s' removed\n", project.Name)
	return nil
}
