package project

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

// MoveCmd returns the move subcommand
func MoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <id> <delta>",
		Short: "Reorder a tile",
		Long: `Move a tile delta positions in the display order. Negative values move
it towards the front; the position is clamped to the list bounds.

Examples:
  tiles move 3f2a -1
  tiles move 3f2a -- -100
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	delta, err := strconv.Atoi(args[1])
	if err != nil {
		if fmtErr := formatter.Error("INVALID_DELTA", fmt.Sprintf("delta must be an integer, got %q", args[1])); fmtErr != nil {
			formatter.Printf("Error formatting error message: %v\n", fmtErr)
		}
		return &cli.CodeError{Code: cli.ExitUsage, Err: err}
	}

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	project, err := cli.ResolveProject(ctx, cliInstance, args[0])
	if err != nil {
		return formatter.Fail("PROJECT_NOT_FOUND", err)
	}

	if err := cliInstance.App.ProjectService.MoveProject(ctx, project.ID, delta); err != nil {
		return formatter.Fail("MOVE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"project_id": project.ID, "delta": delta})
	}

	formatter.Printf("✓ Project '%s' moved\n", project.Name)
	return nil
}
