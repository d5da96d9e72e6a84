package project

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	"github.com/thenoetrevino/tiles/internal/cli/styles"
	"github.com/thenoetrevino/tiles/internal/models"
)

// HistoryCmd returns the history subcommand
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [id]",
		Short: "Show recent launches",
		Long: `Show the newest launches of one tile, or of all tiles when no id is
given. Launches blocked by an invalid configuration are never recorded.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}

	cmd.Flags().IntP("limit", "n", 0, "Maximum number of launches (default from config)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	limit, _ := cmd.Flags().GetInt("limit")
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	if limit <= 0 {
		limit = cliInstance.Config.HistoryLimit
	}

	var launches []*models.Launch
	if len(args) == 1 {
		project, err := cli.ResolveProject(ctx, cliInstance, args[0])
		if err != nil {
			return formatter.Fail("PROJECT_NOT_FOUND", err)
		}
		launches, err = cliInstance.App.ProjectService.History(ctx, project.ID, limit)
		if err != nil {
			return formatter.Fail("HISTORY_ERROR", err)
		}
	} else {
		launches, err = cliInstance.App.ProjectService.RecentLaunches(ctx, limit)
		if err != nil {
			return formatter.Fail("HISTORY_ERROR", err)
		}
	}

	if formatter.Quiet {
		for _, l := range launches {
			formatter.Println(l.ProjectID)
		}
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"launches": launches})
	}

	if len(launches) == 0 {
		formatter.Println("No launches recorded")
		return nil
	}

	now := time.Now()
	for _, l := range launches {
		formatter.Printf("%s %-10s %s  %s\n",
			styles.RenderStatus(l),
			cli.FormatAge(l.LaunchedAt, now),
			styles.TitleStyle.Render(l.ProjectName),
			styles.SubtitleStyle.Render(l.Command))
		if l.Error != "" {
			formatter.Printf("    %s\n", l.Error)
		}
	}
	return nil
}
