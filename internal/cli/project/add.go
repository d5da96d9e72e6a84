package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	"github.com/thenoetrevino/tiles/internal/models"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <path>...",
		Short: "Register directories as launch tiles",
		Long: `Register one or more directories as launch tiles.

The name is the last path segment; the command and icon are inferred from
the directory contents (package.json → npm start, requirements.txt →
python <first .py>, *.sln → dotnet run). A file registers its parent.

Examples:
  tiles add ~/code/web
  tiles add . ../api --json
  ID=$(tiles add ~/code/web --quiet)
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAdd,
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail("INITIALIZATION_ERROR", err)
	}
	defer release()

	added, err := cliInstance.App.ProjectService.RegisterPaths(ctx, args)

	if formatter.Quiet {
		for _, p := range added {
			formatter.Println(p.ID)
		}
	} else if formatter.JSON {
		if err == nil {
			return formatter.JSONSuccess(map[string]any{"projects": added})
		}
	} else {
		for _, p := range added {
			printAdded(formatter, p)
		}
	}

	if err != nil {
		return formatter.Fail("ADD_ERROR", err)
	}
	return nil
}

func printAdded(f *cli.OutputFormatter, p models.Project) {
	f.Printf("✓ Added '%s' (ID: %s)\n", p.Name, p.ShortID())
	if p.Command != "" {
		f.Printf("  Command: %s\n", p.Command)
	} else {
		f.Printf("  Command: (none inferred, set one with: tiles edit %s --command ...)\n", p.ShortID())
	}
	if p.IconPath != "" {
		f.Printf("  Icon:    %s\n", p.IconPath)
	}
}
