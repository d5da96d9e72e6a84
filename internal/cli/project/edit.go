package project

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit tile settings",
		Long: `Change the settings of a tile. Only the flags given are changed.

Examples:
  tiles edit 3f2a --command "npm run dev"
  tiles edit 3f2a --name "Web" --minimized
  tiles edit 3f2a --admin=false --icon ""
`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().String("name", "", "Display name")
	cmd.Flags().String("command", "", "Launch command (empty clears it)")
	cmd.Flags().String("path", "", "Working directory")
	cmd.Flags().String("icon", "", "Path to an .ico file (empty clears it)")
	cmd.Flags().Bool("admin", false, "Run elevated")
	cmd.Flags().Bool("minimized", false, "Start minimized")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	req, changed := editRequest(cmd)
	if !changed {
		if fmtErr := formatter.ErrorWithSuggestion("NO_CHANGES",
			"no settings given",
			"Pass at least one of --name, --command, --path, --icon, --admin, --minimized"); fmtErr != nil {
			formatter.Printf("Error formatting error message: %v\n", fmtErr)
		}
		return &cli.CodeError{Code: cli.ExitUsage, Err: errNoChanges}
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
	req.ID = project.ID

	updated, err := cliInstance.App.ProjectService.UpdateProject(ctx, req)
	if err != nil {
		return formatter.Fail("UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		formatter.Println(updated.ID)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"project": updated})
	}

	formatter.Printf("✓ Project '%s' updated\n", updated.Name)
	return nil
}

// editRequest collects the flags the user actually set
func editRequest(cmd *cobra.Command) (projectservice.UpdateProjectRequest, bool) {
	var req projectservice.UpdateProjectRequest
	flags := cmd.Flags()

	stringFlag := func(name string) *string {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetString(name)
		return &v
	}
	boolFlag := func(name string) *bool {
		if !flags.Changed(name) {
			return nil
		}
		v, _ := flags.GetBool(name)
		return &v
	}

	req.Name = stringFlag("name")
	req.Command = stringFlag("command")
	req.Path = stringFlag("path")
	req.IconPath = stringFlag("icon")
	req.RunAsAdmin = boolFlag("admin")
	req.StartMinimized = boolFlag("minimized")

	changed := req.Name != nil || req.Command != nil || req.Path != nil ||
		req.IconPath != nil || req.RunAsAdmin != nil || req.StartMinimized != nil
	return req, changed
}
