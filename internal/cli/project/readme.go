package project

import (
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
)

const readmeWidth = 80

// ReadmeCmd returns the readme subcommand
func ReadmeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "readme <id>",
		Short: "Show a tile's README",
		Long: `Render the project's top-level README in the terminal, or open it with
the default application when --open is given.`,
		Args: cobra.ExactArgs(1),
		RunE: runReadme,
	}

	cmd.Flags().Bool("open", false, "Open with the default application")
	cmd.Flags().Bool("raw", false, "Print the file without rendering")

	return cmd
}

func runReadme(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	open, _ := cmd.Flags().GetBool("open")
	raw, _ := cmd.Flags().GetBool("raw")
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

	if open {
		path, err := cliInstance.App.ProjectService.OpenReadme(ctx, project.ID)
		if err != nil {
			return formatter.Fail("README_ERROR", err)
		}
		if formatter.Quiet {
			formatter.Println(path)
			return nil
		}
		if formatter.JSON {
			return formatter.JSONSuccess(map[string]any{"path": path, "opened": true})
		}
		formatter.Printf("✓ Opened %s\n", path)
		return nil
	}

	path, content, err := cliInstance.App.ProjectService.ReadReadme(ctx, project.ID)
	if err != nil {
		return formatter.Fail("README_ERROR", err)
	}

	if formatter.Quiet {
		formatter.Println(path)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONSuccess(map[string]any{"path": path, "content": content})
	}

	if raw {
		formatter.Printf("%s", content)
		return nil
	}

	rendered, err := renderMarkdown(content)
	if err != nil {
		// fall back to the raw text
		formatter.Printf("%s", content)
		return nil
	}
	formatter.Printf("%s", rendered)
	return nil
}

var (
	rendererOnce sync.Once
	renderer     *glamour.TermRenderer
	rendererErr  error
)

func renderMarkdown(content string) (string, error) {
	rendererOnce.Do(func() {
		renderer, rendererErr = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(readmeWidth),
		)
	})
	if rendererErr != nil {
		return "", rendererErr
	}
	return renderer.Render(content)
}
