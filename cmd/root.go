// Package cmd assembles the tiles command tree.
package cmd

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/tiles/internal/cli"
	"github.com/thenoetrevino/tiles/internal/cli/project"
	"github.com/thenoetrevino/tiles/internal/launcher"
	"github.com/thenoetrevino/tiles/internal/logging"
)

// NewRootCmd builds the root command. Without a subcommand it opens the
// board; each project subcommand works on the same projects file.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tiles",
		Short: "Tiles - a launch board for your projects",
		Long: `Tiles keeps your project directories as tiles on a terminal board.
Each tile starts its project command in a new terminal with one key.

Run without arguments to open the board, or use the subcommands below
for scripting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The board sets up its own log file
			if cmd == cmd.Root() {
				return nil
			}
			if err := logging.Init(); err != nil {
				// Keep slog off stdout, JSON output must stay parseable
				logging.Setup(io.Discard, slog.LevelError)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	cli.AddOutputFlags(rootCmd)
	rootCmd.AddCommand(project.Commands()...)

	return rootCmd
}

// Execute runs the command line
func Execute() error {
	return NewRootCmd().Execute()
}
