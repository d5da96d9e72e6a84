// Package project holds all cli commands that act on launch tiles
//
// e.g., tiles add ..., tiles launch ...
package project

import (
	"github.com/spf13/cobra"
)

// Commands returns every project subcommand, attached directly to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		AddCmd(),
		ListCmd(),
		ShowCmd(),
		EditCmd(),
		RemoveCmd(),
		MoveCmd(),
		LaunchCmd(),
		TestCmd(),
		ReadmeCmd(),
		CopyPathCmd(),
		OpenCmd(),
		HistoryCmd(),
	}
}
