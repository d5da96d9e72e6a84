package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/tiles/cmd"
	"github.com/thenoetrevino/tiles/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Commands report their own failures; cobra's usage errors are not
		var exitErr *cli.CodeError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
