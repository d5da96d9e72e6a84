package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	tilescli "github.com/thenoetrevino/tiles/internal/cli"
)

// Result holds what a command wrote and returned
type Result struct {
	Stdout string
	Stderr string
	Err    error
}

// ExitCode returns the exit code the process would end with
func (r Result) ExitCode() int {
	return tilescli.ExitCode(r.Err)
}

// ExecuteCLICommand runs cmd under a test root carrying the output flags.
// The test application is injected through the context so the command
// does not open the real projects file or database.
func ExecuteCLICommand(t *testing.T, ta *TestApp, cmd *cobra.Command, args []string) Result {
	t.Helper()
	return ExecuteCLICommandWithInput(t, ta, cmd, args, "")
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content
func ExecuteCLICommandWithInput(t *testing.T, ta *TestApp, cmd *cobra.Command, args []string, stdin string) Result {
	t.Helper()

	if ta == nil {
		t.Fatal("test app cannot be nil - SetupCLITest must be called first")
	}

	root := &cobra.Command{Use: "tiles"}
	tilescli.AddOutputFlags(root)
	root.AddCommand(cmd)

	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{cmd.Name()}, args...))

	// Disable usage output on error for cleaner test output
	root.SilenceUsage = true
	root.SilenceErrors = true

	ctx := tilescli.WithCLI(context.Background(), tilescli.NewCLIWithApp(ta.App, ta.Config))
	err := root.ExecuteContext(ctx)

	return Result{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
