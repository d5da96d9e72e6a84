package cli

import (
	"context"
	"log"
)

type cliKey struct{}

// WithCLI returns a context carrying an existing CLI. Commands run with
// such a context use it instead of opening their own, and leave it open.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, cliKey{}, c)
}

// GetCLIFromContext returns the CLI stored in ctx, or opens a new one. The
// returned release func must be called when the command is done.
func GetCLIFromContext(ctx context.Context) (*CLI, func(), error) {
	if c, ok := ctx.Value(cliKey{}).(*CLI); ok && c != nil {
		return c, func() {}, nil
	}

	c, err := NewCLI(ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() {
		if err := c.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}, nil
}
