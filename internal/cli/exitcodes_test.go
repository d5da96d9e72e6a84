package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

func TestCodeFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"empty command", &resolver.ConfigError{Field: "command", Err: resolver.ErrEmptyCommand}, ExitValidation},
		{"missing directory", &resolver.ConfigError{Field: "path", Value: "/x", Err: resolver.ErrMissingDirectory}, ExitValidation},
		{"empty name", projectservice.ErrEmptyName, ExitValidation},
		{"name too long", projectservice.ErrNameTooLong, ExitValidation},
		{"empty path", projectservice.ErrEmptyPath, ExitValidation},
		{"wrapped not found", fmt.Errorf("%w: abc", projectservice.ErrProjectNotFound), ExitNotFound},
		{"ambiguous", projectservice.ErrAmbiguousID, ExitNotFound},
		{"path not found", projectservice.ErrPathNotFound, ExitNotFound},
		{"no readme", resolver.ErrNoReadme, ExitNotFound},
		{"corrupt file", fmt.Errorf("%w: yaml", store.ErrLoad), ExitDataErr},
		{"launch failed", fmt.Errorf("%w: no terminal", projectservice.ErrLaunchFailed), ExitError},
		{"other", errors.New("disk full"), ExitError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeFor(tt.err); got != tt.want {
				t.Errorf("CodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	if got := ExitCode(nil); got != ExitSuccess {
		t.Errorf("ExitCode(nil) = %d", got)
	}
	if got := ExitCode(fmt.Errorf("run: %w", &CodeError{Code: ExitNotFound, Err: errors.New("x")})); got != ExitNotFound {
		t.Errorf("ExitCode(wrapped CodeError) = %d, want %d", got, ExitNotFound)
	}
	if got := ExitCode(errors.New(`unknown flag: --nope`)); got != ExitUsage {
		t.Errorf("ExitCode(cobra error) = %d, want %d", got, ExitUsage)
	}
}
