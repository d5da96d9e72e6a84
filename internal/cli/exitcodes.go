package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: spawn failures, clipboard or opener failures, history errors,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing arguments, unknown flags, invalid flag combinations.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: unknown or ambiguous project ids, paths that do not exist,
	// projects without a README.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: an unreadable or corrupt projects file.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: launch configuration errors (empty command, missing working
	// directory) and invalid edits such as an empty name.
	ExitValidation = 5
)

// CodeError carries the process exit code of a failed command. The message
// has already been reported to the user when it is returned.
type CodeError struct {
	Code int
	Err  error
}

func (e *CodeError) Error() string {
	return fmt.Sprintf("exit %d: %v", e.Code, e.Err)
}

func (e *CodeError) Unwrap() error {
	return e.Err
}

// CodeFor classifies err into an exit code
func CodeFor(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case resolver.IsConfigError(err),
		errors.Is(err, projectservice.ErrEmptyName),
		errors.Is(err, projectservice.ErrNameTooLong),
		errors.Is(err, projectservice.ErrEmptyPath):
		return ExitValidation
	case errors.Is(err, projectservice.ErrProjectNotFound),
		errors.Is(err, projectservice.ErrAmbiguousID),
		errors.Is(err, projectservice.ErrPathNotFound),
		errors.Is(err, resolver.ErrNoReadme):
		return ExitNotFound
	case errors.Is(err, store.ErrLoad):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ExitCode returns the code the process should exit with after a command
// returned err. Errors not produced by a command (cobra argument and flag
// errors) are usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *CodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
