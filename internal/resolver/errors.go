package resolver

import (
	"errors"
	"fmt"
)

// Configuration errors block a launch before anything is spawned
var (
	ErrEmptyCommand     = errors.New("launch command is empty")
	ErrMissingDirectory = errors.New("working directory does not exist")
)

// Lookup errors
var (
	ErrNoReadme    = errors.New("no README file found")
	ErrInvalidIcon = errors.New("not a valid .ico file")
)

// ConfigError reports a project setting that prevents a launch.
// It wraps one of the configuration sentinels so callers can use errors.Is.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is a launch configuration error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
