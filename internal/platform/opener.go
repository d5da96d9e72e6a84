package platform

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
)

// DefaultOpener opens paths with explorer, open or xdg-open
type DefaultOpener struct {
	GOOS string

	start func(cmd *exec.Cmd) error
}

// NewOpener creates an opener for the running platform
func NewOpener() *DefaultOpener {
	return &DefaultOpener{}
}

// Open hands path to the desktop's default handler without waiting for it
func (o *DefaultOpener) Open(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}

	cmd := exec.Command(o.program(), path)

	start := o.start
	if start == nil {
		start = func(cmd *exec.Cmd) error {
			if err := cmd.Start(); err != nil {
				return err
			}
			go func() { _ = cmd.Wait() }()
			return nil
		}
	}

	if err := start(cmd); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	slog.Debug("opened path", "path", path, "program", cmd.Path)
	return nil
}

func (o *DefaultOpener) program() string {
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	switch goos {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
