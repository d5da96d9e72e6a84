package config

import (
	"os"
	"path/filepath"
)

const appName = "tiles"

// ConfigDir returns $XDG_CONFIG_HOME/tiles, falling back to ~/.config/tiles
func ConfigDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", appName), nil
}

// ProjectsFilePath returns the location of the persisted project list.
// TILES_PROJECTS_FILE overrides the default.
func ProjectsFilePath() (string, error) {
	if path := os.Getenv("TILES_PROJECTS_FILE"); path != "" {
		return path, nil
	}

	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "projects.yaml"), nil
}

// DataDir returns ~/.tiles, which holds the history database and logs
func DataDir() (string, error) {
	home := os.Getenv("HOME")
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(home, "."+appName), nil
}
