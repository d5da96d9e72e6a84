package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/tiles/internal/models"
)

// fileVersion is the schema version written to the projects file
const fileVersion = 1

// projectsFile is the on-disk layout of the project list
type projectsFile struct {
	Version  int              `yaml:"version"`
	Projects []models.Project `yaml:"projects"`
}

// readFile parses the projects file at path. A missing file is reported
// with an error satisfying errors.Is(err, os.ErrNotExist).
func readFile(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file projectsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if file.Version > fileVersion {
		return nil, fmt.Errorf("%s has unsupported version %d", path, file.Version)
	}

	return file.Projects, nil
}

// writeFile replaces the projects file atomically by writing a temp file
// in the same directory and renaming it over the target.
func writeFile(path string, projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}

	data, err := yaml.Marshal(projectsFile{Version: fileVersion, Projects: projects})
	if err != nil {
		return fmt.Errorf("failed to encode projects: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".projects-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace projects file: %w", err)
	}

	return nil
}
