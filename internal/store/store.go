// Package store owns the ordered list of launch tiles and its YAML file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/resolver"
)

// Seed record written when no projects file exists
const (
	SampleName    = "Sample Project"
	SampleCommand = "echo Hello World"
)

// Resolver supplies the inferred defaults for a newly added directory
type Resolver interface {
	InferDefaultCommand(dir string) string
	ResolveIcon(dir string) string
}

// Store holds the project list in memory and mirrors every change to disk.
// It is not safe for concurrent use.
type Store struct {
	path      string
	projects  []models.Project
	issued    map[string]struct{}
	resolver  Resolver
	publisher events.EventPublisher

	newID   func() string
	workDir func() (string, error)
}

// Option configures a Store
type Option func(*Store)

// WithIDGenerator replaces the UUID generator
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithWorkDir replaces the working directory lookup used for the seed record
func WithWorkDir(fn func() (string, error)) Option {
	return func(s *Store) {
		s.workDir = fn
	}
}

// New creates a store backed by the file at path. The list is empty until
// Load is called. publisher may be nil.
func New(path string, r Resolver, publisher events.EventPublisher, opts ...Option) *Store {
	s := &Store{
		path:      path,
		issued:    make(map[string]struct{}),
		resolver:  r,
		publisher: publisher,
		newID:     func() string { return uuid.NewString() },
		workDir:   os.Getwd,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the projects file location
func (s *Store) Path() string {
	return s.path
}

// Load replaces the in-memory list with the contents of the projects file.
// A missing file seeds one sample project and persists it. Any other read
// or parse failure leaves the list empty and returns an error wrapping
// ErrLoad.
func (s *Store) Load() error {
	projects, err := readFile(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("projects file not found, seeding sample project", "path", s.path)
		s.projects = nil
		s.seed()
		if err := s.persist(); err != nil {
			return err
		}
		s.notify("")
		return nil

	case err != nil:
		s.projects = nil
		slog.Error("failed to load projects", "path", s.path, "error", err)
		s.notify("")
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}

	// reserve every stored id first so replacements cannot collide with a
	// later record
	for _, p := range projects {
		if p.ID != "" {
			s.issued[p.ID] = struct{}{}
		}
	}

	s.projects = make([]models.Project, 0, len(projects))
	seen := make(map[string]struct{}, len(projects))
	repaired := false
	for _, p := range projects {
		if _, dup := seen[p.ID]; p.ID == "" || dup {
			old := p.ID
			p.ID = s.generateID()
			slog.Warn("replaced invalid project id", "old_id", old, "new_id", p.ID, "name", p.Name)
			repaired = true
		}
		seen[p.ID] = struct{}{}
		s.projects = append(s.projects, p)
	}

	if repaired {
		if err := s.persist(); err != nil {
			slog.Warn("failed to persist repaired ids", "error", err)
		}
	}

	slog.Debug("loaded projects", "path", s.path, "count", len(s.projects))
	s.notify("")
	return nil
}

// Save writes the full list to the projects file
func (s *Store) Save() error {
	return s.persist()
}

// List returns a copy of every project in display order
func (s *Store) List() []models.Project {
	return slices.Clone(s.projects)
}

// Get returns a copy of the project with the given id
func (s *Store) Get(id string) (models.Project, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Project{}, false
	}
	return s.projects[idx], true
}

// Add registers dir as a new project. The name is the last path segment;
// command and icon come from the resolver. The project is kept in memory
// even when persisting fails.
func (s *Store) Add(dir string) (models.Project, error) {
	p := models.Project{
		ID:   s.generateID(),
		Name: resolver.ProjectName(dir),
		Path: dir,
	}
	if s.resolver != nil {
		p.Command = s.resolver.InferDefaultCommand(dir)
		p.IconPath = s.resolver.ResolveIcon(dir)
	}

	s.projects = append(s.projects, p)
	slog.Info("project added", "id", p.ID, "name", p.Name, "path", p.Path, "command", p.Command)

	err := s.persist()
	s.notify(p.ID)
	return p, err
}

// Update overwrites the editable fields of the project with the given id.
// An unknown id is a no-op and reports false.
func (s *Store) Update(id string, fields models.ProjectFields) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	s.projects[idx].Apply(fields)
	slog.Info("project updated", "id", id, "name", fields.Name)

	err := s.persist()
	s.notify(id)
	return true, err
}

// Remove deletes the project with the given id if present. The list is
// persisted and a refresh signalled either way.
func (s *Store) Remove(id string) (bool, error) {
	idx := s.indexOf(id)
	removed := idx >= 0
	if removed {
		s.projects = slices.Delete(s.projects, idx, idx+1)
		slog.Info("project removed", "id", id)
	}

	err := s.persist()
	s.notify(id)
	return removed, err
}

// Move shifts the project delta positions, clamped to the list bounds.
// It reports whether the order changed.
func (s *Store) Move(id string, delta int) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, models.ErrProjectNotFound
	}

	target := max(0, min(len(s.projects)-1, idx+delta))
	if target == idx {
		return false, nil
	}

	p := s.projects[idx]
	s.projects = slices.Delete(s.projects, idx, idx+1)
	s.projects = slices.Insert(s.projects, target, p)

	err := s.persist()
	s.notify(id)
	return true, err
}

func (s *Store) seed() {
	dir, err := s.workDir()
	if err != nil {
		slog.Warn("failed to resolve working directory for sample project", "error", err)
		dir = "."
	}

	s.projects = append(s.projects, models.Project{
		ID:      s.generateID(),
		Name:    SampleName,
		Path:    dir,
		Command: SampleCommand,
	})
}

// generateID returns an id never seen by this store before
func (s *Store) generateID() string {
	for {
		id := s.newID()
		if id == "" || s.isIssued(id) {
			slog.Warn("id collision, regenerating", "id", id)
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}

func (s *Store) isIssued(id string) bool {
	_, ok := s.issued[id]
	return ok
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.projects, func(p models.Project) bool {
		return p.ID == id
	})
}

func (s *Store) persist() error {
	if err := writeFile(s.path, s.projects); err != nil {
		slog.Error("failed to save projects", "path", s.path, "error", err)
		return fmt.Errorf("%w: %w", ErrSave, err)
	}
	return nil
}

func (s *Store) notify(projectID string) {
	if s.publisher == nil {
		return
	}
	_ = events.Publish(s.publisher, events.Event{
		Type:      events.EventProjectsChanged,
		ProjectID: projectID,
		Timestamp: time.Now(),
	})
}
