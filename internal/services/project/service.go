package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/tiles/internal/database"
	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/platform"
	"github.com/thenoetrevino/tiles/internal/resolver"
	"github.com/thenoetrevino/tiles/internal/user"
)

// maxNameLength is the longest accepted display name, in characters
const maxNameLength = 100

// maxReadmeSize caps how much of a README is loaded for display
const maxReadmeSize = 1 << 20

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetProjectByID(ctx context.Context, id string) (models.Project, error)
	ResolveID(ctx context.Context, prefix string) (string, error)

	// Write operations
	RegisterPath(ctx context.Context, path string) (models.Project, error)
	RegisterPaths(ctx context.Context, paths []string) ([]models.Project, error)
	UpdateProject(ctx context.Context, req UpdateProjectRequest) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	MoveProject(ctx context.Context, id string, delta int) error
	Reload(ctx context.Context) error

	// Launch operations
	Launch(ctx context.Context, id string) (*models.Launch, error)
	TestLaunch(ctx context.Context, command, path string) error

	// Context actions
	OpenDirectory(ctx context.Context, id string) error
	CopyPath(ctx context.Context, id string) (string, error)
	FindReadme(ctx context.Context, id string) (string, error)
	ReadReadme(ctx context.Context, id string) (path, content string, err error)
	OpenReadme(ctx context.Context, id string) (string, error)

	// History
	History(ctx context.Context, id string, limit int) ([]*models.Launch, error)
	RecentLaunches(ctx context.Context, limit int) ([]*models.Launch, error)
	LastLaunch(ctx context.Context, id string) (*models.Launch, error)
}

// UpdateProjectRequest encapsulates data for updating a project.
// Nil fields keep their current value.
type UpdateProjectRequest struct {
	ID             string
	Name           *string
	Path           *string
	Command        *string
	IconPath       *string
	RunAsAdmin     *bool
	StartMinimized *bool
}

// System bundles the OS collaborators the service drives
type System struct {
	Spawner   platform.Spawner
	Opener    platform.Opener
	Clipboard platform.Clipboard
}

// projectStore defines the project list operations needed by the service
// This interface is private to the service layer
type projectStore interface {
	Load() error
	List() []models.Project
	Get(id string) (models.Project, bool)
	Add(dir string) (models.Project, error)
	Update(id string, fields models.ProjectFields) (bool, error)
	Remove(id string) (bool, error)
	Move(id string, delta int) (bool, error)
}

// launchResolver validates a project and builds its process parameters
type launchResolver interface {
	BuildLaunchInvocation(p models.Project) (resolver.Invocation, error)
}

// historyRepository defines the launch history access needed by the service
type historyRepository interface {
	RecordLaunch(ctx context.Context, launch *models.Launch) (*models.Launch, error)
	GetLaunchesByProject(ctx context.Context, projectID string, limit int) ([]*models.Launch, error)
	GetRecentLaunches(ctx context.Context, limit int) ([]*models.Launch, error)
	GetLastLaunch(ctx context.Context, projectID string) (*models.Launch, error)
	DeleteLaunchesByProject(ctx context.Context, projectID string) (int, error)
}

// service implements Service interface with private repositories
type service struct {
	store       projectStore
	resolver    launchResolver
	history     historyRepository
	system      System
	eventClient events.EventPublisher
	username    func() string
}

// NewService creates a new project service. history and eventClient may be
// nil, which disables the launch journal and launch notifications.
func NewService(store projectStore, res launchResolver, history historyRepository, system System, eventClient events.EventPublisher) Service {
	return &service{
		store:       store,
		resolver:    res,
		history:     history,
		system:      system,
		eventClient: eventClient,
		username:    user.GetCurrentUsername,
	}
}

// GetAllProjects returns every project in display order
func (s *service) GetAllProjects(ctx context.Context) ([]models.Project, error) {
	return s.store.List(), nil
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id string) (models.Project, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return p, nil
}

// ResolveID expands a unique identifier prefix to the full identifier
func (s *service) ResolveID(ctx context.Context, prefix string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("%w: empty id", ErrProjectNotFound)
	}
	if _, ok := s.store.Get(prefix); ok {
		return prefix, nil
	}

	var matches []string
	for _, p := range s.store.List() {
		if strings.HasPrefix(p.ID, prefix) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrProjectNotFound, prefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %d projects", ErrAmbiguousID, prefix, len(matches))
	}
}

// RegisterPath adds a dropped or picked path. A directory is added as is;
// a file registers its parent directory.
func (s *service) RegisterPath(ctx context.Context, path string) (models.Project, error) {
	abs, err := NormalizePath(path)
	if err != nil {
		return models.Project{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Project{}, fmt.Errorf("%w: %s", ErrPathNotFound, abs)
		}
		return models.Project{}, fmt.Errorf("failed to inspect %s: %w", abs, err)
	}

	dir := abs
	if !info.IsDir() {
		dir = filepath.Dir(abs)
	}

	p, err := s.store.Add(dir)
	if err != nil {
		return p, fmt.Errorf("project added but not saved: %w", err)
	}
	return p, nil
}

// RegisterPaths registers several paths, continuing past failures. The
// returned error joins every individual failure.
func (s *service) RegisterPaths(ctx context.Context, paths []string) ([]models.Project, error) {
	var (
		added []models.Project
		errs  []error
	)

	for _, path := range paths {
		p, err := s.RegisterPath(ctx, path)
		if p.ID != "" {
			added = append(added, p)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}

	return added, errors.Join(errs...)
}

// UpdateProject applies the non-nil fields of req
func (s *service) UpdateProject(ctx context.Context, req UpdateProjectRequest) (models.Project, error) {
	existing, ok := s.store.Get(req.ID)
	if !ok {
		return models.Project{}, fmt.Errorf("%w: %s", ErrProjectNotFound, req.ID)
	}

	fields := existing.Fields()

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.Project{}, ErrEmptyName
		}
		if utf8.RuneCountInString(name) > maxNameLength {
			return models.Project{}, ErrNameTooLong
		}
		fields.Name = name
	}
	if req.Path != nil {
		// existence is checked at launch time, not here
		path := strings.TrimSpace(*req.Path)
		if path != "" {
			abs, err := NormalizePath(path)
			if err != nil {
				return models.Project{}, err
			}
			path = abs
		}
		fields.Path = path
	}
	if req.Command != nil {
		fields.Command = strings.TrimSpace(*req.Command)
	}
	if req.IconPath != nil {
		fields.IconPath = strings.TrimSpace(*req.IconPath)
		if fields.IconPath != "" {
			if _, err := resolver.LoadIcon(fields.IconPath); err != nil {
				slog.Warn("icon will fall back to the default glyph", "icon", fields.IconPath, "error", err)
			}
		}
	}
	if req.RunAsAdmin != nil {
		fields.RunAsAdmin = *req.RunAsAdmin
	}
	if req.StartMinimized != nil {
		fields.StartMinimized = *req.StartMinimized
	}

	if _, err := s.store.Update(req.ID, fields); err != nil {
		return models.Project{}, fmt.Errorf("failed to update project: %w", err)
	}

	updated, _ := s.store.Get(req.ID)
	return updated, nil
}

// DeleteProject removes a project and its launch history
func (s *service) DeleteProject(ctx context.Context, id string) error {
	if _, ok := s.store.Get(id); !ok {
		return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	if _, err := s.store.Remove(id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if s.history != nil {
		if n, err := s.history.DeleteLaunchesByProject(ctx, id); err != nil {
			slog.Warn("failed to clear launch history", "project_id", id, "error", err)
		} else {
			slog.Debug("cleared launch history", "project_id", id, "launches", n)
		}
	}

	return nil
}

// MoveProject shifts a tile delta positions in the display order
func (s *service) MoveProject(ctx context.Context, id string, delta int) error {
	if _, err := s.store.Move(id, delta); err != nil {
		if errors.Is(err, models.ErrProjectNotFound) {
			return fmt.Errorf("%w: %s", ErrProjectNotFound, id)
		}
		return fmt.Errorf("failed to move project: %w", err)
	}
	return nil
}

// Reload re-reads the projects file
func (s *service) Reload(ctx context.Context) error {
	return s.store.Load()
}

// Launch starts the project's command. Configuration errors are returned
// before anything is spawned or recorded; spawn failures are recorded.
func (s *service) Launch(ctx context.Context, id string) (*models.Launch, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}

	inv, err := s.resolver.BuildLaunchInvocation(p)
	if err != nil {
		slog.Warn("launch blocked by configuration", "project_id", p.ID, "name", p.Name, "error", err)
		return nil, err
	}

	spawnErr := s.system.Spawner.Spawn(inv)

	launch := &models.Launch{
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Command:     inv.Command,
		WorkDir:     inv.Dir,
		Elevated:    inv.Elevated,
		Minimized:   inv.Minimized,
		LaunchedBy:  s.username(),
		Status:      models.LaunchStarted,
		LaunchedAt:  time.Now(),
	}
	if spawnErr != nil {
		launch.Status = models.LaunchFailed
		launch.Error = spawnErr.Error()
		slog.Error("launch failed", "project_id", p.ID, "name", p.Name, "error", spawnErr)
	} else {
		slog.Info("project launched", "project_id", p.ID, "name", p.Name, "command", inv.Command)
	}

	launch = s.recordLaunch(ctx, launch)

	_ = events.Publish(s.eventClient, events.Event{
		Type:      events.EventProjectLaunched,
		ProjectID: p.ID,
		Timestamp: launch.LaunchedAt,
	})

	if spawnErr != nil {
		return launch, fmt.Errorf("%w: %w", ErrLaunchFailed, spawnErr)
	}
	return launch, nil
}

// recordLaunch journals a launch attempt. History is best effort: a
// failure is logged and the unsaved record returned.
func (s *service) recordLaunch(ctx context.Context, launch *models.Launch) *models.Launch {
	if s.history == nil {
		return launch
	}

	saved, err := s.history.RecordLaunch(ctx, launch)
	if err != nil {
		slog.Warn("failed to record launch", "project_id", launch.ProjectID, "error", err)
		return launch
	}
	return saved
}

// TestLaunch runs an unsaved command in path with the same validation as a
// real launch, without flags and without recording it
func (s *service) TestLaunch(ctx context.Context, command, path string) error {
	if strings.TrimSpace(path) != "" {
		if abs, err := NormalizePath(path); err == nil {
			path = abs
		}
	}

	inv, err := s.resolver.BuildLaunchInvocation(models.Project{Command: command, Path: path})
	if err != nil {
		return err
	}

	if err := s.system.Spawner.Spawn(inv); err != nil {
		return fmt.Errorf("%w: %w", ErrLaunchFailed, err)
	}

	slog.Info("test launch started", "command", inv.Command, "dir", inv.Dir)
	return nil
}

// OpenDirectory shows the project directory in the file manager
func (s *service) OpenDirectory(ctx context.Context, id string) error {
	p, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.system.Opener.Open(p.Path); err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	return nil
}

// CopyPath puts the project path on the clipboard and returns it
func (s *service) CopyPath(ctx context.Context, id string) (string, error) {
	p, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.system.Clipboard.WriteText(p.Path); err != nil {
		return "", fmt.Errorf("failed to copy path: %w", err)
	}
	return p.Path, nil
}

// FindReadme returns the path of the project's top-level README
func (s *service) FindReadme(ctx context.Context, id string) (string, error) {
	p, err := s.GetProjectByID(ctx, id)
	if err != nil {
		return "", err
	}
	return resolver.FindReadme(p.Path)
}

// ReadReadme returns the project's README path and contents
func (s *service) ReadReadme(ctx context.Context, id string) (string, string, error) {
	path, err := s.FindReadme(ctx, id)
	if err != nil {
		return "", "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return path, "", fmt.Errorf("failed to open README: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxReadmeSize+1))
	if err != nil {
		return path, "", fmt.Errorf("failed to read README: %w", err)
	}
	if len(data) > maxReadmeSize {
		return path, "", ErrReadmeTooLarge
	}

	return path, string(data), nil
}

// OpenReadme opens the project's README with the default application
func (s *service) OpenReadme(ctx context.Context, id string) (string, error) {
	path, err := s.FindReadme(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.system.Opener.Open(path); err != nil {
		return path, fmt.Errorf("failed to open README: %w", err)
	}
	return path, nil
}

// History returns a project's most recent launches
func (s *service) History(ctx context.Context, id string, limit int) ([]*models.Launch, error) {
	if _, err := s.GetProjectByID(ctx, id); err != nil {
		return nil, err
	}
	if s.history == nil {
		return []*models.Launch{}, nil
	}
	return s.history.GetLaunchesByProject(ctx, id, limit)
}

// RecentLaunches returns the newest launches across all projects
func (s *service) RecentLaunches(ctx context.Context, limit int) ([]*models.Launch, error) {
	if s.history == nil {
		return []*models.Launch{}, nil
	}
	return s.history.GetRecentLaunches(ctx, limit)
}

// LastLaunch returns the newest launch of a project. It returns nil, nil
// when history is disabled or the project was never launched.
func (s *service) LastLaunch(ctx context.Context, id string) (*models.Launch, error) {
	if s.history == nil {
		return nil, nil
	}

	last, err := s.history.GetLastLaunch(ctx, id)
	if errors.Is(err, database.ErrNoLaunches) {
		return nil, nil
	}
	return last, err
}
