package app

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/database"
	"github.com/thenoetrevino/tiles/internal/events"
	"github.com/thenoetrevino/tiles/internal/resolver"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

type nopSpawner struct{ calls int }

func (s *nopSpawner) Spawn(resolver.Invocation) error {
	s.calls++
	return nil
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	path := filepath.Join(t.TempDir(), "projects.yaml")

	app := New(path, database.NewRepository(db), nil)

	if app == nil {
		t.Fatal("Expected app to be created, got nil")
	}
	if app.ProjectService == nil {
		t.Error("Expected ProjectService to be initialized")
	}
	if app.Repo() == nil {
		t.Error("Expected history repository to be kept")
	}
	if app.ProjectsFile() != path {
		t.Errorf("ProjectsFile() = %q, want %q", app.ProjectsFile(), path)
	}
	if app.Resolver() == nil {
		t.Error("Expected resolver to be initialized")
	}
}

func TestLoad_SeedsAndLaunches(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "projects.yaml")
	spawner := &nopSpawner{}
	bus := events.NewBus(5 * time.Millisecond)
	t.Cleanup(func() { _ = bus.Close() })

	cfg := config.Default()
	cfg.Launch.Shell = "/bin/sh"

	app := New(path, database.NewRepository(db), cfg,
		WithEventPublisher(bus),
		WithSystem(projectservice.System{Spawner: spawner}),
		WithStoreOptions(store.WithWorkDir(func() (string, error) { return dir, nil })),
	)
	if app.Events() != bus {
		t.Error("Expected event publisher to be shared")
	}

	ctx := context.Background()
	if err := app.Load(ctx); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	projects, _ := app.ProjectService.GetAllProjects(ctx)
	if len(projects) != 1 || projects[0].Path != dir || projects[0].Name != store.SampleName {
		t.Fatalf("expected seeded sample project, got %+v", projects)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("seed was not persisted: %v", err)
	}

	if _, err := app.ProjectService.Launch(ctx, projects[0].ID); err != nil {
		t.Fatalf("Launch() failed: %v", err)
	}
	if spawner.calls != 1 {
		t.Errorf("spawner called %d times, want 1", spawner.calls)
	}
}

func TestLoad_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	if err := os.WriteFile(path, []byte("projects: [::"), 0o644); err != nil {
		t.Fatal(err)
	}

	app := New(path, nil, nil)
	err := app.Load(context.Background())
	if !errors.Is(err, store.ErrLoad) {
		t.Fatalf("Load() error = %v, want ErrLoad", err)
	}

	projects, _ := app.ProjectService.GetAllProjects(context.Background())
	if len(projects) != 0 {
		t.Errorf("expected empty list after load failure, got %d", len(projects))
	}
}

func TestClose(t *testing.T) {
	app := New(filepath.Join(t.TempDir(), "projects.yaml"), nil, nil)

	if err := app.Close(); err != nil {
		t.Errorf("Expected Close to succeed, got error: %v", err)
	}
}
