package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/tiles/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with migrations applied
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Failed to open file database: %v", err)
	}
	return db, path
}

// ============================================================================
// FIXTURES
// ============================================================================

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newLaunch(projectID string, offset time.Duration) *models.Launch {
	return &models.Launch{
		ProjectID:   projectID,
		ProjectName: "proj-" + projectID,
		Command:     "npm start",
		WorkDir:     "/src/" + projectID,
		LaunchedBy:  "tester",
		Status:      models.LaunchStarted,
		LaunchedAt:  baseTime.Add(offset),
	}
}

func recordLaunch(t *testing.T, repo *Repository, l *models.Launch) *models.Launch {
	t.Helper()
	saved, err := repo.RecordLaunch(context.Background(), l)
	if err != nil {
		t.Fatalf("RecordLaunch() failed: %v", err)
	}
	return saved
}
