package database

import (
	"context"
	"testing"
)

func TestOpen_MigrationsAreIdempotent(t *testing.T) {
	db, path := setupTestDBFile(t)
	repo := NewRepository(db)
	recordLaunch(t, repo, newLaunch("p", 0))
	if err := db.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	// Reopen: migrations must not fail and data must survive
	db2, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer db2.Close()

	count, err := NewRepository(db2).CountLaunchesByProject(context.Background(), "p")
	if err != nil || count != 1 {
		t.Errorf("CountLaunchesByProject() after reopen = %d, %v; want 1", count, err)
	}

	var version int
	if err := db2.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		t.Fatalf("failed to read user_version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("user_version = %d, want %d", version, len(migrations))
	}
}

func TestOpen_WALEnabledForFiles(t *testing.T) {
	db, _ := setupTestDBFile(t)
	defer db.Close()

	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("failed to read journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}
}

func TestInitDB_UsesDataDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	db, err := InitDB(context.Background())
	if err != nil {
		t.Fatalf("InitDB() failed: %v", err)
	}
	defer db.Close()

	if _, err := NewRepository(db).GetRecentLaunches(context.Background(), 1); err != nil {
		t.Errorf("GetRecentLaunches() on fresh db failed: %v", err)
	}
}
