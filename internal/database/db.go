// Package database handles the initialization and connection to the SQLite
// launch history database
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/thenoetrevino/tiles/internal/config"
)

// InitDB opens the history database in the tiles data directory
func InitDB(ctx context.Context) (*sql.DB, error) {
	dataDir, err := config.DataDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return Open(ctx, filepath.Join(dataDir, "history.db"))
}

// Open opens (or creates) the database at path, applies connection
// settings and runs migrations. ":memory:" is accepted for tests.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite benefits from a single writer connection; an in-memory
	// database also only exists on its own connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []struct {
		name string
		stmt string
	}{
		{"foreign keys", "PRAGMA foreign_keys = ON"},
		{"WAL mode", "PRAGMA journal_mode = WAL"},
		// SQLite will retry for this duration
		{"busy timeout", "PRAGMA busy_timeout = 5000"},
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			slog.Error("failed to configure database", "setting", p.name, "error", err)
			closeDB(db)
			return nil, fmt.Errorf("failed to set %s: %w", p.name, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
