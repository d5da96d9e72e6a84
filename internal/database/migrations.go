package database

import (
	"context"
	"database/sql"
	"fmt"
)

// migrations are applied in order; the index of the last applied one is
// kept in PRAGMA user_version
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS launches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project_id TEXT NOT NULL,
		project_name TEXT NOT NULL,
		command TEXT NOT NULL,
		work_dir TEXT NOT NULL,
		elevated BOOLEAN NOT NULL DEFAULT 0,
		minimized BOOLEAN NOT NULL DEFAULT 0,
		launched_by TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL CHECK (status IN ('started', 'failed')),
		error TEXT,
		launched_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_launches_project
		ON launches(project_id, launched_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_launches_time
		ON launches(launched_at DESC)`,
}

// runMigrations brings the schema up to date
func runMigrations(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if version >= len(migrations) {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		for i := version; i < len(migrations); i++ {
			if _, err := tx.ExecContext(ctx, migrations[i]); err != nil {
				return fmt.Errorf("migration %d failed: %w", i+1, err)
			}
		}
		// PRAGMA does not accept bound parameters
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", len(migrations))); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
		return nil
	})
}
