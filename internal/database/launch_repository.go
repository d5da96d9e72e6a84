package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/thenoetrevino/tiles/internal/models"
)

// DefaultRetention is the number of launches kept per project
const DefaultRetention = 200

// ErrNoLaunches is returned by GetLastLaunch for a project never launched
var ErrNoLaunches = errors.New("no launches recorded")

const launchColumns = `id, project_id, project_name, command, work_dir, elevated, minimized,
	launched_by, status, error, launched_at`

// LaunchRepo handles all launch-history database operations.
type LaunchRepo struct {
	db        *sql.DB
	retention int
}

// RecordLaunch inserts a launch and trims the project's history to the
// retention limit. A zero LaunchedAt is set to now.
func (r *LaunchRepo) RecordLaunch(ctx context.Context, launch *models.Launch) (*models.Launch, error) {
	record := *launch
	if record.LaunchedAt.IsZero() {
		record.LaunchedAt = time.Now()
	}
	if record.Status == "" {
		record.Status = models.LaunchStarted
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO launches (project_id, project_name, command, work_dir, elevated, minimized,
				launched_by, status, error, launched_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ProjectID, record.ProjectName, record.Command, record.WorkDir,
			record.Elevated, record.Minimized, record.LaunchedBy, string(record.Status),
			stringToNullString(record.Error), toMillis(record.LaunchedAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert launch for project %s: %w", record.ProjectID, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get launch ID after insert: %w", err)
		}
		record.ID = int(id)

		if r.retention > 0 {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM launches WHERE project_id = ? AND id NOT IN (
					SELECT id FROM launches WHERE project_id = ?
					ORDER BY launched_at DESC, id DESC LIMIT ?
				)`,
				record.ProjectID, record.ProjectID, r.retention,
			)
			if err != nil {
				return fmt.Errorf("failed to trim history for project %s: %w", record.ProjectID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetRecentLaunches returns the newest launches across all projects
func (r *LaunchRepo) GetRecentLaunches(ctx context.Context, limit int) ([]*models.Launch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+launchColumns+` FROM launches
		ORDER BY launched_at DESC, id DESC LIMIT ?`,
		limitOrAll(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent launches: %w", err)
	}
	return scanLaunches(rows)
}

// GetLaunchesByProject returns the newest launches of one project
func (r *LaunchRepo) GetLaunchesByProject(ctx context.Context, projectID string, limit int) ([]*models.Launch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+launchColumns+` FROM launches WHERE project_id = ?
		ORDER BY launched_at DESC, id DESC LIMIT ?`,
		projectID, limitOrAll(limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches for project %s: %w", projectID, err)
	}
	return scanLaunches(rows)
}

// GetLastLaunch returns the most recent launch of a project, or
// ErrNoLaunches
func (r *LaunchRepo) GetLastLaunch(ctx context.Context, projectID string) (*models.Launch, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+launchColumns+` FROM launches WHERE project_id = ?
		ORDER BY launched_at DESC, id DESC LIMIT 1`,
		projectID,
	)

	launch, err := scanLaunch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoLaunches
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last launch for project %s: %w", projectID, err)
	}
	return launch, nil
}

// CountLaunchesByProject returns how many launches are recorded for a project
func (r *LaunchRepo) CountLaunchesByProject(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM launches WHERE project_id = ?`, projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count launches for project %s: %w", projectID, err)
	}
	return count, nil
}

// DeleteLaunchesByProject removes a project's history and returns the
// number of rows deleted
func (r *LaunchRepo) DeleteLaunchesByProject(ctx context.Context, projectID string) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM launches WHERE project_id = ?`, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete launches for project %s: %w", projectID, err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted launches: %w", err)
	}
	return int(n), nil
}

// limitOrAll maps a non-positive limit to SQLite's "no limit"
func limitOrAll(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLaunch(row scanner) (*models.Launch, error) {
	var (
		l          models.Launch
		status     string
		errMsg     sql.NullString
		launchedAt int64
	)
	if err := row.Scan(&l.ID, &l.ProjectID, &l.ProjectName, &l.Command, &l.WorkDir,
		&l.Elevated, &l.Minimized, &l.LaunchedBy, &status, &errMsg, &launchedAt); err != nil {
		return nil, err
	}

	l.Status = models.LaunchStatus(status)
	l.Error = NullStringToString(errMsg)
	l.LaunchedAt = fromMillis(launchedAt)
	return &l, nil
}

func scanLaunches(rows *sql.Rows) ([]*models.Launch, error) {
	defer rows.Close()

	launches := make([]*models.Launch, 0)
	for rows.Next() {
		l, err := scanLaunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		launches = append(launches, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating launches: %w", err)
	}
	return launches, nil
}
