package database

import (
	"context"

	"github.com/thenoetrevino/tiles/internal/models"
)

// LaunchReader defines read operations for the launch history.
type LaunchReader interface {
	GetRecentLaunches(ctx context.Context, limit int) ([]*models.Launch, error)
	GetLaunchesByProject(ctx context.Context, projectID string, limit int) ([]*models.Launch, error)
	GetLastLaunch(ctx context.Context, projectID string) (*models.Launch, error)
	CountLaunchesByProject(ctx context.Context, projectID string) (int, error)
}

// LaunchWriter defines write operations for the launch history.
type LaunchWriter interface {
	RecordLaunch(ctx context.Context, launch *models.Launch) (*models.Launch, error)
	DeleteLaunchesByProject(ctx context.Context, projectID string) (int, error)
}

// LaunchRepository combines all launch history operations.
type LaunchRepository interface {
	LaunchReader
	LaunchWriter
}
