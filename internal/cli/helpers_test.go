package cli

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/models"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/store"
)

func TestResolveProject(t *testing.T) {
	ids := []string{"aaa111", "aaa222"}
	next := 0
	application := app.New(filepath.Join(t.TempDir(), "projects.yaml"), nil, nil,
		app.WithStoreOptions(store.WithIDGenerator(func() string {
			id := ids[next]
			next++
			return id
		})),
	)
	c := NewCLIWithApp(application, nil)
	ctx := context.Background()

	for range ids {
		if _, err := application.ProjectService.RegisterPath(ctx, t.TempDir()); err != nil {
			t.Fatalf("RegisterPath() failed: %v", err)
		}
	}

	p, err := ResolveProject(ctx, c, "aaa2")
	if err != nil || p.ID != "aaa222" {
		t.Errorf("ResolveProject(aaa2) = %q, %v", p.ID, err)
	}
	if _, err := ResolveProject(ctx, c, "aaa"); !errors.Is(err, projectservice.ErrAmbiguousID) {
		t.Errorf("ResolveProject(aaa) error = %v, want ErrAmbiguousID", err)
	}
	if _, err := ResolveProject(ctx, c, "b"); !errors.Is(err, projectservice.ErrProjectNotFound) {
		t.Errorf("ResolveProject(b) error = %v, want ErrProjectNotFound", err)
	}
}

func TestFormatFlags(t *testing.T) {
	tests := []struct {
		p    models.Project
		want string
	}{
		{models.Project{}, "-"},
		{models.Project{RunAsAdmin: true}, "admin"},
		{models.Project{StartMinimized: true}, "minimized"},
		{models.Project{RunAsAdmin: true, StartMinimized: true}, "admin, minimized"},
	}

	for _, tt := range tests {
		if got := FormatFlags(tt.p); got != tt.want {
			t.Errorf("FormatFlags(%+v) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "now"},
		{10 * time.Second, "10 seconds ago"},
		{5 * time.Minute, "5 minutes ago"},
		{3 * time.Hour, "3 hours ago"},
		{50 * time.Hour, "2 days ago"},
		{90 * 24 * time.Hour, "2025-12-10"},
	}

	for _, tt := range tests {
		if got := FormatAge(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("FormatAge(-%s) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}
