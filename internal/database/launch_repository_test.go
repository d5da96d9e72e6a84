package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/thenoetrevino/tiles/internal/models"
)

func TestRecordLaunch(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	input := newLaunch("p1", 0)
	input.Elevated = true
	input.Status = models.LaunchFailed
	input.Error = "exec: not found"

	saved := recordLaunch(t, repo, input)
	if saved.ID == 0 {
		t.Fatal("expected an assigned ID")
	}

	got, err := repo.GetLastLaunch(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetLastLaunch() failed: %v", err)
	}

	if got.ID != saved.ID || got.ProjectName != "proj-p1" || got.Command != "npm start" {
		t.Errorf("unexpected launch %+v", got)
	}
	if !got.Elevated || got.Minimized {
		t.Errorf("flags not round-tripped: %+v", got)
	}
	if !got.Failed() || got.Error != "exec: not found" {
		t.Errorf("status/error not round-tripped: %+v", got)
	}
	if !got.LaunchedAt.Equal(baseTime) {
		t.Errorf("LaunchedAt = %v, want %v", got.LaunchedAt, baseTime)
	}
}

func TestRecordLaunch_Defaults(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	before := time.Now().Add(-time.Second)
	saved := recordLaunch(t, repo, &models.Launch{ProjectID: "p", ProjectName: "p", Command: "x", WorkDir: "/"})

	if saved.Status != models.LaunchStarted {
		t.Errorf("Status = %q, want started", saved.Status)
	}
	if saved.LaunchedAt.Before(before) {
		t.Errorf("LaunchedAt = %v, expected now", saved.LaunchedAt)
	}
}

func TestRecordLaunch_DoesNotMutateInput(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	input := &models.Launch{ProjectID: "p", ProjectName: "p", Command: "x", WorkDir: "/"}

	recordLaunch(t, repo, input)

	if input.ID != 0 || !input.LaunchedAt.IsZero() {
		t.Errorf("input was mutated: %+v", input)
	}
}

func TestGetRecentLaunches(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	recordLaunch(t, repo, newLaunch("a", 1*time.Minute))
	recordLaunch(t, repo, newLaunch("b", 3*time.Minute))
	recordLaunch(t, repo, newLaunch("a", 2*time.Minute))

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"all", 0, []string{"b", "a", "a"}},
		{"limited", 2, []string{"b", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launches, err := repo.GetRecentLaunches(context.Background(), tt.limit)
			if err != nil {
				t.Fatalf("GetRecentLaunches() failed: %v", err)
			}
			if len(launches) != len(tt.want) {
				t.Fatalf("got %d launches, want %d", len(launches), len(tt.want))
			}
			for i, l := range launches {
				if l.ProjectID != tt.want[i] {
					t.Errorf("launch %d project = %s, want %s", i, l.ProjectID, tt.want[i])
				}
			}
		})
	}
}

func TestGetLaunchesByProject(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	first := recordLaunch(t, repo, newLaunch("a", 1*time.Minute))
	recordLaunch(t, repo, newLaunch("b", 2*time.Minute))
	second := recordLaunch(t, repo, newLaunch("a", 3*time.Minute))

	launches, err := repo.GetLaunchesByProject(context.Background(), "a", 10)
	if err != nil {
		t.Fatalf("GetLaunchesByProject() failed: %v", err)
	}
	if len(launches) != 2 {
		t.Fatalf("got %d launches, want 2", len(launches))
	}
	if launches[0].ID != second.ID || launches[1].ID != first.ID {
		t.Errorf("launches not newest first: %d, %d", launches[0].ID, launches[1].ID)
	}

	empty, err := repo.GetLaunchesByProject(context.Background(), "none", 10)
	if err != nil {
		t.Fatalf("GetLaunchesByProject() failed: %v", err)
	}
	if empty == nil || len(empty) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", empty)
	}
}

func TestGetLastLaunch_None(t *testing.T) {
	repo := NewRepository(setupTestDB(t))

	if _, err := repo.GetLastLaunch(context.Background(), "ghost"); !errors.Is(err, ErrNoLaunches) {
		t.Errorf("GetLastLaunch() error = %v, want ErrNoLaunches", err)
	}
}

func TestCountAndDeleteLaunches(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recordLaunch(t, repo, newLaunch("a", time.Duration(i)*time.Minute))
	}
	recordLaunch(t, repo, newLaunch("b", 0))

	count, err := repo.CountLaunchesByProject(ctx, "a")
	if err != nil || count != 3 {
		t.Fatalf("CountLaunchesByProject() = %d, %v; want 3", count, err)
	}

	deleted, err := repo.DeleteLaunchesByProject(ctx, "a")
	if err != nil || deleted != 3 {
		t.Fatalf("DeleteLaunchesByProject() = %d, %v; want 3", deleted, err)
	}

	if count, _ := repo.CountLaunchesByProject(ctx, "a"); count != 0 {
		t.Errorf("count after delete = %d, want 0", count)
	}
	if count, _ := repo.CountLaunchesByProject(ctx, "b"); count != 1 {
		t.Errorf("other project affected: count = %d, want 1", count)
	}
}

func TestRecordLaunch_Retention(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	repo.retention = 3
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		recordLaunch(t, repo, newLaunch("a", time.Duration(i)*time.Minute))
	}
	recordLaunch(t, repo, newLaunch("b", 0))

	launches, err := repo.GetLaunchesByProject(ctx, "a", 0)
	if err != nil {
		t.Fatalf("GetLaunchesByProject() failed: %v", err)
	}
	if len(launches) != 3 {
		t.Fatalf("kept %d launches, want 3", len(launches))
	}
	if !launches[2].LaunchedAt.Equal(baseTime.Add(2 * time.Minute)) {
		t.Errorf("oldest kept launch = %v, want the third", launches[2].LaunchedAt)
	}
	if count, _ := repo.CountLaunchesByProject(ctx, "b"); count != 1 {
		t.Errorf("retention trimmed another project")
	}
}
