// Package cli builds test applications for command and TUI tests. It is separate
// from testutil so service tests can import testutil without a cycle.
package cli

import (
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/tiles/internal/app"
	"github.com/thenoetrevino/tiles/internal/config"
	"github.com/thenoetrevino/tiles/internal/database"
	projectservice "github.com/thenoetrevino/tiles/internal/services/project"
	"github.com/thenoetrevino/tiles/internal/testutil"
)

// TestApp is an application wired to an in-memory history database, a
// temporary projects file and platform fakes
type TestApp struct {
	App          *app.App
	Config       *config.Config
	ProjectsFile string
	Spawner      *testutil.FakeSpawner
	Opener       *testutil.FakeOpener
	Clipboard    *testutil.FakeClipboard
}

// SetupCLITest creates the test application. The project list starts empty.
func SetupCLITest(t *testing.T) *TestApp {
	t.Helper()

	db := testutil.SetupTestDB(t)
	cfg := config.Default()
	cfg.Launch.Shell = "/bin/sh"

	ta := &TestApp{
		Config:       cfg,
		ProjectsFile: filepath.Join(t.TempDir(), "projects.yaml"),
		Spawner:      &testutil.FakeSpawner{},
		Opener:       &testutil.FakeOpener{},
		Clipboard:    &testutil.FakeClipboard{},
	}

	// Note: EventPublisher is nil - event publishing is tested elsewhere
	ta.App = app.New(ta.ProjectsFile, database.NewRepository(db), cfg,
		app.WithSystem(projectservice.System{
			Spawner:   ta.Spawner,
			Opener:    ta.Opener,
			Clipboard: ta.Clipboard,
		}),
	)

	return ta
}
