package render

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tiles/internal/models"
	"github.com/thenoetrevino/tiles/internal/testutil"
	clitest "github.com/thenoetrevino/tiles/internal/testutil/cli"
	"github.com/thenoetrevino/tiles/internal/tui"
	"github.com/thenoetrevino/tiles/internal/tui/modelops"
	"github.com/thenoetrevino/tiles/internal/tui/state"
)

func setupRenderModel(t *testing.T, width, height int) *tui.Model {
	t.Helper()

	ta := clitest.SetupCLITest(t)
	m := tui.InitialModel(context.Background(), ta.App, ta.Config, nil)
	m.UiState.SetWidth(width)
	m.UiState.SetHeight(height)
	m.NotificationState.SetWindowSize(width, height)
	return &m
}

func addProject(t *testing.T, m *tui.Model, files ...string) models.Project {
	t.Helper()

	p, err := m.App.ProjectService.RegisterPath(context.Background(), testutil.CreateProjectDir(t, files...))
	if err != nil {
		t.Fatalf("RegisterPath() error = %v", err)
	}
	modelops.ReloadProjects(m)
	return p
}

// ============================================================================
// VIEW
// ============================================================================

func TestView_Loading(t *testing.T) {
	m := setupRenderModel(t, 0, 0)

	v := View(m)

	if v.Content != "Loading..." {
		t.Errorf("Content = %q, want Loading...", v.Content)
	}
	if !v.AltScreen {
		t.Error("AltScreen not set")
	}
}

func TestView_EmptyBoard(t *testing.T) {
	m := setupRenderModel(t, 80, 24)

	v := View(m)

	if !strings.Contains(v.Content, "No projects yet") {
		t.Errorf("empty board missing hint:\n%s", v.Content)
	}
	if v.WindowTitle != "tiles" {
		t.Errorf("WindowTitle = %q", v.WindowTitle)
	}
}

func TestView_TilesAndStatusBar(t *testing.T) {
	m := setupRenderModel(t, 100, 30)
	p := addProject(t, m, "package.json")

	v := View(m)

	for _, want := range []string{p.Name, "npm start", "never launched", p.ShortID(), "1 projects"} {
		if !strings.Contains(v.Content, want) {
			t.Errorf("view missing %q:\n%s", want, v.Content)
		}
	}
}

func TestView_ModalModes(t *testing.T) {
	tests := []struct {
		name      string
		mode      state.Mode
		setup     func(m *tui.Model)
		want      string
		wantMouse bool
	}{
		{
			name: "help",
			mode: state.HelpMode,
			want: "Keyboard Shortcuts",
		},
		{
			name: "history",
			mode: state.HistoryMode,
			setup: func(m *tui.Model) {
				m.ViewerState.Open("Recent launches", "", "No launches recorded yet.", false)
				m.ViewerState.SetSize(40, 10)
				m.ViewerState.SetContent(m.ViewerState.Raw)
			},
			want:      "Recent launches",
			wantMouse: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := setupRenderModel(t, 100, 30)
			if tt.setup != nil {
				tt.setup(m)
			}
			m.UiState.SetMode(tt.mode)

			v := View(m)

			if !strings.Contains(v.Content, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, v.Content)
			}
			if got := v.MouseMode == tea.MouseModeCellMotion; got != tt.wantMouse {
				t.Errorf("mouse enabled = %v, want %v", got, tt.wantMouse)
			}
		})
	}
}

func TestView_Notifications(t *testing.T) {
	m := setupRenderModel(t, 100, 30)
	m.NotificationState.Add(state.LevelError, "spawn refused")

	v := View(m)

	if !strings.Contains(v.Content, "spawn refused") {
		t.Errorf("view missing notification:\n%s", v.Content)
	}
}

// ============================================================================
// TILES
// ============================================================================

func TestRenderTile(t *testing.T) {
	m := setupRenderModel(t, 100, 30)

	p := models.Project{ID: "abc", Name: "api", Path: "/srv/api", RunAsAdmin: true}
	got := RenderTile(m, p, false)
	if !strings.Contains(got, "no command") {
		t.Errorf("tile without command missing marker:\n%s", got)
	}
	if !strings.Contains(got, "⚑") {
		t.Errorf("admin tile missing flag:\n%s", got)
	}

	m.AppState.SetLastLaunch("abc", &models.Launch{
		Status:     models.LaunchFailed,
		LaunchedAt: time.Now().Add(-3 * time.Hour),
	})
	got = RenderTile(m, p, true)
	if !strings.Contains(got, "✗ 3 hours ago") {
		t.Errorf("failed launch not shown:\n%s", got)
	}
}

func TestRenderLaunchStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		last *models.Launch
		p    models.Project
		want string
	}{
		{"never", nil, models.Project{}, "never launched"},
		{"started", &models.Launch{Status: models.LaunchStarted, LaunchedAt: now.Add(-5 * time.Minute)}, models.Project{}, "✓ 5 minutes ago"},
		{"minimized", nil, models.Project{StartMinimized: true}, "▁"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := renderLaunchStatus(tt.last, tt.p); !strings.Contains(got, tt.want) {
				t.Errorf("renderLaunchStatus() = %q, want it to contain %q", got, tt.want)
			}
		})
	}
}

// ============================================================================
// TEXT HELPERS
// ============================================================================

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
		left  string
	}{
		{"short", 10, "short", "short"},
		{"abcdef", 6, "abcdef", "abcdef"},
		{"abcdef", 4, "abc…", "…def"},
		{"projekt-ü", 5, "proj…", "…kt-ü"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
		if got := truncateLeft(tt.in, tt.width); got != tt.left {
			t.Errorf("truncateLeft(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.left)
		}
	}
}

func TestShortenHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{home, "~"},
		{filepath.Join(home, "src", "api"), filepath.Join("~", "src", "api")},
		{"/opt/tool", "/opt/tool"},
		{home + "x", home + "x"},
	}

	for _, tt := range tests {
		if got := shortenHome(tt.in); got != tt.want {
			t.Errorf("shortenHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
