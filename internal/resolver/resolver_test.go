package resolver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// makeTree creates files (and directories, for names ending in "/") under a
// fresh temp directory and returns its path
func makeTree(t *testing.T, entries ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, e := range entries {
		full := filepath.Join(root, filepath.FromSlash(e))
		if e[len(e)-1] == '/' {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("Failed to create dir %s: %v", e, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", e, err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", e, err)
		}
	}
	return root
}

// ============================================================================
// COMMAND INFERENCE
// ============================================================================

func TestInferDefaultCommand(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{"empty directory", nil, ""},
		{"package.json", []string{"package.json"}, "npm start"},
		{"node_modules folder", []string{"node_modules/"}, "npm start"},
		{"npm beats python", []string{"package.json", "requirements.txt", "app.py"}, "npm start"},
		{"npm beats dotnet", []string{"node_modules/", "App.sln"}, "npm start"},
		{"python with script", []string{"requirements.txt", "app.py"}, "python app.py"},
		{"python picks first script lexically", []string{"requirements.txt", "zeta.py", "alpha.py"}, "python alpha.py"},
		{"python ignores nested scripts", []string{"requirements.txt", "src/main.py"}, ""},
		{"requirements without script stops the chain", []string{"requirements.txt", "App.sln"}, ""},
		{"python script without requirements", []string{"app.py"}, ""},
		{"solution file", []string{"App.sln"}, "dotnet run"},
		{"solution match is case-insensitive", []string{"APP.SLN"}, "dotnet run"},
		{"nested solution ignored", []string{"src/App.sln"}, ""},
		{"package.json directory does not count", []string{"package.json/"}, ""},
		{"unrelated files", []string{"README.md", "main.go"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := makeTree(t, tt.entries...)
			if got := InferDefaultCommand(dir); got != tt.want {
				t.Errorf("InferDefaultCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferDefaultCommand_QuotesScriptName(t *testing.T) {
	tests := []struct {
		name   string
		goos   string
		script string
		want   string
	}{
		{"posix plain", "linux", "app.py", "python app.py"},
		{"posix space", "linux", "my app.py", "python 'my app.py'"},
		{"posix dollar", "darwin", "a$b.py", "python 'a$b.py'"},
		{"posix ampersand", "linux", "x&y.py", "python 'x&y.py'"},
		{"posix single quote", "linux", "it's.py", `python 'it'\''s.py'`},
		{"windows plain", "windows", "app.py", "python app.py"},
		{"windows space", "windows", "my app.py", `python "my app.py"`},
		{"windows ampersand", "windows", "x&y.py", `python "x&y.py"`},
		{"windows caret", "windows", "a^b.py", `python "a^b.py"`},
		{"windows dollar is inert", "windows", "a$b.py", "python a$b.py"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := makeTree(t, "requirements.txt", tt.script)
			r := &Resolver{GOOS: tt.goos}
			if got := r.InferDefaultCommand(dir); got != tt.want {
				t.Errorf("InferDefaultCommand() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInferDefaultCommand_MissingDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")
	if got := InferDefaultCommand(missing); got != "" {
		t.Errorf("InferDefaultCommand() = %q, want empty", got)
	}
}

// ============================================================================
// ICON RESOLUTION
// ============================================================================

func TestResolveIcon(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
	}{
		{"no icon", []string{"main.go"}, ""},
		{"top-level icon", []string{"app.ico"}, "app.ico"},
		{"nested icon", []string{"assets/img/logo.ico"}, "assets/img/logo.ico"},
		{"uppercase extension", []string{"LOGO.ICO"}, "LOGO.ICO"},
		{"lexical walk order", []string{"b/second.ico", "a/first.ico"}, "a/first.ico"},
		{"file before later directory", []string{"a.ico", "z/b.ico"}, "a.ico"},
		{"directory named like icon ignored", []string{"icons.ico/"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := makeTree(t, tt.entries...)
			got := ResolveIcon(dir)
			want := ""
			if tt.want != "" {
				want = filepath.Join(dir, filepath.FromSlash(tt.want))
			}
			if got != want {
				t.Errorf("ResolveIcon() = %q, want %q", got, want)
			}
		})
	}
}

func TestResolveIcon_MissingDirectory(t *testing.T) {
	if got := ResolveIcon(filepath.Join(t.TempDir(), "gone")); got != "" {
		t.Errorf("ResolveIcon() = %q, want empty", got)
	}
}

// ============================================================================
// README
// ============================================================================

func TestFindReadme(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		want    string
		wantErr error
	}{
		{"markdown readme", []string{"README.md", "main.go"}, "README.md", nil},
		{"lowercase readme", []string{"readme.txt"}, "readme.txt", nil},
		{"first lexically", []string{"README.rst", "README.md"}, "README.md", nil},
		{"nested readme ignored", []string{"docs/README.md"}, "", ErrNoReadme},
		{"readme directory ignored", []string{"README/"}, "", ErrNoReadme},
		{"none", []string{"main.go"}, "", ErrNoReadme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := makeTree(t, tt.entries...)
			got, err := FindReadme(dir)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FindReadme() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindReadme() unexpected error: %v", err)
			}
			if want := filepath.Join(dir, tt.want); got != want {
				t.Errorf("FindReadme() = %q, want %q", got, want)
			}
		})
	}
}

// ============================================================================
// NAMES AND GLYPHS
// ============================================================================

func TestProjectName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/home/user/code/webapp", "webapp"},
		{"/home/user/code/webapp/", "webapp"},
		{"relative/dir", "dir"},
	}

	for _, tt := range tests {
		if got := ProjectName(tt.path); got != tt.want {
			t.Errorf("ProjectName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		command string
		want    string
	}{
		{"", "□"},
		{"   ", "□"},
		{"npm start", "⬢"},
		{"python app.py", "◈"},
		{"dotnet run", "◆"},
		{"make dev", "▶"},
	}

	for _, tt := range tests {
		if got := Glyph(tt.command); got != tt.want {
			t.Errorf("Glyph(%q) = %q, want %q", tt.command, got, tt.want)
		}
	}
}
