package project

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{"absolute", "/srv/app", "/srv/app", nil},
		{"cleaned", "/srv/app/../web/", "/srv/web", nil},
		{"relative", "sub", filepath.Join(cwd, "sub"), nil},
		{"home", "~/code", filepath.Join(home, "code"), nil},
		{"bare home", "~", home, nil},
		{"double quoted", `"/srv/my app"`, "/srv/my app", nil},
		{"escaped space", `/srv/my\ app`, "/srv/my app", nil},
		{"file uri", "file:///srv/my%20app", "/srv/my app", nil},
		{"empty", "", "", ErrEmptyPath},
		{"only quotes", `""`, "", ErrEmptyPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePath(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NormalizePath() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizePath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDroppedPaths(t *testing.T) {
	existing := filepath.Join(t.TempDir(), "has space")
	if err := os.MkdirAll(existing, 0o755); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"single", "/a/b", []string{"/a/b"}},
		{"newline separated", "/a\n/b\r\n\n/c", []string{"/a", "/b", "/c"}},
		{"space separated", "/a /b", []string{"/a", "/b"}},
		{"quoted names", `'/x y/a' "/b c"`, []string{"/x y/a", "/b c"}},
		{"escaped spaces", `/x\ y/a /b`, []string{"/x y/a", "/b"}},
		{"existing path with space", existing, []string{existing}},
		{"blank", "  \n ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseDroppedPaths(tt.text); !slices.Equal(got, tt.want) {
				t.Errorf("ParseDroppedPaths() = %q, want %q", got, tt.want)
			}
		})
	}
}
