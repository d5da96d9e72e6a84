package project

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// NormalizePath turns user input (typed, pasted or dropped onto the
// terminal) into a clean absolute path. Surrounding quotes, file:// URIs,
// a leading ~ and backslash-escaped spaces are handled.
func NormalizePath(raw string) (string, error) {
	p := unquote(strings.TrimSpace(raw))

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
			if runtime.GOOS == "windows" {
				p = strings.TrimPrefix(p, "/")
			}
		}
	}

	if runtime.GOOS != "windows" {
		p = unescapeSpaces(p)
	}

	if p == "" {
		return "", ErrEmptyPath
	}

	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand ~: %w", err)
		}
		p = filepath.Join(home, p[1:])
	}

	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", p, err)
	}
	return abs, nil
}

// ParseDroppedPaths splits text pasted by a terminal drag-and-drop into
// individual paths. Terminals separate multiple files with newlines or
// spaces, quoting or escaping names that contain whitespace.
func ParseDroppedPaths(text string) []string {
	var paths []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// A whole line naming an existing path wins over tokenizing it
		if whole := unquote(line); pathExists(whole) {
			paths = append(paths, whole)
			continue
		}

		paths = append(paths, splitTokens(line)...)
	}
	return paths
}

// splitTokens splits on unquoted whitespace, honoring '...', "..." and
// backslash escapes outside Windows
func splitTokens(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		escaped bool
		started bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		started = false
	}

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'' && runtime.GOOS != "windows":
			escaped = true
			started = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			started = true
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)
			started = true
		}
	}
	flush()

	return tokens
}

func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func unescapeSpaces(s string) string {
	return strings.ReplaceAll(s, `\ `, " ")
}

func pathExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
