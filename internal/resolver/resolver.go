// Package resolver infers launch settings for project directories and turns
// a project into the parameters of a shell process.
package resolver

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Default commands produced by InferDefaultCommand
const (
	NodeCommand   = "npm start"
	DotnetCommand = "dotnet run"
	PythonCommand = "python"
)

// Resolver infers commands and icons and builds launch invocations.
// The zero value is ready to use and targets the running platform.
type Resolver struct {
	// Shell overrides the interpreter used for invocations
	Shell string
	// GOOS is the platform invocations are built for, defaults to runtime.GOOS
	GOOS string
}

// New creates a Resolver that launches commands with the given shell.
// An empty shell selects the platform default.
func New(shell string) *Resolver {
	return &Resolver{Shell: shell}
}

// InferDefaultCommand guesses a launch command for dir, quoting file names
// for the shell of the target platform.
func (r *Resolver) InferDefaultCommand(dir string) string {
	return inferDefaultCommand(dir, r.goos())
}

// ResolveIcon returns the first icon file found below dir.
func (r *Resolver) ResolveIcon(dir string) string {
	return ResolveIcon(dir)
}

func (r *Resolver) goos() string {
	if r == nil || r.GOOS == "" {
		return runtime.GOOS
	}
	return r.GOOS
}

// InferDefaultCommand returns a best-guess shell command for dir, or "" when
// no heuristic matches. Rules are checked in order and the first match wins:
//
//  1. node_modules/ or package.json  -> npm start
//  2. requirements.txt               -> python <first *.py in dir>
//  3. any *.sln in dir               -> dotnet run
//
// Once requirements.txt is found rule 3 is not consulted, even when the
// directory holds no Python file.
func InferDefaultCommand(dir string) string {
	return inferDefaultCommand(dir, runtime.GOOS)
}

func inferDefaultCommand(dir, goos string) string {
	if isDir(filepath.Join(dir, "node_modules")) || isFile(filepath.Join(dir, "package.json")) {
		return NodeCommand
	}

	if isFile(filepath.Join(dir, "requirements.txt")) {
		script := firstFile(dir, ".py")
		if script == "" {
			return ""
		}
		return PythonCommand + " " + quoteArg(script, goos)
	}

	if firstFile(dir, ".sln") != "" {
		return DotnetCommand
	}

	return ""
}

// ResolveIcon walks dir recursively and returns the path of the first *.ico
// file in lexical walk order, or "" if there is none. Unreadable
// subdirectories are skipped.
func ResolveIcon(dir string) string {
	var found string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == dir {
				return err
			}
			slog.Debug("skipping unreadable path during icon search", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if hasExt(d.Name(), ".ico") {
			found = path
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		slog.Debug("icon search failed", "dir", dir, "error", err)
		return ""
	}

	return found
}

// FindReadme returns the first top-level file of dir whose name starts with
// README (case-insensitive), in lexical order.
func FindReadme(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.HasPrefix(strings.ToUpper(entry.Name()), "README") {
			return filepath.Join(dir, entry.Name()), nil
		}
	}

	return "", ErrNoReadme
}

// firstFile returns the name of the first regular file directly inside dir
// with the given extension. os.ReadDir sorts by name, which makes the pick
// deterministic.
func firstFile(dir, ext string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExt(entry.Name(), ext) {
			return entry.Name()
		}
	}

	return ""
}

func hasExt(name, ext string) bool {
	return len(name) > len(ext) && strings.EqualFold(filepath.Ext(name), ext)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// cmdMetaChars are the characters cmd.exe treats specially outside quotes
const cmdMetaChars = " \t&|<>^()@,;=!%"

// quoteArg makes a file name safe to splice into the inferred command.
// cmd.exe gets a double-quoted name when it holds a metacharacter; POSIX
// shells get single quotes.
func quoteArg(name, goos string) string {
	if goos != "windows" {
		return shellQuote(name)
	}
	if strings.ContainsAny(name, cmdMetaChars) {
		return `"` + name + `"`
	}
	return name
}

// Glyph returns the terminal glyph shown for a project without a usable
// icon, chosen from the kind of command it runs.
func Glyph(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "□"
	}

	switch strings.ToLower(fields[0]) {
	case "npm", "npx", "yarn", "pnpm", "node":
		return "⬢"
	case "python", "python3", "py", "uv":
		return "◈"
	case "dotnet":
		return "◆"
	default:
		return "▶"
	}
}

// ProjectName derives a display name from the final segment of path.
func ProjectName(path string) string {
	clean := filepath.Clean(path)
	name := filepath.Base(clean)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return clean
	}
	// filepath.Base of a bare volume ("C:\") returns the separator.
	if vol := filepath.VolumeName(clean); vol != "" && clean == vol+string(filepath.Separator) {
		return vol
	}
	return name
}
