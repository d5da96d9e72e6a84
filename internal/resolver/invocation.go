package resolver

import (
	"os"
	"strings"

	"github.com/thenoetrevino/tiles/internal/models"
)

// Invocation describes the process that runs a project's command. The
// process is an interactive shell that stays open once the command finishes.
type Invocation struct {
	Executable string   `json:"executable"`
	Args       []string `json:"args"`
	Dir        string   `json:"dir"`
	Command    string   `json:"command"`
	Elevated   bool     `json:"elevated"`
	Minimized  bool     `json:"minimized"`
}

// BuildLaunchInvocation validates p and returns the process parameters for
// running it with the platform default shell.
func BuildLaunchInvocation(p models.Project) (Invocation, error) {
	var r Resolver
	return r.BuildLaunchInvocation(p)
}

// BuildLaunchInvocation validates p and returns the process parameters for
// running it. A blank command or a working directory that is not an
// existing directory yields a *ConfigError and no invocation.
func (r *Resolver) BuildLaunchInvocation(p models.Project) (Invocation, error) {
	command := strings.TrimSpace(p.Command)
	if command == "" {
		return Invocation{}, &ConfigError{Field: "command", Err: ErrEmptyCommand}
	}
	if p.Path == "" || !isDir(p.Path) {
		return Invocation{}, &ConfigError{Field: "path", Value: p.Path, Err: ErrMissingDirectory}
	}

	shell := r.shell()
	inv := Invocation{
		Executable: shell,
		Dir:        p.Path,
		Command:    command,
		Elevated:   p.RunAsAdmin,
		Minimized:  p.StartMinimized,
	}

	inv.Args = keepOpenArgs(shell, command)
	return inv, nil
}

// keepOpenArgs returns the arguments that make shell run command and then
// stay interactive. The flag set follows the shell family, not the OS.
func keepOpenArgs(shell, command string) []string {
	switch ShellFamily(shell) {
	case "cmd":
		return []string{"/k", command}
	case "powershell", "pwsh":
		return []string{"-NoExit", "-Command", command}
	default:
		return []string{"-c", command + "; exec " + shellQuote(shell)}
	}
}

// ShellFamily returns the lower-cased program name of shell without its
// directory or a trailing .exe, using either path separator.
func ShellFamily(shell string) string {
	name := shell
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	name = strings.ToLower(name)
	return strings.TrimSuffix(name, ".exe")
}

// shell returns the configured interpreter or the platform default.
func (r *Resolver) shell() string {
	if r != nil && r.Shell != "" {
		return r.Shell
	}
	if r.goos() == "windows" {
		return "cmd.exe"
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// shellQuote wraps s in single quotes for a POSIX shell.
func shellQuote(s string) string {
	if s != "" && !strings.ContainsAny(s, " \t\n'\"\\$`;&|<>()*?[]#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
