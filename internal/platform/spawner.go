package platform

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/thenoetrevino/tiles/internal/resolver"
)

// fallbackTerminals are tried in order when neither the configured
// terminal nor $TERMINAL is available
var fallbackTerminals = []string{
	"x-terminal-emulator",
	"gnome-terminal",
	"konsole",
	"kitty",
	"alacritty",
	"wezterm",
	"foot",
	"xterm",
}

// ProcessSpawner starts invocations as detached OS processes. The process
// is reaped in the background and never tracked.
type ProcessSpawner struct {
	// Terminal is the preferred emulator on Linux/BSD
	Terminal string
	// GOOS selects the launch strategy, defaults to runtime.GOOS
	GOOS string

	lookPath func(string) (string, error)
	start    func(cmd *exec.Cmd, newConsole bool) error
}

// NewSpawner creates a spawner for the running platform
func NewSpawner(terminal string) *ProcessSpawner {
	return &ProcessSpawner{Terminal: terminal}
}

// Spawn starts inv and returns once the OS accepted (or refused) the process
func (s *ProcessSpawner) Spawn(inv resolver.Invocation) error {
	name, args, newConsole, err := s.command(inv)
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = inv.Dir

	start := s.start
	if start == nil {
		start = startDetached
	}

	if err := start(cmd, newConsole); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}

	slog.Info("process spawned",
		"executable", name,
		"dir", inv.Dir,
		"elevated", inv.Elevated,
		"minimized", inv.Minimized)
	return nil
}

// startDetached starts cmd in its own session and reaps it when it exits
func startDetached(cmd *exec.Cmd, newConsole bool) error {
	detach(cmd, newConsole)
	if err := cmd.Start(); err != nil {
		return err
	}

	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("spawned process exited", "pid", cmd.Process.Pid, "error", err)
		}
	}()
	return nil
}

func (s *ProcessSpawner) goos() string {
	if s.GOOS == "" {
		return runtime.GOOS
	}
	return s.GOOS
}

// command returns the program that hosts inv on the target platform
func (s *ProcessSpawner) command(inv resolver.Invocation) (string, []string, bool, error) {
	switch s.goos() {
	case "windows":
		name, args, newConsole := windowsCommand(inv)
		return name, args, newConsole, nil
	case "darwin":
		name, args := darwinCommand(inv)
		return name, args, false, nil
	default:
		name, args, err := s.terminalCommand(inv)
		return name, args, false, err
	}
}

// windowsCommand runs the shell directly in a new console, or goes through
// Start-Process when elevation or a minimized window is requested. RunAs
// elevates the whole shell, which stays open elevated.
func windowsCommand(inv resolver.Invocation) (string, []string, bool) {
	if !inv.Elevated && !inv.Minimized {
		return inv.Executable, inv.Args, true
	}

	var argList string
	if tail, ok := cmdExeTail(inv.Args); ok && isCmdExe(inv.Executable) {
		argList = psQuote(tail)
	} else {
		quoted := make([]string, len(inv.Args))
		for i, a := range inv.Args {
			quoted[i] = psQuote(a)
		}
		argList = strings.Join(quoted, ",")
	}

	script := fmt.Sprintf("Start-Process -FilePath %s -ArgumentList %s -WorkingDirectory %s",
		psQuote(inv.Executable), argList, psQuote(inv.Dir))
	if inv.Elevated {
		script += " -Verb RunAs"
	}
	if inv.Minimized {
		script += " -WindowStyle Minimized"
	}

	return "powershell.exe", []string{"-NoProfile", "-NonInteractive", "-Command", script}, false
}

// cmdExeLine renders a cmd.exe /k invocation as the raw command line
// cmd.exe expects. The command sits inside one pair of quotes with its own
// quotes untouched; /s makes cmd.exe strip exactly that outer pair.
func cmdExeLine(args []string) (string, bool) {
	if len(args) == 0 || !isCmdExe(args[0]) {
		return "", false
	}
	tail, ok := cmdExeTail(args[1:])
	if !ok {
		return "", false
	}

	exe := args[0]
	if strings.ContainsAny(exe, " \t") {
		exe = `"` + exe + `"`
	}
	return exe + " " + tail, true
}

func cmdExeTail(args []string) (string, bool) {
	if len(args) != 2 || !strings.EqualFold(args[0], "/k") {
		return "", false
	}
	return `/s /k "` + args[1] + `"`, true
}

func isCmdExe(name string) bool {
	return resolver.ShellFamily(name) == "cmd"
}

// darwinCommand asks Terminal.app to run the command in a new window.
// An elevated launch runs the whole shell invocation under sudo.
func darwinCommand(inv resolver.Invocation) (string, []string) {
	script := "cd " + posixQuote(inv.Dir) + " && " + inv.Command
	if inv.Elevated {
		script = "cd " + posixQuote(inv.Dir) + " && " + sudoLine(inv)
	}

	args := []string{
		"-e", fmt.Sprintf(`tell application "Terminal" to do script %s`, appleQuote(script)),
	}
	if inv.Minimized {
		args = append(args, "-e", `tell application "Terminal" to set miniaturized of front window to true`)
	} else {
		args = append(args, "-e", `tell application "Terminal" to activate`)
	}
	return "osascript", args
}

// sudoLine is the shell invocation of inv as one elevated command line
func sudoLine(inv resolver.Invocation) string {
	words := make([]string, 0, len(inv.Args)+2)
	words = append(words, "sudo", posixQuote(inv.Executable))
	for _, a := range inv.Args {
		words = append(words, posixQuote(a))
	}
	return strings.Join(words, " ")
}

// terminalCommand wraps the shell invocation in a terminal emulator
func (s *ProcessSpawner) terminalCommand(inv resolver.Invocation) (string, []string, error) {
	term, err := s.findTerminal()
	if err != nil {
		return "", nil, err
	}

	if inv.Minimized {
		slog.Warn("start minimized is not supported by terminal emulators", "terminal", term)
	}

	// sudo wraps the shell itself so every part of a compound command and
	// the interactive shell left behind run elevated
	args := terminalExecArgs(term)
	if inv.Elevated {
		args = append(args, "sudo")
	}
	args = append(args, inv.Executable)
	args = append(args, inv.Args...)
	return term, args, nil
}

func (s *ProcessSpawner) findTerminal() (string, error) {
	lookPath := s.lookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	candidates := make([]string, 0, len(fallbackTerminals)+2)
	if s.Terminal != "" {
		candidates = append(candidates, s.Terminal)
	}
	if env := os.Getenv("TERMINAL"); env != "" {
		candidates = append(candidates, env)
	}
	candidates = append(candidates, fallbackTerminals...)

	for _, c := range candidates {
		if path, err := lookPath(c); err == nil {
			return path, nil
		}
	}
	return "", ErrNoTerminal
}

// terminalExecArgs returns the flags that make term run a program
func terminalExecArgs(term string) []string {
	switch filepath.Base(term) {
	case "gnome-terminal", "kgx", "ptyxis":
		return []string{"--"}
	case "wezterm":
		return []string{"start", "--"}
	case "kitty", "foot":
		return nil
	default:
		return []string{"-e"}
	}
}

// psQuote single-quotes s for PowerShell
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// posixQuote single-quotes s for a POSIX shell
func posixQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// appleQuote double-quotes s for AppleScript
func appleQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
