//go:build !windows

package platform

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own session so it outlives the launcher
func detach(cmd *exec.Cmd, _ bool) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
