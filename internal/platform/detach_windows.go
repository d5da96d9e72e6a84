//go:build windows

package platform

import (
	"os/exec"
	"syscall"
)

const (
	createNewConsole = 0x00000010
	createNoWindow   = 0x08000000
)

// detach gives the shell its own console window; helper processes such as
// powershell run without one. cmd.exe receives its command line verbatim
// since it does not understand the backslash escapes exec would add.
func detach(cmd *exec.Cmd, newConsole bool) {
	if !newConsole {
		cmd.SysProcAttr = &syscall.SysProcAttr{CreationFlags: createNoWindow, HideWindow: true}
		return
	}

	attr := &syscall.SysProcAttr{CreationFlags: createNewConsole}
	if line, ok := cmdExeLine(cmd.Args); ok {
		attr.CmdLine = line
	}
	cmd.SysProcAttr = attr
}
