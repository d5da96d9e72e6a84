//go:build windows

package platform

import (
	"os/exec"
	"testing"
)

func TestDetach_CmdExeLineIsVerbatim(t *testing.T) {
	cmd := exec.Command("cmd.exe", "/k", `python "my app.py"`)
	detach(cmd, true)

	if cmd.SysProcAttr == nil {
		t.Fatal("SysProcAttr not set")
	}
	if want := `cmd.exe /s /k "python "my app.py""`; cmd.SysProcAttr.CmdLine != want {
		t.Errorf("CmdLine = %q, want %q", cmd.SysProcAttr.CmdLine, want)
	}
	if cmd.SysProcAttr.CreationFlags&createNewConsole == 0 {
		t.Error("cmd.exe should get its own console")
	}
}

func TestDetach_OtherShellsKeepDefaultQuoting(t *testing.T) {
	cmd := exec.Command("pwsh", "-NoExit", "-Command", "npm start")
	detach(cmd, true)
	if cmd.SysProcAttr.CmdLine != "" {
		t.Errorf("CmdLine = %q, want default quoting", cmd.SysProcAttr.CmdLine)
	}

	helper := exec.Command("powershell.exe", "-Command", "Start-Process x")
	detach(helper, false)
	if helper.SysProcAttr.CmdLine != "" || !helper.SysProcAttr.HideWindow {
		t.Errorf("helper attrs = %+v", helper.SysProcAttr)
	}
}
