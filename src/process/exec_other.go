//go:build !linux
// +build !linux

package process

import (
	"os/exec"
	"syscall"
)

// ExecCommand creates a command for an external process in its own process group.
// N.B. This does not start the command - the caller must handle that (or use
// ExecWithTimeout which does it all).
func (e *Executor) ExecCommand(command string, args ...string) *exec.Cmd {
	cmd := exec.Command(command, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
	return cmd
}
