package process

import (
	"os/exec"
	"syscall"
)

// ExecCommand creates a command for an external process.
// We set Pdeathsig to try to make sure commands don't outlive us if we die, and put each
// in its own process group so we can signal everything it spawned.
// N.B. This does not start the command - the caller must handle that (or use
// ExecWithTimeout which does it all).
func (e *Executor) ExecCommand(command string, args ...string) *exec.Cmd {
	cmd := exec.Command(command, args...)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Pdeathsig: syscall.SIGHUP,
		Setpgid:   true,
	}
	return cmd
}
