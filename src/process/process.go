// Package process implements generic subprocess management functions.
package process

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/semantic-rs/list-cargo-binaries/src/cli"
	"github.com/semantic-rs/list-cargo-binaries/src/cli/logging"
)

var log = logging.Log

// How long we give a process to exit after SIGTERM before we SIGKILL it.
const termGracePeriod = 30 * time.Millisecond

// How long we wait for a process to be reaped after SIGKILL.
const killGracePeriod = time.Second

// An Executor handles starting, running and monitoring subprocesses.
// It registers as a signal handler to attempt to terminate them all at process exit.
type Executor struct {
	processes map[*exec.Cmd]struct{}
	mutex     sync.Mutex
}

// New returns a new Executor.
func New() *Executor {
	e := &Executor{
		processes: map[*exec.Cmd]struct{}{},
	}
	cli.AtExit(e.killAll) // Kill any subprocess if we are ourselves killed
	return e
}

// ExecWithTimeout runs an external command and waits for it to complete.
// If timeout is positive the command is killed once it has elapsed; it is also killed if ctx is cancelled.
// In either of those cases the returned error is the context's error (e.g. context.DeadlineExceeded)
// and no output is returned.
// It returns the stdout and stderr of the command separately.
func (e *Executor) ExecWithTimeout(ctx context.Context, dir string, env []string, timeout time.Duration, argv []string) ([]byte, []byte, error) {
	if len(argv) == 0 {
		return nil, nil, fmt.Errorf("no command given")
	}
	var cancel context.CancelFunc
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	// We deliberately don't use CommandContext because it only sends SIGKILL to the immediate
	// child; we want to give the whole process group a chance to shut down.
	cmd := e.ExecCommand(argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	e.registerProcess(cmd)
	defer e.removeProcess(cmd)
	if err := cmd.Start(); err != nil {
		return nil, nil, err
	}
	ch := make(chan error, 1)
	go runCommand(cmd, ch)
	select {
	case err := <-ch:
		return stdout.Bytes(), stderr.Bytes(), err
	case <-ctx.Done():
		log.Debug("Terminating %s: %s", argv[0], ctx.Err())
		e.terminate(cmd, ch)
		return nil, nil, ctx.Err()
	}
}

// runCommand runs a command and signals on the given channel when it's done.
func runCommand(cmd *exec.Cmd, ch chan<- error) {
	ch <- cmd.Wait()
}

// terminate kills a running process, attempting to send it a SIGTERM first followed by a SIGKILL
// shortly after if it hasn't exited. ch must receive the result of waiting on the command.
func (e *Executor) terminate(cmd *exec.Cmd, ch <-chan error) {
	signalGroup(cmd, syscall.SIGTERM)
	select {
	case <-ch:
		return
	case <-time.After(termGracePeriod):
	}
	signalGroup(cmd, syscall.SIGKILL)
	select {
	case <-ch:
	case <-time.After(killGracePeriod):
		log.Error("Failed to kill inferior process %d", cmd.Process.Pid)
	}
}

// signalGroup sends a signal to the process group of the given command.
func signalGroup(cmd *exec.Cmd, sig syscall.Signal) {
	if cmd.Process == nil {
		log.Debug("Not signalling process, it seems to have not started yet")
		return
	}
	log.Debug("Sending signal %s to -%d", sig, cmd.Process.Pid)
	syscall.Kill(-cmd.Process.Pid, sig) // Kill the group - we always set one in ExecCommand.
}

func (e *Executor) registerProcess(cmd *exec.Cmd) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	e.processes[cmd] = struct{}{}
}

func (e *Executor) removeProcess(cmd *exec.Cmd) {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	delete(e.processes, cmd)
}

func (e *Executor) running() []*exec.Cmd {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	cmds := make([]*exec.Cmd, 0, len(e.processes))
	for cmd := range e.processes {
		cmds = append(cmds, cmd)
	}
	return cmds
}

// killAll kills all subprocesses of this executor.
// Anything still registered after the grace period gets a SIGKILL.
func (e *Executor) killAll() {
	cmds := e.running()
	if len(cmds) == 0 {
		return
	}
	for _, cmd := range cmds {
		signalGroup(cmd, syscall.SIGTERM)
	}
	time.Sleep(termGracePeriod)
	for _, cmd := range e.running() {
		signalGroup(cmd, syscall.SIGKILL)
	}
}
