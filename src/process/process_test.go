package process

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExecWithTimeout(t *testing.T) {
	out, _, err := New().ExecWithTimeout(context.Background(), "", nil, 10*time.Second, []string{"true"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out))
}

func TestExecWithTimeoutFailure(t *testing.T) {
	out, _, err := New().ExecWithTimeout(context.Background(), "", nil, 10*time.Second, []string{"false"})
	assert.Error(t, err)
	assert.Equal(t, 0, len(out))
}

func TestExecWithTimeoutDeadline(t *testing.T) {
	out, _, err := New().ExecWithTimeout(context.Background(), "", nil, 1*time.Nanosecond, []string{"sleep", "10"})
	assert.Error(t, err)
	assert.Equal(t, context.DeadlineExceeded, err)
	assert.Equal(t, 0, len(out))
}

func TestExecWithNoTimeout(t *testing.T) {
	out, _, err := New().ExecWithTimeout(context.Background(), "", nil, 0, []string{"sh", "-c", "echo hello"})
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestExecCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()
	_, _, err := New().ExecWithTimeout(ctx, "", nil, 0, []string{"sleep", "10"})
	assert.Equal(t, context.Canceled, err)
}

func TestExecWithTimeoutStderr(t *testing.T) {
	out, stderr, err := New().ExecWithTimeout(context.Background(), "", nil, 10*time.Second, []string{"sh", "-c", "echo hello 1>&2"})
	assert.NoError(t, err)
	assert.Equal(t, "", string(out))
	assert.Equal(t, "hello\n", string(stderr))
}

func TestExecWithTimeoutDir(t *testing.T) {
	dir := t.TempDir()
	out, _, err := New().ExecWithTimeout(context.Background(), dir, nil, 10*time.Second, []string{"pwd"})
	assert.NoError(t, err)
	assert.Contains(t, string(out), dir)
}

func TestExecNoCommand(t *testing.T) {
	_, _, err := New().ExecWithTimeout(context.Background(), "", nil, 0, nil)
	assert.Error(t, err)
}

func TestExecNotFound(t *testing.T) {
	_, _, err := New().ExecWithTimeout(context.Background(), "", nil, 0, []string{"definitely-not-a-real-command-xyz"})
	assert.Error(t, err)
}

func TestKillSubprocesses(t *testing.T) {
	e := New()
	cmd := e.ExecCommand("sleep", "infinity")
	e.registerProcess(cmd)
	assert.Equal(t, 1, len(e.processes))
	err := cmd.Start()
	assert.NoError(t, err)
	e.killAll()
	err = cmd.Wait()
	assert.Error(t, err)
	e.removeProcess(cmd)
	assert.Equal(t, 0, len(e.processes))
}
