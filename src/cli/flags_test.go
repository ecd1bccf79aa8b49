package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/op/go-logging.v1"
)

func TestDuration(t *testing.T) {
	opts := struct {
		D Duration `short:"d"`
	}{}
	_, extraArgs, err := ParseFlags("test", &opts, []string{"test", "-d=3h"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(extraArgs))
	assert.EqualValues(t, 3*time.Hour, opts.D)

	_, extraArgs, err = ParseFlags("test", &opts, []string{"test", "-d=3"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(extraArgs))
	assert.EqualValues(t, 3*time.Second, opts.D)
}

func TestDurationDefault(t *testing.T) {
	opts := struct {
		D Duration `short:"d" default:"90s"`
	}{}
	_, extraArgs, err := ParseFlags("test", &opts, []string{"test"})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(extraArgs))
	assert.EqualValues(t, 90*time.Second, opts.D)
}

func TestVerbosityFlag(t *testing.T) {
	opts := struct {
		Verbosity Verbosity `short:"v" long:"verbosity" default:"warning"`
	}{}
	_, _, err := ParseFlags("test", &opts, []string{"test", "-v", "debug"})
	assert.NoError(t, err)
	assert.EqualValues(t, logging.DEBUG, opts.Verbosity)
}
