package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtExit(t *testing.T) {
	calls := 0
	AtExit(func() { calls++ })
	AtExit(func() { calls += 10 })
	runAtExit()
	assert.Equal(t, 11, calls)
}
