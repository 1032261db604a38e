package keyonlylocks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquireRelease(t *testing.T) {
	var kl KeyLocks
	assert.True(t, kl.Acquire("incident:INC-1"))
	assert.False(t, kl.Acquire("incident:INC-1"))

	kl.Release("incident:INC-1")
	assert.True(t, kl.Acquire("incident:INC-1"))
}

func TestAcquireRollsBackOnConflict(t *testing.T) {
	var kl KeyLocks
	assert.True(t, kl.Acquire("b"))
	assert.False(t, kl.Acquire("a", "b", "c"))

	// "a" must have been rolled back
	assert.True(t, kl.Acquire("a"))
}
