package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministicForSameSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewDiffersAcrossSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	assert.NotEqual(t, a.Float64(), b.Float64())
}

func TestMixIsNonZeroAndDistinct(t *testing.T) {
	assert.NotEqual(t, uint64(0), mix(1))
	assert.NotEqual(t, mix(1), mix(2))
}
