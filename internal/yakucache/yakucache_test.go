package yakucache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/yaku"
)

func TestCacheMatchesUncachedResult(t *testing.T) {
	straightFlush := "..........\n..........\n..........\n..........\nS2S3S4...."
	b, err := board.Parse(straightFlush)
	require.NoError(t, err)
	bForUncached := b

	c := New(16)
	frameCached, prizeCached := c.ProcessChain(&b)

	frameUncached, prizeUncached := yaku.ProcessChain(&bForUncached)
	assert.Equal(t, frameUncached, frameCached)
	assert.Equal(t, prizeUncached, prizeCached)
	assert.True(t, b.Equal(&bForUncached))
}

func TestCacheServesRepeatBoardFromCache(t *testing.T) {
	c := New(16)

	var b1 board.Board
	b1Copy := b1
	f1, p1 := c.ProcessChain(&b1)
	require.Equal(t, 1, c.Len())

	f2, p2 := c.ProcessChain(&b1Copy)
	assert.Equal(t, f1, f2)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, c.Len(), "a repeat board should hit the cache, not add a new entry")
}

func TestDefaultPackageFunctionWorks(t *testing.T) {
	var b board.Board
	frame, prize := ProcessChain(&b)
	assert.Equal(t, uint16(0), frame)
	assert.Equal(t, uint16(0), prize)
}
