// Package yakucache memoizes yaku chain resolution. The same
// post-drop board is frequently reached by different move orders
// inside both the midgame beam's sibling expansions and the endgame
// DFS's nested branches, so caching the (frame, prize, settled board)
// triple for a board already chain-resolved earlier in the process
// avoids re-running detection on it.
package yakucache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/yaku"
)

// DefaultSize is the default number of distinct pre-chain boards kept
// in the cache.
const DefaultSize = 1 << 20

type result struct {
	frame uint16
	prize uint16
	board board.Board
}

// Cache is a bounded LRU memoizing ProcessChain by the board passed in
// (before resolution).
type Cache struct {
	entries *lru.Cache[[board.NumSquares]byte, result]
}

// New builds a Cache holding up to size entries. Panics if size isn't
// positive.
func New(size int) *Cache {
	c, err := lru.New[[board.NumSquares]byte, result](size)
	if err != nil {
		panic(fmt.Sprintf("yakucache: invalid cache size %d: %v", size, err))
	}
	return &Cache{entries: c}
}

// ProcessChain behaves exactly like yaku.ProcessChain, mutating b to
// its settled state and returning the total frame cost and prize
// money, but serves repeat boards from cache instead of re-running
// detection.
func (c *Cache) ProcessChain(b *board.Board) (frame, prize uint16) {
	key := b.Bytes()
	if r, ok := c.entries.Get(key); ok {
		*b = r.board
		return r.frame, r.prize
	}

	frame, prize = yaku.ProcessChain(b)
	c.entries.Add(key, result{frame: frame, prize: prize, board: *b})
	return frame, prize
}

// Len reports how many distinct pre-chain boards are currently cached.
func (c *Cache) Len() int {
	return c.entries.Len()
}

var defaultCache = New(DefaultSize)

// ProcessChain runs the package-wide default cache's ProcessChain.
// internal/state calls this instead of yaku.ProcessChain directly, so
// every search path shares one memoization table per process.
func ProcessChain(b *board.Board) (frame, prize uint16) {
	return defaultCache.ProcessChain(b)
}
