package endgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/card"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/state"
)

func TestSolvePanicsOnUnsupportedLevel(t *testing.T) {
	var b board.Board
	s := state.New(0, 0, b, solution.Solution{})
	var p pile.Pile
	assert.Panics(t, func() {
		Solve(level.Level8, p, s, 1000, func(Answer) {})
	})
}

func TestSolvePanicsWhenPileExceedsMax(t *testing.T) {
	var b board.Board
	s := state.New(0, 0, b, solution.Solution{})

	p := pile.NewInitial(card.All())
	require.Greater(t, p.Len(), PlyCountMax)

	assert.Panics(t, func() {
		Solve(level.Level9, p, s, 1000, func(Answer) {})
	})
}

func TestSolveAcceptsImmediateWin(t *testing.T) {
	var b board.Board // empty board: 0 cards
	s := state.New(500, 200, b, solution.Solution{})
	var p pile.Pile // no cards left: DFS hits the base case immediately

	var got []Answer
	Solve(level.Level9, p, s, 1000, func(a Answer) {
		got = append(got, a)
	})

	require.Len(t, got, 1)
	assert.Equal(t, uint16(500), got[0].Frame)
	assert.Equal(t, uint16(200), got[0].Money)
}

func TestSolveRejectsInsufficientMoney(t *testing.T) {
	var b board.Board
	s := state.New(500, 100, b, solution.Solution{})
	var p pile.Pile

	var called bool
	Solve(level.Level9, p, s, 1000, func(Answer) {
		called = true
	})
	assert.False(t, called)
}

func TestSolvePrunesWhenFrameNotBetter(t *testing.T) {
	var b board.Board
	s := state.New(500, 200, b, solution.Solution{})
	var p pile.Pile

	var called bool
	Solve(level.Level9, p, s, 500, func(Answer) {
		called = true
	})
	assert.False(t, called, "frame equal to frameBest must be pruned")
}
