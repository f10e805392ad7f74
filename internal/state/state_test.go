package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/card"
	"github.com/lox/cadillacsolver/internal/solution"
)

func TestStateNeighbors(t *testing.T) {
	const grid = "..........\n" +
		"........C3\n" +
		"......C7H5\n" +
		"....CJH9D7\n" +
		"..C2S2DJS9\n"
	b, err := board.Parse(grid)
	require.NoError(t, err)

	s := New(0, 0, b, solution.Solution{})
	h2 := card.New(card.Heart, card.Rank2)
	neighbors := s.Neighbors(0, h2)

	require.Len(t, neighbors, 5)
	assert.Equal(t, uint16(101+72+24+8), neighbors[0].Frame())
	assert.Equal(t, uint16(85), neighbors[1].Frame())
	assert.Equal(t, uint16(69), neighbors[2].Frame())
	assert.Equal(t, uint16(53), neighbors[3].Frame())
	assert.Equal(t, uint16(37), neighbors[4].Frame())
}

func TestStateDoMoveMatchesNeighbor(t *testing.T) {
	var b board.Board
	s := New(0, 0, b, solution.Solution{})
	ace := card.New(card.Spade, card.RankA)

	neighbors := s.Neighbors(0, ace)
	require.NotEmpty(t, neighbors)

	moved := s.DoMove(0, ace, board.ColA)
	assert.True(t, moved.EqIgnoreSolution(&neighbors[0]))
}

func TestStateEqIgnoreSolution(t *testing.T) {
	var b board.Board
	s1 := New(10, 20, b, solution.Solution{}.AddMove(0, board.ColA))
	s2 := New(10, 20, b, solution.Solution{}.AddMove(0, board.ColB))
	assert.True(t, s1.EqIgnoreSolution(&s2))
	assert.Equal(t, 0, s1.CompareIgnoreSolution(&s2))

	s3 := New(11, 20, b, solution.Solution{})
	assert.False(t, s1.EqIgnoreSolution(&s3))
	assert.Less(t, s1.CompareIgnoreSolution(&s3), 0)
}
