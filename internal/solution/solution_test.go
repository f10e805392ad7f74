package solution

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/board"
)

func TestSolutionBasics(t *testing.T) {
	var sol Solution
	assert.Equal(t, 0, sol.Len())
	assert.True(t, sol.IsEmpty())
	_, ok := sol.GetMove(0)
	assert.False(t, ok)

	sol = New().AddMove(0, board.ColA).AddMove(1, board.ColB)
	assert.Equal(t, 2, sol.Len())
	assert.False(t, sol.IsEmpty())
	assert.Equal(t, []board.Col{board.ColA, board.ColB}, sol.Moves())
}

func TestSolutionFull(t *testing.T) {
	var sol Solution
	for ply := 0; ply < PlyCountMax; ply++ {
		sol.AddMoveInPlace(ply, board.ColA)
	}

	assert.Equal(t, PlyCountMax, sol.Len())
	assert.False(t, sol.IsEmpty())
	for ply := 0; ply < PlyCountMax; ply++ {
		mv, ok := sol.GetMove(ply)
		require.True(t, ok)
		assert.Equal(t, board.ColA, mv)
	}

	want := make([]board.Col, PlyCountMax)
	for i := range want {
		want[i] = board.ColA
	}
	assert.Equal(t, want, sol.Moves())
}

func TestSolutionMixedMoves(t *testing.T) {
	var sol Solution
	sol.AddMoveInPlace(0, board.ColA)
	sol.AddMoveInPlace(1, board.ColB)
	sol.AddMoveInPlace(2, board.ColC)
	sol.AddMoveInPlace(3, board.ColD)
	sol.AddMoveInPlace(4, board.ColE)

	assert.Equal(t, 5, sol.Len())
	assert.Equal(t, []board.Col{board.ColA, board.ColB, board.ColC, board.ColD, board.ColE}, sol.Moves())
}

func TestSolutionIO(t *testing.T) {
	const str = "[A, B, C, D, E]"
	sol, err := Parse(str)
	require.NoError(t, err)
	assert.Equal(t, str, sol.String())
}

func TestSolutionParseErrors(t *testing.T) {
	_, err := Parse("A, B, C")
	assert.Error(t, err)

	_, err = Parse("[A, X, C]")
	assert.Error(t, err)
}

func TestSolutionParseEmpty(t *testing.T) {
	sol, err := Parse("[]")
	require.NoError(t, err)
	assert.True(t, sol.IsEmpty())
	assert.Equal(t, "[]", sol.String())
}
