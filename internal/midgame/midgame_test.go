package midgame

import (
	"testing"

	charmlog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/card"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/solution"
)

func TestSolvePanicsOnPlyCountOverflow(t *testing.T) {
	logger := charmlog.New(nil)
	p := pile.NewInitial(card.All())
	assert.Panics(t, func() {
		Solve(level.Level9, 0, p, solution.PlyCountMax+1, 10, 1, logger)
	})
}

func TestSolvePanicsOnBeamWidthOverflow(t *testing.T) {
	logger := charmlog.New(nil)
	p := pile.NewInitial(card.All())
	assert.Panics(t, func() {
		Solve(level.Level9, 0, p, 5, BeamWidthMax+1, 1, logger)
	})
}

func TestSolvePanicsOnUnsupportedLevel(t *testing.T) {
	logger := charmlog.New(nil)
	p := pile.NewInitial(card.All())
	assert.Panics(t, func() {
		Solve(level.Level8, 0, p, 5, 10, 1, logger)
	})
}

func TestSolveStaysWithinBeamWidthAndReturnsRemainingPile(t *testing.T) {
	logger := charmlog.New(nil)
	p := pile.NewInitial(card.All())

	const plyCount = 10
	const beamWidth = 50

	beam, rest := Solve(level.Level9, 0, p, plyCount, beamWidth, 7, logger)

	require.NotEmpty(t, beam)
	assert.LessOrEqual(t, len(beam), beamWidth)
	assert.Equal(t, card.NumCards-level.Level9.InitialPlacementCount()-plyCount, rest.Len())

	for i := 1; i < len(beam); i++ {
		assert.GreaterOrEqual(t, beam[i-1].Money(), beam[i].Money(), "beam must be sorted by money descending")
	}
}

func TestSolveIsDeterministicForAFixedSeed(t *testing.T) {
	logger := charmlog.New(nil)

	run := func(seed uint64) []uint16 {
		p := pile.NewInitial(card.All())
		beam, _ := Solve(level.Level9, 0, p, 8, 20, seed, logger)
		frames := make([]uint16, len(beam))
		for i, s := range beam {
			frames[i] = s.Frame()
		}
		return frames
	}

	a := run(42)
	b := run(42)
	assert.Equal(t, a, b)
}
