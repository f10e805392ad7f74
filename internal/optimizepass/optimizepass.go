// Package optimizepass re-runs the endgame search against an already
// accepted solution, looking for a faster way to play out its final
// plies once a longer complete search becomes affordable.
package optimizepass

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/cadillacsolver/internal/endgame"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/state"
)

// KnownAnswer is a previously found solution, as read from a
// tab-separated answer stream (see internal/solverio).
type KnownAnswer struct {
	Frame    uint16
	Solution solution.Solution
}

// ParseKnownAnswer parses one "frame\tmoney\tsolution" answer line.
// The money field is accepted but not retained: optimize re-derives it
// by replaying the solution.
func ParseKnownAnswer(line string) (KnownAnswer, error) {
	fields := strings.Split(line, "\t")
	if len(fields) != 3 {
		return KnownAnswer{}, fmt.Errorf("answer line must have 3 tab-separated fields, got %d", len(fields))
	}

	frame, err := strconv.ParseUint(fields[0], 10, 16)
	if err != nil {
		return KnownAnswer{}, fmt.Errorf("invalid frame field %q: %w", fields[0], err)
	}

	sol, err := solution.Parse(fields[2])
	if err != nil {
		return KnownAnswer{}, fmt.Errorf("invalid solution field %q: %w", fields[2], err)
	}

	return KnownAnswer{Frame: uint16(frame), Solution: sol}, nil
}

// ReplayToEndgame replays answer's known move prefix against the
// level's initial deal, leaving the final endgameLen plies of the pile
// untouched, and returns the checkpoint state and remaining pile ready
// for a fresh endgame search.
func ReplayToEndgame(lv level.Level, p pile.Pile, answer KnownAnswer, endgameLen int) (state.State, pile.Pile) {
	s, rest := state.NewInitial(lv, 0, p)

	replayPlies := solution.PlyCountMax - endgameLen
	for ply := 0; ply < replayPlies; ply++ {
		c, ok := rest.Pop()
		if !ok {
			panic("optimizepass: pile exhausted before reaching the endgame checkpoint")
		}
		col, ok := answer.Solution.GetMove(ply)
		if !ok {
			panic(fmt.Sprintf("optimizepass: known answer has no move recorded at ply %d", ply))
		}
		s = s.DoMove(ply, c, col)
	}

	return s, rest
}

// Solve replays answer up to its endgame checkpoint, then searches the
// remaining plies for a faster completion than answer.Frame, without
// re-checking the level's money threshold (the known answer already
// met it, and the replayed prefix can only add to that total).
func Solve(lv level.Level, p pile.Pile, answer KnownAnswer, endgameLen int, sink func(endgame.Answer)) {
	s, rest := ReplayToEndgame(lv, p, answer, endgameLen)
	frameBest := answer.Frame
	endgame.DFSUnchecked(&rest, s, &frameBest, sink)
}
