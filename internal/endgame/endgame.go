// Package endgame implements the branch-and-bound depth-first search
// that completely reads out the final plies of a run once the
// remaining pile is small enough to exhaust.
package endgame

import (
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/state"
)

// PlyCountMax caps how many plies remain when the endgame search
// takes over: 5^10 is roughly 10^7 leaves, the largest the DFS can
// chew through in a reasonable time.
const PlyCountMax = 10

// Answer is one complete, money-qualifying solution found by Solve.
type Answer struct {
	Frame uint16
	Money uint16
	Solution solution.Solution
}

// Solve performs a complete branch-and-bound search from stateIni with
// the given remaining pile, emitting every solution found (via sink)
// that beats frameBest at the time it's found — frameBest itself then
// tightens to that solution's frame, pruning all subsequent branches
// that can't beat it. sink is called with each qualifying answer, in
// the order found: each answer has a strictly lower frame than the one
// before it, but the answers are not necessarily sorted by money.
func Solve(lv level.Level, p pile.Pile, stateIni state.State, frameBest uint16, sink func(Answer)) {
	if lv < level.MinSolvable {
		panic("endgame: only levels 9 and 10 are supported")
	}
	if p.Len() > PlyCountMax {
		panic("endgame: pile exceeds the maximum ply count for a complete search")
	}

	dfs(lv, &p, stateIni, &frameBest, sink, true)
}

// dfs mirrors Solve's search but skips the level.MoneyThreshold check
// when checkMoney is false, for use by the optimize pass where an
// already-accepted solution's money is assumed sufficient.
func dfs(lv level.Level, p *pile.Pile, s state.State, frameBest *uint16, sink func(Answer), checkMoney bool) {
	if s.Frame() >= *frameBest {
		return
	}

	c, ok := p.Pop()
	if !ok {
		if stateIsOK(lv, &s, checkMoney) {
			*frameBest = s.Frame()
			sink(Answer{Frame: s.Frame(), Money: s.Money(), Solution: *s.Solution()})
		}
		return
	}

	ply := solution.PlyCountMax - 1 - p.Len()

	for _, neighbor := range s.Neighbors(ply, c) {
		dfs(lv, p, neighbor, frameBest, sink, checkMoney)
	}

	p.Push(c)
}

func stateIsOK(lv level.Level, s *state.State, checkMoney bool) bool {
	if s.CardCount() != 0 {
		return false
	}
	if !checkMoney {
		return true
	}
	return s.Money() >= lv.MoneyThreshold()
}

// DFSUnchecked runs the same search as Solve but without the
// money-threshold check, for resuming a replayed solution tail (see
// internal/optimizepass) whose money was already validated when the
// solution was first accepted.
func DFSUnchecked(p *pile.Pile, s state.State, frameBest *uint16, sink func(Answer)) {
	dfs(0, p, s, frameBest, sink, false)
}
