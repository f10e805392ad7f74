// Package midgame implements the beam search that carries a Cadillac
// run from its initial deal through to the threshold where a full
// branch-and-bound endgame search becomes tractable.
package midgame

import (
	"math/rand/v2"
	"sort"

	charmlog "github.com/charmbracelet/log"

	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/progress"
	"github.com/lox/cadillacsolver/internal/randutil"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/state"
)

// BeamWidthMax bounds how many candidate states solve keeps per ply.
const BeamWidthMax = 10_000_000

// evalFunc scores a candidate state at a given ply; higher is better.
// The pruning step keeps the beamWidth highest-scoring candidates.
type evalFunc func(rng *rand.Rand, ply int, s *state.State) float64

// Solve runs the beam search for plyCount plies starting from the
// level's initial deal, and returns the surviving candidate states
// (sorted by money, descending) together with the pile left over for
// the endgame pass. plyCount must not exceed solution.PlyCountMax, and
// beamWidth must not exceed BeamWidthMax.
func Solve(lv level.Level, money uint16, p pile.Pile, plyCount, beamWidth int, rngSeed uint64, logger *charmlog.Logger) ([]state.State, pile.Pile) {
	if plyCount > solution.PlyCountMax {
		panic("midgame: ply count exceeds solution.PlyCountMax")
	}
	if beamWidth > BeamWidthMax {
		panic("midgame: beam width exceeds BeamWidthMax")
	}

	var evalFn evalFunc
	switch lv {
	case level.Level9:
		evalFn = evalLevel9
	case level.Level10:
		evalFn = evalLevel10
	default:
		panic("midgame: only levels 9 and 10 are supported")
	}

	rng := randutil.New(int64(rngSeed))

	stateIni, rest := state.NewInitial(lv, money, p)
	logger.Info("midgame search starting", "level", lv, "money", money, "ply_count", plyCount, "beam_width", beamWidth)
	logger.Debug(stateIni.String())

	beam := make([]state.State, 0, beamWidth)
	beam = append(beam, stateIni)

	tick := progress.NewTicker(logger, "midgame ply")

	for ply := 0; ply < plyCount; ply++ {
		tick.Tick(ply, plyCount)

		c, ok := rest.Pop()
		if !ok {
			panic("midgame: pile exhausted before ply count reached")
		}

		beamNxt := make([]state.State, 0, 5*len(beam))
		for i := range beam {
			beamNxt = append(beamNxt, beam[i].Neighbors(ply, c)...)
		}

		// Keep only the lowest-frame state per distinct board.
		sort.Slice(beamNxt, func(i, j int) bool {
			bi, bj := beamNxt[i].Board().Bytes(), beamNxt[j].Board().Bytes()
			if bi != bj {
				return lessBytes(bi, bj)
			}
			return beamNxt[i].Frame() < beamNxt[j].Frame()
		})
		beamNxt = dedupByBoard(beamNxt)

		if len(beamNxt) > beamWidth {
			// Score each candidate once, so its jitter stays fixed while
			// selectTopK compares it. Boards are unique after dedup.
			scores := make(map[[25]byte]float64, len(beamNxt))
			for i := range beamNxt {
				scores[beamNxt[i].Board().Bytes()] = evalFn(rng, ply, &beamNxt[i])
			}
			selectTopK(beamNxt, beamWidth, func(s *state.State) float64 {
				return scores[s.Board().Bytes()]
			})
			beamNxt = beamNxt[:beamWidth]
		}

		beam = append(beam[:0], beamNxt...)
	}

	sort.SliceStable(beam, func(i, j int) bool {
		return beam[i].Money() > beam[j].Money()
	})

	return beam, rest
}

func lessBytes(a, b [25]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// dedupByBoard assumes boards is sorted by (board, frame) and keeps the
// first (lowest-frame) entry for each distinct board.
func dedupByBoard(states []state.State) []state.State {
	if len(states) == 0 {
		return states
	}
	out := states[:1]
	for _, s := range states[1:] {
		last := &out[len(out)-1]
		if s.Board().Bytes() != last.Board().Bytes() {
			out = append(out, s)
		}
	}
	return out
}

// evalLevel9 scores a candidate by frame cost, a late-game card-count
// penalty, and per-ply jittered noise that encourages beam diversity.
// Money isn't weighted in: by this point in the run it's reliably
// sufficient without steering toward it directly.
func evalLevel9(rng *rand.Rand, ply int, s *state.State) float64 {
	frame := float64(s.Frame())
	cardCount := float64(s.CardCount())

	valueFrame := -frame
	var valueCardCount float64
	if ply >= 31 {
		valueCardCount = -50.0 * cardCount
	}

	var valueRand float64
	switch {
	case ply <= 20:
		valueRand = rng.Float64() * 300.0
	case ply <= 30:
		valueRand = rng.Float64() * 200.0
	case ply <= 35:
		valueRand = rng.Float64() * 100.0
	default:
		valueRand = rng.Float64() * 50.0
	}

	return valueFrame + valueCardCount + valueRand
}

// evalLevel10 uses the same heuristic as level 9: level 10's money
// requirement is already comfortably met by the same search shape.
func evalLevel10(rng *rand.Rand, ply int, s *state.State) float64 {
	return evalLevel9(rng, ply, s)
}
