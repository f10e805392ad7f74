package midgame

import "github.com/lox/cadillacsolver/internal/state"

// selectTopK partitions states in place so that the k states with the
// highest score(s) occupy states[:k], via repeated Lomuto partitioning
// (quickselect). Matches the shape of Rust's
// select_nth_unstable_by_key: after this call, states[:k] is unordered
// but guaranteed to hold the top k by score, and states[k:] holds the
// rest.
func selectTopK(states []state.State, k int, score func(*state.State) float64) {
	if k <= 0 || k >= len(states) {
		return
	}
	quickselect(states, 0, len(states)-1, k, score)
}

func quickselect(states []state.State, lo, hi, k int, score func(*state.State) float64) {
	for lo < hi {
		p := partitionDesc(states, lo, hi, score)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partitionDesc Lomuto-partitions states[lo..=hi] by score descending
// (highest scores first) around a pivot, returning the pivot's final
// index.
func partitionDesc(states []state.State, lo, hi int, score func(*state.State) float64) int {
	pivot := score(&states[hi])
	i := lo
	for j := lo; j < hi; j++ {
		if score(&states[j]) > pivot {
			states[i], states[j] = states[j], states[i]
			i++
		}
	}
	states[i], states[hi] = states[hi], states[i]
	return i
}
