// Package solution records a level 9/10 move sequence: up to 45 column
// drops, one per ply.
package solution

import (
	"fmt"
	"strings"

	"github.com/lox/cadillacsolver/internal/board"
)

// PlyCountMax is the number of plies a complete level 9/10 solution
// takes.
const PlyCountMax = 45

// Solution is a fixed-length move sequence, one column per ply, stored
// 1-based (0 = no move recorded) so the zero value is the empty
// solution.
type Solution struct {
	moves [PlyCountMax]uint8
}

// New returns an empty solution.
func New() Solution {
	return Solution{}
}

// GetMove returns the move recorded at ply, if any.
func (s *Solution) GetMove(ply int) (board.Col, bool) {
	v := s.moves[ply]
	if v == 0 {
		return 0, false
	}
	return board.Col(v - 1), true
}

// AddMove returns a copy of s with mv recorded at ply.
func (s Solution) AddMove(ply int, mv board.Col) Solution {
	s.AddMoveInPlace(ply, mv)
	return s
}

// AddMoveInPlace records mv at ply, mutating s.
func (s *Solution) AddMoveInPlace(ply int, mv board.Col) {
	s.moves[ply] = uint8(mv) + 1
}

// Len returns the number of leading plies with a recorded move.
// O(PlyCountMax).
func (s *Solution) Len() int {
	for ply := 0; ply < PlyCountMax; ply++ {
		if s.moves[ply] == 0 {
			return ply
		}
	}
	return PlyCountMax
}

// IsEmpty reports whether no move is recorded at ply 0.
func (s *Solution) IsEmpty() bool {
	_, ok := s.GetMove(0)
	return !ok
}

// Moves returns the recorded moves in order.
func (s *Solution) Moves() []board.Col {
	out := make([]board.Col, 0, PlyCountMax)
	for ply := 0; ply < PlyCountMax; ply++ {
		mv, ok := s.GetMove(ply)
		if !ok {
			break
		}
		out = append(out, mv)
	}
	return out
}

// String formats the solution as "[A, B, C, ...]".
func (s *Solution) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, mv := range s.Moves() {
		if i != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(mv.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// Parse parses the "[A, B, C, ...]" solution notation.
func Parse(str string) (Solution, error) {
	str = strings.TrimSpace(str)
	if !strings.HasPrefix(str, "[") || !strings.HasSuffix(str, "]") {
		return Solution{}, fmt.Errorf("solution string must be wrapped in []: %q", str)
	}
	inner := str[1 : len(str)-1]

	var sol Solution
	if strings.TrimSpace(inner) == "" {
		return sol, nil
	}

	tokens := strings.Split(inner, ",")
	for ply, token := range tokens {
		if ply >= PlyCountMax {
			return Solution{}, fmt.Errorf("ply %d exceeds maximum of %d plies", ply, PlyCountMax)
		}
		token = strings.TrimSpace(token)
		var mv board.Col
		switch token {
		case "A":
			mv = board.ColA
		case "B":
			mv = board.ColB
		case "C":
			mv = board.ColC
		case "D":
			mv = board.ColD
		case "E":
			mv = board.ColE
		default:
			return Solution{}, fmt.Errorf("ply %d: invalid move string: %q", ply, token)
		}
		sol.AddMoveInPlace(ply, mv)
	}

	return sol, nil
}
