// Package state implements the solver's search state: a board, its
// accumulated frame count and prize money, and the move sequence that
// produced it.
package state

import (
	"fmt"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/card"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/yakucache"
)

// State is one node of the search: the board reached so far, the
// elapsed frame count and accumulated prize money, and the solution
// (move sequence) that reached it.
type State struct {
	frame    uint16
	money    uint16
	board    board.Board
	solution solution.Solution
}

// New builds a state directly from its components.
func New(frame, money uint16, b board.Board, sol solution.Solution) State {
	return State{frame: frame, money: money, board: b, solution: sol}
}

// NewInitial deals the initial board for level from p and returns the
// level-start state along with the pile left after dealing.
func NewInitial(lv level.Level, money uint16, p pile.Pile) (State, pile.Pile) {
	b, rest := pile.NewInitialLayout(lv, p)
	return New(0, money, b, solution.Solution{}), rest
}

// Frame returns the elapsed frame count.
func (s *State) Frame() uint16 { return s.frame }

// Money returns the accumulated prize money.
func (s *State) Money() uint16 { return s.money }

// Board returns the current board.
func (s *State) Board() *board.Board { return &s.board }

// Solution returns the move sequence that reached this state.
func (s *State) Solution() *solution.Solution { return &s.solution }

// CardCount returns the number of cards currently on the board.
func (s *State) CardCount() int { return s.board.CardCount() }

// Neighbors enumerates every state reachable by dropping card into each
// of the board's five columns at the given ply (0-based), running yaku
// chain resolution on each result. Returns between 0 and 5 states,
// skipping columns that are already full.
func (s *State) Neighbors(ply int, c card.Card) []State {
	res := make([]State, 0, 5)

	for _, col := range board.AllCols() {
		b, framePut, ok := s.board.Put(col, c)
		if !ok {
			continue
		}
		frameYaku, prize := yakucache.ProcessChain(&b)
		res = append(res, New(
			s.frame+framePut+frameYaku,
			s.money+prize,
			b,
			s.solution.AddMove(ply, col),
		))
	}

	return res
}

// DoMove applies a known-valid move: dropping card into col at ply.
// Panics if col is already full — callers are expected to only replay
// moves that were valid when recorded.
func (s *State) DoMove(ply int, c card.Card, col board.Col) State {
	b, framePut, ok := s.board.Put(col, c)
	if !ok {
		panic(fmt.Sprintf("state: column %v is full at ply %d", col, ply))
	}
	frameYaku, prize := yakucache.ProcessChain(&b)
	return New(
		s.frame+framePut+frameYaku,
		s.money+prize,
		b,
		s.solution.AddMove(ply, col),
	)
}

// EqIgnoreSolution reports whether s and other reached the same frame
// count, money, and board, ignoring the move sequence that got them
// there.
func (s *State) EqIgnoreSolution(other *State) bool {
	return s.frame == other.frame && s.money == other.money && s.board.Equal(&other.board)
}

// CompareIgnoreSolution orders states by (frame, money, board), the
// same key EqIgnoreSolution uses for equality, ignoring the move
// sequence. Returns a negative number, zero, or a positive number as s
// is less than, equal to, or greater than other.
func (s *State) CompareIgnoreSolution(other *State) int {
	if s.frame != other.frame {
		return int(s.frame) - int(other.frame)
	}
	if s.money != other.money {
		return int(s.money) - int(other.money)
	}
	sb, ob := s.board.Bytes(), other.board.Bytes()
	for i := range sb {
		if sb[i] != ob[i] {
			return int(sb[i]) - int(ob[i])
		}
	}
	return 0
}

func (s *State) String() string {
	return fmt.Sprintf("%sframe=%d\nmoney=%d\nsolution=%s\n", s.board.String(), s.frame, s.money, s.solution.String())
}
