// Package board implements the 5×5 Cadillac board: a grid of optional
// cards addressed chess-style (column A..E, row 1..5), with gravity drop
// and settle.
package board

import (
	"fmt"
	"strings"

	"github.com/lox/cadillacsolver/internal/card"
)

// NumCols and NumRows are the board's fixed dimensions.
const (
	NumCols = 5
	NumRows = 5
	NumSquares = NumCols * NumRows
)

// Col is a board column, A..E.
type Col uint8

const (
	ColA Col = iota
	ColB
	ColC
	ColD
	ColE
)

func (c Col) String() string {
	return string(rune('A' + int(c)))
}

// AllCols returns every column in order.
func AllCols() [NumCols]Col {
	return [NumCols]Col{ColA, ColB, ColC, ColD, ColE}
}

// Board is a 5×5 grid of optional cards, stored column-major: squares for
// column c occupy indices [5*c, 5*c+5). Within a column, index 0 is row 1
// (the bottom row) and index 4 is row 5 (the top row). The zero value is
// an empty board.
type Board struct {
	cells [NumSquares]card.Card
	// present tracks which cells hold a card, since card.Card's zero
	// value doesn't have a dedicated "no card" sentinel.
	present [NumSquares]bool
}

// At returns the card at (col, row 0-based index 0..4), and whether a
// card is present.
func (b *Board) At(col Col, rowIdx int) (card.Card, bool) {
	i := 5*int(col) + rowIdx
	return b.cells[i], b.present[i]
}

func (b *Board) set(col Col, rowIdx int, c card.Card) {
	i := 5*int(col) + rowIdx
	b.cells[i] = c
	b.present[i] = true
}

func (b *Board) clear(col Col, rowIdx int) {
	i := 5*int(col) + rowIdx
	b.cells[i] = 0
	b.present[i] = false
}

// Column returns a copy of one column's 5 cells, bottom-to-top.
func (b *Board) Column(col Col) [NumRows]*card.Card {
	var out [NumRows]*card.Card
	for r := 0; r < NumRows; r++ {
		if c, ok := b.At(col, r); ok {
			cc := c
			out[r] = &cc
		}
	}
	return out
}

// Row returns a copy of one row's 5 cells, column A..E, at 0-based row
// index rowIdx.
func (b *Board) Row(rowIdx int) [NumCols]*card.Card {
	var out [NumCols]*card.Card
	for _, col := range AllCols() {
		if c, ok := b.At(col, rowIdx); ok {
			cc := c
			out[col] = &cc
		}
	}
	return out
}

// CardCount returns the number of occupied squares.
func (b *Board) CardCount() int {
	n := 0
	for _, p := range b.present {
		if p {
			n++
		}
	}
	return n
}

// Put drops card c into column col. Returns the resulting board, the
// frame cost of the drop, and whether the placement succeeded (false if
// the column is already full). Does not perform yaku detection or
// settling — that's internal/yaku's job.
func (b Board) Put(col Col, c card.Card) (Board, uint16, bool) {
	rowIdx := -1
	for r := 0; r < NumRows; r++ {
		if _, ok := b.At(col, r); !ok {
			rowIdx = r
			break
		}
	}
	if rowIdx == -1 {
		return Board{}, 0, false
	}

	after := b
	after.set(col, rowIdx, c)

	frame := uint16(37 + 16*(4-rowIdx))
	return after, frame, true
}

// Fall compacts every column downward in place, preserving relative
// order, and returns the frame cost of the settle (8 frames per cell of
// total travel).
func (b *Board) Fall() uint16 {
	var frame uint16

	for _, col := range AllCols() {
		i := 0
		for j := 0; j < NumRows; j++ {
			c, ok := b.At(col, j)
			if !ok {
				continue
			}
			if j != i {
				b.set(col, i, c)
				b.clear(col, j)
				frame += uint16(8 * (j - i))
			}
			i++
		}
	}

	return frame
}

// ClearSquare removes the card at (col, rowIdx), if any. Used by yaku
// resolution to remove squares that participated in a scoring hand,
// before Fall is called to settle the remaining cards.
func (b *Board) ClearSquare(col Col, rowIdx int) {
	b.clear(col, rowIdx)
}

// Equal reports whether two boards hold identical cards in identical
// squares.
func (b *Board) Equal(other *Board) bool {
	return b.cells == other.cells && b.present == other.present
}

// Bytes returns a compact byte encoding of the board suitable for use as
// a map/cache key: one byte per square (0 = empty, else 1+cadillac
// value), column-major.
func (b *Board) Bytes() [NumSquares]byte {
	var out [NumSquares]byte
	for i := 0; i < NumSquares; i++ {
		if b.present[i] {
			out[i] = 1 + b.cells[i].CadillacValue()
		}
	}
	return out
}

// String renders the board using the chess-style grid notation (row 5 at
// top, row 1 at bottom; ".." for an empty square), matching the debug
// format used throughout the solver's tests.
func (b *Board) String() string {
	var sb strings.Builder
	for rowIdx := NumRows - 1; rowIdx >= 0; rowIdx-- {
		for _, col := range AllCols() {
			if c, ok := b.At(col, rowIdx); ok {
				sb.WriteString(c.String())
			} else {
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse parses the grid text notation produced by String.
func Parse(s string) (Board, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != NumRows {
		return Board{}, fmt.Errorf("board must have %d rows, got %d", NumRows, len(lines))
	}

	var b Board
	for i, line := range lines {
		rowIdx := NumRows - 1 - i
		if len(line) != 2*NumCols {
			return Board{}, fmt.Errorf("board row %d must be %d characters: %q", rowIdx+1, 2*NumCols, line)
		}
		for _, col := range AllCols() {
			token := line[2*int(col) : 2*int(col)+2]
			if token == ".." {
				continue
			}
			c, err := card.Parse(token)
			if err != nil {
				return Board{}, fmt.Errorf("square %s%d: %w", col, rowIdx+1, err)
			}
			b.set(col, rowIdx, c)
		}
	}

	return b, nil
}
