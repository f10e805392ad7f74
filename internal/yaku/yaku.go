// Package yaku implements poker-hand ("yaku") detection, prize
// calculation, and chain resolution over a settled board.
package yaku

import (
	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/card"
)

// mask tracks which yaku categories a square participates in.
type mask uint8

const (
	bitStraight mask = 1 << iota
	bitFlush
	bitNOfKind
)

func (m mask) isZero() bool       { return m == 0 }
func (m mask) hasStraight() bool  { return m&bitStraight != 0 }
func (m *mask) setStraight()      { *m |= bitStraight }
func (m mask) hasFlush() bool     { return m&bitFlush != 0 }
func (m *mask) setFlush()         { *m |= bitFlush }
func (m mask) hasNOfKind() bool   { return m&bitNOfKind != 0 }
func (m *mask) setNOfKind()       { *m |= bitNOfKind }
func (m mask) hasStraightFlush() bool {
	return m.hasStraight() && m.hasFlush()
}

// yakuBoard mirrors board.Board's column-major layout with one mask per
// square.
type yakuBoard [board.NumSquares]mask

func (yb *yakuBoard) at(col board.Col, rowIdx int) mask {
	return yb[5*int(col)+rowIdx]
}

func (yb *yakuBoard) set(col board.Col, rowIdx int, m mask) {
	yb[5*int(col)+rowIdx] = m
}

func (yb *yakuBoard) column(col board.Col) [5]mask {
	var out [5]mask
	for r := 0; r < 5; r++ {
		out[r] = yb.at(col, r)
	}
	return out
}

func (yb *yakuBoard) row(rowIdx int) [5]mask {
	var out [5]mask
	for _, col := range board.AllCols() {
		out[col] = yb.at(col, rowIdx)
	}
	return out
}

func (yb *yakuBoard) countNonzero() int {
	n := 0
	for _, m := range yb {
		if !m.isZero() {
			n++
		}
	}
	return n
}

// ProcessChain runs yaku detection/resolution repeatedly (chain
// resolution) until a step yields no prize, mutating b in place to its
// final settled state. Returns the total frame cost and total prize
// money. Assumes b has already fully settled (Fall has been applied).
func ProcessChain(b *board.Board) (frame uint16, prize uint16) {
	for {
		f, p := processStep(b)
		if p == 0 {
			break
		}
		frame += f
		prize += p
	}
	return frame, prize
}

// processStep runs a single round of detection, clearing, and
// settlement. Returns (frame, prize); the prize is 0 iff no yaku was
// detected, and the frame then still includes the fixed 72-frame base.
func processStep(b *board.Board) (uint16, uint16) {
	yb := detect(b)
	prize := calcPrize(b, &yb)

	frame := uint16(72)

	for i := 0; i < board.NumSquares; i++ {
		if yb[i].isZero() {
			continue
		}
		col := board.Col(i / 5)
		row := i % 5
		b.ClearSquare(col, row)
		frame += 8
	}
	frame += b.Fall()

	return frame, prize
}

func detect(b *board.Board) yakuBoard {
	var yb yakuBoard
	detectStraight(b, &yb)
	detectFlush(b, &yb)
	detectNOfKind(b, &yb)
	return yb
}

func detectStraight(b *board.Board, yb *yakuBoard) {
	for r := 0; r < board.NumRows; r++ {
		detectStraightRow(b, yb, r)
	}
	for _, col := range board.AllCols() {
		detectStraightCol(b, yb, col)
	}
}

// detectStraightRow finds at most one straight per row: the earliest
// (lowest-column) run of length >= 3 wins. A case like 2-3-4-3-2 only
// yields the leading 2-3-4.
func detectStraightRow(b *board.Board, yb *yakuBoard, rowIdx int) {
	ary := b.Row(rowIdx)
	for start := 0; start < 3; start++ {
		length := straightLen(ary[start:])
		if length >= 3 {
			for c := start; c < start+length; c++ {
				yb.set(board.Col(c), rowIdx, withStraight(yb.at(board.Col(c), rowIdx)))
			}
			return
		}
	}
}

// detectStraightCol finds at most one straight per column. Since all
// cards have settled, a column's straight scan can stop as soon as it
// hits an empty cell; five-card and wraparound-shaped straights can't
// occur in a column.
func detectStraightCol(b *board.Board, yb *yakuBoard, col board.Col) {
	ary := b.Column(col)
	for start := 0; start < 3; start++ {
		if ary[start] == nil {
			break
		}
		length := straightLen(ary[start:])
		if length >= 3 {
			for r := start; r < start+length; r++ {
				yb.set(col, r, withStraight(yb.at(col, r)))
			}
			return
		}
	}
}

func withStraight(m mask) mask {
	m.setStraight()
	return m
}

func withFlush(m mask) mask {
	m.setFlush()
	return m
}

func withNOfKind(m mask) mask {
	m.setNOfKind()
	return m
}

// straightLen returns the length of the straight run starting at the
// head of ary (0 if the head is empty). Ascending runs are preferred
// over descending ones: if an ascending run of length >= 2 exists, it's
// returned without checking for a descending run.
func straightLen(ary []*card.Card) int {
	if ary[0] == nil {
		return 0
	}
	first := *ary[0]

	ascend := straightLenAscend(first, ary[1:])
	if ascend >= 2 {
		return ascend
	}
	return straightLenDescend(first, ary[1:])
}

func straightLenAscend(c card.Card, rest []*card.Card) int {
	length := 1
	for _, next := range rest {
		if next == nil {
			break
		}
		if c.Rank().Next() != next.Rank() {
			break
		}
		c = *next
		length++
	}
	return length
}

func straightLenDescend(c card.Card, rest []*card.Card) int {
	length := 1
	for _, next := range rest {
		if next == nil {
			break
		}
		if c.Rank().Prev() != next.Rank() {
			break
		}
		c = *next
		length++
	}
	return length
}

func detectFlush(b *board.Board, yb *yakuBoard) {
	for r := 0; r < board.NumRows; r++ {
		detectFlushRow(b, yb, r)
	}
	for _, col := range board.AllCols() {
		detectFlushCol(b, yb, col)
	}
}

func detectFlushRow(b *board.Board, yb *yakuBoard, rowIdx int) {
	ary := b.Row(rowIdx)
	for start := 0; start < 3; start++ {
		length := flushLen(ary[start:])
		if length >= 3 {
			for c := start; c < start+length; c++ {
				yb.set(board.Col(c), rowIdx, withFlush(yb.at(board.Col(c), rowIdx)))
			}
			return
		}
	}
}

func detectFlushCol(b *board.Board, yb *yakuBoard, col board.Col) {
	ary := b.Column(col)
	for start := 0; start < 3; start++ {
		if ary[start] == nil {
			break
		}
		length := flushLen(ary[start:])
		if length >= 3 {
			for r := start; r < start+length; r++ {
				yb.set(col, r, withFlush(yb.at(col, r)))
			}
			return
		}
	}
}

func flushLen(ary []*card.Card) int {
	if ary[0] == nil {
		return 0
	}
	suit := ary[0].Suit()
	for i, c := range ary {
		if c == nil || c.Suit() != suit {
			return i
		}
	}
	return len(ary)
}

func detectNOfKind(b *board.Board, yb *yakuBoard) {
	for r := 0; r < board.NumRows; r++ {
		detectNOfKindRow(b, yb, r)
	}
	for _, col := range board.AllCols() {
		detectNOfKindCol(b, yb, col)
	}
}

func detectNOfKindRow(b *board.Board, yb *yakuBoard, rowIdx int) {
	ary := b.Row(rowIdx)
	for start := 0; start < 3; start++ {
		length := nOfKindLen(ary[start:])
		if length >= 3 {
			for c := start; c < start+length; c++ {
				yb.set(board.Col(c), rowIdx, withNOfKind(yb.at(board.Col(c), rowIdx)))
			}
			return
		}
	}
}

func detectNOfKindCol(b *board.Board, yb *yakuBoard, col board.Col) {
	ary := b.Column(col)
	for start := 0; start < 3; start++ {
		if ary[start] == nil {
			break
		}
		length := nOfKindLen(ary[start:])
		if length >= 3 {
			for r := start; r < start+length; r++ {
				yb.set(col, r, withNOfKind(yb.at(col, r)))
			}
			return
		}
	}
}

func nOfKindLen(ary []*card.Card) int {
	if ary[0] == nil {
		return 0
	}
	rank := ary[0].Rank()
	for i, c := range ary {
		if c == nil || c.Rank() != rank {
			return i
		}
	}
	return len(ary)
}

// Prize table. A royal flush, when it occurs alone, compounds with a
// five-card straight flush, straight, and flush. A straight flush
// compounds with a straight and a flush.
const (
	prizeRoyalFlush      = 200
	prizeStraightFlush5  = 120
	prizeStraightFlush4  = 40
	prizeStraightFlush3  = 39
	prizeStraight5       = 50
	prizeStraight4       = 20
	prizeStraight3       = 10
	prizeFlush5          = 30
	prizeFlush4          = 10
	prizeFlush3          = 1
	prizeFourOfKind      = 100
	prizeThreeOfKind     = 30
)

func prizeStraightFlushFor(length int) uint16 {
	switch length {
	case 3:
		return prizeStraightFlush3
	case 4:
		return prizeStraightFlush4
	case 5:
		return prizeStraightFlush5
	default:
		panic("unreachable straight flush length")
	}
}

func prizeStraightFor(length int) uint16 {
	switch length {
	case 3:
		return prizeStraight3
	case 4:
		return prizeStraight4
	case 5:
		return prizeStraight5
	default:
		panic("unreachable straight length")
	}
}

func prizeFlushFor(length int) uint16 {
	switch length {
	case 3:
		return prizeFlush3
	case 4:
		return prizeFlush4
	case 5:
		return prizeFlush5
	default:
		panic("unreachable flush length")
	}
}

// prizeNOfKindFor treats a (practically unreachable) 5-square n-of-kind
// flag run the same as a four of a kind.
func prizeNOfKindFor(length int) uint16 {
	switch {
	case length == 3:
		return prizeThreeOfKind
	case length >= 4 && length <= 5:
		return prizeFourOfKind
	default:
		panic("unreachable n-of-kind length")
	}
}

func calcPrize(b *board.Board, yb *yakuBoard) uint16 {
	var prize uint16
	prize += calcPrizeStraightFlush(b, yb)
	prize += calcPrizeStraight(yb)
	prize += calcPrizeFlush(yb)
	prize += calcPrizeNOfKind(yb)

	if prize == 0 {
		return 0
	}

	switch n := yb.countNonzero(); {
	case n <= 5:
		prize *= 1
	case n == 6:
		prize *= 2
	case n == 7:
		prize *= 3
	case n == 8:
		prize *= 5
	case n == 9:
		prize *= 6
	case n == 10:
		prize *= 7
	case n == 11:
		prize *= 8
	default:
		prize *= 10
	}

	return prize
}

func calcPrizeStraightFlush(b *board.Board, yb *yakuBoard) uint16 {
	var prize uint16
	for r := 0; r < board.NumRows; r++ {
		prize += calcPrizeStraightFlushRow(b, yb, r)
	}
	for _, col := range board.AllCols() {
		prize += calcPrizeStraightFlushCol(yb, col)
	}
	return prize
}

func calcPrizeStraightFlushRow(b *board.Board, yb *yakuBoard, rowIdx int) uint16 {
	ary := yb.row(rowIdx)
	for start := 0; start < 3; start++ {
		length := yakuLen(ary[start:], mask.hasStraightFlush)
		if length >= 3 {
			prize := prizeStraightFlushFor(length)
			if length == 5 {
				row := b.Row(rowIdx)
				var ranks [5]card.Rank
				for i, c := range row {
					ranks[i] = c.Rank()
				}
				if ranksIsRoyal(ranks) {
					prize += prizeRoyalFlush
				}
			}
			return prize
		}
	}
	return 0
}

// calcPrizeStraightFlushCol never needs a royal-flush check: a
// five-square straight flush can't occur within a single column.
func calcPrizeStraightFlushCol(yb *yakuBoard, col board.Col) uint16 {
	ary := yb.column(col)
	for start := 0; start < 3; start++ {
		length := yakuLen(ary[start:], mask.hasStraightFlush)
		if length >= 3 {
			return prizeStraightFlushFor(length)
		}
	}
	return 0
}

func ranksIsRoyal(ranks [5]card.Rank) bool {
	ascend := [5]card.Rank{card.RankT, card.RankJ, card.RankQ, card.RankK, card.RankA}
	descend := [5]card.Rank{card.RankA, card.RankK, card.RankQ, card.RankJ, card.RankT}
	return ranks == ascend || ranks == descend
}

func calcPrizeStraight(yb *yakuBoard) uint16 {
	var prize uint16
	for r := 0; r < board.NumRows; r++ {
		row := yb.row(r)
		prize += calcPrizeStraightLine(row[:])
	}
	for _, col := range board.AllCols() {
		column := yb.column(col)
		prize += calcPrizeStraightLine(column[:])
	}
	return prize
}

func calcPrizeStraightLine(ary []mask) uint16 {
	for start := 0; start < 3; start++ {
		length := yakuLen(ary[start:], mask.hasStraight)
		if length >= 3 {
			return prizeStraightFor(length)
		}
	}
	return 0
}

func calcPrizeFlush(yb *yakuBoard) uint16 {
	var prize uint16
	for r := 0; r < board.NumRows; r++ {
		row := yb.row(r)
		prize += calcPrizeFlushLine(row[:])
	}
	for _, col := range board.AllCols() {
		column := yb.column(col)
		prize += calcPrizeFlushLine(column[:])
	}
	return prize
}

func calcPrizeFlushLine(ary []mask) uint16 {
	for start := 0; start < 3; start++ {
		length := yakuLen(ary[start:], mask.hasFlush)
		if length >= 3 {
			return prizeFlushFor(length)
		}
	}
	return 0
}

func calcPrizeNOfKind(yb *yakuBoard) uint16 {
	var prize uint16
	for r := 0; r < board.NumRows; r++ {
		row := yb.row(r)
		prize += calcPrizeNOfKindLine(row[:])
	}
	for _, col := range board.AllCols() {
		column := yb.column(col)
		prize += calcPrizeNOfKindLine(column[:])
	}
	return prize
}

func calcPrizeNOfKindLine(ary []mask) uint16 {
	for start := 0; start < 3; start++ {
		length := yakuLen(ary[start:], mask.hasNOfKind)
		if length >= 3 {
			return prizeNOfKindFor(length)
		}
	}
	return 0
}

// yakuLen returns how many leading elements of ary satisfy cond.
func yakuLen(ary []mask, cond func(mask) bool) int {
	for i, m := range ary {
		if !cond(m) {
			return i
		}
	}
	return len(ary)
}
