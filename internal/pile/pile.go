// Package pile implements the card draw pile: a stack of undealt cards,
// the disconnect algorithm used to seed levels 8-10 without an
// accidental initial yaku, and the deck-dump hex encoding used to load
// decks captured from the game's memory.
package pile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/cadillacsolver/internal/board"
	"github.com/lox/cadillacsolver/internal/card"
	"github.com/lox/cadillacsolver/internal/level"
)

// Pile is a stack of cards to be dealt. The internal slice is stored in
// reverse draw order (the next card to be dealt is the slice's last
// element), the reverse of the dump format's draw-order layout, so that
// Push and Pop are both cheap append/truncate operations.
type Pile struct {
	cards []card.Card
}

// NewInitial builds a pile from all 52 distinct cards in draw order
// (cards[0] dealt first). Panics if the 52 cards aren't distinct.
func NewInitial(cards [52]card.Card) Pile {
	seen := make(map[card.Card]bool, 52)
	for _, c := range cards {
		if seen[c] {
			panic(fmt.Sprintf("duplicate card in initial pile: %v", c))
		}
		seen[c] = true
	}

	reversed := make([]card.Card, 52)
	for i, c := range cards {
		reversed[51-i] = c
	}
	return Pile{cards: reversed}
}

// Len returns the number of cards remaining.
func (p *Pile) Len() int {
	return len(p.cards)
}

// IsEmpty reports whether the pile has no cards left.
func (p *Pile) IsEmpty() bool {
	return len(p.cards) == 0
}

// Push returns c to the top of the pile.
func (p *Pile) Push(c card.Card) {
	p.cards = append(p.cards, c)
}

// Pop removes and returns the top card. Reports false if the pile is
// empty.
func (p *Pile) Pop() (card.Card, bool) {
	if len(p.cards) == 0 {
		return 0, false
	}
	i := len(p.cards) - 1
	c := p.cards[i]
	p.cards = p.cards[:i]
	return c, true
}

// mustPop pops and panics if the pile is empty; used where the caller
// has already established there are enough cards left (initial layout
// dealing).
func (p *Pile) mustPop() card.Card {
	c, ok := p.Pop()
	if !ok {
		panic("pile: pop from empty pile")
	}
	return c
}

// At returns the card that will be dealt idx draws from now (0 =
// next), without removing it.
func (p *Pile) At(idx int) card.Card {
	return p.cards[len(p.cards)-1-idx]
}

// set overwrites the card that will be dealt idx draws from now.
func (p *Pile) set(idx int, c card.Card) {
	p.cards[len(p.cards)-1-idx] = c
}

func (p *Pile) swap(i, j int) {
	ci, cj := p.At(i), p.At(j)
	p.set(i, cj)
	p.set(j, ci)
}

// DumpString formats the pile as the game's native hex-pair memory
// dump, draw order first (next card to be dealt first).
func (p *Pile) DumpString() string {
	var sb strings.Builder
	for i := len(p.cards) - 1; i >= 0; i-- {
		if i != len(p.cards)-1 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02X", p.cards[i].CadillacValue())
	}
	return sb.String()
}

// ParseDump parses a whitespace-insensitive hex-pair memory dump (e.g.
// "01 0A 3D ...") into a pile, in draw order.
func ParseDump(s string) (Pile, error) {
	compact := stripASCIIWhitespace(s)
	if len(compact)%2 != 0 {
		return Pile{}, fmt.Errorf("dump has odd digit count after stripping whitespace: %d", len(compact))
	}
	return parseDumpHex(compact)
}

// ParseDumpInitial parses a memory dump that must contain exactly the
// 52-card initial pile (104 hex digits after stripping whitespace).
func ParseDumpInitial(s string) (Pile, error) {
	compact := stripASCIIWhitespace(s)
	if len(compact) != 2*52 {
		return Pile{}, fmt.Errorf("initial dump must be %d hex digits after stripping whitespace, got %d", 2*52, len(compact))
	}
	return parseDumpHex(compact)
}

func stripASCIIWhitespace(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func parseDumpHex(compact string) (Pile, error) {
	n := len(compact) / 2
	cards := make([]card.Card, n)
	for i := 0; i < n; i++ {
		token := compact[2*i : 2*i+2]
		value, err := strconv.ParseUint(token, 16, 8)
		if err != nil {
			return Pile{}, fmt.Errorf("dump[%d]: invalid hex byte %q: %w", i, token, err)
		}
		c, ok := card.FromCadillacValue(uint8(value))
		if !ok {
			return Pile{}, fmt.Errorf("dump[%d]: invalid card value 0x%02X", i, value)
		}
		cards[i] = c
	}

	// cards is in draw order (index 0 dealt first); internal storage is
	// reversed so Pop (remove-last) yields index 0 first.
	reversed := make([]card.Card, n)
	for i, c := range cards {
		reversed[n-1-i] = c
	}
	return Pile{cards: reversed}, nil
}

// isConnected reports whether two cards share a suit, or have adjacent
// or equal ranks (rank adjacency wraps cyclically).
func isConnected(c1, c2 card.Card) bool {
	sameSuit := c1.Suit() == c2.Suit()
	sameOrAdjacentRank := c1.Rank().Prev() == c2.Rank() ||
		c1.Rank() == c2.Rank() ||
		c1.Rank().Next() == c2.Rank()
	return sameSuit || sameOrAdjacentRank
}

// disconnect adjusts the pile in place so that the cards that will be
// dealt at draw positions i and j aren't connected, by swapping j with
// the first undealt position (starting the scan at the fixed index 10,
// matching the original game's routine) that isn't connected to i.
func disconnect(p *Pile, i, j int) {
	c1 := p.At(i)
	if !isConnected(c1, p.At(j)) {
		return
	}
	k := 10
	for isConnected(c1, p.At(k)) {
		k++
	}
	p.swap(j, k)
}

// NewInitialLayout deals the initial board for lv from p, applying the
// disconnect adjustment for levels 8-10, and returns the resulting
// board and the remaining pile.
func NewInitialLayout(lv level.Level, p Pile) (board.Board, Pile) {
	switch {
	case lv >= level.Level1 && lv <= level.Level4:
		return board.Board{}, p

	case lv >= level.Level5 && lv <= level.Level7:
		var b board.Board
		b = putInitial(b, board.ColA, p.mustPop())
		b = putInitial(b, board.ColE, p.mustPop())
		if lv >= level.Level6 {
			b = putInitial(b, board.ColC, p.mustPop())
		}
		return b, p

	default: // Level8..Level10
		for i := 0; i < 5; i++ {
			disconnect(&p, i, i+1)
		}
		if lv >= level.Level9 {
			disconnect(&p, 1, 5)
			disconnect(&p, 3, 6)
		}

		var b board.Board
		for _, col := range board.AllCols() {
			b = putInitial(b, col, p.mustPop())
		}
		if lv >= level.Level9 {
			b = putInitial(b, board.ColB, p.mustPop())
			b = putInitial(b, board.ColD, p.mustPop())
		}
		return b, p
	}
}

func putInitial(b board.Board, col board.Col, c card.Card) board.Board {
	after, _, ok := b.Put(col, c)
	if !ok {
		panic("pile: initial layout overflowed a column")
	}
	return after
}
