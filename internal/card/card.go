// Package card implements the Cadillac card identity: suit, rank, and the
// packed Card value, including the game's native byte encoding.
package card

import "fmt"

// Suit identifies one of the four card suits.
type Suit uint8

const (
	Spade Suit = iota + 1
	Club
	Heart
	Diamond
)

// NumSuits is the number of distinct suits.
const NumSuits = 4

// String returns the single-letter suit code used by the text notation.
func (s Suit) String() string {
	switch s {
	case Spade:
		return "S"
	case Club:
		return "C"
	case Heart:
		return "H"
	case Diamond:
		return "D"
	default:
		return "?"
	}
}

// Index returns the 0-based suit index (Spade=0 .. Diamond=3).
func (s Suit) Index() int {
	return int(s) - 1
}

// ParseSuit parses a single-letter suit code.
func ParseSuit(s string) (Suit, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid suit string: %q", s)
	}
	switch s[0] {
	case 'S', 's':
		return Spade, nil
	case 'C', 'c':
		return Club, nil
	case 'H', 'h':
		return Heart, nil
	case 'D', 'd':
		return Diamond, nil
	default:
		return 0, fmt.Errorf("invalid suit character: %q", s)
	}
}

// AllSuits returns every suit in canonical order.
func AllSuits() [NumSuits]Suit {
	return [NumSuits]Suit{Spade, Club, Heart, Diamond}
}

// Rank identifies a card rank. Ace is low (1); King is high (13). Rank
// arithmetic wraps cyclically (King.Next() == Ace, Ace.Prev() == King) to
// match the game's straight detector.
type Rank uint8

const (
	RankA Rank = iota + 1
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	RankT
	RankJ
	RankQ
	RankK
)

// NumRanks is the number of distinct ranks.
const NumRanks = 13

var rankNext = [NumRanks + 1]Rank{
	RankA: Rank2, Rank2: Rank3, Rank3: Rank4, Rank4: Rank5, Rank5: Rank6,
	Rank6: Rank7, Rank7: Rank8, Rank8: Rank9, Rank9: RankT, RankT: RankJ,
	RankJ: RankQ, RankQ: RankK, RankK: RankA,
}

var rankPrev = [NumRanks + 1]Rank{
	RankA: RankK, Rank2: RankA, Rank3: Rank2, Rank4: Rank3, Rank5: Rank4,
	Rank6: Rank5, Rank7: Rank6, Rank8: Rank7, Rank9: Rank8, RankT: Rank9,
	RankJ: RankT, RankQ: RankJ, RankK: RankQ,
}

// Next returns the cyclic successor rank (King wraps to Ace).
func (r Rank) Next() Rank {
	return rankNext[r]
}

// Prev returns the cyclic predecessor rank (Ace wraps to King).
func (r Rank) Prev() Rank {
	return rankPrev[r]
}

// Index returns the 0-based rank index (A=0 .. K=12).
func (r Rank) Index() int {
	return int(r) - 1
}

// String returns the single-character rank code used by the text notation.
func (r Rank) String() string {
	switch r {
	case RankA:
		return "A"
	case Rank2:
		return "2"
	case Rank3:
		return "3"
	case Rank4:
		return "4"
	case Rank5:
		return "5"
	case Rank6:
		return "6"
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case RankT:
		return "T"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	default:
		return "?"
	}
}

// ParseRank parses a single-character rank code.
func ParseRank(s string) (Rank, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid rank string: %q", s)
	}
	switch s[0] {
	case 'A', 'a':
		return RankA, nil
	case '2':
		return Rank2, nil
	case '3':
		return Rank3, nil
	case '4':
		return Rank4, nil
	case '5':
		return Rank5, nil
	case '6':
		return Rank6, nil
	case '7':
		return Rank7, nil
	case '8':
		return Rank8, nil
	case '9':
		return Rank9, nil
	case 'T', 't':
		return RankT, nil
	case 'J', 'j':
		return RankJ, nil
	case 'Q', 'q':
		return RankQ, nil
	case 'K', 'k':
		return RankK, nil
	default:
		return 0, fmt.Errorf("invalid rank character: %q", s)
	}
}

// AllRanks returns every rank in canonical order (A, 2..9, T, J, Q, K).
func AllRanks() [NumRanks]Rank {
	return [NumRanks]Rank{RankA, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8, Rank9, RankT, RankJ, RankQ, RankK}
}

// Card is a single playing card, packed as suit<<4|rank (1-based suit
// nibble). The zero value is not a valid card; Board tracks occupancy
// with a separate flag per square, and its Row/Column views use *Card
// (nil = empty).
type Card uint8

// NumCards is the number of distinct cards in a standard deck.
const NumCards = NumSuits * NumRanks

// New builds a card from its suit and rank.
func New(s Suit, r Rank) Card {
	return Card(uint8(s)<<4 | uint8(r))
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(uint8(c) >> 4)
}

// Rank returns the card's rank.
func (c Card) Rank() Rank {
	return Rank(uint8(c) & 0xF)
}

// CadillacValue returns the game's native byte encoding:
// (suitIndex<<4)|rank, where suitIndex is 0-based (0..=3).
func (c Card) CadillacValue() uint8 {
	return uint8(c.Suit().Index())<<4 | uint8(c.Rank())
}

// FromCadillacValue decodes the game's native byte encoding. Reports false
// if the byte doesn't decode to a valid suit/rank pair.
func FromCadillacValue(value uint8) (Card, bool) {
	suitIdx := value >> 4
	rank := value & 0xF
	if suitIdx > 3 {
		return 0, false
	}
	if rank < uint8(RankA) || rank > uint8(RankK) {
		return 0, false
	}
	return New(Suit(suitIdx+1), Rank(rank)), true
}

// String formats the card as suit-then-rank, e.g. "SA", "HT", "DK".
func (c Card) String() string {
	return c.Suit().String() + c.Rank().String()
}

// Parse parses a two-character card string, e.g. "SA", "HT".
func Parse(s string) (Card, error) {
	if len(s) != 2 {
		return 0, fmt.Errorf("card string must be 2 characters: %q", s)
	}
	suit, err := ParseSuit(s[0:1])
	if err != nil {
		return 0, fmt.Errorf("invalid card string %q: %w", s, err)
	}
	rank, err := ParseRank(s[1:2])
	if err != nil {
		return 0, fmt.Errorf("invalid card string %q: %w", s, err)
	}
	return New(suit, rank), nil
}

// All returns every card in a standard 52-card deck, suit-major.
func All() [NumCards]Card {
	var cards [NumCards]Card
	i := 0
	for _, s := range AllSuits() {
		for _, r := range AllRanks() {
			cards[i] = New(s, r)
			i++
		}
	}
	return cards
}
