// Package level defines the Cadillac game level and its per-level
// constants. The data model covers the full 1..=10 range (the original
// game's level-initial layouts), while the solver proper only supports
// levels 9 and 10 per the spec's scope.
package level

import "fmt"

// Level is one of the game's ten difficulty levels.
type Level uint8

const (
	Level1 Level = iota + 1
	Level2
	Level3
	Level4
	Level5
	Level6
	Level7
	Level8
	Level9
	Level10
)

// MinSolvable and MaxSolvable bound the levels the solver supports.
const (
	MinSolvable = Level9
	MaxSolvable = Level10
)

// Parse parses a level number (1..=10).
func Parse(n uint8) (Level, error) {
	if n < uint8(Level1) || n > uint8(Level10) {
		return 0, fmt.Errorf("level out of range: %d (must be 1..=10)", n)
	}
	return Level(n), nil
}

// ParseSolvable parses a level number and rejects anything outside the
// solver's supported range (9 or 10).
func ParseSolvable(n uint8) (Level, error) {
	lv, err := Parse(n)
	if err != nil {
		return 0, err
	}
	if lv < MinSolvable || lv > MaxSolvable {
		return 0, fmt.Errorf("level %d unsupported: only levels 9 and 10 are solvable", n)
	}
	return lv, nil
}

// Valid reports whether lv is one of the ten defined levels.
func (lv Level) Valid() bool {
	return lv >= Level1 && lv <= Level10
}

// MoneyThreshold returns the minimum prize money an endgame-complete
// solution must reach for this level. Panics if lv isn't solvable — this
// is a programmer error, not a recoverable condition, per the game's
// error-handling design.
func (lv Level) MoneyThreshold() uint16 {
	switch lv {
	case Level9:
		return 200
	case Level10:
		return 250
	default:
		panic(fmt.Sprintf("level %d has no money threshold: only levels 9 and 10 are solvable", lv))
	}
}

// InitialPlacementCount returns how many cards are dealt onto the board
// before play begins at this level.
func (lv Level) InitialPlacementCount() int {
	switch {
	case lv >= Level1 && lv <= Level4:
		return 0
	case lv == Level5:
		return 2
	case lv >= Level6 && lv <= Level7:
		return 3
	case lv == Level8:
		return 5
	case lv >= Level9 && lv <= Level10:
		return 7
	default:
		panic(fmt.Sprintf("invalid level: %d", lv))
	}
}

func (lv Level) String() string {
	if !lv.Valid() {
		return fmt.Sprintf("Level(%d)", uint8(lv))
	}
	return fmt.Sprintf("Level%d", uint8(lv))
}
