package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRoundTrip(t *testing.T) {
	for _, c := range All() {
		s := c.String()
		parsed, err := Parse(s)
		require.NoError(t, err)
		assert.Equal(t, c, parsed, "parse(format(%v))", c)

		cv := c.CadillacValue()
		decoded, ok := FromCadillacValue(cv)
		require.True(t, ok)
		assert.Equal(t, c, decoded, "from_cadillac_value(to_cadillac_value(%v))", c)
	}
}

func TestRankWrapAround(t *testing.T) {
	for _, r := range AllRanks() {
		assert.Equal(t, r, r.Next().Prev(), "rank %v", r)
		assert.Equal(t, r, r.Prev().Next(), "rank %v", r)
	}
	assert.Equal(t, RankA, RankK.Next())
	assert.Equal(t, RankK, RankA.Prev())
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("XX")
	assert.Error(t, err)

	_, err = Parse("S")
	assert.Error(t, err)

	_, err = ParseSuit("X")
	assert.Error(t, err)

	_, err = ParseRank("X")
	assert.Error(t, err)
}

func TestFromCadillacValueInvalid(t *testing.T) {
	_, ok := FromCadillacValue(0xF0)
	assert.False(t, ok)

	_, ok = FromCadillacValue(0x00)
	assert.False(t, ok)
}

func TestCadillacValueEncoding(t *testing.T) {
	// Spade is suit index 0, Club 1, Heart 2, Diamond 3.
	assert.Equal(t, uint8(0x01), New(Spade, RankA).CadillacValue())
	assert.Equal(t, uint8(0x1A), New(Club, RankT).CadillacValue())
	assert.Equal(t, uint8(0x34), New(Diamond, Rank4).CadillacValue())
}
