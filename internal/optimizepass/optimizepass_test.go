package optimizepass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKnownAnswer(t *testing.T) {
	a, err := ParseKnownAnswer("1234\t200\t[A, B, C]")
	require.NoError(t, err)
	assert.Equal(t, uint16(1234), a.Frame)
	assert.Equal(t, "[A, B, C]", a.Solution.String())
}

func TestParseKnownAnswerErrors(t *testing.T) {
	_, err := ParseKnownAnswer("1234\t200")
	assert.Error(t, err)

	_, err = ParseKnownAnswer("notanumber\t200\t[A]")
	assert.Error(t, err)

	_, err = ParseKnownAnswer("1234\t200\tnotasolution")
	assert.Error(t, err)
}
