package solverio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cadillacsolver/internal/endgame"
	"github.com/lox/cadillacsolver/internal/solution"
)

func TestWriteAnswer(t *testing.T) {
	sol, err := solution.Parse("[A, B]")
	require.NoError(t, err)

	var buf bytes.Buffer
	err = WriteAnswer(&buf, endgame.Answer{Frame: 1234, Money: 500, Solution: sol})
	require.NoError(t, err)
	assert.Equal(t, "1234\t500\t[A, B]\n", buf.String())
}

func TestReadKnownAnswers(t *testing.T) {
	input := "1234\t500\t[A, B]\n\n5678\t600\t[C]\n"
	answers, err := ReadKnownAnswers(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, uint16(1234), answers[0].Frame)
	assert.Equal(t, uint16(5678), answers[1].Frame)
}

func TestReadKnownAnswersError(t *testing.T) {
	_, err := ReadKnownAnswers(strings.NewReader("garbage\n"))
	assert.Error(t, err)
}

func TestLoadDeckDumpRejectsInvalidCards(t *testing.T) {
	dump := strings.Repeat("00", 52)
	dir := t.TempDir()
	path := filepath.Join(dir, "deck.txt")
	require.NoError(t, os.WriteFile(path, []byte(dump), 0o644))

	_, err := LoadDeckDump(path)
	assert.Error(t, err, "00 has rank 0, which is not a valid card value, so this should fail parsing")
}

func TestLoadDeckDumpMissingFile(t *testing.T) {
	_, err := LoadDeckDump(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestLoadKnownAnswersMissingFile(t *testing.T) {
	_, err := LoadKnownAnswers(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestWriteAnswersFileRoundTrip(t *testing.T) {
	sol, err := solution.Parse("[A, B]")
	require.NoError(t, err)

	answers := []endgame.Answer{
		{Frame: 100, Money: 200, Solution: sol},
		{Frame: 150, Money: 300, Solution: sol},
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "answers.txt")
	require.NoError(t, WriteAnswersFile(path, answers))

	loaded, err := LoadKnownAnswers(path)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, uint16(100), loaded[0].Frame)
	assert.Equal(t, uint16(150), loaded[1].Frame)
}
