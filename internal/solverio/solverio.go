// Package solverio handles the external text formats shared by the
// cadillac-solve and cadillac-optimize commands: the deck-dump file
// read from disk and the tab-separated answer stream written by one
// tool and read back by the other.
package solverio

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/lox/cadillacsolver/internal/endgame"
	"github.com/lox/cadillacsolver/internal/fileutil"
	"github.com/lox/cadillacsolver/internal/optimizepass"
	"github.com/lox/cadillacsolver/internal/pile"
)

// LoadDeckDump reads a deck-dump file from path and parses it as a
// full 52-card initial pile.
func LoadDeckDump(path string) (pile.Pile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pile.Pile{}, fmt.Errorf("reading deck dump %s: %w", path, err)
	}

	p, err := pile.ParseDumpInitial(string(data))
	if err != nil {
		return pile.Pile{}, fmt.Errorf("parsing deck dump %s: %w", path, err)
	}
	return p, nil
}

// WriteAnswer writes one "frame\tmoney\tsolution" line for a, per the
// cadillac-solve stdout contract.
func WriteAnswer(w io.Writer, a endgame.Answer) error {
	_, err := fmt.Fprintf(w, "%d\t%d\t%s\n", a.Frame, a.Money, a.Solution.String())
	return err
}

// WriteAnswersFile writes every answer to path as an answer-stream,
// atomically: readers of path see either nothing or the complete set,
// never a partially written file. Used for the optional --out flag, as
// an alternative to streaming answers straight to stdout.
func WriteAnswersFile(path string, answers []endgame.Answer) error {
	var buf bytes.Buffer
	for _, a := range answers {
		if err := WriteAnswer(&buf, a); err != nil {
			return err
		}
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing answers file %s: %w", path, err)
	}
	return nil
}

// ReadKnownAnswers reads every "frame\tmoney\tsolution" line from r,
// in order, for cadillac-optimize to re-run. Blank lines are skipped.
func ReadKnownAnswers(r io.Reader) ([]optimizepass.KnownAnswer, error) {
	var answers []optimizepass.KnownAnswer

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		a, err := optimizepass.ParseKnownAnswer(line)
		if err != nil {
			return nil, fmt.Errorf("answer line %d: %w", lineNo, err)
		}
		answers = append(answers, a)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}

	return answers, nil
}

// LoadKnownAnswers opens path and reads its known answers via
// ReadKnownAnswers.
func LoadKnownAnswers(path string) ([]optimizepass.KnownAnswer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers file %s: %w", path, err)
	}
	defer f.Close()

	return ReadKnownAnswers(f)
}
