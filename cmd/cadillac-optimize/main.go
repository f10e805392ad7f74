// Command cadillac-optimize takes an already-accepted solution and
// looks for a faster way to complete its final plies: it replays the
// known prefix deterministically, then re-runs the endgame
// branch-and-bound search on the remaining tail with a wider time
// budget than was affordable when the answer was first found.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"

	"github.com/lox/cadillacsolver/internal/endgame"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/optimizepass"
	"github.com/lox/cadillacsolver/internal/solvecfg"
	"github.com/lox/cadillacsolver/internal/solverio"
)

var cli struct {
	Level      int    `help:"game level the answers were solved at (9 or 10)"`
	EndgameLen int    `help:"number of final plies to re-search"`
	Config     string `help:"path to an HCL config file" default:"cadillac-optimize.hcl"`
	LogLevel   string `help:"log level (debug, info, warn, error)"`

	DeckDump    string `arg:"" help:"path to a deck-dump file (104 hex digits)"`
	AnswersFile string `arg:"" help:"path to an answer-stream file (frame\\tmoney\\tsolution lines)"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("cadillac-optimize"),
		kong.Description("re-search the tail of an already-accepted Cadillac solution"),
		kong.UsageOnError(),
	)

	cfg, err := solvecfg.LoadOptimizeConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}
	applyOptimizeOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{})
	if lvl, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("optimize failed", "err", err)
	}
}

func applyOptimizeOverrides(cfg *solvecfg.OptimizeConfig) {
	if cli.Level != 0 {
		cfg.Level = cli.Level
	}
	if cli.EndgameLen != 0 {
		cfg.EndgameLen = cli.EndgameLen
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
}

func run(cfg *solvecfg.OptimizeConfig, logger *charmlog.Logger) error {
	lv := level.Level(cfg.Level)

	deck, err := solverio.LoadDeckDump(cli.DeckDump)
	if err != nil {
		return fmt.Errorf("loading deck: %w", err)
	}

	known, err := solverio.LoadKnownAnswers(cli.AnswersFile)
	if err != nil {
		return fmt.Errorf("loading answers: %w", err)
	}

	improved := 0
	for i, answer := range known {
		optimizepass.Solve(lv, deck, answer, cfg.EndgameLen, func(a endgame.Answer) {
			improved++
			if err := solverio.WriteAnswer(os.Stdout, a); err != nil {
				logger.Error("writing answer", "err", err)
			}
		})
		logger.Debug("optimize pass complete", "answer_index", i, "original_frame", answer.Frame)
	}

	logger.Info("optimize complete", "answers_checked", len(known), "improvements_found", improved)
	return nil
}
