// Command cadillac-solve searches for a complete, money-qualifying
// play of a Cadillac deal: a midgame beam search narrows the field of
// candidate mid-run states, then an endgame branch-and-bound search
// completes each candidate and streams every solution found.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/kong"
	charmlog "github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/cadillacsolver/internal/endgame"
	"github.com/lox/cadillacsolver/internal/level"
	"github.com/lox/cadillacsolver/internal/midgame"
	"github.com/lox/cadillacsolver/internal/pile"
	"github.com/lox/cadillacsolver/internal/searchtui"
	"github.com/lox/cadillacsolver/internal/solution"
	"github.com/lox/cadillacsolver/internal/solvecfg"
	"github.com/lox/cadillacsolver/internal/solverio"
)

var cli struct {
	Level             int    `help:"game level to solve (9 or 10)"`
	Money             int    `help:"starting prize money"`
	FrameBest         int    `help:"initial frame upper bound"`
	MidgameBeamWidth  int    `help:"midgame beam width"`
	EndgameStateCount int    `help:"number of top midgame candidates to hand to the endgame search"`
	EndgameLen        int    `help:"number of final plies left for the endgame search"`
	RNGSeed           int64  `help:"midgame heuristic jitter seed"`
	Config            string `help:"path to an HCL config file" default:"cadillac-solve.hcl"`
	LogLevel          string `help:"log level (debug, info, warn, error)"`
	TUI               bool   `help:"show a live terminal dashboard while searching"`
	Out               string `help:"write answers atomically to this file instead of stdout"`

	DeckDump string `arg:"" help:"path to a deck-dump file (104 hex digits)"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("cadillac-solve"),
		kong.Description("search for a complete, money-qualifying Cadillac solution"),
		kong.UsageOnError(),
	)

	cfg, err := solvecfg.LoadSolveConfig(cli.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error loading config:", err)
		os.Exit(1)
	}
	applySolveOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}

	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{})
	if lvl, err := charmlog.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	if err := run(cfg, logger); err != nil {
		logger.Fatal("solve failed", "err", err)
	}
}

func applySolveOverrides(cfg *solvecfg.SolveConfig) {
	if cli.Level != 0 {
		cfg.Level = cli.Level
	}
	if cli.Money != 0 {
		cfg.Money = cli.Money
	}
	if cli.FrameBest != 0 {
		cfg.FrameBest = cli.FrameBest
	}
	if cli.MidgameBeamWidth != 0 {
		cfg.MidgameBeamWidth = cli.MidgameBeamWidth
	}
	if cli.EndgameStateCount != 0 {
		cfg.EndgameStateCount = cli.EndgameStateCount
	}
	if cli.EndgameLen != 0 {
		cfg.EndgameLen = cli.EndgameLen
	}
	if cli.RNGSeed != 0 {
		cfg.RNGSeed = int(cli.RNGSeed)
	}
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
	}
	if cli.TUI {
		cfg.TUI = true
	}
}

func run(cfg *solvecfg.SolveConfig, logger *charmlog.Logger) error {
	lv := level.Level(cfg.Level)

	deck, err := solverio.LoadDeckDump(cli.DeckDump)
	if err != nil {
		return fmt.Errorf("loading deck: %w", err)
	}

	var tuiEvents chan searchtui.Event
	g, ctx := errgroup.WithContext(context.Background())

	if cfg.TUI && searchtui.Supported() {
		tuiEvents = make(chan searchtui.Event, 8)
		g.Go(func() error {
			return searchtui.Run(tuiEvents)
		})
	}

	g.Go(func() error {
		defer func() {
			if tuiEvents != nil {
				close(tuiEvents)
			}
		}()
		return solve(ctx, lv, cfg, deck, logger, tuiEvents)
	})

	return g.Wait()
}

func solve(ctx context.Context, lv level.Level, cfg *solvecfg.SolveConfig, deck pile.Pile, logger *charmlog.Logger, tuiEvents chan<- searchtui.Event) error {
	states, rest := midgame.Solve(lv, uint16(cfg.Money), deck, solution.PlyCountMax-cfg.EndgameLen, cfg.MidgameBeamWidth, uint64(cfg.RNGSeed), logger)

	if tuiEvents != nil {
		candidates := make([]searchtui.Candidate, 0, len(states))
		for _, s := range states {
			candidates = append(candidates, searchtui.Candidate{Frame: s.Frame(), Money: s.Money()})
		}
		select {
		case tuiEvents <- searchtui.Event{Ply: solution.PlyCountMax - cfg.EndgameLen, PlyTotal: solution.PlyCountMax, Candidates: candidates}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	frameBest := uint16(cfg.FrameBest)
	count := cfg.EndgameStateCount
	if count > len(states) {
		count = len(states)
	}

	var answers []endgame.Answer
	var writeErr error
	for i := 0; i < count; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s := states[i]
		p := rest
		endgame.Solve(lv, p, s, frameBest, func(a endgame.Answer) {
			if a.Frame < frameBest {
				frameBest = a.Frame
			}
			answers = append(answers, a)
			if cli.Out == "" && writeErr == nil {
				writeErr = solverio.WriteAnswer(os.Stdout, a)
			}
		})
		if writeErr != nil {
			return fmt.Errorf("writing answer: %w", writeErr)
		}
	}

	sort.Slice(answers, func(i, j int) bool { return answers[i].Frame < answers[j].Frame })

	if cli.Out != "" {
		if err := solverio.WriteAnswersFile(cli.Out, answers); err != nil {
			return err
		}
	}

	logger.Info("search complete", "candidates", count, "answers", len(answers))
	return nil
}
