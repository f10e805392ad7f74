// Package solvecfg holds the shared HCL-backed configuration for the
// cadillac-solve and cadillac-optimize commands: defaults, an optional
// HCL config file, and CLI flag overrides layered on top.
package solvecfg

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/cadillacsolver/internal/level"
)

// SolveConfig configures a cadillac-solve run.
type SolveConfig struct {
	Level             int    `hcl:"level,optional"`
	Money             int    `hcl:"money,optional"`
	FrameBest         int    `hcl:"frame_best,optional"`
	MidgameBeamWidth  int    `hcl:"midgame_beam_width,optional"`
	EndgameStateCount int    `hcl:"endgame_state_count,optional"`
	EndgameLen        int    `hcl:"endgame_len,optional"`
	RNGSeed           int    `hcl:"rng_seed,optional"`
	LogLevel          string `hcl:"log_level,optional"`
	TUI               bool   `hcl:"tui,optional"`
}

// OptimizeConfig configures a cadillac-optimize run.
type OptimizeConfig struct {
	Level      int    `hcl:"level,optional"`
	EndgameLen int    `hcl:"endgame_len,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// DefaultSolveConfig returns the fallback configuration used when no
// HCL file is supplied.
func DefaultSolveConfig() *SolveConfig {
	return &SolveConfig{
		Level:             int(level.Level9),
		Money:             0,
		FrameBest:         65535,
		MidgameBeamWidth:  100000,
		EndgameStateCount: 1,
		EndgameLen:        10,
		RNGSeed:           1,
		LogLevel:          "info",
	}
}

// DefaultOptimizeConfig returns the fallback configuration used when no
// HCL file is supplied.
func DefaultOptimizeConfig() *OptimizeConfig {
	return &OptimizeConfig{
		Level:      int(level.Level9),
		EndgameLen: 10,
		LogLevel:   "info",
	}
}

// LoadSolveConfig loads a SolveConfig from an HCL file at path, falling
// back to DefaultSolveConfig if path doesn't exist.
func LoadSolveConfig(path string) (*SolveConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultSolveConfig(), nil
	}

	cfg := DefaultSolveConfig()
	if err := decodeHCL(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOptimizeConfig loads an OptimizeConfig from an HCL file at path,
// falling back to DefaultOptimizeConfig if path doesn't exist.
func LoadOptimizeConfig(path string) (*OptimizeConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultOptimizeConfig(), nil
	}

	cfg := DefaultOptimizeConfig()
	if err := decodeHCL(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeHCL(path string, target any) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("parsing HCL file %s: %s", path, diags.Error())
	}

	diags = gohcl.DecodeBody(file.Body, nil, target)
	if diags.HasErrors() {
		return fmt.Errorf("decoding HCL file %s: %s", path, diags.Error())
	}
	return nil
}

// Validate rejects configurations the solver can't act on.
func (c *SolveConfig) Validate() error {
	lv := level.Level(c.Level)
	if lv < level.MinSolvable || lv > level.MaxSolvable {
		return fmt.Errorf("level must be 9 or 10, got %d", c.Level)
	}
	if c.MidgameBeamWidth <= 0 {
		return fmt.Errorf("midgame_beam_width must be positive, got %d", c.MidgameBeamWidth)
	}
	if c.EndgameStateCount <= 0 {
		return fmt.Errorf("endgame_state_count must be positive, got %d", c.EndgameStateCount)
	}
	if c.EndgameLen < 1 || c.EndgameLen > 10 {
		return fmt.Errorf("endgame_len must be between 1 and 10, got %d", c.EndgameLen)
	}
	return nil
}

// Validate rejects configurations the optimize pass can't act on.
func (c *OptimizeConfig) Validate() error {
	lv := level.Level(c.Level)
	if lv < level.MinSolvable || lv > level.MaxSolvable {
		return fmt.Errorf("level must be 9 or 10, got %d", c.Level)
	}
	if c.EndgameLen < 1 || c.EndgameLen > 10 {
		return fmt.Errorf("endgame_len must be between 1 and 10, got %d", c.EndgameLen)
	}
	return nil
}
