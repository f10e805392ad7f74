package solvecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSolveConfigValidates(t *testing.T) {
	cfg := DefaultSolveConfig()
	assert.NoError(t, cfg.Validate())
}

func TestDefaultOptimizeConfigValidates(t *testing.T) {
	cfg := DefaultOptimizeConfig()
	assert.NoError(t, cfg.Validate())
}

func TestLoadSolveConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadSolveConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSolveConfig(), cfg)
}

func TestLoadSolveConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cadillac-solve.hcl")
	contents := `
level = 10
money = 50
midgame_beam_width = 200000
endgame_state_count = 4
endgame_len = 8
rng_seed = 42
log_level = "debug"
tui = true
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadSolveConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Level)
	assert.Equal(t, 50, cfg.Money)
	assert.Equal(t, 200000, cfg.MidgameBeamWidth)
	assert.Equal(t, 4, cfg.EndgameStateCount)
	assert.Equal(t, 8, cfg.EndgameLen)
	assert.Equal(t, 42, cfg.RNGSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.TUI)
	assert.NoError(t, cfg.Validate())
}

func TestSolveConfigValidateRejectsBadLevel(t *testing.T) {
	cfg := DefaultSolveConfig()
	cfg.Level = 5
	assert.Error(t, cfg.Validate())
}

func TestSolveConfigValidateRejectsBadEndgameLen(t *testing.T) {
	cfg := DefaultSolveConfig()
	cfg.EndgameLen = 11
	assert.Error(t, cfg.Validate())
}

func TestOptimizeConfigValidateRejectsBadLevel(t *testing.T) {
	cfg := DefaultOptimizeConfig()
	cfg.Level = 1
	assert.Error(t, cfg.Validate())
}
