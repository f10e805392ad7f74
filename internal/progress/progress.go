// Package progress provides a rate-limited progress ticker, used by the
// midgame beam search, so a long search logs its position periodically
// instead of once per ply (which floods the terminal) or not at all.
// The endgame and optimize searches do not log progress.
package progress

import (
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// MinInterval is the minimum wall-clock gap between two log lines from
// the same Ticker.
const MinInterval = 2 * time.Second

// Ticker logs "<label>" lines carrying progress=i and total=n through
// logger, no more often than
// MinInterval apart, using clock to read the current time so tests can
// drive it deterministically with quartz.NewMock.
type Ticker struct {
	logger *charmlog.Logger
	label  string
	clock  quartz.Clock
	last   time.Time
}

// NewTicker builds a Ticker that reports against the real wall clock.
func NewTicker(logger *charmlog.Logger, label string) *Ticker {
	return NewTickerWithClock(logger, label, quartz.NewReal())
}

// NewTickerWithClock builds a Ticker driven by an injected clock.
func NewTickerWithClock(logger *charmlog.Logger, label string, clock quartz.Clock) *Ticker {
	return &Ticker{logger: logger, label: label, clock: clock}
}

// Tick reports progress (i of n) if MinInterval has elapsed since the
// last report, or if this is the final tick (i == n-1).
func (t *Ticker) Tick(i, n int) {
	now := t.clock.Now()
	if !t.last.IsZero() && now.Sub(t.last) < MinInterval && i != n-1 {
		return
	}
	t.last = now
	t.logger.Info(t.label, "progress", i, "total", n)
}
