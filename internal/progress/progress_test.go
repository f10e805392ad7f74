package progress

import (
	"testing"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
)

func TestTickerRateLimits(t *testing.T) {
	mock := quartz.NewMock(t)
	logger := charmlog.New(nil)
	tick := NewTickerWithClock(logger, "test", mock)

	tick.Tick(0, 10)
	first := tick.last
	assert.False(t, first.IsZero())

	mock.Advance(time.Second)
	tick.Tick(1, 10)
	assert.Equal(t, first, tick.last, "should not have logged again before MinInterval elapsed")

	mock.Advance(2 * time.Second)
	tick.Tick(2, 10)
	assert.True(t, tick.last.After(first), "should have logged again after MinInterval elapsed")
}

func TestTickerAlwaysLogsFinalTick(t *testing.T) {
	mock := quartz.NewMock(t)
	logger := charmlog.New(nil)
	tick := NewTickerWithClock(logger, "test", mock)

	tick.Tick(0, 3)
	first := tick.last

	mock.Advance(time.Millisecond)
	tick.Tick(2, 3)
	assert.True(t, tick.last.After(first))
}
