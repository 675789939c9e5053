package orion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFrameTimes(t *testing.T) {
	var times FrameTimes

	now := time.Unix(0, 0)

	assert.False(t, times.Tick(now))
	assert.Zero(t, times.FPS())

	for range 59 {
		now = now.Add(20 * time.Millisecond)
		times.Tick(now)
	}

	assert.Equal(t, uint64(60), times.FrameCount)
	assert.Equal(t, 20*time.Millisecond, times.AverageDuration)
	assert.InDelta(t, 50, times.FPS(), 1e-6)

	now = now.Add(100 * time.Millisecond)
	times.Tick(now)

	assert.Equal(t, 100*time.Millisecond, times.Delta)
	assert.Equal(t, 100*time.Millisecond, times.MaxDuration)
}

func TestFrameTimesHistory(t *testing.T) {
	var times FrameTimes

	now := time.Unix(0, 0)
	times.Tick(now)

	assert.Empty(t, times.History(nil))

	for idx := range historySize + 10 {
		now = now.Add(time.Duration(idx+1) * time.Millisecond)
		times.Tick(now)
	}

	history := times.History(nil)
	assert.Len(t, history, historySize)

	// oldest first, the first ten frames were dropped
	assert.InDelta(t, 11, history[0], 1e-6)
	assert.InDelta(t, historySize+10, history[historySize-1], 1e-6)
}
