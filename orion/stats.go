package orion

import (
	"time"
)

// number of frame durations kept for the frame time graph
const historySize = 120

type FrameTimes struct {
	FrameCount      uint64
	AverageDuration time.Duration
	MaxDuration     time.Duration

	// Delta time to previous frame
	Delta time.Duration

	lastTime time.Time

	history     [historySize]time.Duration
	historyNext int
	historyLen  int
}

func (t *FrameTimes) update(d time.Duration) {
	const window = 64

	t.Delta = d
	t.MaxDuration = max(t.MaxDuration, d)

	if t.FrameCount < window/2 {
		t.AverageDuration = d
	} else {
		t.AverageDuration = ((window-1)*t.AverageDuration + d) / window
	}

	t.history[t.historyNext] = d
	t.historyNext = (t.historyNext + 1) % historySize
	t.historyLen = min(t.historyLen+1, historySize)
}

func (t *FrameTimes) FPS() float64 {
	if t.AverageDuration <= 0 {
		return 0
	}

	return 1.0 / t.AverageDuration.Seconds()
}

// Tick records a rendered frame at the given time. It reports true every 60 frames.
func (t *FrameTimes) Tick(now time.Time) bool {
	if t.FrameCount > 0 {
		dt := now.Sub(t.lastTime)
		t.update(dt)
	}

	t.lastTime = now
	t.FrameCount += 1

	return t.FrameCount%60 == 0
}

// History appends the recent frame durations in milliseconds to dst, oldest first.
func (t *FrameTimes) History(dst []float32) []float32 {
	start := (t.historyNext - t.historyLen + historySize) % historySize

	for idx := range t.historyLen {
		d := t.history[(start+idx)%historySize]
		dst = append(dst, float32(d.Seconds()*1000))
	}

	return dst
}
