package orion

import (
	"github.com/oliverbestmann/seed/debugui"
)

// collectStats fills the numbers shown by the debug ui, reusing
// the frame time buffer of prev.
func (a *App) collectStats(prev debugui.DemoStats) debugui.DemoStats {
	return debugui.DemoStats{
		FPS:        a.Times.FPS(),
		FrameCount: a.Times.FrameCount,
		FrameTimes: a.Times.History(prev.FrameTimes[:0]),
		ClearColor: a.renderer.ClearColor(),
	}
}
