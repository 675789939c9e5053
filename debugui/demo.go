package debugui

import (
	"fmt"
	"runtime"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/oliverbestmann/seed/pulse"
)

// DemoStats are the numbers shown by DemoWindows.
type DemoStats struct {
	FPS        float64
	FrameCount uint64

	// recent frame times in milliseconds, oldest first
	FrameTimes []float32

	ClearColor pulse.Color
}

// DemoWindows is the bundled demo panel: a stats window, a settings window
// and the imgui demo window.
type DemoWindows struct {
	clicks   int
	showDemo bool
	zoom     float32

	mem runtime.MemStats
}

func NewDemoWindows() *DemoWindows {
	return &DemoWindows{zoom: 1}
}

// Show adds the demo windows to the ui. It returns the clear color and
// whether it was edited during this frame.
func (d *DemoWindows) Show(ctx *Context, stats DemoStats) (pulse.Color, bool) {
	runtime.ReadMemStats(&d.mem)

	d.showStats(stats)

	clearColor, changed := d.showSettings(ctx, stats.ClearColor)

	if d.showDemo {
		imgui.ShowDemoWindow(&d.showDemo)
	}

	return clearColor, changed
}

func (d *DemoWindows) Clicks() int {
	return d.clicks
}

func (d *DemoWindows) showStats(stats DemoStats) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 8}, imgui.ConditionFirstUseEver, imgui.Vec2{})

	if imgui.Begin("Stats") {
		lastCycle := (d.mem.NumGC + 255) % 256
		lastCycleDur := time.Duration(d.mem.PauseNs[lastCycle])

		imgui.Text(fmt.Sprintf("FPS: %1.2f", stats.FPS))
		imgui.Text(fmt.Sprintf("Frames: %d", stats.FrameCount))
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Heap InUse: %1.2fmb", float64(d.mem.HeapInuse)/(1024.0*1024.0)))
		imgui.Text(fmt.Sprintf("GC Cycles:  %d", d.mem.NumGC))
		imgui.Text(fmt.Sprintf("GC Pause:   %1.2fms", lastCycleDur.Seconds()*1000))

		if len(stats.FrameTimes) > 0 {
			imgui.Separator()
			imgui.PlotLines("Frame time", stats.FrameTimes)
		}
	}

	imgui.End()
}

func (d *DemoWindows) showSettings(ctx *Context, clearColor pulse.Color) (pulse.Color, bool) {
	imgui.SetNextWindowPosV(imgui.Vec2{X: 8, Y: 200}, imgui.ConditionFirstUseEver, imgui.Vec2{})

	var changed bool

	if imgui.Begin("Settings") {
		rgb := clearColor.SRGB()
		if imgui.ColorEdit3("Clear color", &rgb) {
			clearColor = pulse.ColorSRGBA(rgb[0], rgb[1], rgb[2], 1)
			changed = true
		}

		if imgui.SliderFloat("UI scale", &d.zoom, 0.5, 3) {
			ctx.SetZoom(d.zoom)
		}

		imgui.Checkbox("Show demo window", &d.showDemo)

		if imgui.Button("Click me") {
			d.clicks++
		}

		imgui.Text(fmt.Sprintf("Clicked %d times", d.clicks))
	}

	imgui.End()

	return clearColor, changed
}
