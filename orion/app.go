package orion

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/seed/debugui"
	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/pulse"
)

// Window is the part of a glimpse.Window the App needs.
type Window interface {
	RequestRedraw()
	ScaleFactor() float64
}

// Surface is reconfigured on resize and after the surface was lost.
type Surface interface {
	// Reconfigure applies the new size. A zero size is ignored.
	Reconfigure(width, height uint32) bool

	// RecoverFromLoss reconfigures the surface with the last known size.
	RecoverFromLoss()
}

type FrameRenderer interface {
	RenderFrame(scaleFactor float32, drawOverlay pulse.OverlayFunc) error
	ClearColor() pulse.Color
	SetClearColor(color pulse.Color)
}

// Overlay receives every event that is not consumed and draws on top of each frame.
type Overlay interface {
	HandleInput(ev glimpse.Event)
	Draw(rec *pulse.Recorder, target pulse.RenderTarget, screen pulse.ScreenDescriptor, run func(ctx *debugui.Context)) error
}

// App dispatches window events. It reconfigures the surface on resize,
// renders a frame on every redraw and forwards events to the overlay.
type App struct {
	window   Window
	surface  Surface
	renderer FrameRenderer
	overlay  Overlay

	demo  *debugui.DemoWindows
	stats debugui.DemoStats

	// true after the first resize, frames are only rendered once the size is known
	surfaceConfigured bool

	// the reason the loop was stopped, if it was not requested by the user
	fatal error

	Times FrameTimes

	// returns the current time, replaced in tests
	now func() time.Time
}

func NewApp(window Window, surface Surface, renderer FrameRenderer, overlay Overlay) *App {
	return &App{
		window:   window,
		surface:  surface,
		renderer: renderer,
		overlay:  overlay,
		demo:     debugui.NewDemoWindows(),
		now:      time.Now,
	}
}

// Err returns the error that stopped the event loop, if any.
func (a *App) Err() error {
	return a.fatal
}

// HandleEvent is the glimpse.EventHandler of the App.
func (a *App) HandleEvent(ctl *glimpse.Control, ev glimpse.Event) {
	if a.input(ev) {
		return
	}

	switch ev := ev.(type) {
	case glimpse.CloseRequested:
		a.exit(ctl)
		return

	case glimpse.KeyboardInput:
		if ev.Key == glimpse.KeyEscape && ev.Pressed {
			a.exit(ctl)
			return
		}

	case glimpse.Resized:
		a.surfaceConfigured = true
		a.resize(ev.Size)

	case glimpse.RedrawRequested:
		// keep the loop running, every redraw schedules the next one
		a.window.RequestRedraw()

		if !a.surfaceConfigured {
			return
		}

		a.update()
		a.render(ctl)
	}

	a.overlay.HandleInput(ev)
}

// input is the hook for custom input handling. It reports whether the event
// was consumed, which it currently never is.
func (a *App) input(ev glimpse.Event) bool {
	a.window.RequestRedraw()
	return false
}

func (a *App) exit(ctl *glimpse.Control) {
	if ctl.Exiting() {
		return
	}

	slog.Info("Exit requested")
	ctl.Exit()
}

func (a *App) resize(size glimpse.Size) {
	if !a.surface.Reconfigure(size.Width, size.Height) {
		slog.Debug("Ignore resize", slog.Int("width", int(size.Width)), slog.Int("height", int(size.Height)))
		return
	}

	slog.Debug("Resize surface",
		slog.Int("width", int(size.Width)),
		slog.Int("height", int(size.Height)),
	)
}

// update runs before every rendered frame.
func (a *App) update() {
	a.stats = a.collectStats(a.stats)
}

func (a *App) render(ctl *glimpse.Control) {
	scaleFactor := float32(a.window.ScaleFactor())

	err := a.renderer.RenderFrame(scaleFactor, a.drawOverlay)
	if err == nil {
		a.Times.Tick(a.now())
	}

	a.handleRenderResult(ctl, err)
}

func (a *App) drawOverlay(rec *pulse.Recorder, target pulse.RenderTarget, screen pulse.ScreenDescriptor) error {
	return a.overlay.Draw(rec, target, screen, a.ui)
}

func (a *App) ui(ctx *debugui.Context) {
	if clearColor, changed := a.demo.Show(ctx, a.stats); changed {
		a.renderer.SetClearColor(clearColor)
	}
}
