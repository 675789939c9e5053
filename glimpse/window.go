package glimpse

import "github.com/oliverbestmann/webgpu/wgpu"

// EventHandler receives every event of a Window. It runs on the thread that
// called Window.Run and must return before the next event is delivered.
type EventHandler func(ctl *Control, ev Event)

type Window interface {
	// InnerSize returns the size of the client area in physical pixels.
	InnerSize() Size

	// ScaleFactor returns the ratio of physical pixels to logical points.
	ScaleFactor() float64

	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// RequestRedraw schedules a RedrawRequested event. Multiple requests
	// before the event is delivered result in a single event.
	RequestRedraw()

	SetCursor(cursor Cursor)

	// Run pumps events into the handler until the handler calls Control.Exit.
	Run(handler EventHandler) error

	Terminate()
}

// Control is passed to the EventHandler and lets it stop the event loop.
type Control struct {
	exiting bool
}

// Exit requests the event loop to stop. No further events are delivered
// after the current handler returns. Calling Exit more than once has no
// additional effect.
func (c *Control) Exit() {
	c.exiting = true
}

func (c *Control) Exiting() bool {
	return c.exiting
}
