package glimpse

// Size is a size in physical pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero, as it is
// for a minimized window.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Event is a platform event delivered by a Window to its EventHandler.
type Event interface {
	isEvent()
}

// CloseRequested is sent when the user asks to close the window.
// The window stays open until the handler exits the loop.
type CloseRequested struct{}

// Resized is sent whenever the client area changes its size. A window
// sends one Resized right after it has been created.
type Resized struct {
	Size Size
}

// RedrawRequested is sent once per call to Window.RequestRedraw,
// after all pending input events have been delivered.
type RedrawRequested struct{}

type KeyboardInput struct {
	Key     Key
	Pressed bool
}

// CursorMoved carries the cursor position in physical pixels
// relative to the top left corner of the client area.
type CursorMoved struct {
	X, Y float32
}

type CursorLeft struct{}

type MouseInput struct {
	Button  MouseButton
	Pressed bool
}

type MouseWheel struct {
	DX, DY float32
}

type Focused struct {
	Focused bool
}

type ReceivedCharacter struct {
	Char rune
}

type ScaleFactorChanged struct {
	ScaleFactor float64
}

func (CloseRequested) isEvent() {}
func (Resized) isEvent() {}
func (RedrawRequested) isEvent() {}
func (KeyboardInput) isEvent() {}
func (CursorMoved) isEvent() {}
func (CursorLeft) isEvent() {}
func (MouseInput) isEvent() {}
func (MouseWheel) isEvent() {}
func (Focused) isEvent() {}
func (ReceivedCharacter) isEvent() {}
func (ScaleFactorChanged) isEvent() {}
