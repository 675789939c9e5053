package debugui

import (
	"slices"
	"time"

	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/glm"
)

// PlatformWindow is the part of a glimpse.Window the platform adapter needs.
type PlatformWindow interface {
	InnerSize() glimpse.Size
	ScaleFactor() float64
	SetCursor(cursor glimpse.Cursor)
}

// State translates window events into the input of a Context and applies
// its platform output to the window.
type State struct {
	window PlatformWindow

	// tracked keyboard and mouse state
	Input glimpse.InputState

	size        glimpse.Size
	scaleFactor float64
	cursor      glimpse.Cursor

	lastInput time.Time

	// keys tapped within one tick, released with the next input
	deferredReleases []glimpse.Key

	// returns the current time, replaced in tests
	now func() time.Time
}

func NewState(window PlatformWindow) *State {
	return &State{
		window:      window,
		size:        window.InnerSize(),
		scaleFactor: window.ScaleFactor(),
		Input:       glimpse.InputState{Focused: true},
		now:         time.Now,
	}
}

// OnEvent records the event for the next call to TakeInput.
func (s *State) OnEvent(ev glimpse.Event) {
	s.Input.Apply(ev)

	switch ev := ev.(type) {
	case glimpse.Resized:
		s.size = ev.Size

	case glimpse.ScaleFactorChanged:
		s.scaleFactor = ev.ScaleFactor
	}
}

// TakeInput returns the input state of the current tick.
func (s *State) TakeInput() RawInput {
	now := s.now()

	var deltaTime float32
	if !s.lastInput.IsZero() {
		deltaTime = float32(now.Sub(s.lastInput).Seconds())
	}

	s.lastInput = now

	mouse := &s.Input.Mouse

	input := RawInput{
		ScreenSize:           s.size,
		NativePixelsPerPoint: float32(s.scaleFactor),
		DeltaTime:            deltaTime,
		Focused:              s.Input.Focused,
		MousePos:             glm.Vec2f{mouse.CursorX, mouse.CursorY},
		MouseInside:          mouse.Inside,
		Wheel:                glm.Vec2f{mouse.WheelX, mouse.WheelY},
		KeysPressed:          s.keysDown(),
		KeysReleased:         s.keysReleased(),
		Text:                 string(s.Input.Text),
	}

	buttons := []glimpse.MouseButton{glimpse.MouseButtonLeft, glimpse.MouseButtonRight, glimpse.MouseButtonMiddle}
	for idx, button := range buttons {
		// a click within a single tick must still be seen as pressed for one frame
		input.MouseDown[idx] = mouse.Pressed[button] || mouse.JustPressed[button]
	}

	return input
}

// EndTick resets the per tick part of the tracked input state.
func (s *State) EndTick() {
	s.Input.NextTick()
}

// HandlePlatformOutput applies the requested cursor to the window.
func (s *State) HandlePlatformOutput(output PlatformOutput) {
	if output.Cursor == s.cursor {
		return
	}

	s.cursor = output.Cursor
	s.window.SetCursor(output.Cursor)
}

// keysDown returns the keys that are held or were tapped during this tick.
func (s *State) keysDown() []glimpse.Key {
	keys := &s.Input.Keys

	var result []glimpse.Key
	for key := range keys.JustPressed {
		result = append(result, key)
	}

	for key, pressed := range keys.Pressed {
		if pressed && !keys.JustPressed[key] {
			result = append(result, key)
		}
	}

	slices.Sort(result)

	return result
}

// keysReleased returns the keys released during this tick that are not held
// again. A key tapped within this tick is released with the next input, so
// the ui sees it held for one frame.
func (s *State) keysReleased() []glimpse.Key {
	keys := &s.Input.Keys

	var result []glimpse.Key
	for _, key := range s.deferredReleases {
		if !keys.Pressed[key] && !keys.JustPressed[key] {
			result = append(result, key)
		}
	}

	s.deferredReleases = s.deferredReleases[:0]

	for key := range keys.JustReleased {
		switch {
		case keys.Pressed[key]:
		case keys.JustPressed[key]:
			s.deferredReleases = append(s.deferredReleases, key)
		default:
			result = append(result, key)
		}
	}

	slices.Sort(result)

	return result
}
