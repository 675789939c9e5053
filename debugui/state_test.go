package debugui

import (
	"testing"
	"time"

	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/glm"
	"github.com/oliverbestmann/seed/pulse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	size    glimpse.Size
	scale   float64
	cursors []glimpse.Cursor
}

func (w *fakeWindow) InnerSize() glimpse.Size {
	return w.size
}

func (w *fakeWindow) ScaleFactor() float64 {
	return w.scale
}

func (w *fakeWindow) SetCursor(cursor glimpse.Cursor) {
	w.cursors = append(w.cursors, cursor)
}

func newTestState() *State {
	return NewState(&fakeWindow{size: glimpse.Size{Width: 800, Height: 600}, scale: 2})
}

func TestStateTakeInput(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.CursorMoved{X: 10, Y: 20})
	state.OnEvent(glimpse.MouseInput{Button: glimpse.MouseButtonLeft, Pressed: true})
	state.OnEvent(glimpse.MouseWheel{DX: 1, DY: -2})
	state.OnEvent(glimpse.MouseWheel{DY: -1})
	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyA, Pressed: true})
	state.OnEvent(glimpse.ReceivedCharacter{Char: 'a'})
	state.OnEvent(glimpse.ReceivedCharacter{Char: 'ö'})
	state.OnEvent(glimpse.RedrawRequested{})

	input := state.TakeInput()
	assert.Equal(t, glimpse.Size{Width: 800, Height: 600}, input.ScreenSize)
	assert.Equal(t, float32(2), input.NativePixelsPerPoint)
	assert.True(t, input.Focused)

	assert.Equal(t, glm.Vec2f{10, 20}, input.MousePos)
	assert.True(t, input.MouseInside)
	assert.Equal(t, [3]bool{true, false, false}, input.MouseDown)
	assert.Equal(t, glm.Vec2f{1, -3}, input.Wheel)

	assert.Equal(t, []glimpse.Key{glimpse.KeyA}, input.KeysPressed)
	assert.Empty(t, input.KeysReleased)
	assert.Equal(t, "aö", input.Text)

	state.EndTick()

	// per tick values are gone, held buttons and keys stay
	input = state.TakeInput()
	assert.Equal(t, glm.Vec2f{}, input.Wheel)
	assert.Empty(t, input.Text)
	assert.Equal(t, [3]bool{true, false, false}, input.MouseDown)
	assert.Equal(t, []glimpse.Key{glimpse.KeyA}, input.KeysPressed)
}

func TestStateCursorLeft(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.CursorMoved{X: 10, Y: 20})
	state.OnEvent(glimpse.CursorLeft{})

	input := state.TakeInput()
	assert.False(t, input.MouseInside)
	assert.Equal(t, glm.Vec2f{10, 20}, input.MousePos)
}

func TestStateClickWithinOneTick(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.MouseInput{Button: glimpse.MouseButtonRight, Pressed: true})
	state.OnEvent(glimpse.MouseInput{Button: glimpse.MouseButtonRight, Pressed: false})

	input := state.TakeInput()
	assert.Equal(t, [3]bool{false, true, false}, input.MouseDown)
	state.EndTick()

	input = state.TakeInput()
	assert.Equal(t, [3]bool{}, input.MouseDown)
}

func TestStateKeyTapWithinOneTick(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyEnter, Pressed: true})
	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyEnter, Pressed: false})

	input := state.TakeInput()
	assert.Equal(t, []glimpse.Key{glimpse.KeyEnter}, input.KeysPressed)
	assert.Empty(t, input.KeysReleased)
	state.EndTick()

	input = state.TakeInput()
	assert.Empty(t, input.KeysPressed)
	assert.Equal(t, []glimpse.Key{glimpse.KeyEnter}, input.KeysReleased)
	state.EndTick()

	input = state.TakeInput()
	assert.Empty(t, input.KeysReleased)
}

func TestStateKeyPressedAgainBeforeDeferredRelease(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyTab, Pressed: true})
	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyTab, Pressed: false})
	state.TakeInput()
	state.EndTick()

	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyTab, Pressed: true})

	input := state.TakeInput()
	assert.Equal(t, []glimpse.Key{glimpse.KeyTab}, input.KeysPressed)
	assert.Empty(t, input.KeysReleased)
}

func TestStateKeyRelease(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyLeft, Pressed: true})
	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyRight, Pressed: true})
	state.TakeInput()
	state.EndTick()

	state.OnEvent(glimpse.KeyboardInput{Key: glimpse.KeyRight, Pressed: false})

	input := state.TakeInput()
	assert.Equal(t, []glimpse.Key{glimpse.KeyLeft}, input.KeysPressed)
	assert.Equal(t, []glimpse.Key{glimpse.KeyRight}, input.KeysReleased)
}

func TestStateDeltaTime(t *testing.T) {
	state := newTestState()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	state.now = func() time.Time { return now }

	assert.Zero(t, state.TakeInput().DeltaTime)

	now = now.Add(20 * time.Millisecond)
	assert.InDelta(t, 0.02, state.TakeInput().DeltaTime, 1e-6)
}

func TestStateTracksWindow(t *testing.T) {
	state := newTestState()

	state.OnEvent(glimpse.Resized{Size: glimpse.Size{Width: 1024, Height: 768}})
	state.OnEvent(glimpse.ScaleFactorChanged{ScaleFactor: 1.5})
	state.OnEvent(glimpse.Focused{Focused: false})

	input := state.TakeInput()
	assert.Equal(t, glimpse.Size{Width: 1024, Height: 768}, input.ScreenSize)
	assert.Equal(t, float32(1.5), input.NativePixelsPerPoint)
	assert.False(t, input.Focused)
}

func TestStateHandlePlatformOutput(t *testing.T) {
	window := &fakeWindow{scale: 1}
	state := NewState(window)

	state.HandlePlatformOutput(PlatformOutput{Cursor: glimpse.CursorDefault})
	state.HandlePlatformOutput(PlatformOutput{Cursor: glimpse.CursorPointingHand})
	state.HandlePlatformOutput(PlatformOutput{Cursor: glimpse.CursorPointingHand})
	state.HandlePlatformOutput(PlatformOutput{Cursor: glimpse.CursorDefault})

	require.Equal(t, []glimpse.Cursor{glimpse.CursorPointingHand, glimpse.CursorDefault}, window.cursors)
}

func TestDemoWindows(t *testing.T) {
	ctx := newTestContext(t)
	demo := NewDemoWindows()

	stats := DemoStats{
		FPS:        60,
		FrameCount: 10,
		FrameTimes: []float32{16, 17, 15},
		ClearColor: pulse.ColorBackground,
	}

	var changed bool
	ui := func(ctx *Context) {
		if _, edited := demo.Show(ctx, stats); edited {
			changed = true
		}
	}

	ctx.Run(frameInput(glm.Vec2f{}, false), ui)
	output := ctx.Run(frameInput(glm.Vec2f{}, false), ui)

	assert.NotEmpty(t, ctx.Tessellate(output))
	assert.False(t, changed)
	assert.Zero(t, demo.Clicks())
	assert.Equal(t, float32(1), ctx.Zoom())
}
