package glimpse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputStateKeys(t *testing.T) {
	var s InputState

	s.Apply(KeyboardInput{Key: KeyEscape, Pressed: true})
	assert.True(t, s.Keys.Pressed[KeyEscape])
	assert.True(t, s.Keys.JustPressed[KeyEscape])

	s.NextTick()
	assert.True(t, s.Keys.Pressed[KeyEscape])
	assert.False(t, s.Keys.JustPressed[KeyEscape])

	s.Apply(KeyboardInput{Key: KeyEscape, Pressed: false})
	assert.False(t, s.Keys.Pressed[KeyEscape])
	assert.True(t, s.Keys.JustReleased[KeyEscape])
}

func TestInputStateMouse(t *testing.T) {
	var s InputState

	s.Apply(CursorMoved{X: 10, Y: 20})
	s.Apply(CursorMoved{X: 15, Y: 18})
	assert.True(t, s.Mouse.Inside)
	assert.Equal(t, float32(15), s.Mouse.CursorX)
	assert.Equal(t, float32(18), s.Mouse.CursorY)

	s.Apply(MouseInput{Button: MouseButtonLeft, Pressed: true})
	assert.True(t, s.Mouse.Pressed[MouseButtonLeft])
	assert.True(t, s.Mouse.JustPressed[MouseButtonLeft])

	s.Apply(MouseWheel{DY: 1})
	s.Apply(MouseWheel{DY: 1})
	assert.Equal(t, float32(2), s.Mouse.WheelY)

	s.NextTick()
	assert.Zero(t, s.Mouse.WheelY)
	assert.False(t, s.Mouse.JustPressed[MouseButtonLeft])
	assert.True(t, s.Mouse.Pressed[MouseButtonLeft])

	s.Apply(CursorLeft{})
	assert.False(t, s.Mouse.Inside)
}

func TestInputStateText(t *testing.T) {
	var s InputState
	s.Apply(ReceivedCharacter{Char: 'h'})
	s.Apply(ReceivedCharacter{Char: 'i'})
	assert.Equal(t, "hi", string(s.Text))

	s.NextTick()
	assert.Empty(t, s.Text)
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "F12", KeyF12.String())
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "Digit9", KeyDigit9.String())
	assert.Equal(t, "Key(500)", Key(500).String())
}
