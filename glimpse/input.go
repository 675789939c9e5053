package glimpse

import "log/slog"

type MouseButton uint32

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

type KeysState struct {
	// the keys that are currently marked as "pressed"
	Pressed map[Key]bool

	// keys that where just pressed after the last call to NextTick()
	JustPressed map[Key]bool

	// keys that were just released after the last call to NextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) press(key Key) {
	slog.Debug("Key just pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	CursorX, CursorY float32

	// false after the cursor left the window
	Inside bool

	// accumulated wheel movement since the last tick
	WheelX, WheelY float32

	Pressed map[MouseButton]bool

	// mouse buttons that were just clicked after the last call to NextTick()
	JustPressed map[MouseButton]bool
}

func (m *MouseState) press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) release(button MouseButton) {
	setFalse(&m.Pressed, button)
}

func (m *MouseState) position(x, y float32) {
	m.CursorX = x
	m.CursorY = y
	m.Inside = true
}

func (m *MouseState) nextTick() {
	m.WheelX, m.WheelY = 0, 0

	clear(m.JustPressed)
}

// InputState tracks keyboard and mouse state from a stream of events.
type InputState struct {
	Keys    KeysState
	Mouse   MouseState
	Focused bool

	// characters typed since the last tick
	Text []rune
}

// Apply updates the state with the given event. Events that do
// not carry input are ignored.
func (s *InputState) Apply(ev Event) {
	switch ev := ev.(type) {
	case KeyboardInput:
		if ev.Pressed {
			s.Keys.press(ev.Key)
		} else {
			s.Keys.release(ev.Key)
		}

	case MouseInput:
		if ev.Pressed {
			s.Mouse.press(ev.Button)
		} else {
			s.Mouse.release(ev.Button)
		}

	case CursorMoved:
		s.Mouse.position(ev.X, ev.Y)

	case CursorLeft:
		s.Mouse.Inside = false

	case MouseWheel:
		s.Mouse.WheelX += ev.DX
		s.Mouse.WheelY += ev.DY

	case Focused:
		s.Focused = ev.Focused

	case ReceivedCharacter:
		s.Text = append(s.Text, ev.Char)
	}
}

// NextTick clears all per tick state, like the just pressed keys.
func (s *InputState) NextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
	s.Text = s.Text[:0]
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
