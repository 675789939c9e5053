//go:build !js

package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

type glfwWindow struct {
	win     *glfw.Window
	prof    interface{ Stop() }
	queue   eventQueue
	cursors map[Cursor]*glfw.Cursor
	cursor  Cursor
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &glfwWindow{
		win:     window,
		prof:    startProfile(),
		cursors: map[Cursor]*glfw.Cursor{},
	}

	w.configureCallbacks()

	// the first real size is only known after the window exists,
	// deliver it the same way every later size change is delivered.
	w.queue.push(Resized{Size: w.InnerSize()})

	return w, nil
}

func (g *glfwWindow) InnerSize() Size {
	width, height := g.win.GetFramebufferSize()
	return Size{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}
}

func (g *glfwWindow) ScaleFactor() float64 {
	x, _ := g.win.GetContentScale()
	if x <= 0 {
		return 1
	}

	return float64(x)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) RequestRedraw() {
	g.queue.requestRedraw()
}

func (g *glfwWindow) SetCursor(cursor Cursor) {
	if cursor == g.cursor {
		return
	}

	g.cursor = cursor

	if cursor == CursorDefault {
		g.win.SetCursor(nil)
		return
	}

	glfwCursor, ok := g.cursors[cursor]
	if !ok {
		glfwCursor = glfw.CreateStandardCursor(standardCursorOf(cursor))
		g.cursors[cursor] = glfwCursor
	}

	g.win.SetCursor(glfwCursor)
}

func (g *glfwWindow) Terminate() {
	if g.prof != nil {
		g.prof.Stop()
	}

	for _, cursor := range g.cursors {
		cursor.Destroy()
	}

	g.win.Destroy()
	glfw.Terminate()
}

func (g *glfwWindow) Run(handler EventHandler) error {
	var ctl Control

	for !ctl.Exiting() {
		// deliver what is already queued, including the initial resize
		g.queue.drain(&ctl, handler)
		if ctl.Exiting() {
			break
		}

		if g.queue.redrawPending() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}
	}

	return nil
}

func (g *glfwWindow) configureCallbacks() {
	g.win.SetCloseCallback(func(win *glfw.Window) {
		// the handler decides when the loop ends
		win.SetShouldClose(false)
		g.queue.push(CloseRequested{})
	})

	g.win.SetFramebufferSizeCallback(func(_win *glfw.Window, width, height int) {
		g.queue.push(Resized{Size: Size{Width: uint32(max(width, 0)), Height: uint32(max(height, 0))}})
	})

	g.win.SetContentScaleCallback(func(_win *glfw.Window, x, y float32) {
		g.queue.push(ScaleFactorChanged{ScaleFactor: float64(x)})
	})

	g.win.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		g.queue.push(Focused{Focused: focused})
	})

	g.win.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey, scancode)
		if !ok {
			return
		}

		g.queue.push(KeyboardInput{Key: key, Pressed: action == glfw.Press})
	})

	g.win.SetCharCallback(func(_win *glfw.Window, char rune) {
		g.queue.push(ReceivedCharacter{Char: char})
	})

	g.win.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button, ok := mouseButtonOf(btn)
		if !ok {
			return
		}

		g.queue.push(MouseInput{Button: button, Pressed: action == glfw.Press})
	})

	g.win.SetCursorPosCallback(func(win *glfw.Window, xpos float64, ypos float64) {
		// glfw reports screen coordinates, events carry physical pixels
		sx, sy := g.pixelRatio()
		g.queue.push(CursorMoved{X: float32(xpos * sx), Y: float32(ypos * sy)})
	})

	g.win.SetCursorEnterCallback(func(_win *glfw.Window, entered bool) {
		if !entered {
			g.queue.push(CursorLeft{})
		}
	})

	g.win.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		g.queue.push(MouseWheel{DX: float32(xoff), DY: float32(yoff)})
	})
}

func (g *glfwWindow) pixelRatio() (float64, float64) {
	fw, fh := g.win.GetFramebufferSize()
	ww, wh := g.win.GetSize()
	if ww == 0 || wh == 0 {
		return 1, 1
	}

	return float64(fw) / float64(ww), float64(fh) / float64(wh)
}

func standardCursorOf(cursor Cursor) glfw.StandardCursor {
	switch cursor {
	case CursorPointingHand:
		return glfw.HandCursor
	case CursorText:
		return glfw.IBeamCursor
	case CursorCrosshair:
		return glfw.CrosshairCursor
	case CursorResizeHorizontal:
		return glfw.HResizeCursor
	case CursorResizeVertical:
		return glfw.VResizeCursor
	default:
		return glfw.ArrowCursor
	}
}

func mouseButtonOf(btn glfw.MouseButton) (MouseButton, bool) {
	switch btn {
	case glfw.MouseButtonLeft:
		return MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return MouseButtonMiddle, true
	default:
		return 0, false
	}
}

var glfwToKey = buildKeyTable()

func buildKeyTable() map[glfw.Key]Key {
	keys := map[glfw.Key]Key{
		glfw.KeyEscape:    KeyEscape,
		glfw.KeyEnter:     KeyEnter,
		glfw.KeyKPEnter:   KeyEnter,
		glfw.KeyTab:       KeyTab,
		glfw.KeyBackspace: KeyBackspace,
		glfw.KeyDelete:    KeyDelete,
		glfw.KeySpace:     KeySpace,
		glfw.KeyLeft:      KeyLeft,
		glfw.KeyRight:     KeyRight,
		glfw.KeyUp:        KeyUp,
		glfw.KeyDown:      KeyDown,
		glfw.KeyHome:      KeyHome,
		glfw.KeyEnd:       KeyEnd,
		glfw.KeyPageUp:    KeyPageUp,
		glfw.KeyPageDown:  KeyPageDown,
	}

	// letters, digits and function keys are contiguous in both tables
	for i := 0; i < 26; i++ {
		keys[glfw.KeyA+glfw.Key(i)] = KeyA + Key(i)
	}

	for i := 0; i < 10; i++ {
		keys[glfw.Key0+glfw.Key(i)] = KeyDigit0 + Key(i)
	}

	for i := 0; i < 12; i++ {
		keys[glfw.KeyF1+glfw.Key(i)] = KeyF1 + Key(i)
	}

	return keys
}

func keyOf(glfwKey glfw.Key, scancode int) (key Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.Int("code", int(glfwKey)),
			slog.String("key", glfw.GetKeyName(glfwKey, scancode)),
		)
	}

	return
}
