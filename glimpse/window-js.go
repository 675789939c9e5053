//go:build js

package glimpse

import (
	"strconv"
	"syscall/js"

	"github.com/oliverbestmann/webgpu/wgpu"
)

type jsWindow struct {
	canvas js.Value
	queue  eventQueue
	size   Size

	listeners []js.Func
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh; display:block")
	canvas.Set("tabIndex", 0)

	win := &jsWindow{
		canvas: canvas,
	}

	win.configureListeners()

	return win, nil
}

func (g *jsWindow) InnerSize() Size {
	return g.size
}

func (g *jsWindow) ScaleFactor() float64 {
	return js.Global().Get("devicePixelRatio").Float()
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) RequestRedraw() {
	g.queue.requestRedraw()
}

func (g *jsWindow) SetCursor(cursor Cursor) {
	g.canvas.Get("style").Set("cursor", cssCursorOf(cursor))
}

func (g *jsWindow) Terminate() {
	for _, fn := range g.listeners {
		fn.Release()
	}

	g.listeners = nil
}

func (g *jsWindow) Run(handler EventHandler) error {
	var ctl Control

	done := make(chan struct{})

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		g.resizeCanvas()
		g.queue.drain(&ctl, handler)

		if ctl.Exiting() {
			close(done)
			return nil
		}

		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})

	defer frame.Release()

	js.Global().Call("requestAnimationFrame", frame)

	<-done

	return nil
}

// resizeCanvas matches the canvas backing store to the visual
// viewport and queues a Resized event if the size changed.
func (g *jsWindow) resizeCanvas() {
	vv := js.Global().Get("visualViewport")
	ratio := g.ScaleFactor()

	size := Size{
		Width:  uint32(vv.Get("width").Float() * ratio),
		Height: uint32(vv.Get("height").Float() * ratio),
	}

	if size == g.size {
		return
	}

	g.canvas.Set("width", size.Width)
	g.canvas.Set("height", size.Height)

	g.size = size
	g.queue.push(Resized{Size: size})
}

func (g *jsWindow) listen(target js.Value, event string, fn func(ev js.Value)) {
	wrapped := js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})

	g.listeners = append(g.listeners, wrapped)
	target.Call("addEventListener", event, wrapped)
}

func (g *jsWindow) configureListeners() {
	window := js.Global()

	g.listen(window, "keydown", func(ev js.Value) {
		if ev.Get("repeat").Bool() {
			return
		}

		if key, ok := jsKeys[ev.Get("key").String()]; ok {
			g.queue.push(KeyboardInput{Key: key, Pressed: true})
		}

		if text := ev.Get("key").String(); len([]rune(text)) == 1 {
			g.queue.push(ReceivedCharacter{Char: []rune(text)[0]})
		}
	})

	g.listen(window, "keyup", func(ev js.Value) {
		if key, ok := jsKeys[ev.Get("key").String()]; ok {
			g.queue.push(KeyboardInput{Key: key, Pressed: false})
		}
	})

	g.listen(g.canvas, "pointermove", func(ev js.Value) {
		ratio := float32(g.ScaleFactor())
		x := float32(ev.Get("offsetX").Float()) * ratio
		y := float32(ev.Get("offsetY").Float()) * ratio
		g.queue.push(CursorMoved{X: x, Y: y})
	})

	g.listen(g.canvas, "pointerleave", func(ev js.Value) {
		g.queue.push(CursorLeft{})
	})

	g.listen(g.canvas, "pointerdown", func(ev js.Value) {
		if button, ok := jsMouseButtonOf(ev.Get("button").Int()); ok {
			g.queue.push(MouseInput{Button: button, Pressed: true})
		}
	})

	g.listen(g.canvas, "pointerup", func(ev js.Value) {
		if button, ok := jsMouseButtonOf(ev.Get("button").Int()); ok {
			g.queue.push(MouseInput{Button: button, Pressed: false})
		}
	})

	g.listen(g.canvas, "wheel", func(ev js.Value) {
		// browsers report pixels and the opposite direction
		g.queue.push(MouseWheel{
			DX: -float32(ev.Get("deltaX").Float()) / 100,
			DY: -float32(ev.Get("deltaY").Float()) / 100,
		})
	})

	g.listen(window, "focus", func(ev js.Value) {
		g.queue.push(Focused{Focused: true})
	})

	g.listen(window, "blur", func(ev js.Value) {
		g.queue.push(Focused{Focused: false})
	})
}

func jsMouseButtonOf(button int) (MouseButton, bool) {
	switch button {
	case 0:
		return MouseButtonLeft, true
	case 1:
		return MouseButtonMiddle, true
	case 2:
		return MouseButtonRight, true
	default:
		return 0, false
	}
}

func cssCursorOf(cursor Cursor) string {
	switch cursor {
	case CursorPointingHand:
		return "pointer"
	case CursorText:
		return "text"
	case CursorCrosshair:
		return "crosshair"
	case CursorResizeHorizontal:
		return "ew-resize"
	case CursorResizeVertical:
		return "ns-resize"
	default:
		return "default"
	}
}

var jsKeys = buildJsKeyTable()

func buildJsKeyTable() map[string]Key {
	keys := map[string]Key{
		"Escape":     KeyEscape,
		"Enter":      KeyEnter,
		"Tab":        KeyTab,
		"Backspace":  KeyBackspace,
		"Delete":     KeyDelete,
		" ":          KeySpace,
		"ArrowLeft":  KeyLeft,
		"ArrowRight": KeyRight,
		"ArrowUp":    KeyUp,
		"ArrowDown":  KeyDown,
		"Home":       KeyHome,
		"End":        KeyEnd,
		"PageUp":     KeyPageUp,
		"PageDown":   KeyPageDown,
	}

	for i := 0; i < 26; i++ {
		keys[string(rune('a'+i))] = KeyA + Key(i)
		keys[string(rune('A'+i))] = KeyA + Key(i)
	}

	for i := 0; i < 10; i++ {
		keys[string(rune('0'+i))] = KeyDigit0 + Key(i)
	}

	for i := 0; i < 12; i++ {
		keys["F"+strconv.Itoa(i+1)] = KeyF1 + Key(i)
	}

	return keys
}
