package debugui

import (
	"encoding/binary"
	"testing"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/glm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	ctx := NewContext()
	t.Cleanup(ctx.Release)
	return ctx
}

func frameInput(mouse glm.Vec2f, pressed bool) RawInput {
	return RawInput{
		ScreenSize:           glimpse.Size{Width: 800, Height: 600},
		NativePixelsPerPoint: 1,
		DeltaTime:            1.0 / 60.0,
		Focused:              true,
		MousePos:             mouse,
		MouseInside:          true,
		MouseDown:            [3]bool{pressed, false, false},
	}
}

// fixedWindow places a window of a known size in the top left corner.
func fixedWindow(title string, add func()) func(ctx *Context) {
	return func(ctx *Context) {
		imgui.SetNextWindowPos(imgui.Vec2{})
		imgui.SetNextWindowSize(imgui.Vec2{X: 200, Y: 120})

		if imgui.Begin(title) {
			add()
		}

		imgui.End()
	}
}

func indexAt(mesh Mesh, layout VertexLayout, idx uint32) uint32 {
	offset := int(idx) * layout.IndexSize
	if layout.IndexSize == 4 {
		return binary.LittleEndian.Uint32(mesh.Indices[offset:])
	}

	return uint32(binary.LittleEndian.Uint16(mesh.Indices[offset:]))
}

func TestFontTextureOnFirstFrameOnly(t *testing.T) {
	ctx := newTestContext(t)

	first := ctx.Run(frameInput(glm.Vec2f{}, false), nil)
	require.Len(t, first.Textures, 1)

	font := first.Textures[0]
	assert.Equal(t, FontTextureID, font.ID)
	assert.Positive(t, font.Delta.Image.Rect.Dx())
	assert.Positive(t, font.Delta.Image.Rect.Dy())

	second := ctx.Run(frameInput(glm.Vec2f{}, false), nil)
	assert.Empty(t, second.Textures)

	assert.Equal(t, uint64(2), ctx.FrameCount())
}

func TestTessellateWindow(t *testing.T) {
	ctx := newTestContext(t)

	ui := fixedWindow("Window", func() {
		imgui.Text("hello")
	})

	ctx.Run(frameInput(glm.Vec2f{}, false), ui)
	output := ctx.Run(frameInput(glm.Vec2f{}, false), ui)

	meshes := ctx.Tessellate(output)
	require.NotEmpty(t, meshes)

	layout := CurrentVertexLayout()

	for _, mesh := range meshes {
		require.NotEmpty(t, mesh.Commands)
		assert.Equal(t, int(mesh.VertexCount)*layout.Stride, len(mesh.Vertices))

		for _, cmd := range mesh.Commands {
			assert.Equal(t, FontTextureID, cmd.Texture)
			assert.LessOrEqual(t, int(cmd.FirstIndex+cmd.IndexCount)*layout.IndexSize, len(mesh.Indices))

			assert.False(t, cmd.Clip.IsEmpty())
			assert.LessOrEqual(t, cmd.Clip.Max[0], float32(800))
			assert.LessOrEqual(t, cmd.Clip.Max[1], float32(600))

			for idx := cmd.FirstIndex; idx < cmd.FirstIndex+cmd.IndexCount; idx++ {
				assert.Less(t, indexAt(mesh, layout, idx), mesh.VertexCount)
			}
		}
	}
}

func TestTessellateWithoutFrame(t *testing.T) {
	ctx := newTestContext(t)
	assert.Empty(t, ctx.Tessellate(FullOutput{}))
}

func TestButtonClick(t *testing.T) {
	ctx := newTestContext(t)

	var clicks int
	ui := fixedWindow("Buttons", func() {
		if imgui.Button("Click me") {
			clicks++
		}
	})

	// the button starts below the title bar, inside the window padding
	inside := glm.Vec2f{20, 35}

	ctx.Run(frameInput(inside, false), ui)
	ctx.Run(frameInput(inside, false), ui)
	ctx.Run(frameInput(inside, true), ui)
	assert.Zero(t, clicks, "a button triggers on release")

	output := ctx.Run(frameInput(inside, false), ui)
	assert.Equal(t, 1, clicks)
	assert.True(t, output.Platform.WantsPointer)
}

func TestPressOutsideDoesNotClick(t *testing.T) {
	ctx := newTestContext(t)

	var clicks int
	ui := fixedWindow("Buttons", func() {
		if imgui.Button("Click me") {
			clicks++
		}
	})

	outside := glm.Vec2f{600, 500}

	for _, pressed := range []bool{false, false, true, false} {
		output := ctx.Run(frameInput(outside, pressed), ui)
		assert.False(t, output.Platform.WantsPointer)
	}

	assert.Zero(t, clicks)
}

func TestCheckboxToggles(t *testing.T) {
	ctx := newTestContext(t)

	var checked bool
	ui := fixedWindow("Checkbox", func() {
		imgui.Checkbox("Enabled", &checked)
	})

	box := glm.Vec2f{15, 35}

	for _, pressed := range []bool{false, false, true, false} {
		ctx.Run(frameInput(box, pressed), ui)
	}

	assert.True(t, checked)
}

func TestTextInputCursor(t *testing.T) {
	ctx := newTestContext(t)

	text := "some text"
	ui := fixedWindow("Input", func() {
		imgui.InputText("Text", &text)
	})

	field := glm.Vec2f{20, 35}

	ctx.Run(frameInput(field, false), ui)
	ctx.Run(frameInput(field, false), ui)
	output := ctx.Run(frameInput(field, false), ui)

	assert.Equal(t, glimpse.CursorText, output.Platform.Cursor)

	output = ctx.Run(frameInput(glm.Vec2f{600, 500}, false), ui)
	assert.Equal(t, glimpse.CursorDefault, output.Platform.Cursor)
}

func TestZoomScalesPixelsPerPoint(t *testing.T) {
	ctx := newTestContext(t)

	ctx.SetZoom(2)

	input := frameInput(glm.Vec2f{}, false)
	input.NativePixelsPerPoint = 1.5

	ui := fixedWindow("Zoom", func() {
		imgui.Text("zoomed")
	})

	ctx.Run(input, ui)
	output := ctx.Run(input, ui)
	assert.Equal(t, float32(3), output.PixelsPerPoint)

	// the screen is 800x600 pixels, so all clipping happens within its size in points
	for _, mesh := range ctx.Tessellate(output) {
		for _, cmd := range mesh.Commands {
			assert.LessOrEqual(t, cmd.Clip.Max[0], float32(800)/3+0.5)
			assert.LessOrEqual(t, cmd.Clip.Max[1], float32(600)/3+0.5)
		}
	}

	ctx.SetZoom(0)
	assert.Equal(t, float32(0.25), ctx.Zoom())
}

func TestWindowRounding(t *testing.T) {
	ctx := newTestContext(t)
	assert.Equal(t, float32(defaultWindowRounding), ctx.WindowRounding())

	ctx.SetWindowRounding(2)
	assert.Equal(t, float32(2), ctx.WindowRounding())

	ctx.SetWindowRounding(-1)
	assert.Zero(t, ctx.WindowRounding())
}

func TestVertexLayoutMatchesPipeline(t *testing.T) {
	layout := CurrentVertexLayout()

	// pos and uv as two floats each, followed by a packed color
	assert.Equal(t, 20, layout.Stride)
	assert.Equal(t, 0, layout.PosOffset)
	assert.Equal(t, 8, layout.UVOffset)
	assert.Equal(t, 16, layout.ColorOffset)
	assert.Contains(t, []int{2, 4}, layout.IndexSize)
}
