package debugui

import (
	"image"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/glm"
	"github.com/oliverbestmann/seed/pulse"
)

// Rect is a rectangle in logical points.
type Rect = pulse.Rectangle2f

// TextureID identifies a texture referenced by draw commands.
type TextureID = imgui.TextureID

// ImageDelta replaces the full content of a texture.
type ImageDelta struct {
	Image *image.RGBA
}

type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// RawInput is the input of a single frame, collected by State.
type RawInput struct {
	// size of the window in physical pixels
	ScreenSize glimpse.Size

	// physical pixels per logical point as reported by the window
	NativePixelsPerPoint float32

	// seconds since the previous frame
	DeltaTime float32

	Focused bool

	// cursor position in physical pixels, only valid if MouseInside is set
	MousePos    glm.Vec2f
	MouseInside bool

	// left, right and middle button
	MouseDown [3]bool

	// wheel movement since the previous frame
	Wheel glm.Vec2f

	KeysPressed  []glimpse.Key
	KeysReleased []glimpse.Key

	// text typed since the previous frame
	Text string
}

type PlatformOutput struct {
	Cursor glimpse.Cursor

	// the ui wants exclusive use of mouse or keyboard input
	WantsPointer  bool
	WantsKeyboard bool
}

// FullOutput is the result of Context.Run.
type FullOutput struct {
	// valid until the next call to Context.Run
	DrawData imgui.DrawData

	// textures to upload before rendering this frame
	Textures []TextureSet

	Platform       PlatformOutput
	PixelsPerPoint float32
}

// DrawCommand draws a range of the indices of a Mesh.
type DrawCommand struct {
	// clip rectangle in points
	Clip    Rect
	Texture TextureID

	FirstIndex uint32
	IndexCount uint32
}

// Mesh holds a copy of the buffers of one imgui draw list.
type Mesh struct {
	// packed vertices, see VertexLayout
	Vertices    []byte
	VertexCount uint32

	// packed indices of IndexSize bytes each
	Indices []byte

	Commands []DrawCommand
}

// VertexLayout describes the memory layout of a packed vertex.
type VertexLayout struct {
	Stride      int
	PosOffset   int
	UVOffset    int
	ColorOffset int

	// size of one index in bytes, 2 or 4
	IndexSize int
}

// CurrentVertexLayout returns the vertex and index layout imgui was built with.
func CurrentVertexLayout() VertexLayout {
	stride, pos, uv, col := imgui.VertexBufferLayout()

	return VertexLayout{
		Stride:      stride,
		PosOffset:   pos,
		UVOffset:    uv,
		ColorOffset: col,
		IndexSize:   imgui.IndexBufferLayout(),
	}
}
