package debugui

import (
	"fmt"
	"image"
	"math"
	"slices"
	"unsafe"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/glm"
	"github.com/oliverbestmann/seed/pulse"
)

// FontTextureID is the id of the font atlas texture.
const FontTextureID TextureID = 1

const defaultWindowRounding = 7

// used if the input carries no frame time, imgui requires a positive value
const defaultDeltaTime = 1.0 / 60.0

// Context runs an imgui frame per call to Run. Every Context owns its own
// imgui context, which is made current for each frame.
type Context struct {
	imgui *imgui.Context
	io    imgui.IO

	zoom float32

	// applied to all windows of a frame
	windowRounding float32

	fontUploaded bool
	frameCount   uint64
}

func NewContext() *Context {
	imguiCtx := imgui.CreateContext(nil)
	if err := imguiCtx.SetCurrent(); err != nil {
		panic(fmt.Errorf("activate imgui context: %w", err))
	}

	io := imgui.CurrentIO()

	// window positions live for the lifetime of the process
	io.SetIniFilename("")

	io.Fonts().AddFontDefault()

	ctx := &Context{imgui: imguiCtx, io: io, zoom: 1, windowRounding: defaultWindowRounding}
	ctx.mapKeys()

	return ctx
}

// Zoom returns the factor applied to the native pixels per point.
func (c *Context) Zoom() float32 {
	return c.zoom
}

func (c *Context) SetZoom(zoom float32) {
	c.zoom = max(0.25, zoom)
}

func (c *Context) WindowRounding() float32 {
	return c.windowRounding
}

func (c *Context) SetWindowRounding(rounding float32) {
	c.windowRounding = max(0, rounding)
}

func (c *Context) FrameCount() uint64 {
	return c.frameCount
}

// Run applies the input, runs the ui and renders the frame.
func (c *Context) Run(input RawInput, ui func(ctx *Context)) FullOutput {
	if err := c.imgui.SetCurrent(); err != nil {
		panic(fmt.Errorf("activate imgui context: %w", err))
	}

	var output FullOutput

	if !c.fontUploaded {
		output.Textures = append(output.Textures, c.fontTexture())
		c.fontUploaded = true
	}

	ppp := c.pixelsPerPoint(input)
	c.applyInput(input, ppp)

	imgui.NewFrame()

	imgui.PushStyleVarFloat(imgui.StyleVarWindowRounding, c.windowRounding)

	if ui != nil {
		ui(c)
	}

	imgui.PopStyleVar()

	// the cursor is only valid before rendering
	output.Platform.Cursor = currentCursor()

	imgui.Render()

	output.DrawData = imgui.RenderedDrawData()
	output.PixelsPerPoint = ppp
	output.Platform.WantsPointer = c.io.WantCaptureMouse()
	output.Platform.WantsKeyboard = c.io.WantCaptureKeyboard()

	c.frameCount++

	return output
}

// Tessellate copies the draw lists of the output into meshes. The meshes stay
// valid after the next frame started.
func (c *Context) Tessellate(output FullOutput) []Mesh {
	data := output.DrawData
	if !data.Valid() {
		return nil
	}

	layout := CurrentVertexLayout()

	var meshes []Mesh

	for _, list := range data.CommandLists() {
		vertexPtr, vertexSize := list.VertexBuffer()
		indexPtr, indexSize := list.IndexBuffer()

		mesh := Mesh{
			Vertices:    copyBytes(vertexPtr, vertexSize),
			VertexCount: uint32(vertexSize / layout.Stride),
			Indices:     copyBytes(indexPtr, indexSize),
		}

		var offset uint32
		for _, cmd := range list.Commands() {
			count := uint32(cmd.ElementCount())

			if !cmd.HasUserCallback() && count > 0 {
				clip := cmd.ClipRect()

				mesh.Commands = append(mesh.Commands, DrawCommand{
					Clip:       pulse.RectangleFromPoints(glm.Vec2f{clip.X, clip.Y}, glm.Vec2f{clip.Z, clip.W}),
					Texture:    cmd.TextureID(),
					FirstIndex: offset,
					IndexCount: count,
				})
			}

			offset += count
		}

		if len(mesh.Commands) > 0 {
			meshes = append(meshes, mesh)
		}
	}

	return meshes
}

// Release destroys the imgui context.
func (c *Context) Release() {
	if c.imgui != nil {
		c.imgui.Destroy()
		c.imgui = nil
	}
}

func (c *Context) pixelsPerPoint(input RawInput) float32 {
	native := input.NativePixelsPerPoint
	if native <= 0 {
		native = 1
	}

	return native * c.zoom
}

func (c *Context) applyInput(input RawInput, ppp float32) {
	io := c.io

	io.SetDisplaySize(imgui.Vec2{
		X: float32(input.ScreenSize.Width) / ppp,
		Y: float32(input.ScreenSize.Height) / ppp,
	})

	deltaTime := input.DeltaTime
	if deltaTime <= 0 {
		deltaTime = defaultDeltaTime
	}

	io.SetDeltaTime(deltaTime)

	if input.MouseInside && input.Focused {
		pos := input.MousePos.MulScalar(1 / ppp)
		io.SetMousePosition(imgui.Vec2{X: pos[0], Y: pos[1]})
	} else {
		// imgui uses this value for "no mouse available"
		io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for idx, down := range input.MouseDown {
		io.SetMouseButtonDown(idx, down)
	}

	io.AddMouseWheelDelta(input.Wheel[0], input.Wheel[1])

	for _, key := range input.KeysPressed {
		io.KeyPress(int(key))
	}

	for _, key := range input.KeysReleased {
		io.KeyRelease(int(key))
	}

	if input.Text != "" {
		io.AddInputCharacters(input.Text)
	}
}

// fontTexture builds the font atlas and assigns FontTextureID to it.
func (c *Context) fontTexture() TextureSet {
	fonts := c.io.Fonts()

	atlas := fonts.TextureDataRGBA32()

	img := image.NewRGBA(image.Rect(0, 0, atlas.Width, atlas.Height))
	copy(img.Pix, unsafe.Slice((*byte)(atlas.Pixels), len(img.Pix)))

	fonts.SetTextureID(FontTextureID)

	return TextureSet{ID: FontTextureID, Delta: ImageDelta{Image: img}}
}

func (c *Context) mapKeys() {
	keys := []struct {
		imgui int
		key   glimpse.Key
	}{
		{imgui.KeyTab, glimpse.KeyTab},
		{imgui.KeyLeftArrow, glimpse.KeyLeft},
		{imgui.KeyRightArrow, glimpse.KeyRight},
		{imgui.KeyUpArrow, glimpse.KeyUp},
		{imgui.KeyDownArrow, glimpse.KeyDown},
		{imgui.KeyPageUp, glimpse.KeyPageUp},
		{imgui.KeyPageDown, glimpse.KeyPageDown},
		{imgui.KeyHome, glimpse.KeyHome},
		{imgui.KeyEnd, glimpse.KeyEnd},
		{imgui.KeyDelete, glimpse.KeyDelete},
		{imgui.KeyBackspace, glimpse.KeyBackspace},
		{imgui.KeySpace, glimpse.KeySpace},
		{imgui.KeyEnter, glimpse.KeyEnter},
		{imgui.KeyEscape, glimpse.KeyEscape},
		{imgui.KeyA, glimpse.KeyA},
		{imgui.KeyC, glimpse.KeyC},
		{imgui.KeyV, glimpse.KeyV},
		{imgui.KeyX, glimpse.KeyX},
		{imgui.KeyY, glimpse.KeyY},
		{imgui.KeyZ, glimpse.KeyZ},
	}

	for _, mapping := range keys {
		c.io.KeyMap(mapping.imgui, int(mapping.key))
	}
}

func currentCursor() glimpse.Cursor {
	switch imgui.MouseCursor() {
	case imgui.MouseCursorTextInput:
		return glimpse.CursorText
	case imgui.MouseCursorHand:
		return glimpse.CursorPointingHand
	case imgui.MouseCursorResizeEW:
		return glimpse.CursorResizeHorizontal
	case imgui.MouseCursorResizeNS:
		return glimpse.CursorResizeVertical
	case imgui.MouseCursorResizeAll, imgui.MouseCursorResizeNESW, imgui.MouseCursorResizeNWSE:
		return glimpse.CursorCrosshair
	default:
		return glimpse.CursorDefault
	}
}

func copyBytes(ptr unsafe.Pointer, size int) []byte {
	if ptr == nil || size <= 0 {
		return nil
	}

	return slices.Clone(unsafe.Slice((*byte)(ptr), size))
}
