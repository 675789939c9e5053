package pulse

import (
	"fmt"
	"image"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Texture wraps a wgpu.Texture and an identity wgpu.TextureView.
type Texture struct {
	texture     *wgpu.Texture
	textureView *wgpu.TextureView

	width  uint32
	height uint32
}

type NewTextureOptions struct {
	Format wgpu.TextureFormat
	Width  uint32
	Height uint32
	Label  string
}

// NewTexture creates a texture that can be sampled and written to.
func NewTexture(ctx *Context, opts NewTextureOptions) (*Texture, error) {
	desc := &wgpu.TextureDescriptor{
		Label:         opts.Label,
		Format:        opts.Format,
		SampleCount:   1,
		MipLevelCount: 1,

		Dimension: wgpu.TextureDimension2D,
		Size: wgpu.Extent3D{
			Width:              opts.Width,
			Height:             opts.Height,
			DepthOrArrayLayers: 1,
		},

		Usage: wgpu.TextureUsageTextureBinding | wgpu.TextureUsageCopyDst,
	}

	texture, err := ctx.Device.CreateTexture(desc)
	if err != nil {
		return nil, err
	}

	// now create a default texture view
	textureView, err := texture.CreateView(nil)
	if err != nil {
		texture.Release()

		return nil, err
	}

	t := &Texture{
		texture:     texture,
		textureView: textureView,
		width:       opts.Width,
		height:      opts.Height,
	}

	return t, nil
}

// NewTextureFromImage uploads the image into a new rgba texture.
func NewTextureFromImage(ctx *Context, label string, img *image.RGBA) (*Texture, error) {
	t, err := NewTexture(ctx, NewTextureOptions{
		Format: wgpu.TextureFormatRGBA8Unorm,
		Width:  uint32(img.Rect.Dx()),
		Height: uint32(img.Rect.Dy()),
		Label:  label,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", label, err)
	}

	if err := t.WriteImage(ctx, 0, 0, img); err != nil {
		t.Release()
		return nil, err
	}

	return t, nil
}

func (t *Texture) Width() uint32 {
	return t.width
}

func (t *Texture) Height() uint32 {
	return t.height
}

func (t *Texture) View() *wgpu.TextureView {
	return t.textureView
}

// Release releases the texture view and the texture. You must be sure
// to not use the texture after calling release.
func (t *Texture) Release() {
	t.textureView.Release()
	t.texture.Release()
}

// WriteImage copies the image into the texture, with its top left corner at x, y.
func (t *Texture) WriteImage(ctx *Context, x, y uint32, img *image.RGBA) error {
	width, height := uint32(img.Rect.Dx()), uint32(img.Rect.Dy())

	region := RectangleFromXYWH(x, y, width, height)
	bounds := RectangleFromXYWH(0, 0, t.width, t.height)

	// fail if not in rect
	if !bounds.Contains(region) {
		return fmt.Errorf("target rect %s not in texture region %s", region, bounds)
	}

	layout := &wgpu.TexelCopyBufferLayout{
		Offset:       0,
		BytesPerRow:  uint32(img.Stride),
		RowsPerImage: height,
	}

	size := &wgpu.Extent3D{
		Width:              width,
		Height:             height,
		DepthOrArrayLayers: 1,
	}

	dest := &wgpu.TexelCopyTextureInfo{
		Texture:  t.texture,
		MipLevel: 0,
		Origin: wgpu.Origin3D{
			X: x,
			Y: y,
		},
		Aspect: wgpu.TextureAspectAll,
	}

	// the pixels of a sub image start at its min point
	pixels := img.Pix[img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y):]

	// send data to the gpu
	err := ctx.WriteTexture(dest, pixels, layout, size)
	if err != nil {
		return fmt.Errorf("copy image data to texture: %w", err)
	}

	return nil
}
