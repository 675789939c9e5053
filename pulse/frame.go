package pulse

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// ErrNoSurfaceTexture is the cause of a SurfaceError if the surface handed
// out a texture without a native handle.
var ErrNoSurfaceTexture = errors.New("surface returned no texture")

// OverlayFunc records additional commands into the frame after the clear
// pass. It must load, not clear, the existing content of the target.
type OverlayFunc func(rec *Recorder, target RenderTarget, screen ScreenDescriptor) error

// Frame is the texture acquired from the surface for a single frame.
type Frame struct {
	surface *wgpu.Surface
	texture *wgpu.Texture
	view    *wgpu.TextureView

	presented bool
}

// Target creates the view of the frame texture.
func (f *Frame) Target() (RenderTarget, error) {
	if f.view == nil {
		view, err := f.texture.CreateView(nil)
		if err != nil {
			return RenderTarget{}, fmt.Errorf("create view: %w", err)
		}

		f.view = view
	}

	target := RenderTarget{
		View:   f.view,
		Format: f.texture.GetFormat(),
	}

	return target, nil
}

func (f *Frame) Present() {
	f.surface.Present()
	f.presented = true
}

// Release releases the view. The texture itself is only released if the
// frame was not presented.
func (f *Frame) Release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}

	if f.texture != nil && !f.presented {
		f.texture.Release()
	}

	f.texture = nil
}

// Renderer renders one frame per call to RenderFrame: a clear pass followed
// by the overlay, recorded into one command buffer.
type Renderer struct {
	ctx     *Context
	surface *Surface

	clearColor Color

	// acquires the next texture from the surface
	acquire func() (*wgpu.Texture, error)
}

func NewRenderer(ctx *Context, surface *Surface) *Renderer {
	return &Renderer{
		ctx:        ctx,
		surface:    surface,
		clearColor: ColorBackground,
		acquire:    ctx.Surface.GetCurrentTexture,
	}
}

func (r *Renderer) ClearColor() Color {
	return r.clearColor
}

func (r *Renderer) SetClearColor(color Color) {
	r.clearColor = color
}

// RenderFrame acquires the next frame, clears it, lets drawOverlay record
// into the same command encoder, submits and presents. If the frame could
// not be acquired, a *SurfaceError is returned and nothing is recorded.
func (r *Renderer) RenderFrame(scaleFactor float32, drawOverlay OverlayFunc) error {
	texture, err := r.acquireTexture()
	if err != nil {
		return err
	}

	frame := &Frame{surface: r.ctx.Surface, texture: texture}
	defer frame.Release()

	target, err := frame.Target()
	if err != nil {
		return err
	}

	rec, err := NewRecorder(r.ctx, "Render Encoder")
	if err != nil {
		return err
	}

	recGuard := NewReleaseGuard(rec)
	defer recGuard.Release()

	if err := rec.ClearPass(target, r.clearColor); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	width, height := r.surface.Size()

	screen := ScreenDescriptor{
		SizeInPixels:   [2]uint32{width, height},
		PixelsPerPoint: scaleFactor,
	}

	if drawOverlay != nil {
		if err := drawOverlay(rec, target, screen); err != nil {
			return fmt.Errorf("draw overlay: %w", err)
		}
	}

	buf, err := rec.Finish()
	if err != nil {
		return err
	}

	defer buf.Release()

	r.ctx.Submit(buf)

	frame.Present()

	return nil
}

func (r *Renderer) acquireTexture() (*wgpu.Texture, error) {
	texture, err := r.acquire()
	if err != nil {
		return nil, classifyAcquireError(err)
	}

	if !hasHandle(texture) {
		return nil, &SurfaceError{Status: SurfaceOutdated, Err: ErrNoSurfaceTexture}
	}

	return texture, nil
}

// hasHandle reports whether the texture refers to a native texture. The
// binding returns a texture without handle, and without an error, if
// acquiring failed with a status that produced no validation error.
func hasHandle(texture *wgpu.Texture) bool {
	if texture == nil {
		return false
	}

	ref := reflect.ValueOf(texture).Elem().FieldByName("ref")

	switch {
	case !ref.IsValid():
		// unknown layout, trust the binding
		return true
	case ref.Kind() == reflect.Pointer, ref.Kind() == reflect.UnsafePointer:
		return !ref.IsNil()
	default:
		return true
	}
}
