package debugui

import (
	"fmt"

	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

// Adapter connects a Context to a window and renders its output
// on top of a frame.
type Adapter struct {
	Context *Context
	State   *State

	renderer *Renderer
}

func NewAdapter(ctx *pulse.Context, format wgpu.TextureFormat, window PlatformWindow) (*Adapter, error) {
	renderer, err := NewRenderer(ctx, format)
	if err != nil {
		return nil, fmt.Errorf("create debugui renderer: %w", err)
	}

	uiCtx := NewContext()
	uiCtx.SetWindowRounding(2)

	adapter := &Adapter{
		Context:  uiCtx,
		State:    NewState(window),
		renderer: renderer,
	}

	return adapter, nil
}

// HandleInput passes a window event to the ui.
func (a *Adapter) HandleInput(ev glimpse.Event) {
	a.State.OnEvent(ev)
}

// Draw runs the ui and records it into a render pass that loads the
// current content of the target.
func (a *Adapter) Draw(rec *pulse.Recorder, target pulse.RenderTarget, screen pulse.ScreenDescriptor, run func(ctx *Context)) error {
	input := a.State.TakeInput()
	input.ScreenSize = glimpse.Size{Width: screen.SizeInPixels[0], Height: screen.SizeInPixels[1]}

	output := a.Context.Run(input, run)

	a.State.HandlePlatformOutput(output.Platform)
	a.State.EndTick()

	for _, set := range output.Textures {
		if err := a.renderer.UpdateTexture(set.ID, set.Delta); err != nil {
			return fmt.Errorf("update texture %d: %w", set.ID, err)
		}
	}

	meshes := a.Context.Tessellate(output)

	screen.PixelsPerPoint = output.PixelsPerPoint

	if err := a.renderer.UpdateBuffers(meshes, screen); err != nil {
		return fmt.Errorf("update buffers: %w", err)
	}

	desc := &wgpu.RenderPassDescriptor{
		Label: "DebugUI",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:    target.View,
				LoadOp:  wgpu.LoadOpLoad,
				StoreOp: wgpu.StoreOpStore,
			},
		},
	}

	return rec.AddRenderPass(desc, func(pass *wgpu.RenderPassEncoder) error {
		return a.renderer.Render(pass, target, screen)
	})
}

func (a *Adapter) Release() {
	a.renderer.Release()
	a.Context.Release()
}

