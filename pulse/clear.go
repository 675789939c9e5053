package pulse

import (
	"github.com/oliverbestmann/webgpu/wgpu"
)

// ClearPass records a render pass clearing the full target to the given
// color. There is no depth or stencil attachment.
func (rec *Recorder) ClearPass(target RenderTarget, color Color) error {
	return rec.AddRenderPass(&wgpu.RenderPassDescriptor{
		Label: "Clear",
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       target.View,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: color.ToWGPU(),
			},
		},
	}, nil)
}
