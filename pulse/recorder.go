package pulse

import (
	"fmt"

	"github.com/oliverbestmann/webgpu/wgpu"
)

// Recorder records the commands of one frame into a single command encoder.
type Recorder struct {
	*wgpu.CommandEncoder
	label string
}

func NewRecorder(ctx *Context, label string) (*Recorder, error) {
	enc, err := ctx.Device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: label})
	if err != nil {
		return nil, fmt.Errorf("create command encoder %q: %w", label, err)
	}

	return &Recorder{CommandEncoder: enc, label: label}, nil
}

// AddRenderPass begins a render pass, lets configure record into it and ends it.
// The pass is always released, even if configure fails.
func (rec *Recorder) AddRenderPass(desc *wgpu.RenderPassDescriptor, configure func(pass *wgpu.RenderPassEncoder) error) error {
	pass := rec.BeginRenderPass(desc)

	passGuard := NewReleaseGuard(pass)
	defer passGuard.Release()

	if configure != nil {
		if err := configure(pass); err != nil {
			return err
		}
	}

	if err := pass.End(); err != nil {
		return fmt.Errorf("end render pass %q: %w", desc.Label, err)
	}

	// the pass must be released before the encoder is finished
	passGuard.Release()

	return nil
}

// Finish encodes all recorded commands into a command buffer.
func (rec *Recorder) Finish() (*wgpu.CommandBuffer, error) {
	buf, err := rec.CommandEncoder.Finish(&wgpu.CommandBufferDescriptor{Label: rec.label})
	if err != nil {
		return nil, fmt.Errorf("finish command encoder %q: %w", rec.label, err)
	}

	return buf, nil
}

func (rec *Recorder) Release() {
	if rec.CommandEncoder != nil {
		rec.CommandEncoder.Release()
		rec.CommandEncoder = nil
	}
}

type Releaser interface {
	Release()
}

// ReleaseGuard releases its delegate at most once.
type ReleaseGuard struct {
	delegate Releaser
}

func NewReleaseGuard(delegate Releaser) ReleaseGuard {
	return ReleaseGuard{delegate: delegate}
}

func (r *ReleaseGuard) Release() {
	if r.delegate != nil {
		r.delegate.Release()
		r.delegate = nil
	}
}
