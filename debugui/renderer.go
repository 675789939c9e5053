package debugui

import (
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/oliverbestmann/seed/glm"
	"github.com/oliverbestmann/seed/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
)

//go:embed debugui.wgsl
var shaderCode string

type uniforms struct {
	ScreenSize [2]float32
	_          [2]float32
}

type pipelineConfig struct {
	TargetFormat wgpu.TextureFormat
	Layout       *wgpu.PipelineLayout
	Vertex       VertexLayout
}

func (conf pipelineConfig) Specialize(dev *wgpu.Device) (*wgpu.RenderPipeline, error) {
	slog.Info("Create RenderPipeline for debugui", slog.Any("format", conf.TargetFormat))

	shader, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:      "DebugUI.Shader",
		WGSLSource: &wgpu.ShaderSourceWGSL{Code: shaderCode},
	})
	if err != nil {
		return nil, fmt.Errorf("compile debugui shader: %w", err)
	}

	defer shader.Release()

	fragmentEntryPoint := "fs_main_gamma"
	if pulse.IsSRGB(conf.TargetFormat) {
		fragmentEntryPoint = "fs_main_linear"
	}

	desc := &wgpu.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("DebugUI.%s", conf.TargetFormat),
		Layout: conf.Layout,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: uint64(conf.Vertex.Stride),
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{
							// position
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(conf.Vertex.PosOffset),
							ShaderLocation: 0,
						},
						{
							// uv
							Format:         wgpu.VertexFormatFloat32x2,
							Offset:         uint64(conf.Vertex.UVOffset),
							ShaderLocation: 1,
						},
						{
							// packed srgb color
							Format:         wgpu.VertexFormatUnorm8x4,
							Offset:         uint64(conf.Vertex.ColorOffset),
							ShaderLocation: 2,
						},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format:    conf.TargetFormat,
					Blend:     &wgpu.BlendStateAlphaBlending,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}

	pipeline, err := dev.CreateRenderPipeline(desc)
	if err != nil {
		return nil, fmt.Errorf("build debugui pipeline: %w", err)
	}

	return pipeline, nil
}

type drawCall struct {
	clip       Rect
	texture    TextureID
	firstIndex uint32
	indexCount uint32
	baseVertex int32
}

type uploadedTexture struct {
	texture   *pulse.Texture
	bindGroup *wgpu.BindGroup
}

// Renderer draws the meshes of a Context into a render pass.
type Renderer struct {
	ctx    *pulse.Context
	layout VertexLayout

	bindGroupLayout *wgpu.BindGroupLayout
	pipelineLayout  *wgpu.PipelineLayout
	pipelines       *pulse.PipelineCache[pipelineConfig]

	uniforms *wgpu.Buffer
	vertices *wgpu.Buffer
	indices  *wgpu.Buffer

	textures map[TextureID]uploadedTexture

	draws []drawCall
}

func NewRenderer(ctx *pulse.Context, format wgpu.TextureFormat) (*Renderer, error) {
	bindGroupLayout, err := ctx.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "DebugUI.BindGroupLayout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: wgpu.ShaderStageFragment,
				Sampler:    wgpu.SamplerBindingLayout{Type: wgpu.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create bind group layout: %w", err)
	}

	pipelineLayout, err := ctx.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "DebugUI.PipelineLayout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		bindGroupLayout.Release()
		return nil, fmt.Errorf("create pipeline layout: %w", err)
	}

	buf, err := ctx.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "DebugUI.Uniforms",
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		Size:  uint64(unsafe.Sizeof(uniforms{})),
	})
	if err != nil {
		pipelineLayout.Release()
		bindGroupLayout.Release()
		return nil, fmt.Errorf("create uniform buffer: %w", err)
	}

	r := &Renderer{
		ctx:             ctx,
		layout:          CurrentVertexLayout(),
		bindGroupLayout: bindGroupLayout,
		pipelineLayout:  pipelineLayout,
		pipelines:       pulse.NewPipelineCache[pipelineConfig](ctx, 4),
		uniforms:        buf,
		textures:        map[TextureID]uploadedTexture{},
	}

	// build the pipeline of the surface format now, so shader errors show up at startup
	if _, err := r.pipelines.Get(r.pipelineConfig(format)); err != nil {
		r.Release()
		return nil, fmt.Errorf("create pipeline: %w", err)
	}

	return r, nil
}

func (r *Renderer) pipelineConfig(format wgpu.TextureFormat) pipelineConfig {
	return pipelineConfig{
		TargetFormat: format,
		Layout:       r.pipelineLayout,
		Vertex:       r.layout,
	}
}

// UpdateTexture uploads the image of the delta. A texture of the same size is
// written in place, otherwise it is replaced.
func (r *Renderer) UpdateTexture(id TextureID, delta ImageDelta) error {
	img := delta.Image
	width, height := uint32(img.Rect.Dx()), uint32(img.Rect.Dy())

	if current, ok := r.textures[id]; ok {
		if current.texture.Width() == width && current.texture.Height() == height {
			return current.texture.WriteImage(r.ctx, 0, 0, img)
		}

		r.FreeTexture(id)
	}

	texture, err := pulse.NewTextureFromImage(r.ctx, fmt.Sprintf("DebugUI.Texture%d", id), img)
	if err != nil {
		return err
	}

	sampler, err := r.ctx.CachedSampler(wgpu.SamplerDescriptor{
		Label:         "DebugUI.Sampler",
		AddressModeU:  wgpu.AddressModeClampToEdge,
		AddressModeV:  wgpu.AddressModeClampToEdge,
		AddressModeW:  wgpu.AddressModeClampToEdge,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   1,
		MaxAnisotropy: 1,
	})
	if err != nil {
		texture.Release()
		return err
	}

	bindGroup, err := r.ctx.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  fmt.Sprintf("DebugUI.BindGroup%d", id),
		Layout: r.bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  r.uniforms,
				Size:    wgpu.WholeSize,
			},
			{
				Binding:     1,
				TextureView: texture.View(),
			},
			{
				Binding: 2,
				Sampler: sampler,
			},
		},
	})
	if err != nil {
		texture.Release()
		return fmt.Errorf("create bind group: %w", err)
	}

	r.textures[id] = uploadedTexture{texture: texture, bindGroup: bindGroup}

	return nil
}

// FreeTexture releases the texture. Unknown ids are ignored.
func (r *Renderer) FreeTexture(id TextureID) {
	current, ok := r.textures[id]
	if !ok {
		return
	}

	current.bindGroup.Release()
	current.texture.Release()

	delete(r.textures, id)
}

// UpdateBuffers uploads the vertices and indices of all meshes and the
// screen size for the next call to Render.
func (r *Renderer) UpdateBuffers(meshes []Mesh, screen pulse.ScreenDescriptor) error {
	width, height := screen.SizeInPoints()

	err := r.ctx.WriteBuffer(r.uniforms, 0, wgpu.ToBytes([]uniforms{{ScreenSize: [2]float32{width, height}}}))
	if err != nil {
		return fmt.Errorf("update uniform buffer: %w", err)
	}

	var vertices []byte
	var indices []byte

	r.draws = r.draws[:0]

	for _, mesh := range meshes {
		baseVertex := int32(len(vertices) / r.layout.Stride)
		baseIndex := uint32(len(indices) / r.layout.IndexSize)

		for _, cmd := range mesh.Commands {
			r.draws = append(r.draws, drawCall{
				clip:       cmd.Clip,
				texture:    cmd.Texture,
				firstIndex: baseIndex + cmd.FirstIndex,
				indexCount: cmd.IndexCount,
				baseVertex: baseVertex,
			})
		}

		vertices = append(vertices, mesh.Vertices...)
		indices = append(indices, mesh.Indices...)
	}

	if len(indices) == 0 {
		return nil
	}

	r.vertices, err = r.ensureBuffer(r.vertices, "DebugUI.Vertices", wgpu.BufferUsageVertex, alignTo4(vertices))
	if err != nil {
		return err
	}

	r.indices, err = r.ensureBuffer(r.indices, "DebugUI.Indices", wgpu.BufferUsageIndex, alignTo4(indices))
	if err != nil {
		return err
	}

	return nil
}

// ensureBuffer writes the data into the buffer, growing the buffer if required.
func (r *Renderer) ensureBuffer(buf *wgpu.Buffer, label string, usage wgpu.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	size := uint64(len(data))

	if buf == nil || buf.GetSize() < size {
		if buf != nil {
			buf.Release()
		}

		var err error
		buf, err = r.ctx.CreateBuffer(&wgpu.BufferDescriptor{
			Label: label,
			Usage: usage | wgpu.BufferUsageCopyDst,
			Size:  nextPowerOfTwo(size),
		})
		if err != nil {
			return nil, fmt.Errorf("create buffer %q: %w", label, err)
		}
	}

	if err := r.ctx.WriteBuffer(buf, 0, data); err != nil {
		return buf, fmt.Errorf("write buffer %q: %w", label, err)
	}

	return buf, nil
}

// Render records the draw commands of the last call to UpdateBuffers into the pass.
func (r *Renderer) Render(pass *wgpu.RenderPassEncoder, target pulse.RenderTarget, screen pulse.ScreenDescriptor) error {
	if r.indices == nil || len(r.draws) == 0 {
		return nil
	}

	pipeline, err := r.pipelines.Get(r.pipelineConfig(target.Format))
	if err != nil {
		return fmt.Errorf("get pipeline: %w", err)
	}

	pass.SetPipeline(pipeline)
	pass.SetVertexBuffer(0, r.vertices, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(r.indices, indexFormatOf(r.layout.IndexSize), 0, wgpu.WholeSize)

	for _, draw := range r.draws {
		if draw.indexCount == 0 {
			continue
		}

		x, y, w, h, ok := ScissorRect(draw.clip, screen)
		if !ok {
			continue
		}

		texture, ok := r.textures[draw.texture]
		if !ok {
			slog.Warn("Skip mesh with unknown texture", slog.Int("texture", int(draw.texture)))
			continue
		}

		pass.SetBindGroup(0, texture.bindGroup, nil)
		pass.SetScissorRect(x, y, w, h)
		pass.DrawIndexed(draw.indexCount, 1, draw.firstIndex, draw.baseVertex, 0)
	}

	return nil
}

// Release releases all gpu resources of the renderer.
func (r *Renderer) Release() {
	for id := range r.textures {
		r.FreeTexture(id)
	}

	r.pipelines.Purge()

	for _, buf := range []*wgpu.Buffer{r.vertices, r.indices, r.uniforms} {
		if buf != nil {
			buf.Release()
		}
	}

	r.vertices, r.indices, r.uniforms = nil, nil, nil

	r.pipelineLayout.Release()
	r.bindGroupLayout.Release()
}

// ScissorRect converts a clip rectangle in points into a scissor rectangle
// in pixels, limited to the screen.
func ScissorRect(clip Rect, screen pulse.ScreenDescriptor) (x, y, w, h uint32, ok bool) {
	ppp := screen.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}

	screenRect := pulse.RectangleFromXYWH(0, 0, float32(screen.SizeInPixels[0]), float32(screen.SizeInPixels[1]))

	pixels := pulse.RectangleFromPoints(
		roundVec(clip.Min.MulScalar(ppp)),
		roundVec(clip.Max.MulScalar(ppp)),
	)

	visible := pixels.Intersect(screenRect)
	if visible.IsEmpty() {
		return 0, 0, 0, 0, false
	}

	return uint32(visible.Min[0]), uint32(visible.Min[1]), uint32(visible.Width()), uint32(visible.Height()), true
}

func roundVec(vec glm.Vec2f) glm.Vec2f {
	return glm.Vec2f{
		float32(math.Round(float64(vec[0]))),
		float32(math.Round(float64(vec[1]))),
	}
}

func indexFormatOf(size int) wgpu.IndexFormat {
	if size == 4 {
		return wgpu.IndexFormatUint32
	}

	return wgpu.IndexFormatUint16
}

// alignTo4 pads the data to the copy alignment of wgpu buffers.
func alignTo4(data []byte) []byte {
	for len(data)%4 != 0 {
		data = append(data, 0)
	}

	return data
}

func nextPowerOfTwo(value uint64) uint64 {
	size := uint64(1024)
	for size < value {
		size *= 2
	}

	return size
}
