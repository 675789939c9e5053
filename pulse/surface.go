package pulse

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/oliverbestmann/webgpu/wgpu"
)

var srgbFormats = []wgpu.TextureFormat{
	wgpu.TextureFormatRGBA8UnormSrgb,
	wgpu.TextureFormatBGRA8UnormSrgb,
}

// IsSRGB reports whether the format applies the srgb transfer function on write.
func IsSRGB(format wgpu.TextureFormat) bool {
	return slices.Contains(srgbFormats, format)
}

// ChooseConfiguration derives a surface configuration from the capabilities
// of a surface. It takes the first srgb format, falling back to the first
// format offered, and the first present and alpha mode.
func ChooseConfiguration(caps wgpu.SurfaceCapabilities, width, height uint32) (wgpu.SurfaceConfiguration, error) {
	if len(caps.Formats) == 0 {
		return wgpu.SurfaceConfiguration{}, ErrNoSurfaceFormat
	}

	format := caps.Formats[0]
	if idx := slices.IndexFunc(caps.Formats, IsSRGB); idx >= 0 {
		format = caps.Formats[idx]
	}

	config := wgpu.SurfaceConfiguration{
		Usage:  wgpu.TextureUsageRenderAttachment,
		Format: format,
		Width:  width,
		Height: height,

		DesiredMaximumFrameLatency: 2,
	}

	if len(caps.PresentModes) > 0 {
		config.PresentMode = caps.PresentModes[0]
	}

	if len(caps.AlphaModes) > 0 {
		config.AlphaMode = caps.AlphaModes[0]
	}

	return config, nil
}

// Surface keeps the presentable surface of a Context configured
// for the current window size.
type Surface struct {
	config wgpu.SurfaceConfiguration

	// applies the configuration to the platform surface
	configure func(config *wgpu.SurfaceConfiguration)
}

// NewSurface derives the initial configuration for the given window size.
// The surface is configured by the first call to Reconfigure.
func NewSurface(ctx *Context, width, height uint32) (*Surface, error) {
	caps := ctx.Surface.GetCapabilities(ctx.Adapter)

	slog.Info("Available surface formats", slog.Any("formats", caps.Formats))

	config, err := ChooseConfiguration(caps, width, height)
	if err != nil {
		return nil, fmt.Errorf("choose surface configuration: %w", err)
	}

	slog.Info("Surface configuration",
		slog.Any("format", config.Format),
		slog.Any("presentMode", config.PresentMode),
		slog.Any("alphaMode", config.AlphaMode),
	)

	configure := func(config *wgpu.SurfaceConfiguration) {
		ctx.Surface.Configure(ctx.Device, config)
	}

	return &Surface{config: config, configure: configure}, nil
}

// Reconfigure applies the given size to the surface. A zero width or height,
// as reported for a minimized window, leaves the surface untouched and
// returns false.
func (s *Surface) Reconfigure(width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}

	slog.Debug("Configure surface",
		slog.Int("width", int(width)),
		slog.Int("height", int(height)),
	)

	s.config.Width = width
	s.config.Height = height
	s.configure(&s.config)

	return true
}

// RecoverFromLoss re-applies the last configuration, after the surface
// was reported as lost or outdated.
func (s *Surface) RecoverFromLoss() {
	s.Reconfigure(s.config.Width, s.config.Height)
}

// Size returns the last size the surface was configured with.
func (s *Surface) Size() (uint32, uint32) {
	return s.config.Width, s.config.Height
}

func (s *Surface) Format() wgpu.TextureFormat {
	return s.config.Format
}
