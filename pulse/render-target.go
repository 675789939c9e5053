package pulse

import "github.com/oliverbestmann/webgpu/wgpu"

// RenderTarget holds all the information of something that can be rendered to.
// For a frame this is the view of the acquired surface texture.
type RenderTarget struct {
	View *wgpu.TextureView

	// Texture format of View
	Format wgpu.TextureFormat
}

// ScreenDescriptor describes the physical size of a frame and the
// number of physical pixels per logical point.
type ScreenDescriptor struct {
	SizeInPixels   [2]uint32
	PixelsPerPoint float32
}

// SizeInPoints returns the logical size of the screen.
func (s ScreenDescriptor) SizeInPoints() (float32, float32) {
	ppp := s.PixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}

	return float32(s.SizeInPixels[0]) / ppp, float32(s.SizeInPixels[1]) / ppp
}
