package debugui

import (
	"testing"

	"github.com/oliverbestmann/seed/pulse"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestScissorRect(t *testing.T) {
	screen := pulse.ScreenDescriptor{SizeInPixels: [2]uint32{800, 600}, PixelsPerPoint: 2}

	x, y, w, h, ok := ScissorRect(pulse.RectangleFromXYWH[float32](10, 20, 30, 40), screen)
	assert.True(t, ok)
	assert.Equal(t, []uint32{20, 40, 60, 80}, []uint32{x, y, w, h})
}

func TestScissorRectRoundsToPixels(t *testing.T) {
	screen := pulse.ScreenDescriptor{SizeInPixels: [2]uint32{800, 600}, PixelsPerPoint: 1.5}

	x, y, w, h, ok := ScissorRect(pulse.RectangleFromXYWH[float32](1, 1, 10, 10), screen)
	assert.True(t, ok)

	// 1.5 rounds up to 2, 16.5 rounds up to 17
	assert.Equal(t, []uint32{2, 2, 15, 15}, []uint32{x, y, w, h})
}

func TestScissorRectClampsToScreen(t *testing.T) {
	screen := pulse.ScreenDescriptor{SizeInPixels: [2]uint32{800, 600}, PixelsPerPoint: 1}

	x, y, w, h, ok := ScissorRect(pulse.RectangleFromXYWH[float32](-50, 500, 200, 300), screen)
	assert.True(t, ok)
	assert.Equal(t, []uint32{0, 500, 150, 100}, []uint32{x, y, w, h})
}

func TestScissorRectOutsideScreen(t *testing.T) {
	screen := pulse.ScreenDescriptor{SizeInPixels: [2]uint32{800, 600}, PixelsPerPoint: 1}

	_, _, _, _, ok := ScissorRect(pulse.RectangleFromXYWH[float32](900, 10, 20, 20), screen)
	assert.False(t, ok)

	_, _, _, _, ok = ScissorRect(pulse.RectangleFromXYWH[float32](10, 10, 0, 20), screen)
	assert.False(t, ok)
}

func TestAlignTo4(t *testing.T) {
	assert.Len(t, alignTo4(make([]byte, 6)), 8)
	assert.Len(t, alignTo4(make([]byte, 8)), 8)
	assert.Empty(t, alignTo4(nil))
}

func TestIndexFormatOf(t *testing.T) {
	assert.Equal(t, wgpu.IndexFormatUint16, indexFormatOf(2))
	assert.Equal(t, wgpu.IndexFormatUint32, indexFormatOf(4))
}

func TestNextPowerOfTwo(t *testing.T) {
	assert.Equal(t, uint64(1024), nextPowerOfTwo(10))
	assert.Equal(t, uint64(1024), nextPowerOfTwo(1024))
	assert.Equal(t, uint64(4096), nextPowerOfTwo(3000))
}
