package pulse

import (
	"errors"
	"testing"

	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyAcquireError(t *testing.T) {
	tests := []struct {
		msg    string
		status SurfaceStatus
	}{
		{"Surface timeout", SurfaceTimeout},
		{"out of memory", SurfaceOutOfMemory},
		{"SurfaceGetCurrentTextureStatus_OutOfMemory", SurfaceOutOfMemory},
		{"surface lost", SurfaceLost},
		{"surface outdated", SurfaceOutdated},
		{"failed to acquire next swapchain texture", SurfaceOutdated},
	}

	for _, test := range tests {
		t.Run(test.msg, func(t *testing.T) {
			err := classifyAcquireError(errors.New(test.msg))
			assert.Equal(t, test.status, err.Status)
			assert.EqualError(t, err.Err, test.msg)
		})
	}
}

func TestClassifyKeepsSurfaceError(t *testing.T) {
	orig := &SurfaceError{Status: SurfaceTimeout}
	assert.Same(t, orig, classifyAcquireError(orig))
}

func TestSurfaceErrorUnwrap(t *testing.T) {
	cause := errors.New("cause")
	err := error(&SurfaceError{Status: SurfaceLost, Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "surface: Lost: cause", err.Error())

	var surfaceErr *SurfaceError
	require.ErrorAs(t, err, &surfaceErr)
	assert.Equal(t, SurfaceLost, surfaceErr.Status)
}

func TestRenderFrameReturnsAcquireFailure(t *testing.T) {
	calls := 0

	r := &Renderer{
		acquire: func() (*wgpu.Texture, error) {
			calls++
			return nil, errors.New("timeout")
		},
	}

	overlayCalled := false
	err := r.RenderFrame(1, func(rec *Recorder, target RenderTarget, screen ScreenDescriptor) error {
		overlayCalled = true
		return nil
	})

	var surfaceErr *SurfaceError
	require.ErrorAs(t, err, &surfaceErr)
	assert.Equal(t, SurfaceTimeout, surfaceErr.Status)
	assert.Equal(t, 1, calls)
	assert.False(t, overlayCalled)
}

func TestRenderFrameWithoutSurfaceTexture(t *testing.T) {
	textures := []*wgpu.Texture{nil, {}}

	for _, texture := range textures {
		r := &Renderer{
			acquire: func() (*wgpu.Texture, error) {
				return texture, nil
			},
		}

		overlayCalled := false
		err := r.RenderFrame(1, func(rec *Recorder, target RenderTarget, screen ScreenDescriptor) error {
			overlayCalled = true
			return nil
		})

		var surfaceErr *SurfaceError
		require.ErrorAs(t, err, &surfaceErr)
		assert.Equal(t, SurfaceOutdated, surfaceErr.Status)
		assert.ErrorIs(t, err, ErrNoSurfaceTexture)
		assert.False(t, overlayCalled)
	}
}

func TestHasHandle(t *testing.T) {
	assert.False(t, hasHandle(nil))
	assert.False(t, hasHandle(&wgpu.Texture{}))
}
