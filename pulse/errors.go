package pulse

import (
	"errors"
	"strings"
)

// SurfaceStatus is the reason acquiring the next frame failed.
type SurfaceStatus uint8

const (
	// SurfaceTimeout means no frame became available in time.
	SurfaceTimeout SurfaceStatus = iota + 1

	// SurfaceOutdated means the surface changed and must be reconfigured.
	SurfaceOutdated

	// SurfaceLost means the surface must be reconfigured before use.
	SurfaceLost

	// SurfaceOutOfMemory is not recoverable.
	SurfaceOutOfMemory
)

func (s SurfaceStatus) String() string {
	switch s {
	case SurfaceTimeout:
		return "Timeout"
	case SurfaceOutdated:
		return "Outdated"
	case SurfaceLost:
		return "Lost"
	case SurfaceOutOfMemory:
		return "OutOfMemory"
	default:
		return "Unknown"
	}
}

var ErrNoSurfaceFormat = errors.New("surface does not support any texture format")

// SurfaceError is returned by Renderer.RenderFrame if the next frame
// could not be acquired from the surface.
type SurfaceError struct {
	Status SurfaceStatus
	Err    error
}

func (e *SurfaceError) Error() string {
	if e.Err == nil {
		return "surface: " + e.Status.String()
	}

	return "surface: " + e.Status.String() + ": " + e.Err.Error()
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}

// classifyAcquireError maps an error of wgpu.Surface.GetCurrentTexture to a
// SurfaceError. The binding drops the acquisition status and only reports the
// message of a validation error, which rarely names the status. In practice
// nearly every failure is therefore classified as SurfaceOutdated and recovered
// by reconfiguring. A missing texture without an error is handled by
// Renderer.acquireTexture.
func classifyAcquireError(err error) *SurfaceError {
	var surfaceErr *SurfaceError
	if errors.As(err, &surfaceErr) {
		return surfaceErr
	}

	msg := strings.ToLower(err.Error())

	status := SurfaceOutdated

	switch {
	case strings.Contains(msg, "timeout"):
		status = SurfaceTimeout
	case strings.Contains(msg, "out of memory"), strings.Contains(msg, "outofmemory"):
		status = SurfaceOutOfMemory
	case strings.Contains(msg, "lost"):
		status = SurfaceLost
	}

	return &SurfaceError{Status: status, Err: err}
}
