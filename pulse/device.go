package pulse

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/webgpu/wgpu"
)

func init() {
	// glfw and most drivers want to be called from the main thread
	runtime.LockOSThread()

	switch strings.ToUpper(os.Getenv("WGPU_LOG_LEVEL")) {
	case "OFF":
		wgpu.SetLogLevel(wgpu.LogLevelOff)
	case "ERROR":
		wgpu.SetLogLevel(wgpu.LogLevelError)
	case "WARN":
		wgpu.SetLogLevel(wgpu.LogLevelWarn)
	case "INFO":
		wgpu.SetLogLevel(wgpu.LogLevelInfo)
	case "DEBUG":
		wgpu.SetLogLevel(wgpu.LogLevelDebug)
	case "TRACE":
		wgpu.SetLogLevel(wgpu.LogLevelTrace)
	}
}

// Options control the adapter negotiation.
type Options struct {
	PowerPreference      wgpu.PowerPreference
	ForceFallbackAdapter bool
}

// OptionsFromEnv reads WGPU_FORCE_FALLBACK_ADAPTER and WGPU_POWER_PREFERENCE.
func OptionsFromEnv() *Options {
	opts := &Options{
		ForceFallbackAdapter: os.Getenv("WGPU_FORCE_FALLBACK_ADAPTER") == "1",
	}

	switch strings.ToLower(os.Getenv("WGPU_POWER_PREFERENCE")) {
	case "low":
		opts.PowerPreference = wgpu.PowerPreferenceLowPower
	case "high":
		opts.PowerPreference = wgpu.PowerPreferenceHighPerformance
	}

	return opts
}

// Context encapsulates the low level state of the webgpu context,
// this includes the Device, Surface and active Adapter
type Context struct {
	*wgpu.Device
	*wgpu.Queue
	Surface *wgpu.Surface
	Adapter *wgpu.Adapter

	// name of the graphics backend of the adapter, e.g. Vulkan
	Backend string

	samplers *lru.Cache[wgpu.SamplerDescriptor, *wgpu.Sampler]
}

// New negotiates an adapter and a device that can render to the surface
// described by sd. Failing to find either is not recoverable.
func New(sd *wgpu.SurfaceDescriptor, opts *Options) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	if opts == nil {
		opts = &Options{}
	}

	st = &Context{}

	// create the webgpu instance
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	// create a Surface based on the window
	st.Surface = instance.CreateSurface(sd)

	// create an adapter that can render to the Surface
	st.Adapter, err = instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      opts.PowerPreference,
		ForceFallbackAdapter: opts.ForceFallbackAdapter,
		CompatibleSurface:    st.Surface,
	})

	if err != nil {
		return st, fmt.Errorf("request adapter: %w", err)
	}

	info := st.Adapter.GetInfo()
	st.Backend = fmt.Sprint(info.BackendType)

	slog.Info("Selected graphics adapter",
		slog.String("backend", st.Backend),
		slog.Any("info", info),
	)

	st.Device, err = st.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Device",
	})

	if err != nil {
		return st, fmt.Errorf("request device: %w", err)
	}

	st.Queue = st.Device.GetQueue()

	st.samplers, _ = lru.NewWithEvict[wgpu.SamplerDescriptor, *wgpu.Sampler](16, releaseSamplerOnEviction)

	return st, nil
}

// CachedSampler returns a sampler matching your description. The sampler may be cached,
// you must not call wgpu.Sampler.Release() on it.
func (d *Context) CachedSampler(desc wgpu.SamplerDescriptor) (*wgpu.Sampler, error) {
	cachedSampler, ok := d.samplers.Get(desc)
	if ok {
		return cachedSampler, nil
	}

	sampler, err := d.Device.CreateSampler(&desc)
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}

	d.samplers.Add(desc, sampler)

	return sampler, nil
}

func (d *Context) Release() {
	if d.samplers != nil {
		d.samplers.Purge()
		d.samplers = nil
	}

	if d.Queue != nil {
		d.Queue.Release()
		d.Queue = nil
	}

	if d.Device != nil {
		d.Device.Release()
		d.Device = nil
	}

	if d.Adapter != nil {
		d.Adapter.Release()
		d.Adapter = nil
	}

	if d.Surface != nil {
		d.Surface.Release()
		d.Surface = nil
	}
}

func releaseSamplerOnEviction(_ wgpu.SamplerDescriptor, sampler *wgpu.Sampler) {
	sampler.Release()
}
