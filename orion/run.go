package orion

import (
	"fmt"

	"github.com/oliverbestmann/seed/debugui"
	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/pulse"
)

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// adapter selection, read from the environment if nil
	GPU *pulse.Options
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 800
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "seed"
	}

	if opts.GPU == nil {
		opts.GPU = pulse.OptionsFromEnv()
	}

	return opts
}

// Run opens the window and runs the event loop until the window is closed.
// It returns ErrOutOfMemory if the loop stopped because the surface ran
// out of memory.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	// create a new window (or canvas)
	win, err := glimpse.NewWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), opts.GPU)
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	size := win.InnerSize()

	surface, err := pulse.NewSurface(ctx, size.Width, size.Height)
	if err != nil {
		return fmt.Errorf("create surface: %w", err)
	}

	renderer := pulse.NewRenderer(ctx, surface)

	overlay, err := debugui.NewAdapter(ctx, surface.Format(), win)
	if err != nil {
		return fmt.Errorf("create overlay: %w", err)
	}

	defer overlay.Release()

	app := NewApp(win, surface, renderer, overlay)

	if err := win.Run(app.HandleEvent); err != nil {
		return fmt.Errorf("event loop: %w", err)
	}

	return app.Err()
}
