package orion

import (
	"errors"
	"log/slog"

	"github.com/oliverbestmann/seed/glimpse"
	"github.com/oliverbestmann/seed/pulse"
)

type surfaceAction func(a *App, ctl *glimpse.Control, err *pulse.SurfaceError)

// surfaceActions maps every acquisition failure to the action taking care of it.
var surfaceActions = map[pulse.SurfaceStatus]surfaceAction{
	pulse.SurfaceLost:        recoverSurface,
	pulse.SurfaceOutdated:    recoverSurface,
	pulse.SurfaceOutOfMemory: exitOutOfMemory,
	pulse.SurfaceTimeout:     skipFrame,
}

func (a *App) handleRenderResult(ctl *glimpse.Control, err error) {
	if err == nil {
		return
	}

	var surfaceErr *pulse.SurfaceError
	if !errors.As(err, &surfaceErr) {
		slog.Error("Failed to render frame", slog.Any("err", err))
		return
	}

	action, ok := surfaceActions[surfaceErr.Status]
	if !ok {
		slog.Error("Unknown surface status", slog.Any("err", err))
		return
	}

	action(a, ctl, surfaceErr)
}

func recoverSurface(a *App, _ *glimpse.Control, err *pulse.SurfaceError) {
	slog.Debug("Reconfigure surface", slog.String("status", err.Status.String()))
	a.surface.RecoverFromLoss()
}

func exitOutOfMemory(a *App, ctl *glimpse.Control, err *pulse.SurfaceError) {
	slog.Error("Out of memory", slog.Any("err", err))

	if a.fatal == nil {
		a.fatal = ErrOutOfMemory
	}

	a.exit(ctl)
}

func skipFrame(_ *App, _ *glimpse.Control, err *pulse.SurfaceError) {
	slog.Warn("Surface timeout", slog.Any("err", err))
}
