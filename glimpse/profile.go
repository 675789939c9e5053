//go:build !js

package glimpse

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/profile"
)

// startProfile starts a profile if requested by the SEED_PROFILE
// environment variable. Returns nil if profiling is disabled.
func startProfile() interface{ Stop() } {
	mode := strings.ToLower(os.Getenv("SEED_PROFILE"))

	switch mode {
	case "":
		return nil

	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)

	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook)

	default:
		slog.Warn("Unknown profile mode", slog.String("mode", mode))
		return nil
	}
}
