package common

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog/log"
)

// Runtime profiles for different server configurations
const (
	// Small server: 2 vCPU, 4GB RAM (test/dev environment)
	SmallServerGOGC     = 400
	SmallServerMemLimit = 2.5 * 1024 * 1024 * 1024 // 2.5GB

	// Large server: 4+ vCPU, 8GB+ RAM
	LargeServerGOGC     = 600
	LargeServerMemLimit = 6 * 1024 * 1024 * 1024 // 6GB
)

// detectServerProfile returns appropriate settings based on available resources
func detectServerProfile() (gogc int, memLimit int64) {
	if runtime.NumCPU() <= 2 {
		return SmallServerGOGC, int64(SmallServerMemLimit)
	}
	return LargeServerGOGC, int64(LargeServerMemLimit)
}

// InitRuntime configures the Go runtime for a request-scoped API workload.
// The comparison pipeline allocates short-lived route/metrics slices per
// request, so a higher GOGC with GOMEMLIMIT as the safety net keeps GC off
// the request path. Override with GOGC / GOMEMLIMIT environment variables.
func InitRuntime() {
	defaultGOGC, defaultMemLimit := detectServerProfile()

	if gcPercent := os.Getenv("GOGC"); gcPercent == "" {
		debug.SetGCPercent(defaultGOGC)
		log.Info().
			Int("GOGC", defaultGOGC).
			Msg("[runtime] Set GOGC")
	}

	if memLimit := os.Getenv("GOMEMLIMIT"); memLimit == "" {
		debug.SetMemoryLimit(defaultMemLimit)
		log.Info().
			Int64("GOMEMLIMIT_bytes", defaultMemLimit).
			Msg("[runtime] Set memory limit (safety net for high GOGC)")
	}

	log.Info().
		Int("num_cpu", runtime.NumCPU()).
		Int("gomaxprocs", runtime.GOMAXPROCS(0)).
		Str("go_version", runtime.Version()).
		Msg("[runtime] Current runtime settings")
}
