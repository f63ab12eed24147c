package models

import (
	"os"
	"strconv"
)

// EngineConfig pins down the scoring behaviors that changed over the
// product's history. Each flag is decided once at startup; the engine never
// mixes variants within a deployment.
type EngineConfig struct {
	// PointsStrategy selects how deltas are computed: "co2" weights points
	// by emission factor and normalized weight, "fixed" uses flat per-action
	// base values scaled by raw quantity.
	PointsStrategy string

	// WastedResetsStreak controls whether logging waste zeroes the current
	// streak or leaves it untouched.
	WastedResetsStreak bool

	// SharedInFeed controls whether shared interactions appear in the
	// user-facing transaction feed alongside sold ones.
	SharedInFeed bool
}

// DefaultEngineConfig is the canonical policy: CO2-weighted points, waste
// does not break a streak, shared actions show in the feed.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		PointsStrategy:     PointsStrategyCO2,
		WastedResetsStreak: false,
		SharedInFeed:       true,
	}
}

// EngineConfigFromEnv reads the policy flags from the environment, falling
// back to the defaults for anything unset or unparsable.
func EngineConfigFromEnv() EngineConfig {
	cfg := DefaultEngineConfig()

	if strategy := os.Getenv("POINTS_STRATEGY"); strategy == PointsStrategyFixed {
		cfg.PointsStrategy = PointsStrategyFixed
	}
	if v, err := strconv.ParseBool(os.Getenv("WASTED_RESETS_STREAK")); err == nil {
		cfg.WastedResetsStreak = v
	}
	if v, err := strconv.ParseBool(os.Getenv("SHARED_IN_FEED")); err == nil {
		cfg.SharedInFeed = v
	}

	return cfg
}
