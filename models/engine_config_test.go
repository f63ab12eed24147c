package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineConfigDefaults(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.Equal(t, PointsStrategyCO2, cfg.PointsStrategy)
	assert.False(t, cfg.WastedResetsStreak)
	assert.True(t, cfg.SharedInFeed)
}

func TestEngineConfigFromEnv(t *testing.T) {
	t.Setenv("POINTS_STRATEGY", "fixed")
	t.Setenv("WASTED_RESETS_STREAK", "true")
	t.Setenv("SHARED_IN_FEED", "false")

	cfg := EngineConfigFromEnv()
	assert.Equal(t, PointsStrategyFixed, cfg.PointsStrategy)
	assert.True(t, cfg.WastedResetsStreak)
	assert.False(t, cfg.SharedInFeed)
}

func TestEngineConfigFromEnvIgnoresGarbage(t *testing.T) {
	t.Setenv("POINTS_STRATEGY", "quantum")
	t.Setenv("WASTED_RESETS_STREAK", "maybe")

	cfg := EngineConfigFromEnv()
	assert.Equal(t, DefaultEngineConfig(), cfg, "unparsable flags fall back to defaults")
}
