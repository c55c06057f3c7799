package config_test

import (
	"testing"
	"time"

	"github.com/KirkDiggler/thalassophobia/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	acid := cfg.Content.AcidOnHit
	assert.Equal(t, 20.0, acid.Chance)
	assert.Equal(t, 3.0, acid.Duration)
	assert.Equal(t, 1.0, acid.Interval)
	assert.Equal(t, 1.5, acid.Scale)
	assert.Equal(t, 0.25, acid.Damage)

	elite := cfg.Content.AffixUnstable
	assert.False(t, elite.Enabled)
	assert.Equal(t, 18.0, elite.HealthMultiplier)
	assert.Equal(t, 6.0, elite.DamageMultiplier)
	assert.Equal(t, 2.0, elite.CostMultiplier)

	assert.Equal(t, "en", cfg.Language.Tag)
	assert.Empty(t, cfg.Redis.URL)
	assert.Zero(t, cfg.Seed)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"ACID_ON_HIT_CHANCE":   "35.5",
		"ACID_ON_HIT_INTERVAL": "0.5",
		"REDIS_URL":            "redis://localhost:6379/2",
		"REDIS_TTL":            "1h",
		"METRICS_ADDR":         ":9100",
		"LANG_TAG":             "fr",
		"RNG_SEED":             "7",
	})
	require.NoError(t, err)

	assert.Equal(t, 35.5, cfg.Content.AcidOnHit.Chance)
	assert.Equal(t, 0.5, cfg.Content.AcidOnHit.Interval)
	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, time.Hour, cfg.Redis.TTL)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
	assert.Equal(t, "fr", cfg.Language.Tag)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "chance above 100", env: map[string]string{"ACID_ON_HIT_CHANCE": "150"}},
		{name: "zero interval", env: map[string]string{"ACID_ON_HIT_INTERVAL": "0"}},
		{name: "not a number", env: map[string]string{"ACID_ON_HIT_DAMAGE": "lots"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.env)
			assert.Error(t, err)
		})
	}
}
