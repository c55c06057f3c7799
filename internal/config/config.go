package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

// Config holds all configuration for the content layer and its demo host
type Config struct {
	Redis    RedisConfig    `envPrefix:"REDIS_"`
	Metrics  MetricsConfig  `envPrefix:"METRICS_"`
	Language LanguageConfig `envPrefix:"LANG_"`
	Content  ContentConfig
	// Seed fixes proc rolls when non-zero
	Seed uint64 `env:"RNG_SEED"`
}

// RedisConfig holds Redis-specific configuration. Catalog and language
// tables fall back to memory when URL is empty.
type RedisConfig struct {
	URL string        `env:"URL"`
	TTL time.Duration `env:"TTL" envDefault:"0s"`
}

// MetricsConfig holds the Prometheus listener configuration
type MetricsConfig struct {
	Addr string `env:"ADDR"`
}

// LanguageConfig selects the language strings are registered under
type LanguageConfig struct {
	Tag string `env:"TAG" envDefault:"en" validate:"required,bcp47_language_tag"`
}

// ContentConfig holds the tunables of every content object
type ContentConfig struct {
	AcidOnHit     AcidOnHitConfig     `envPrefix:"ACID_ON_HIT_"`
	AffixUnstable AffixUnstableConfig `envPrefix:"AFFIX_UNSTABLE_"`
}

// AcidOnHitConfig tunes the Acidic Rounds item
type AcidOnHitConfig struct {
	// Chance is the percent chance to proc
	Chance float64 `env:"CHANCE" envDefault:"20" validate:"gte=0,lte=100"`
	// Duration of the debuff in seconds
	Duration float64 `env:"DURATION" envDefault:"3" validate:"gt=0"`
	// Interval between damage ticks in seconds
	Interval float64 `env:"INTERVAL" envDefault:"1" validate:"gt=0"`
	// Scale is how much the tick interval shrinks with attack speed
	Scale float64 `env:"SCALE" envDefault:"1.5" validate:"gte=0"`
	// Damage is the fraction of base damage dealt per stack per tick
	Damage float64 `env:"DAMAGE" envDefault:"0.25" validate:"gte=0"`
}

// AffixUnstableConfig tunes the Blessing Of The Abyss elite
type AffixUnstableConfig struct {
	Enabled          bool    `env:"ENABLED" envDefault:"false"`
	HealthMultiplier float64 `env:"HEALTH_MULTIPLIER" envDefault:"18" validate:"gt=0"`
	DamageMultiplier float64 `env:"DAMAGE_MULTIPLIER" envDefault:"6" validate:"gt=0"`
	CostMultiplier   float64 `env:"COST_MULTIPLIER" envDefault:"2" validate:"gt=0"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return load(env.Options{})
}

// LoadFrom loads configuration from an explicit environment, ignoring the process environment
func LoadFrom(environment map[string]string) (*Config, error) {
	return load(env.Options{Environment: environment})
}

func load(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
