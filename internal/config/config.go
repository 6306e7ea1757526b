package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// WheelConfig controls the wheel's drawing geometry. Radii are in
// pixels inside the square canvas; the overlay ring sits inside the
// primary ring so two charts stay readable on one wheel.
type WheelConfig struct {
	CanvasSize    int     `mapstructure:"canvas_size"`
	ZodiacRadius  float64 `mapstructure:"zodiac_radius"`
	BodyRadius    float64 `mapstructure:"body_radius"`
	OverlayRadius float64 `mapstructure:"overlay_radius"`
	AspectRadius  float64 `mapstructure:"aspect_radius"`
}

// SolverConfig controls the collision-avoidance placement solver.
type SolverConfig struct {
	MinSeparationDeg float64 `mapstructure:"min_separation_deg"`
	RelaxationPasses int     `mapstructure:"relaxation_passes"`
}

// AspectsConfig controls aspect display policy.
type AspectsConfig struct {
	NatalOrbLimit float64 `mapstructure:"natal_orb_limit"`
	NatalCap      int     `mapstructure:"natal_cap"`
	SynastryCap   int     `mapstructure:"synastry_cap"`
	TightOrb      float64 `mapstructure:"tight_orb"`
}

// ServeConfig controls the HTTP server.
type ServeConfig struct {
	Port int `mapstructure:"port"`
}

// Config aggregates all runtime configuration. Values come from
// .astrowheel.yaml, ASTROWHEEL_* env vars, and CLI flags, with
// built-in defaults for anything unset.
type Config struct {
	Wheel      WheelConfig   `mapstructure:"wheel"`
	Solver     SolverConfig  `mapstructure:"solver"`
	Aspects    AspectsConfig `mapstructure:"aspects"`
	Serve      ServeConfig   `mapstructure:"serve"`
	DebugLevel int           `mapstructure:"debug_level"`
}

// Load reads configuration from viper, applying defaults and
// validating ranges.
func Load() (Config, error) {
	viper.SetDefault("wheel.canvas_size", 600)
	viper.SetDefault("wheel.zodiac_radius", 270.0)
	viper.SetDefault("wheel.body_radius", 210.0)
	viper.SetDefault("wheel.overlay_radius", 160.0)
	viper.SetDefault("wheel.aspect_radius", 140.0)
	viper.SetDefault("solver.min_separation_deg", 8.0)
	viper.SetDefault("solver.relaxation_passes", 5)
	viper.SetDefault("aspects.natal_orb_limit", 8.0)
	viper.SetDefault("aspects.natal_cap", 20)
	viper.SetDefault("aspects.synastry_cap", 25)
	viper.SetDefault("aspects.tight_orb", 3.0)
	viper.SetDefault("serve.port", 8080)
	viper.SetDefault("debug_level", 0)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Wheel.CanvasSize < 100 {
		return fmt.Errorf("wheel.canvas_size must be >= 100, got %d", c.Wheel.CanvasSize)
	}
	half := float64(c.Wheel.CanvasSize) / 2
	radii := []struct {
		name  string
		value float64
	}{
		{"wheel.zodiac_radius", c.Wheel.ZodiacRadius},
		{"wheel.body_radius", c.Wheel.BodyRadius},
		{"wheel.overlay_radius", c.Wheel.OverlayRadius},
		{"wheel.aspect_radius", c.Wheel.AspectRadius},
	}
	for _, r := range radii {
		if r.value <= 0 || r.value > half {
			return fmt.Errorf("%s must be between 0 and %g, got %g", r.name, half, r.value)
		}
	}
	if c.Solver.MinSeparationDeg < 0 || c.Solver.MinSeparationDeg > 60 {
		return fmt.Errorf("solver.min_separation_deg must be between 0 and 60, got %g", c.Solver.MinSeparationDeg)
	}
	if c.Solver.RelaxationPasses < 0 || c.Solver.RelaxationPasses > 100 {
		return fmt.Errorf("solver.relaxation_passes must be between 0 and 100, got %d", c.Solver.RelaxationPasses)
	}
	if c.Aspects.NatalOrbLimit < 0 || c.Aspects.NatalOrbLimit > 30 {
		return fmt.Errorf("aspects.natal_orb_limit must be between 0 and 30, got %g", c.Aspects.NatalOrbLimit)
	}
	if c.Aspects.TightOrb < 0 || c.Aspects.TightOrb > c.Aspects.NatalOrbLimit {
		return fmt.Errorf("aspects.tight_orb must be between 0 and the natal orb limit, got %g", c.Aspects.TightOrb)
	}
	if c.Serve.Port <= 0 || c.Serve.Port > 65535 {
		return fmt.Errorf("serve.port must be 1-65535, got %d", c.Serve.Port)
	}
	if c.DebugLevel < 0 || c.DebugLevel > 4 {
		return fmt.Errorf("debug_level must be 0-4, got %d", c.DebugLevel)
	}
	return nil
}
