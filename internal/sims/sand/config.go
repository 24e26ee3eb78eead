package sand

import "strconv"

// Params holds the motion and colour constants of the sand sim.
type Params struct {
	// Acceleration is added to a falling grain's vertical speed every tick.
	Acceleration float64
	// MaxSpeed caps vertical speed in cells per tick.
	MaxSpeed float64

	SaturationJitter float64
	LightnessJitter  float64
}

// Config controls the grid dimensions and seeding.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		Params: Params{
			Acceleration:     0.4,
			MaxSpeed:         8.0,
			SaturationJitter: 0.2,
			LightnessJitter:  0.1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["accel"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Acceleration = parsed
		}
	}
	if v, ok := cfg["max_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.MaxSpeed = parsed
		}
	}
	if v, ok := cfg["saturation_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SaturationJitter = parsed
		}
	}
	if v, ok := cfg["lightness_jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.LightnessJitter = parsed
		}
	}
	return c
}
