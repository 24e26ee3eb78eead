package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Sim       string
	Scale     int
	TPS       int
	Seed      int64
	Width     int
	Height    int
	Brush     int
	Primary   string
	Secondary string
	HUD       bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "sand",
		Scale:     3,
		TPS:       60,
		Seed:      42,
		Width:     256,
		Height:    256,
		Brush:     5,
		Primary:   "sand",
		Secondary: "wood",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Brush, "brush", c.Brush, "brush radius in cells")
	fs.StringVar(&c.Primary, "primary", c.Primary, "material painted with the primary button")
	fs.StringVar(&c.Secondary, "secondary", c.Secondary, "material painted with the secondary button")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
}

// SimOptions converts the config into the key/value map sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}
