package sand

import (
	"image/color"

	"powder/internal/core"
	prng "powder/pkg/core"
)

// Grid is a fixed-size falling-sand world. It is not safe for concurrent use:
// painting and ticking must come from a single driver.
type Grid struct {
	cfg  Config
	size core.Size

	cells []Cell
	sched *scheduler
	rng   *prng.RNG

	tick  uint64
	moves int
}

// New returns a sand grid with the provided dimensions using defaults.
func New(w, h int) *Grid {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty grid configured from the provided options.
func NewWithConfig(cfg Config) *Grid {
	if cfg.Width <= 0 {
		cfg.Width = 1
	}
	if cfg.Height <= 0 {
		cfg.Height = 1
	}
	size := core.Size{W: cfg.Width, H: cfg.Height}
	g := &Grid{
		cfg:   cfg,
		size:  size,
		cells: make([]Cell, size.Cells()),
		sched: newScheduler(size.Cells()),
		rng:   prng.NewRNG(cfg.Seed),
	}
	for i := range g.cells {
		g.cells[i].X, g.cells[i].Y = size.Coords(i)
	}
	return g
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "sand" }

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return g.size }

// Config returns the active configuration.
func (g *Grid) Config() Config { return g.cfg }

// Get returns a copy of the cell at (x, y). ok is false outside the grid.
func (g *Grid) Get(x, y int) (Cell, bool) {
	if !g.size.Contains(x, y) {
		return Cell{}, false
	}
	return g.cells[g.size.Index(x, y)], true
}

// Ref returns a pointer to the cell at (x, y) for in-place edits. Callers
// must not change Kind, X or Y through it; use Set and Swap for that.
func (g *Grid) Ref(x, y int) (*Cell, bool) {
	if !g.size.Contains(x, y) {
		return nil, false
	}
	return &g.cells[g.size.Index(x, y)], true
}

// Set assigns kind to the cell at (x, y), resetting its motion and rolling a
// new colour. It reports false when the point is outside the grid, the kind is
// unknown, or the cell already has that kind.
func (g *Grid) Set(x, y int, kind Kind) bool {
	if !g.size.Contains(x, y) || !kind.Valid() {
		return false
	}
	c := &g.cells[g.size.Index(x, y)]
	if c.Kind == kind {
		return false
	}
	c.Kind = kind
	c.Velocity = Vec2{}
	c.Offset = Vec2{}
	c.Color = jitterColor(kind, g.cfg.Params, g.rng)
	c.Dirty = true
	return true
}

// Swap exchanges the particles at (x1, y1) and (x2, y2). Both points must lie
// inside the grid.
func (g *Grid) Swap(x1, y1, x2, y2 int) {
	i := g.size.Index(x1, y1)
	j := g.size.Index(x2, y2)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
	g.cells[i].X, g.cells[i].Y = x1, y1
	g.cells[i].Dirty = true
	g.cells[j].X, g.cells[j].Y = x2, y2
	g.cells[j].Dirty = true
	g.sched.swap(i, j)
	g.moves++
}

// Update advances every particle by one tick.
func (g *Grid) Update() {
	g.moves = 0
	g.sched.run(g.rng, func(i int) {
		rule := kinds[g.cells[i].Kind].rule
		if rule == nil {
			return
		}
		x, y := g.size.Coords(i)
		rule(g, x, y)
	})
	g.tick++
}

// Step advances the simulation by one tick.
func (g *Grid) Step() { g.Update() }

// Reset empties the grid and reseeds the random stream. A zero seed falls back
// to the configured one.
func (g *Grid) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.rng.Reseed(seed)
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind != Empty {
			c.Dirty = true
		}
		c.Kind = Empty
		c.Velocity = Vec2{}
		c.Offset = Vec2{}
		c.Color = color.NRGBA{}
	}
	g.tick = 0
	g.moves = 0
}

// Tick returns the number of completed ticks since construction or Reset.
func (g *Grid) Tick() uint64 { return g.tick }

// Moves returns the number of swaps performed during the last tick. Zero
// means nothing moved.
func (g *Grid) Moves() int { return g.moves }

// Settled reports whether the last tick moved nothing and no grain is left
// hanging over an empty cell, so further ticks cannot change the grid.
func (g *Grid) Settled() bool {
	if g.moves != 0 {
		return false
	}
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind == Granular && g.vacant(c.X, c.Y+1) {
			return false
		}
	}
	return true
}

// Census counts cells per kind.
func (g *Grid) Census() [kindCount]int {
	var counts [kindCount]int
	for i := range g.cells {
		counts[g.cells[i].Kind]++
	}
	return counts
}
