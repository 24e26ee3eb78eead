package sand

import "math"

// vacant reports whether (x, y) is inside the grid and Empty.
func (g *Grid) vacant(x, y int) bool {
	c, ok := g.Get(x, y)
	return ok && c.Kind == Empty
}

// updateGranular applies gravity to the grain at (x, y). A grain with room
// below accelerates and falls whole cells as its accumulated offset allows; a
// grain on a surface loses its speed and may slide one cell diagonally.
func (g *Grid) updateGranular(x, y int) {
	if g.vacant(x, y+1) {
		c := &g.cells[g.size.Index(x, y)]
		c.Velocity.Y = math.Min(c.Velocity.Y+g.cfg.Params.Acceleration, g.cfg.Params.MaxSpeed)
		amount := c.Velocity.Y + c.Offset.Y
		for steps := int(amount); steps > 0; steps-- {
			if !g.vacant(x, y+1) {
				break
			}
			g.Swap(x, y, x, y+1)
			y++
		}
		c = &g.cells[g.size.Index(x, y)]
		c.Offset.Y = amount - math.Floor(amount)
		return
	}

	c := &g.cells[g.size.Index(x, y)]
	c.Velocity.Y = 0
	c.Offset.Y = 0
	if _, ok := g.Get(x, y+1); !ok {
		return
	}

	// Both the side cell and the one below it must be free so grains never
	// squeeze through a corner.
	left := x > 0 && g.vacant(x-1, y) && g.vacant(x-1, y+1)
	right := g.vacant(x+1, y) && g.vacant(x+1, y+1)
	switch {
	case left && right:
		if g.rng.Bool() {
			g.Swap(x, y, x-1, y+1)
		} else {
			g.Swap(x, y, x+1, y+1)
		}
	case left:
		g.Swap(x, y, x-1, y+1)
	case right:
		g.Swap(x, y, x+1, y+1)
	}
}
