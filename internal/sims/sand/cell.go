package sand

import (
	"image/color"

	prng "powder/pkg/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Vec2 is a pair of float components.
type Vec2 struct {
	X, Y float64
}

// Cell is the particle occupying one grid position.
type Cell struct {
	Kind Kind

	// X and Y always equal the cell's position in the grid.
	X, Y int

	// Velocity and Offset only carry meaning for Granular cells. Offset holds
	// the fractional part of movement not yet realised as a whole-cell step.
	Velocity Vec2
	Offset   Vec2

	// Color is rolled once when the kind is assigned.
	Color color.NRGBA
	// Dirty is set whenever Color may have changed on screen and cleared by
	// the display when it consumes the cell.
	Dirty bool
}

// jitterColor derives a display colour for kind by perturbing its base colour
// in HSL space. Saturation only ever drops so grains never look garish.
func jitterColor(k Kind, p Params, rng *prng.RNG) color.NRGBA {
	base := kinds[k].base
	if base.A == 0 {
		return color.NRGBA{}
	}
	c, _ := colorful.MakeColor(base)
	h, s, l := c.Hsl()
	s = clamp01(s + rng.Range(-p.SaturationJitter, 0))
	l = clamp01(l + rng.Range(-p.LightnessJitter, p.LightnessJitter))
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: base.A}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
