package sand

import (
	"image/color"

	"powder/internal/core"
)

// Paint sets the cell at (x, y) to the kind whose ID is material.
func (g *Grid) Paint(x, y int, material uint8) bool {
	return g.Set(x, y, Kind(material))
}

// Materials lists the paintable kinds by their material names.
func (g *Grid) Materials() []core.Material {
	out := make([]core.Material, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, core.Material{ID: uint8(k), Name: k.Material()})
	}
	return out
}

// ColorAt returns the stored colour of the cell at (x, y).
func (g *Grid) ColorAt(x, y int) (color.NRGBA, bool) {
	c, ok := g.Get(x, y)
	return c.Color, ok
}

// Refresh hands every dirty cell to fn in index order and clears the flag.
func (g *Grid) Refresh(fn func(x, y int, c color.NRGBA)) {
	for i := range g.cells {
		c := &g.cells[i]
		if !c.Dirty {
			continue
		}
		c.Dirty = false
		fn(c.X, c.Y, c.Color)
	}
}

func init() {
	core.Register("sand", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
