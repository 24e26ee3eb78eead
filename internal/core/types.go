package core

import "image/color"

// Sim defines the minimal contract a simulation must implement to be driven
// by the GUI or terminal front ends.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// Material names a paintable cell kind.
type Material struct {
	ID   uint8
	Name string
}

// Painter is implemented by sims that accept externally painted cells.
// Coordinates are grid coordinates; out-of-range points are ignored.
type Painter interface {
	Paint(x, y int, material uint8) bool
	Materials() []Material
}

// ColorGrid exposes per-cell colours to a display. Refresh visits every cell
// whose colour changed since the previous Refresh and clears its dirty flag.
type ColorGrid interface {
	ColorAt(x, y int) (color.NRGBA, bool)
	Refresh(fn func(x, y int, c color.NRGBA))
}

// LookupMaterial returns the material called name, if p offers one.
func LookupMaterial(p Painter, name string) (Material, bool) {
	for _, m := range p.Materials() {
		if m.Name == name {
			return m, true
		}
	}
	return Material{}, false
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}
