package core

// MaxBrushRadius bounds Brush.Resize.
const MaxBrushRadius = 32

// Brush paints a filled disc of grid cells around a point.
type Brush struct {
	Radius int
}

// Each calls fn for every in-bounds cell within the brush centred on (cx, cy).
func (b Brush) Each(cx, cy int, size Size, fn func(x, y int)) {
	r := b.Radius
	if r < 0 {
		r = 0
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := cx+dx, cy+dy
			if !size.Contains(x, y) {
				continue
			}
			fn(x, y)
		}
	}
}

// Resize grows or shrinks the brush, keeping the radius in [0, MaxBrushRadius].
func (b *Brush) Resize(delta int) {
	b.Radius += delta
	if b.Radius < 0 {
		b.Radius = 0
	}
	if b.Radius > MaxBrushRadius {
		b.Radius = MaxBrushRadius
	}
}

// Stroke paints m under the brush and returns how many cells changed.
func (b Brush) Stroke(p Painter, size Size, cx, cy int, m Material) int {
	n := 0
	b.Each(cx, cy, size, func(x, y int) {
		if p.Paint(x, y, m.ID) {
			n++
		}
	})
	return n
}

// Palette maps pointer buttons to materials.
type Palette struct {
	Primary   Material
	Secondary Material
	Eraser    Material
	Erasing   bool
}

// NewPalette resolves the named materials against p. The eraser is the
// material with ID 0.
func NewPalette(p Painter, primary, secondary string) (Palette, bool) {
	pri, ok := LookupMaterial(p, primary)
	if !ok {
		return Palette{}, false
	}
	sec, ok := LookupMaterial(p, secondary)
	if !ok {
		return Palette{}, false
	}
	pal := Palette{Primary: pri, Secondary: sec}
	for _, m := range p.Materials() {
		if m.ID == 0 {
			pal.Eraser = m
		}
	}
	return pal, true
}

// Pick returns the material for the held buttons. The primary button wins
// when both are held; erase mode overrides either.
func (p Palette) Pick(primary, secondary bool) (Material, bool) {
	if !primary && !secondary {
		return Material{}, false
	}
	if p.Erasing {
		return p.Eraser, true
	}
	if primary {
		return p.Primary, true
	}
	return p.Secondary, true
}
