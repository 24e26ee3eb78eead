package core

import "testing"

type recordingPainter struct {
	painted map[[2]int]uint8
}

func (r *recordingPainter) Paint(x, y int, m uint8) bool {
	if r.painted[[2]int{x, y}] == m {
		return false
	}
	r.painted[[2]int{x, y}] = m
	return true
}

func (r *recordingPainter) Materials() []Material {
	return []Material{{ID: 0, Name: "air"}, {ID: 1, Name: "wood"}, {ID: 2, Name: "sand"}}
}

func TestBrushDiscArea(t *testing.T) {
	size := Size{W: 64, H: 64}
	count := 0
	Brush{Radius: 5}.Each(32, 32, size, func(int, int) { count++ })
	// Lattice points with dx²+dy² <= 25.
	if count != 81 {
		t.Fatalf("radius 5 disc covers %d cells, expected 81", count)
	}

	count = 0
	Brush{Radius: 0}.Each(3, 3, size, func(int, int) { count++ })
	if count != 1 {
		t.Fatalf("radius 0 should paint a single cell, got %d", count)
	}
}

func TestBrushClipsToGrid(t *testing.T) {
	size := Size{W: 10, H: 10}
	Brush{Radius: 3}.Each(0, 9, size, func(x, y int) {
		if !size.Contains(x, y) {
			t.Fatalf("brush visited (%d,%d) outside the grid", x, y)
		}
	})
}

func TestBrushResizeBounds(t *testing.T) {
	b := Brush{Radius: 1}
	b.Resize(-5)
	if b.Radius != 0 {
		t.Fatalf("radius should clamp at 0, got %d", b.Radius)
	}
	b.Resize(1000)
	if b.Radius != MaxBrushRadius {
		t.Fatalf("radius should clamp at %d, got %d", MaxBrushRadius, b.Radius)
	}
}

func TestStrokeCountsChanges(t *testing.T) {
	p := &recordingPainter{painted: map[[2]int]uint8{}}
	size := Size{W: 8, H: 8}
	sand, _ := LookupMaterial(p, "sand")
	if n := (Brush{Radius: 1}).Stroke(p, size, 4, 4, sand); n != 5 {
		t.Fatalf("first stroke changed %d cells, expected 5", n)
	}
	if n := (Brush{Radius: 1}).Stroke(p, size, 4, 4, sand); n != 0 {
		t.Fatalf("repeated stroke changed %d cells, expected 0", n)
	}
}

func TestPalettePick(t *testing.T) {
	p := &recordingPainter{}
	pal, ok := NewPalette(p, "sand", "wood")
	if !ok {
		t.Fatal("palette should resolve sand and wood")
	}
	if _, ok := pal.Pick(false, false); ok {
		t.Fatal("no buttons should pick nothing")
	}
	if m, _ := pal.Pick(true, true); m.Name != "sand" {
		t.Fatalf("primary should win, got %s", m.Name)
	}
	if m, _ := pal.Pick(false, true); m.Name != "wood" {
		t.Fatalf("secondary button should pick wood, got %s", m.Name)
	}
	pal.Erasing = true
	if m, _ := pal.Pick(true, false); m.Name != "air" {
		t.Fatalf("erase mode should pick air, got %s", m.Name)
	}
	if _, ok := NewPalette(p, "sand", "lava"); ok {
		t.Fatal("unknown material should fail")
	}
}
