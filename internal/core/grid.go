package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.W && y < s.H
}

// Index returns the row-major slice index for coordinates (x, y).
func (s Size) Index(x, y int) int { return y*s.W + x }

// Coords is the inverse of Index.
func (s Size) Coords(i int) (int, int) { return i % s.W, i / s.W }

// Cells returns the number of cells in the grid.
func (s Size) Cells() int { return s.W * s.H }
