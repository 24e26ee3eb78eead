package core

import (
	"slices"
	"testing"
)

func TestPermuteIsPermutation(t *testing.T) {
	rng := NewRNG(7)
	idx := make([]int, 257)
	rng.Permute(idx)

	seen := make([]bool, len(idx))
	for _, v := range idx {
		if v < 0 || v >= len(idx) {
			t.Fatalf("index %d out of range", v)
		}
		if seen[v] {
			t.Fatalf("index %d appears twice", v)
		}
		seen[v] = true
	}
}

func TestReseedRepeatsStream(t *testing.T) {
	rng := NewRNG(99)
	a := make([]int, 64)
	rng.Permute(a)

	rng.Reseed(99)
	b := make([]int, 64)
	rng.Permute(b)

	if !slices.Equal(a, b) {
		t.Fatal("reseeding should reproduce the same permutation")
	}
}

func TestRangeBounds(t *testing.T) {
	rng := NewRNG(3)
	for i := 0; i < 1000; i++ {
		v := rng.Range(-0.1, 0.1)
		if v < -0.1 || v >= 0.1 {
			t.Fatalf("value %f outside [-0.1, 0.1)", v)
		}
	}
	if got := rng.Range(0.5, 0.5); got != 0.5 {
		t.Fatalf("degenerate range should return lo, got %f", got)
	}
}
