package core

import (
	"testing"
	"time"
)

func TestSizeIndexRoundTrip(t *testing.T) {
	s := Size{W: 7, H: 5}
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			i := s.Index(x, y)
			gx, gy := s.Coords(i)
			if gx != x || gy != y {
				t.Fatalf("Coords(Index(%d,%d)) = (%d,%d)", x, y, gx, gy)
			}
		}
	}
	if s.Contains(-1, 0) || s.Contains(0, -1) || s.Contains(7, 0) || s.Contains(0, 5) {
		t.Fatal("Contains accepted an out-of-range point")
	}
	if !s.Contains(6, 4) {
		t.Fatal("Contains rejected the last cell")
	}
}

func TestFixedStepPacesTicks(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first call should step immediately")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("should not step before the tick interval elapsed")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("should step once the interval elapsed")
	}

	clock = clock.Add(5 * time.Second)
	steps := 0
	for fs.ShouldStep() {
		steps++
	}
	if steps > 2 {
		t.Fatalf("a stall should not queue a burst of ticks, got %d", steps)
	}
}

func TestFixedStepMeasuresRate(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(20)
	fs.now = func() time.Time { return clock }
	for i := 0; i < 60; i++ {
		fs.ShouldStep()
		clock = clock.Add(50 * time.Millisecond)
	}
	if got := fs.ActualTPS(); got < 18 || got > 22 {
		t.Fatalf("expected roughly 20 TPS, got %f", got)
	}
}

func TestSnapshotLookupAndClamp(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "x", Value: "1"}}},
		{Name: "B", Params: []Parameter{{Key: "y", Value: "2"}}},
	}}
	if p, ok := snap.Lookup("y"); !ok || p.Value != "2" {
		t.Fatalf("lookup y = %+v, %v", p, ok)
	}
	if _, ok := snap.Lookup("z"); ok {
		t.Fatal("lookup of a missing key should fail")
	}

	ctrl := ParameterControl{Min: 0, Max: 1, HasMin: true, HasMax: true}
	if got := ctrl.Clamp(2); got != 1 {
		t.Fatalf("clamp above max = %f", got)
	}
	if got := ctrl.Clamp(-1); got != 0 {
		t.Fatalf("clamp below min = %f", got)
	}
}
