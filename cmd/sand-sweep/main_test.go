package main

import (
	"slices"
	"strings"
	"testing"

	"powder/internal/sims/sand"
)

func TestParseFloats(t *testing.T) {
	got, err := parseFloats(" 0.2, 0.4,,8 ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !slices.Equal(got, []float64{0.2, 0.4, 8}) {
		t.Fatalf("unexpected values %v", got)
	}
	for _, bad := range []string{"", "fast", "0.4,-1"} {
		if _, err := parseFloats(bad); err == nil {
			t.Fatalf("expected an error for %q", bad)
		}
	}
}

func TestDescribe(t *testing.T) {
	r := sand.PileResult{SettleTick: -1, Grains: 3}
	r.Params.Acceleration = 0.4
	if s := describe(r); !strings.Contains(s, "unsettled") || !strings.Contains(s, "accel=0.40") {
		t.Fatalf("unexpected description %q", s)
	}
	r.SettleTick = 12
	if s := describe(r); !strings.Contains(s, "settled@12") {
		t.Fatalf("unexpected description %q", s)
	}
}
