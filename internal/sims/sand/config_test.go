package sand

import (
	"math"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "48",
		"seed":              "9",
		"accel":             "0.25",
		"max_speed":         "4",
		"lightness_jitter":  "0",
		"saturation_jitter": "1.5",
	})
	if c.Width != 64 || c.Height != 48 || c.Seed != 9 {
		t.Fatalf("dimensions/seed not applied: %+v", c)
	}
	if c.Params.Acceleration != 0.25 || c.Params.MaxSpeed != 4 {
		t.Fatalf("motion params not applied: %+v", c.Params)
	}
	if c.Params.LightnessJitter != 0 {
		t.Fatalf("lightness jitter should accept 0, got %f", c.Params.LightnessJitter)
	}
	if c.Params.SaturationJitter != DefaultConfig().Params.SaturationJitter {
		t.Fatalf("out-of-range saturation jitter should be ignored, got %f", c.Params.SaturationJitter)
	}
}

func TestFromMapIgnoresGarbage(t *testing.T) {
	c := FromMap(map[string]string{"w": "-3", "h": "x", "accel": "fast"})
	if c != DefaultConfig() {
		t.Fatalf("invalid values should keep defaults, got %+v", c)
	}
	if FromMap(nil) != DefaultConfig() {
		t.Fatal("nil map should return defaults")
	}
}

func TestSetFloatParameterClamps(t *testing.T) {
	g := New(4, 4)
	if !g.SetFloatParameter("accel", 0.6) {
		t.Fatal("accel should be adjustable")
	}
	if got := g.Config().Params.Acceleration; math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("expected accel 0.6, got %f", got)
	}
	if !g.SetFloatParameter("max_speed", 1000) {
		t.Fatal("setter should clamp values above max")
	}
	if got := g.Config().Params.MaxSpeed; got != 32 {
		t.Fatalf("expected max speed to clamp to 32, got %f", got)
	}
	if g.SetFloatParameter("gravity", 1) {
		t.Fatal("unknown keys should be rejected")
	}
	if g.SetFloatParameter("accel", math.NaN()) {
		t.Fatal("NaN should be rejected")
	}
}

func TestParametersReportCensus(t *testing.T) {
	g := New(4, 4)
	g.Set(0, 0, Granular)
	g.Set(1, 0, Granular)
	g.Set(0, 3, Static)
	snap := g.Parameters()
	if p, ok := snap.Lookup("count_sand"); !ok || p.Value != "2" {
		t.Fatalf("count_sand = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("count_wood"); !ok || p.Value != "1" {
		t.Fatalf("count_wood = %+v, %v", p, ok)
	}
	if p, ok := snap.Lookup("accel"); !ok || p.Value != "0.4" {
		t.Fatalf("accel = %+v, %v", p, ok)
	}
}
