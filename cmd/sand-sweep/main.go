package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"
	"time"

	"powder/internal/sims/sand"
)

func main() {
	steps := flag.Int("steps", 3000, "tick budget per scenario")
	pour := flag.Int("pour", 400, "ticks during which the spout drops grains")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	width := flag.Int("width", 128, "grid width for sweep runs")
	height := flag.Int("height", 96, "grid height for sweep runs")
	seed := flag.Int64("seed", 1337, "seed used for deterministic runs")
	accelList := flag.String("accel", "0.1,0.2,0.4,0.8", "comma-separated accelerations to try")
	speedList := flag.String("max-speed", "2,4,8,16", "comma-separated max speeds to try")
	top := flag.Int("top", 5, "results to print")
	flag.Parse()

	accels, err := parseFloats(*accelList)
	if err != nil {
		log.Fatalf("accel: %v", err)
	}
	speeds, err := parseFloats(*speedList)
	if err != nil {
		log.Fatalf("max-speed: %v", err)
	}

	cfg := sand.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	cfg.Seed = *seed

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, pour %d)\n", len(accels)*len(speeds), *workers, *steps, *pour)
	start := time.Now()
	results := sand.PileSweep(cfg, accels, speeds, *pour, *steps, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(results)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, describe(results[i]))
	}
}

func describe(r sand.PileResult) string {
	settle := "unsettled"
	if r.SettleTick >= 0 {
		settle = fmt.Sprintf("settled@%d", r.SettleTick)
	}
	return fmt.Sprintf("accel=%.2f maxSpeed=%.1f %s grains=%d width=%d height=%d balance=%+.3f",
		r.Params.Acceleration, r.Params.MaxSpeed, settle, r.Grains, r.Width, r.Height, r.Balance)
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", part, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("value %q must be positive", part)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}
