package sand

import (
	"sort"
	"sync"
)

// PileResult captures telemetry from a deterministic pour used for tuning the
// motion parameters.
type PileResult struct {
	Params Params
	// Grains is the number of sand cells on the grid at the end of the run.
	Grains int
	// SettleTick is the first tick after pouring stopped at which nothing
	// moved, or -1 when the pile was still moving at the end of the run.
	SettleTick int
	// Width spans the leftmost to rightmost grain, inclusive.
	Width int
	// Height is the number of rows between the floor and the highest grain.
	Height int
	// Balance is (right - left) / grains measured around the spout column.
	// A fair coin keeps it near zero.
	Balance float64
	// StepsSimulated reports how many ticks ran.
	StepsSimulated int
}

// PourResult drops one grain per tick from a spout at the top centre onto a
// Static floor for pourTicks ticks and keeps ticking until the pile settles
// or steps ticks have run.
func PourResult(cfg Config, pourTicks, steps int) PileResult {
	if steps <= 0 {
		steps = 600
	}
	if pourTicks < 0 {
		pourTicks = 0
	}
	g := NewWithConfig(cfg)
	size := g.Size()
	for x := 0; x < size.W; x++ {
		g.Set(x, size.H-1, Static)
	}
	spout := size.W / 2

	res := PileResult{Params: g.cfg.Params, SettleTick: -1}
	for step := 0; step < steps; step++ {
		if step < pourTicks {
			g.Set(spout, 0, Granular)
		}
		g.Update()
		res.StepsSimulated = step + 1
		if step >= pourTicks && g.Settled() {
			res.SettleTick = step + 1
			break
		}
	}

	minX, maxX, minY := size.W, -1, size.H
	left, right := 0, 0
	for i := range g.cells {
		c := &g.cells[i]
		if c.Kind != Granular {
			continue
		}
		res.Grains++
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		switch {
		case c.X < spout:
			left++
		case c.X > spout:
			right++
		}
	}
	if res.Grains > 0 {
		res.Width = maxX - minX + 1
		res.Height = size.H - 1 - minY
		res.Balance = float64(right-left) / float64(res.Grains)
	}
	return res
}

// PileSweep evaluates every acceleration × max-speed pair on a pool of
// workers. Each worker owns its grids. Results are ordered by settle time,
// unsettled runs last.
func PileSweep(base Config, accels, speeds []float64, pourTicks, steps, workers int) []PileResult {
	if workers <= 0 {
		workers = 1
	}
	jobs := make(chan Params)
	results := make(chan PileResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				cfg := base
				cfg.Params = params
				results <- PourResult(cfg, pourTicks, steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, a := range accels {
			for _, s := range speeds {
				p := base.Params
				p.Acceleration = a
				p.MaxSpeed = s
				jobs <- p
			}
		}
		close(jobs)
	}()

	var all []PileResult
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool { return fasterSettle(all[i], all[j]) })
	return all
}

func fasterSettle(a, b PileResult) bool {
	switch {
	case a.SettleTick < 0 && b.SettleTick < 0:
	case a.SettleTick < 0:
		return false
	case b.SettleTick < 0:
		return true
	case a.SettleTick != b.SettleTick:
		return a.SettleTick < b.SettleTick
	}
	if a.Params.Acceleration != b.Params.Acceleration {
		return a.Params.Acceleration < b.Params.Acceleration
	}
	return a.Params.MaxSpeed < b.Params.MaxSpeed
}
