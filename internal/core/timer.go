package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time

	windowStart time.Time
	windowTicks int
	rate        float64
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		f.windowStart = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	// Never let a long stall queue up a burst of catch-up ticks.
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	f.windowTicks++
	if elapsed := now.Sub(f.windowStart); elapsed >= time.Second {
		f.rate = float64(f.windowTicks) / elapsed.Seconds()
		f.windowTicks = 0
		f.windowStart = now
	}
	return true
}

// ActualTPS returns the tick rate measured over the last full second.
func (f *FixedStep) ActualTPS() float64 { return f.rate }
