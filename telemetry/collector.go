package telemetry

import (
	"math"

	"github.com/pthm-cable/gargantua/components"
)

// Collector accumulates per-tick observations within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int64
	dt                  float32

	windowStartTick int64

	// Counters for the current window
	modeTicks   [components.NumModes]int
	ticks       int
	transitions int
	fresh       int
	reused      int

	// Reused across flushes
	distances []float64
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int64(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordTick records the mode the attractor was in for one tick and whether
// that tick picked up a new observation.
func (c *Collector) RecordTick(mode components.Mode, freshInput bool) {
	if int(mode) < len(c.modeTicks) {
		c.modeTicks[mode]++
	}
	c.ticks++
	if freshInput {
		c.fresh++
	} else {
		c.reused++
	}
}

// RecordTransition counts a mode change.
func (c *Collector) RecordTransition() {
	c.transitions++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// residual is the mean distance of particles from their easing targets.
func (c *Collector) Flush(
	currentTick int64,
	state *components.AttractorState,
	hands int,
	field *components.ParticleField,
	residual float64,
) WindowStats {
	c.distances = c.distances[:0]
	tx, ty, tz := float32(state.Target.X), float32(state.Target.Y), float32(state.Target.Z)
	for i := 0; i < field.Len(); i++ {
		x, y, z := field.Position(i)
		dx, dy, dz := x-tx, y-ty, z-tz
		c.distances = append(c.distances, math.Sqrt(float64(dx*dx+dy*dy+dz*dz)))
	}
	mean, std, p10, p50, p90 := ComputeDistanceStats(c.distances)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),

		Mode:       state.Mode.String(),
		Hands:      hands,
		TargetX:    state.Target.X,
		TargetY:    state.Target.Y,
		TargetZ:    state.Target.Z,
		Expansion:  state.Expansion,
		Attraction: state.Attraction,

		DistMean: mean,
		DistStd:  std,
		DistP10:  p10,
		DistP50:  p50,
		DistP90:  p90,
		Residual: residual,

		Transitions:  c.transitions,
		FreshInputs:  c.fresh,
		ReusedInputs: c.reused,
	}
	if c.ticks > 0 {
		n := float64(c.ticks)
		stats.IdleFrac = float64(c.modeTicks[components.ModeIdle]) / n
		stats.OpenFrac = float64(c.modeTicks[components.ModeSingleOpen]) / n
		stats.FistFrac = float64(c.modeTicks[components.ModeSingleFist]) / n
		stats.DualFrac = float64(c.modeTicks[components.ModeDualWarp]) / n
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.modeTicks = [components.NumModes]int{}
	c.ticks = 0
	c.transitions = 0
	c.fresh = 0
	c.reused = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int64 {
	return c.windowDurationTicks
}
