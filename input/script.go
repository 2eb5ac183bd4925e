package input

import (
	"context"
	"math"
	"time"

	"github.com/pthm-cable/gargantua/components"
)

// Phase is one segment of a scripted demo.
type Phase struct {
	Mode     components.Mode
	Duration float64 // seconds
}

// DefaultPhases walks through every gesture mode.
var DefaultPhases = []Phase{
	{components.ModeIdle, 3},
	{components.ModeSingleOpen, 5},
	{components.ModeSingleFist, 3},
	{components.ModeSingleOpen, 3},
	{components.ModeDualWarp, 6},
	{components.ModeIdle, 4},
}

// Script produces synthetic observations that cycle through phases, for
// headless runs and demos without a hand tracker.
type Script struct {
	phases []Phase
	total  float64
	spread float32
}

// NewScript creates a script. spread is the fingertip distance of an open hand.
func NewScript(phases []Phase, spread float32) *Script {
	var total float64
	for _, p := range phases {
		total += p.Duration
	}
	return &Script{phases: phases, total: total, spread: spread}
}

// PhaseAt returns the phase active at t seconds and the time spent in it.
func (s *Script) PhaseAt(t float64) (Phase, float64) {
	if s.total <= 0 {
		return Phase{Mode: components.ModeIdle}, 0
	}
	t = math.Mod(t, s.total)
	for _, p := range s.phases {
		if t < p.Duration {
			return p, t
		}
		t -= p.Duration
	}
	last := s.phases[len(s.phases)-1]
	return last, last.Duration
}

// At returns the observation for t seconds into the script.
func (s *Script) At(t float64) components.Observation {
	phase, local := s.PhaseAt(t)

	// Palm drifts on a slow ellipse so the attractor keeps moving
	cx := float32(0.5 + 0.15*math.Cos(t*0.8))
	cy := float32(0.5 + 0.1*math.Sin(t*0.8))

	switch phase.Mode {
	case components.ModeSingleOpen:
		return components.Observation{SyntheticHand(cx, cy, s.spread)}
	case components.ModeSingleFist:
		return components.Observation{SyntheticHand(cx, cy, 0)}
	case components.ModeDualWarp:
		// Hands breathe apart and together
		gap := float32(0.05 + 0.15*(1-math.Cos(local*1.2))/2)
		return components.Observation{
			SyntheticHand(0.5-gap, 0.5, s.spread),
			SyntheticHand(0.5+gap, 0.5, s.spread),
		}
	default:
		return components.Observation{}
	}
}

// Run publishes observations to slot every interval until ctx is done,
// like an independent tracker would.
func (s *Script) Run(ctx context.Context, slot *Slot, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			slot.Put(s.At(now.Sub(start).Seconds()))
		}
	}
}
