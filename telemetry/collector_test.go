package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/gargantua/components"
)

func TestCollector_ShouldFlush(t *testing.T) {
	c := NewCollector(1.0, 1.0/60)
	if c.WindowDurationTicks() != 60 {
		t.Fatalf("expected 60 ticks per window, got %d", c.WindowDurationTicks())
	}
	if c.ShouldFlush(59) {
		t.Error("should not flush before the window ends")
	}
	if !c.ShouldFlush(60) {
		t.Error("should flush once the window ends")
	}
}

func TestCollector_FlushDistances(t *testing.T) {
	c := NewCollector(1.0, 0.5)

	// Four particles at distance 1, 2, 3, 4 from a target at (1, 0, 0)
	field := components.NewParticleField(4)
	for i := 0; i < 4; i++ {
		field.Positions[i*3] = float32(i + 2)
	}
	state := components.NewAttractorState()
	state.Target.X = 1
	state.Mode = components.ModeSingleOpen

	c.RecordTick(components.ModeIdle, true)
	c.RecordTick(components.ModeSingleOpen, false)
	c.RecordTransition()

	stats := c.Flush(2, &state, 1, field, 0.25)

	if stats.WindowEndTick != 2 || stats.SimTimeSec != 1.0 {
		t.Errorf("expected window end 2 at 1s, got %d at %v", stats.WindowEndTick, stats.SimTimeSec)
	}
	if math.Abs(stats.DistMean-2.5) > 1e-9 {
		t.Errorf("expected mean distance 2.5, got %v", stats.DistMean)
	}
	if stats.DistP50 != 2 || stats.DistP90 != 4 {
		t.Errorf("unexpected percentiles p50=%v p90=%v", stats.DistP50, stats.DistP90)
	}
	if stats.Mode != "single_open" || stats.Hands != 1 || stats.Residual != 0.25 {
		t.Errorf("unexpected attractor fields %+v", stats)
	}
	if stats.IdleFrac != 0.5 || stats.OpenFrac != 0.5 || stats.FistFrac != 0 {
		t.Errorf("unexpected dwell fractions idle=%v open=%v fist=%v", stats.IdleFrac, stats.OpenFrac, stats.FistFrac)
	}
	if stats.Transitions != 1 || stats.FreshInputs != 1 || stats.ReusedInputs != 1 {
		t.Errorf("unexpected counters %+v", stats)
	}
}

func TestCollector_FlushResets(t *testing.T) {
	c := NewCollector(1.0, 0.5)
	field := components.NewParticleField(1)
	state := components.NewAttractorState()

	c.RecordTick(components.ModeDualWarp, true)
	c.RecordTransition()
	c.Flush(2, &state, 0, field, 0)

	stats := c.Flush(4, &state, 0, field, 0)
	if stats.WindowStartTick != 2 {
		t.Errorf("expected second window to start at 2, got %d", stats.WindowStartTick)
	}
	if stats.Transitions != 0 || stats.DualFrac != 0 || stats.FreshInputs != 0 {
		t.Errorf("counters should reset after flush, got %+v", stats)
	}
}
