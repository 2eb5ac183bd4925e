package game

import (
	"log/slog"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/systems"
	"github.com/pthm-cable/gargantua/telemetry"
)

// recordTransition logs and stores a gesture mode change.
func (g *Game) recordTransition(prev components.Mode) {
	g.collector.RecordTransition()
	t := telemetry.NewTransition(g.sim.Tick(), g.simTime, prev, g.sim.State.Mode, g.hands)

	if g.logStats {
		slog.Info("mode transition", "transition", t)
	}
	if err := g.outputManager.WriteTransition(t); err != nil {
		slog.Error("failed to write transition", "error", err)
	}
}

// flushTelemetry writes a stats window once enough ticks have passed.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	residual := systems.MeanResidual(g.sim.Field, &g.sim.State)
	stats := g.collector.Flush(tick, &g.sim.State, g.hands, g.sim.Field, residual)
	perfStats := g.perfCollector.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
