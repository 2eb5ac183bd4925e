// Package telemetry provides frame timing, windowed attractor and particle
// statistics, mode transition events and CSV output.
package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/gargantua/components"
)

// Transition records a change of attractor mode.
type Transition struct {
	Tick    int64   `csv:"tick"`
	SimTime float64 `csv:"sim_time"`
	From    string  `csv:"from"`
	To      string  `csv:"to"`
	Hands   int     `csv:"hands"`
}

// NewTransition creates a transition event.
func NewTransition(tick int64, simTime float64, from, to components.Mode, hands int) Transition {
	return Transition{
		Tick:    tick,
		SimTime: simTime,
		From:    from.String(),
		To:      to.String(),
		Hands:   hands,
	}
}

// LogValue implements slog.LogValuer.
func (t Transition) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("tick", t.Tick),
		slog.Float64("sim_time", t.SimTime),
		slog.String("from", t.From),
		slog.String("to", t.To),
		slog.Int("hands", t.Hands),
	)
}
