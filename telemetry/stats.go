package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Attractor at window end
	Mode       string  `csv:"mode"`
	Hands      int     `csv:"hands"`
	TargetX    float64 `csv:"target_x"`
	TargetY    float64 `csv:"target_y"`
	TargetZ    float64 `csv:"target_z"`
	Expansion  float64 `csv:"expansion"`
	Attraction float64 `csv:"attraction"`

	// Particle distance from the attractor target at window end
	DistMean float64 `csv:"dist_mean"`
	DistStd  float64 `csv:"dist_std"`
	DistP10  float64 `csv:"dist_p10"`
	DistP50  float64 `csv:"dist_p50"`
	DistP90  float64 `csv:"dist_p90"`

	// Mean distance of particles from where easing is taking them
	Residual float64 `csv:"residual"`

	// Share of window ticks spent in each mode
	IdleFrac float64 `csv:"idle_frac"`
	OpenFrac float64 `csv:"open_frac"`
	FistFrac float64 `csv:"fist_frac"`
	DualFrac float64 `csv:"dual_frac"`

	Transitions  int `csv:"transitions"`
	FreshInputs  int `csv:"fresh_inputs"`
	ReusedInputs int `csv:"reused_inputs"`
}

// ComputeDistanceStats returns mean, standard deviation and the 10th, 50th
// and 90th percentiles of values. values is sorted in place.
func ComputeDistanceStats(values []float64) (mean, std, p10, p50, p90 float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0, 0
	}
	sort.Float64s(values)

	mean, std = stat.PopMeanStdDev(values, nil)
	p10 = stat.Quantile(0.10, stat.Empirical, values, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, values, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, values, nil)
	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.String("mode", s.Mode),
		slog.Int("hands", s.Hands),
		slog.Float64("target_x", s.TargetX),
		slog.Float64("target_y", s.TargetY),
		slog.Float64("expansion", s.Expansion),
		slog.Float64("attraction", s.Attraction),
		slog.Float64("dist_mean", s.DistMean),
		slog.Float64("dist_p50", s.DistP50),
		slog.Float64("residual", s.Residual),
		slog.Int("transitions", s.Transitions),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"mode", s.Mode,
		"hands", s.Hands,
		"target_x", s.TargetX,
		"target_y", s.TargetY,
		"target_z", s.TargetZ,
		"expansion", s.Expansion,
		"attraction", s.Attraction,
		"dist_mean", s.DistMean,
		"dist_std", s.DistStd,
		"dist_p10", s.DistP10,
		"dist_p50", s.DistP50,
		"dist_p90", s.DistP90,
		"residual", s.Residual,
		"idle_frac", s.IdleFrac,
		"open_frac", s.OpenFrac,
		"fist_frac", s.FistFrac,
		"dual_frac", s.DualFrac,
		"transitions", s.Transitions,
		"fresh_inputs", s.FreshInputs,
		"reused_inputs", s.ReusedInputs,
	)
}
