package systems

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
)

// RawAttractor is the unsmoothed attractor derived from a single frame.
type RawAttractor struct {
	Target     r3.Vec
	Expansion  float64
	Attraction float64
	Imploding  bool
	Mode       components.Mode
}

// AttractorEstimator turns hand observations into attractor state.
type AttractorEstimator struct {
	smoothing     float64
	coordScale    float64
	fistThreshold float64

	openStrength      float64
	openExpansion     float64
	fistStrength      float64
	fistExpansion     float64
	dualStrength      float64
	dualBaseExpansion float64
	dualExpansionGain float64
}

// NewAttractorEstimator creates an estimator from config.
func NewAttractorEstimator(cfg *config.Config) *AttractorEstimator {
	a := cfg.Attractor
	return &AttractorEstimator{
		smoothing:         a.Smoothing,
		coordScale:        a.CoordScale,
		fistThreshold:     cfg.Gesture.FistThreshold,
		openStrength:      a.OpenStrength,
		openExpansion:     a.OpenExpansion,
		fistStrength:      a.FistStrength,
		fistExpansion:     a.FistExpansion,
		dualStrength:      a.DualStrength,
		dualBaseExpansion: a.DualBaseExpansion,
		dualExpansionGain: a.DualExpansionGain,
	}
}

// MapCoord converts a normalized landmark coordinate to world units.
// The axis is inverted so the field mirrors the user.
func (e *AttractorEstimator) MapCoord(v float32) float64 {
	return (float64(v) - 0.5) * e.coordScale
}

// Raw derives the unsmoothed attractor for the given observation.
// Hands beyond the second are ignored.
func (e *AttractorEstimator) Raw(obs components.Observation) RawAttractor {
	hands := obs.Tracked()

	switch len(hands) {
	case 0:
		return RawAttractor{Expansion: 1.0, Mode: components.ModeIdle}

	case 1:
		hand := &hands[0]
		palm := hand.Palm()
		raw := RawAttractor{
			Target: r3.Vec{X: e.MapCoord(palm.X), Y: e.MapCoord(palm.Y)},
		}
		if IsFist(hand, e.fistThreshold) {
			raw.Attraction = e.fistStrength
			raw.Expansion = e.fistExpansion
			raw.Imploding = true
			raw.Mode = components.ModeSingleFist
		} else {
			raw.Attraction = e.openStrength
			raw.Expansion = e.openExpansion
			raw.Mode = components.ModeSingleOpen
		}
		return raw

	default:
		p1 := hands[0].Palm()
		p2 := hands[1].Palm()
		mid := r3.Scale(0.5, r3.Add(
			r3.Vec{X: e.MapCoord(p1.X), Y: e.MapCoord(p1.Y)},
			r3.Vec{X: e.MapCoord(p2.X), Y: e.MapCoord(p2.Y)},
		))
		// Distance is measured in normalized image space, not world space
		dist := planarDistance(p1.X, p1.Y, p2.X, p2.Y)
		return RawAttractor{
			Target:     mid,
			Expansion:  e.dualBaseExpansion + dist*e.dualExpansionGain,
			Attraction: e.dualStrength,
			Mode:       components.ModeDualWarp,
		}
	}
}

// Smooth applies one exponential smoothing step toward raw.
// Target and Expansion lag behind; Attraction, Imploding and Mode switch
// immediately.
func (e *AttractorEstimator) Smooth(state *components.AttractorState, raw RawAttractor) {
	state.Target = r3.Add(state.Target, r3.Scale(e.smoothing, r3.Sub(raw.Target, state.Target)))
	state.Expansion = lerp64(state.Expansion, raw.Expansion, e.smoothing)
	state.Attraction = raw.Attraction
	state.Imploding = raw.Imploding
	state.Mode = raw.Mode
}

// Update derives the raw attractor from obs and folds it into state.
// Returns the previous mode and whether it changed this frame.
func (e *AttractorEstimator) Update(state *components.AttractorState, obs components.Observation) (prev components.Mode, changed bool) {
	prev = state.Mode
	e.Smooth(state, e.Raw(obs))
	return prev, prev != state.Mode
}
