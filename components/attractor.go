package components

import "gonum.org/v1/gonum/spatial/r3"

// Mode classifies the current gesture input.
type Mode uint8

const (
	ModeIdle       Mode = iota // no hands
	ModeSingleOpen             // one open hand
	ModeSingleFist             // one closed hand
	ModeDualWarp               // two or more hands

	NumModes = 4
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeSingleOpen:
		return "single_open"
	case ModeSingleFist:
		return "single_fist"
	case ModeDualWarp:
		return "dual_warp"
	default:
		return "unknown"
	}
}

// AttractorState is the smoothed attractor the particles ease toward.
// Target and Expansion are filtered; Attraction, Imploding and Mode follow
// the latest frame directly.
type AttractorState struct {
	Target     r3.Vec
	Expansion  float64
	Attraction float64
	Imploding  bool
	Mode       Mode
}

// NewAttractorState returns the resting state: origin target, unit expansion,
// no attraction.
func NewAttractorState() AttractorState {
	return AttractorState{Expansion: 1.0}
}
