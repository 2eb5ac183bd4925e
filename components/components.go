// Package components defines the data types shared by the simulation,
// the input adapters and the renderer.
package components

// Landmark is a tracked hand point.
// X and Y are normalized to [0,1] in image space, Z is relative depth.
type Landmark struct {
	X, Y, Z float32
}

// LandmarksPerHand is the fixed landmark count produced by the hand tracker.
const LandmarksPerHand = 21

// Landmark indices with fixed anatomical meaning.
const (
	Wrist      = 0
	IndexTip   = 8
	MiddleBase = 9 // palm centre proxy
	MiddleTip  = 12
	RingTip    = 16
	PinkyTip   = 20
)

// FingerTips lists the four fingertip indices (thumb excluded).
var FingerTips = [4]int{IndexTip, MiddleTip, RingTip, PinkyTip}

// Hand is one tracked hand.
type Hand [LandmarksPerHand]Landmark

// Palm returns the palm centre landmark.
func (h *Hand) Palm() Landmark {
	return h[MiddleBase]
}

// Observation is the set of hands seen in one frame.
// Producers must not mutate an Observation after handing it off.
type Observation []Hand

// MaxTrackedHands is how many hands the attractor logic considers.
// Additional hands are ignored.
const MaxTrackedHands = 2

// Tracked returns at most MaxTrackedHands hands.
func (o Observation) Tracked() Observation {
	if len(o) > MaxTrackedHands {
		return o[:MaxTrackedHands]
	}
	return o
}
