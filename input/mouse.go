package input

import "github.com/pthm-cable/gargantua/components"

// MouseHands turns a pointer into hand observations so the field can be
// driven without a tracker. The pointer is the palm of the first hand; the
// optional second hand mirrors it across the vertical centre line.
type MouseHands struct {
	Enabled bool
	Second  bool
	Spread  float32 // fingertip distance of an open hand
}

// Observation builds the observation for a pointer at (sx, sy) on a
// width x height screen. fist closes every simulated hand.
func (m *MouseHands) Observation(sx, sy, width, height float32, fist bool) components.Observation {
	if !m.Enabled {
		return nil
	}
	x, y := ScreenToLandmark(sx, sy, width, height)
	spread := m.Spread
	if fist {
		spread = 0
	}

	obs := components.Observation{SyntheticHand(x, y, spread)}
	if m.Second {
		obs = append(obs, SyntheticHand(1-x, y, spread))
	}
	return obs
}
