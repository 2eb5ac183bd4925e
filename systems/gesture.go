package systems

import "github.com/pthm-cable/gargantua/components"

// FingertipSpread returns the mean planar distance from the wrist to the
// four fingertips, in normalized image units.
func FingertipSpread(hand *components.Hand) float64 {
	wrist := hand[components.Wrist]
	var sum float64
	for _, idx := range components.FingerTips {
		tip := hand[idx]
		sum += planarDistance(tip.X, tip.Y, wrist.X, wrist.Y)
	}
	return sum / float64(len(components.FingerTips))
}

// IsFist reports whether the hand is closed: the fingertips sit on average
// strictly closer than threshold to the wrist.
func IsFist(hand *components.Hand, threshold float64) bool {
	return FingertipSpread(hand) < threshold
}
