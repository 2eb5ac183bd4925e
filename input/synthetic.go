package input

import (
	"math"

	"github.com/pthm-cable/gargantua/components"
)

// palmToWrist is the distance from the palm centre down to the wrist.
const palmToWrist = 0.08

// SyntheticHand builds a plausible hand with the palm centre (landmark 9) at
// (cx, cy) and every fingertip exactly spread away from the wrist. A spread
// below the fist threshold yields a closed hand.
func SyntheticHand(cx, cy, spread float32) components.Hand {
	var h components.Hand
	wrist := components.Landmark{X: cx, Y: cy + palmToWrist}

	// Interior joints sit on the segment from wrist to palm
	for i := range h {
		t := float32(i%4+1) / 5
		h[i] = components.Landmark{
			X: wrist.X + (cx-wrist.X)*t,
			Y: wrist.Y + (cy-wrist.Y)*t,
		}
	}
	h[components.Wrist] = wrist
	h[components.MiddleBase] = components.Landmark{X: cx, Y: cy}

	// Fingertips fan out upward from the wrist
	for n, idx := range components.FingerTips {
		angle := -math.Pi/2 + (float64(n)-1.5)*0.2
		h[idx] = components.Landmark{
			X: wrist.X + spread*float32(math.Cos(angle)),
			Y: wrist.Y + spread*float32(math.Sin(angle)),
		}
	}
	return h
}

// ScreenToLandmark maps a screen position to landmark space. X is mirrored
// so that moving right on screen moves the attractor right, as a webcam
// preview would show it.
func ScreenToLandmark(sx, sy, width, height float32) (x, y float32) {
	return 1 - sx/width, sy / height
}
