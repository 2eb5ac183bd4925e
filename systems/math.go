package systems

import "math"

// lerp64 blends a toward b by t.
func lerp64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// planarDistance returns the x,y distance between two points, ignoring z.
func planarDistance(x1, y1, x2, y2 float32) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}

// centered returns a uniform sample in [-width/2, width/2).
func centered(r float64, width float32) float32 {
	return float32(r-0.5) * width
}
