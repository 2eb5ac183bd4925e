package systems

import "math"

// GlowExponent sharpens the sprite falloff.
const GlowExponent = 1.5

// Glow returns the alpha of a point sprite at normalized distance r from its
// centre, where r = 0.5 is the sprite edge. Outside the edge the fragment is
// discarded, reported as ok=false.
func Glow(r float64) (alpha float64, ok bool) {
	if r > 0.5 {
		return 0, false
	}
	return math.Pow(1-2*r, GlowExponent), true
}

// GlowSprite bakes Glow into a size x size alpha mask, row major, sampled at
// pixel centres.
func GlowSprite(size int) []float64 {
	alpha := make([]float64, size*size)
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x) + 0.5 - half) / float64(size)
			dy := (float64(y) + 0.5 - half) / float64(size)
			a, _ := Glow(math.Hypot(dx, dy))
			alpha[y*size+x] = a
		}
	}
	return alpha
}
