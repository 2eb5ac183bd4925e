package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Star is one background star.
type Star struct {
	Pos        r3.Vec
	Brightness float32
}

// GenerateStars scatters count stars uniformly over directions on a shell
// between radius and radius+depth.
func GenerateStars(count int, radius, depth float64, rng *rand.Rand) []Star {
	stars := make([]Star, count)
	for i := range stars {
		// Uniform direction via normalized cosine of the polar angle
		u := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		s := math.Sqrt(1 - u*u)
		dir := r3.Vec{X: s * math.Cos(theta), Y: u, Z: s * math.Sin(theta)}

		r := radius + rng.Float64()*depth
		stars[i] = Star{
			Pos:        r3.Scale(r, dir),
			Brightness: float32(0.4 + 0.6*rng.Float64()),
		}
	}
	return stars
}
