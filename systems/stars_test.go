package systems

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestGenerateStars(t *testing.T) {
	stars := GenerateStars(5000, 100, 50, rand.New(rand.NewSource(1)))
	if len(stars) != 5000 {
		t.Fatalf("expected 5000 stars, got %d", len(stars))
	}

	var above int
	for i, s := range stars {
		r := r3.Norm(s.Pos)
		if r < 100-1e-9 || r > 150+1e-9 {
			t.Fatalf("star %d at radius %v outside [100, 150]", i, r)
		}
		if s.Brightness < 0.4 || s.Brightness > 1 {
			t.Fatalf("star %d brightness %v outside [0.4, 1]", i, s.Brightness)
		}
		if s.Pos.Y > 0 {
			above++
		}
	}

	// Directions are uniform, so roughly half the sky is above the disk
	if above < 2300 || above > 2700 {
		t.Errorf("expected about half the stars above the plane, got %d", above)
	}
}
