package camera

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/gargantua/config"
)

func newTestCamera() *Camera {
	return New(config.Defaults())
}

func TestNew(t *testing.T) {
	cam := newTestCamera()

	if cam.Position != (r3.Vec{Z: 15}) {
		t.Errorf("expected camera at (0, 0, 15), got %v", cam.Position)
	}
	if cam.FovY != 60 || cam.PointScale != 300 {
		t.Errorf("expected fov 60 and k 300, got %v and %v", cam.FovY, cam.PointScale)
	}
	if f := cam.Forward(); f != (r3.Vec{Z: -1}) {
		t.Errorf("expected forward (0, 0, -1), got %v", f)
	}
}

func TestViewZ(t *testing.T) {
	cam := newTestCamera()

	if z := cam.ViewZ(r3.Vec{}); z != -15 {
		t.Errorf("origin should be at view depth -15, got %v", z)
	}
	// Lateral offset does not change depth
	if z := cam.ViewZ(r3.Vec{X: 5, Y: -3, Z: 5}); z != -10 {
		t.Errorf("expected view depth -10, got %v", z)
	}
}

func TestPointSize(t *testing.T) {
	cam := newTestCamera()

	// 0.1 * 300 / 15
	if s := cam.PointSize(0.1, r3.Vec{}); math.Abs(s-2) > 1e-9 {
		t.Errorf("expected 2px at the origin, got %v", s)
	}
	// Closer particles are larger
	near := cam.PointSize(0.1, r3.Vec{Z: 10})
	if math.Abs(near-6) > 1e-9 {
		t.Errorf("expected 6px at depth 5, got %v", near)
	}
	if s := cam.PointSize(0.1, r3.Vec{Z: 20}); s != 0 {
		t.Errorf("points behind the camera should have size 0, got %v", s)
	}
}

func TestBillboardSizeMatchesPointSize(t *testing.T) {
	cam := newTestCamera()
	const screenH = 720
	fov := cam.FovY * math.Pi / 180

	for _, z := range []float64{-5, 0, 5, 12} {
		p := r3.Vec{X: 1, Z: z}
		depth := -cam.ViewZ(p)
		world := cam.BillboardSize(0.1, screenH)
		// Projected height of a quad of that width at that depth
		pixels := world * screenH / (2 * math.Tan(fov/2) * depth)
		if want := cam.PointSize(0.1, p); math.Abs(pixels-want) > 1e-9 {
			t.Errorf("z=%v: billboard covers %vpx, want %vpx", z, pixels, want)
		}
	}
}

func TestRotateY(t *testing.T) {
	x, z := RotateY(1, 0, math.Pi/2)
	if math.Abs(float64(x)) > 1e-6 || math.Abs(float64(z+1)) > 1e-6 {
		t.Errorf("quarter turn of (1, 0) should give (0, -1), got (%v, %v)", x, z)
	}

	// Rotation preserves radius
	x, z = RotateY(3, 4, 1.234)
	if r := math.Hypot(float64(x), float64(z)); math.Abs(r-5) > 1e-5 {
		t.Errorf("expected radius 5 after rotation, got %v", r)
	}

	x, z = RotateY(2, -1, 0)
	if x != 2 || z != -1 {
		t.Errorf("zero rotation should be identity, got (%v, %v)", x, z)
	}
}
