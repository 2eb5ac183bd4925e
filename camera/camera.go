// Package camera provides the fixed perspective camera the particle field is
// viewed through and the point size contract of the renderer.
package camera

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/gargantua/config"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec

	// Vertical field of view in degrees
	FovY float64

	// PointScale is k in size * k / -viewZ
	PointScale float64
}

// New creates a camera from the camera section of the config.
func New(cfg *config.Config) *Camera {
	c := cfg.Camera
	return &Camera{
		Position:   r3.Vec{X: c.Position[0], Y: c.Position[1], Z: c.Position[2]},
		Target:     r3.Vec{X: c.Target[0], Y: c.Target[1], Z: c.Target[2]},
		Up:         r3.Vec{Y: 1},
		FovY:       c.FovY,
		PointScale: c.PointScale,
	}
}

// Forward returns the unit view direction.
func (c *Camera) Forward() r3.Vec {
	return r3.Unit(r3.Sub(c.Target, c.Position))
}

// ViewZ returns the view-space depth of p. Points in front of the camera
// have negative depth.
func (c *Camera) ViewZ(p r3.Vec) float64 {
	return -r3.Dot(r3.Sub(p, c.Position), c.Forward())
}

// PointSize returns the on-screen diameter in pixels of a particle of the
// given size at p. Points at or behind the camera have size 0.
func (c *Camera) PointSize(size float64, p r3.Vec) float64 {
	z := c.ViewZ(p)
	if z >= 0 {
		return 0
	}
	return size * c.PointScale / -z
}

// BillboardSize returns the world-space width of a camera-facing quad that
// covers PointSize pixels at any depth on a viewport screenH pixels tall.
func (c *Camera) BillboardSize(size, screenH float64) float64 {
	fov := c.FovY * math.Pi / 180
	return size * c.PointScale * 2 * math.Tan(fov/2) / screenH
}

// RotateY rotates (x, z) about the Y axis by angle radians,
// counter-clockwise when seen from above.
func RotateY(x, z, angle float32) (float32, float32) {
	s, co := math.Sincos(float64(angle))
	sin, cos := float32(s), float32(co)
	return x*cos + z*sin, -x*sin + z*cos
}
