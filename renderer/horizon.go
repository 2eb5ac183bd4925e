package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/config"
)

// ringColor is #ffaa00.
var ringColor = rl.Color{R: 0xff, G: 0xaa, B: 0x00, A: 0xff}

// ringStrands is how many circles approximate the ring's thickness.
const ringStrands = 5

// HorizonRenderer draws the black event horizon sphere and the glowing ring
// around it at the attractor target.
type HorizonRenderer struct {
	sphereRadius  float32
	ringRadius    float32
	ringThickness float32
	ringColor     rl.Color
}

// NewHorizonRenderer creates a horizon renderer from the horizon config.
func NewHorizonRenderer(cfg *config.Config) *HorizonRenderer {
	h := cfg.Horizon
	c := ringColor
	c.A = unit8(float32(h.RingOpacity))
	return &HorizonRenderer{
		sphereRadius:  float32(h.SphereRadius),
		ringRadius:    float32(h.RingRadius),
		ringThickness: float32(h.RingThickness),
		ringColor:     c,
	}
}

// Draw renders the horizon centred on target. Must be called inside
// BeginMode3D, before the particles so they glow over it.
func (h *HorizonRenderer) Draw(target rl.Vector3) {
	rl.DrawSphereEx(target, h.sphereRadius, 32, 32, rl.Black)

	// Horizontal ring: circles lie in XY, rotate 90 degrees about X
	axis := rl.NewVector3(1, 0, 0)
	for s := 0; s < ringStrands; s++ {
		off := (float32(s)/float32(ringStrands-1) - 0.5) * h.ringThickness
		center := rl.NewVector3(target.X, target.Y+off/2, target.Z)
		rl.DrawCircle3D(center, h.ringRadius+off, axis, 90, h.ringColor)
	}
}
