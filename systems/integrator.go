package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
)

// Integrator advances every particle one frame toward the attractor.
//
// Easing is linear in dt (pos += (target-pos)*dt*speed) and is not clamped,
// so very large frame times overshoot.
type Integrator struct {
	rng *rand.Rand

	attractSpeed  float32
	implodeSpeed  float32
	relaxSpeed    float32
	implodeJitter float32
	ambientJitter float32
	rotationSpeed float64

	// Rotation is the accumulated field rotation about the vertical axis in
	// radians. The renderer applies it; particle positions stay unrotated.
	Rotation float64
}

// NewIntegrator creates an integrator drawing jitter from rng.
func NewIntegrator(cfg *config.Config, rng *rand.Rand) *Integrator {
	ic := cfg.Integrator
	return &Integrator{
		rng:           rng,
		attractSpeed:  float32(ic.AttractSpeed),
		implodeSpeed:  float32(ic.ImplodeSpeed),
		relaxSpeed:    float32(ic.RelaxSpeed),
		implodeJitter: float32(ic.ImplodeJitter),
		ambientJitter: float32(ic.AmbientJitter),
		rotationSpeed: ic.RotationSpeed,
	}
}

// Update moves every particle in field one step of dt seconds.
func (in *Integrator) Update(field *components.ParticleField, dt float32, state *components.AttractorState) {
	in.Rotation += float64(dt) * in.rotationSpeed

	tx := float32(state.Target.X)
	ty := float32(state.Target.Y)
	tz := float32(state.Target.Z)
	expansion := float32(state.Expansion)
	attracting := state.Attraction > 0

	speed := in.attractSpeed
	if state.Imploding {
		speed = in.implodeSpeed
	}

	pos := field.Positions
	orig := field.Origins
	n := field.Len()

	for i := 0; i < n; i++ {
		ix, iy, iz := i*3, i*3+1, i*3+2
		ox, oy, oz := orig[ix], orig[iy], orig[iz]
		px, py, pz := pos[ix], pos[iy], pos[iz]

		if attracting {
			destX := tx + ox*expansion
			destY := ty + oy*expansion
			destZ := tz + oz*expansion

			k := dt * speed
			px += (destX - px) * k
			py += (destY - py) * k
			pz += (destZ - pz) * k

			if state.Imploding {
				px += in.jitter(in.implodeJitter)
				py += in.jitter(in.implodeJitter)
				pz += in.jitter(in.implodeJitter)
			}
		} else {
			// Relax toward the particle's own rest position
			k := dt * in.relaxSpeed
			px += (ox - px) * k
			py += (oy - py) * k
			pz += (oz - pz) * k
		}

		px += in.jitter(in.ambientJitter)
		py += in.jitter(in.ambientJitter)
		pz += in.jitter(in.ambientJitter)

		pos[ix], pos[iy], pos[iz] = px, py, pz
	}

	field.MarkDirty()
}

func (in *Integrator) jitter(width float32) float32 {
	return centered(in.rng.Float64(), width)
}

// Target returns where particle i is being pulled under state: its scaled
// offset from the attractor, or its own origin when nothing attracts.
func Target(field *components.ParticleField, i int, state *components.AttractorState) (x, y, z float32) {
	ox, oy, oz := field.Origin(i)
	if state.Attraction <= 0 {
		return ox, oy, oz
	}
	e := float32(state.Expansion)
	return float32(state.Target.X) + ox*e, float32(state.Target.Y) + oy*e, float32(state.Target.Z) + oz*e
}

// MeanResidual returns the mean distance of particles from their targets.
// It approaches the jitter floor once the field has settled.
func MeanResidual(field *components.ParticleField, state *components.AttractorState) float64 {
	n := field.Len()
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		x, y, z := field.Position(i)
		tx, ty, tz := Target(field, i, state)
		dx, dy, dz := float64(x-tx), float64(y-ty), float64(z-tz)
		sum += math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return sum / float64(n)
}
