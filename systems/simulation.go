package systems

import (
	"math/rand"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
)

// Simulation owns the particle field and attractor state and advances both
// once per frame. It has no loop of its own; the caller drives Step.
type Simulation struct {
	Field      *components.ParticleField
	State      components.AttractorState
	Estimator  *AttractorEstimator
	Integrator *Integrator

	tick int64
}

// NewSimulation generates a field from seed and wires the estimator and
// integrator. Field layout and jitter use separate streams derived from seed.
func NewSimulation(cfg *config.Config, seed int64) *Simulation {
	fieldRng := rand.New(rand.NewSource(seed))
	jitterRng := rand.New(rand.NewSource(seed ^ 0x5eed))

	return &Simulation{
		Field:      NewFieldGenerator(cfg).Generate(fieldRng),
		State:      components.NewAttractorState(),
		Estimator:  NewAttractorEstimator(cfg),
		Integrator: NewIntegrator(cfg, jitterRng),
	}
}

// StepResult reports what happened during a step.
type StepResult struct {
	PrevMode    components.Mode
	ModeChanged bool
}

// Step folds obs into the attractor state and integrates the field by dt.
// A nil obs means no observation is available and counts as zero hands.
func (s *Simulation) Step(dt float32, obs components.Observation) StepResult {
	res := s.Observe(obs)
	s.Advance(dt)
	return res
}

// Observe folds obs into the attractor state without moving particles.
func (s *Simulation) Observe(obs components.Observation) StepResult {
	prev, changed := s.Estimator.Update(&s.State, obs)
	return StepResult{PrevMode: prev, ModeChanged: changed}
}

// Advance integrates the field by dt toward the current attractor and
// counts the tick.
func (s *Simulation) Advance(dt float32) {
	s.Integrator.Update(s.Field, dt, &s.State)
	s.tick++
}

// Tick returns how many steps have run.
func (s *Simulation) Tick() int64 {
	return s.tick
}
