// Package input delivers hand observations from independently scheduled
// producers to the simulation loop.
package input

import "github.com/pthm-cable/gargantua/components"

// Slot is a single-slot, latest-value register between hand observation
// producers and the simulation loop.
//
// Put never blocks and overwrites any value the consumer has not read yet.
// Latest never blocks and returns the most recent value seen; it may skip
// intermediate observations. Any number of goroutines may Put, but only the
// simulation loop may call Latest.
type Slot struct {
	ch chan components.Observation

	// Consumer-owned
	latest components.Observation
	seen   bool
	fresh  uint64
	reused uint64
}

// NewSlot creates an empty slot.
func NewSlot() *Slot {
	return &Slot{ch: make(chan components.Observation, 1)}
}

// Put publishes obs, replacing any unread value.
func (s *Slot) Put(obs components.Observation) {
	for {
		select {
		case s.ch <- obs:
			return
		default:
		}
		// Full: discard the stale value and retry
		select {
		case <-s.ch:
		default:
		}
	}
}

// Latest returns the most recent observation and whether one has ever been
// published. Before the first Put it returns (nil, false), which callers
// treat as zero hands.
func (s *Slot) Latest() (components.Observation, bool) {
	select {
	case obs := <-s.ch:
		s.latest = obs
		s.seen = true
		s.fresh++
	default:
		if s.seen {
			s.reused++
		}
	}
	return s.latest, s.seen
}

// Fresh reports how many reads picked up a new value and how many reused
// the previous one. Consumer only.
func (s *Slot) Fresh() (fresh, reused uint64) {
	return s.fresh, s.reused
}
