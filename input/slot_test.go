package input

import (
	"sync"
	"testing"

	"github.com/pthm-cable/gargantua/components"
)

func TestSlot_EmptyBeforeFirstPut(t *testing.T) {
	s := NewSlot()
	obs, ok := s.Latest()
	if ok || obs != nil {
		t.Errorf("expected (nil, false) before first put, got (%v, %v)", obs, ok)
	}
}

func TestSlot_LastWriteWins(t *testing.T) {
	s := NewSlot()
	one := components.Observation{SyntheticHand(0.1, 0.1, 0.2)}
	two := components.Observation{SyntheticHand(0.9, 0.9, 0.2), SyntheticHand(0.2, 0.2, 0.2)}

	s.Put(one)
	s.Put(two)

	obs, ok := s.Latest()
	if !ok {
		t.Fatal("expected a value after put")
	}
	if len(obs) != 2 || obs[0] != two[0] {
		t.Errorf("expected the second observation, got %d hands", len(obs))
	}
}

func TestSlot_LatestDoesNotConsume(t *testing.T) {
	s := NewSlot()
	s.Put(components.Observation{SyntheticHand(0.3, 0.3, 0.2)})

	first, _ := s.Latest()
	again, ok := s.Latest()
	if !ok || len(again) != 1 || again[0] != first[0] {
		t.Error("a read without a new put should return the previous value")
	}

	fresh, reused := s.Fresh()
	if fresh != 1 || reused != 1 {
		t.Errorf("expected 1 fresh and 1 reused read, got %d and %d", fresh, reused)
	}
}

func TestSlot_EmptyObservationIsSeen(t *testing.T) {
	s := NewSlot()
	s.Put(components.Observation{SyntheticHand(0.3, 0.3, 0.2)})
	s.Latest()
	s.Put(components.Observation{})

	obs, ok := s.Latest()
	if !ok || len(obs) != 0 {
		t.Errorf("expected a seen, zero-hand observation, got %d hands ok=%v", len(obs), ok)
	}
}

func TestSlot_ConcurrentProducersNeverBlock(t *testing.T) {
	s := NewSlot()
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				s.Put(components.Observation{SyntheticHand(float32(p)/8, 0.5, 0.2)})
			}
		}(p)
	}

	// Consumer keeps sampling while producers run
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			obs, ok := s.Latest()
			if !ok || len(obs) != 1 {
				t.Errorf("expected one hand after producers finish, got %d ok=%v", len(obs), ok)
			}
			return
		default:
			s.Latest()
		}
	}
}
