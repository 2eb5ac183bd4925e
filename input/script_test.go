package input

import (
	"context"
	"testing"
	"time"

	"github.com/pthm-cable/gargantua/components"
)

func TestScript_PhaseAt(t *testing.T) {
	s := NewScript(DefaultPhases, 0.2)

	cases := []struct {
		t    float64
		want components.Mode
	}{
		{0, components.ModeIdle},
		{3.5, components.ModeSingleOpen},
		{9, components.ModeSingleFist},
		{12, components.ModeSingleOpen},
		{15, components.ModeDualWarp},
		{22, components.ModeIdle},
		{24 + 4, components.ModeSingleOpen}, // loops after 24s
	}
	for _, c := range cases {
		if p, _ := s.PhaseAt(c.t); p.Mode != c.want {
			t.Errorf("PhaseAt(%v) = %v, want %v", c.t, p.Mode, c.want)
		}
	}
}

func TestScript_HandCounts(t *testing.T) {
	s := NewScript(DefaultPhases, 0.2)
	want := map[float64]int{1: 0, 4: 1, 9: 1, 15: 2, 22: 0}
	for at, n := range want {
		if got := len(s.At(at)); got != n {
			t.Errorf("At(%v): expected %d hands, got %d", at, n, got)
		}
	}
}

func TestScript_FistPhaseIsClosed(t *testing.T) {
	s := NewScript(DefaultPhases, 0.2)
	obs := s.At(9)
	if tipSpread(&obs[0]) > 1e-6 {
		t.Errorf("fist phase should close the hand, spread %v", tipSpread(&obs[0]))
	}
	obs = s.At(4)
	if tipSpread(&obs[0]) < 0.19 {
		t.Errorf("open phase should spread the hand, spread %v", tipSpread(&obs[0]))
	}
}

func TestScript_RunPublishes(t *testing.T) {
	s := NewScript([]Phase{{components.ModeSingleOpen, 10}}, 0.2)
	slot := NewSlot()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, slot, time.Millisecond)
		close(done)
	}()

	deadline := time.After(2 * time.Second)
	for {
		if obs, ok := slot.Latest(); ok {
			if len(obs) != 1 {
				t.Errorf("expected one hand, got %d", len(obs))
			}
			break
		}
		select {
		case <-deadline:
			t.Fatal("script never published")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}
