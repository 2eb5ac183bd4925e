package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
)

func init() {
	// Initialize config for tests
	config.MustInit("")
}

// handAt builds a hand with the palm at (cx, cy) and fingertips spread
// from a wrist just below the palm.
func handAt(cx, cy, spread float32) components.Hand {
	var h components.Hand
	for i := range h {
		h[i] = components.Landmark{X: cx, Y: cy}
	}
	wrist := components.Landmark{X: cx, Y: cy + 0.05}
	h[components.Wrist] = wrist
	for _, idx := range components.FingerTips {
		h[idx] = components.Landmark{X: wrist.X, Y: wrist.Y - spread}
	}
	return h
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// ---------- gesture classification ----------

func TestIsFist_TipsOnWrist(t *testing.T) {
	h := handAt(0.5, 0.5, 0)
	if !IsFist(&h, 0.1) {
		t.Error("fingertips coinciding with the wrist should be a fist")
	}
	if s := FingertipSpread(&h); s != 0 {
		t.Errorf("expected spread 0, got %v", s)
	}
}

func TestIsFist_OpenHand(t *testing.T) {
	h := handAt(0.5, 0.5, 0.15)
	if IsFist(&h, 0.1) {
		t.Error("fingertips 0.15 from the wrist should be an open hand")
	}
}

func TestIsFist_ThresholdIsStrict(t *testing.T) {
	// Tips placed on the x axis so the distance is exactly representable
	var h components.Hand
	h[components.Wrist] = components.Landmark{X: 0.25, Y: 0.5}
	for _, idx := range components.FingerTips {
		h[idx] = components.Landmark{X: 0.375, Y: 0.5}
	}
	if IsFist(&h, 0.125) {
		t.Error("average distance equal to the threshold must not be a fist")
	}
	if !IsFist(&h, 0.126) {
		t.Error("average distance below the threshold must be a fist")
	}
}

func TestIsFist_IgnoresDepth(t *testing.T) {
	h := handAt(0.5, 0.5, 0)
	for _, idx := range components.FingerTips {
		h[idx].Z = 5
	}
	if !IsFist(&h, 0.1) {
		t.Error("depth must not affect fist classification")
	}
}

func TestIsFist_AveragesTips(t *testing.T) {
	h := handAt(0.5, 0.5, 0)
	// One tip far, three on the wrist: average 0.3/4 = 0.075
	h[components.IndexTip].Y -= 0.3
	if !IsFist(&h, 0.1) {
		t.Errorf("expected fist with average spread %v", FingertipSpread(&h))
	}
}

// ---------- raw attractor derivation ----------

func TestMapCoord(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	cases := []struct {
		in   float32
		want float64
	}{
		{0.5, 0},
		{0, 15},
		{1, -15},
		{0.25, 7.5},
	}
	for _, c := range cases {
		if got := e.MapCoord(c.in); !approx(got, c.want, 1e-9) {
			t.Errorf("MapCoord(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRaw_NoHands(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	for _, obs := range []components.Observation{nil, {}} {
		raw := e.Raw(obs)
		if raw.Target.X != 0 || raw.Target.Y != 0 || raw.Target.Z != 0 {
			t.Errorf("expected origin target, got %v", raw.Target)
		}
		if raw.Expansion != 1.0 || raw.Attraction != 0 || raw.Imploding {
			t.Errorf("expected neutral attractor, got %+v", raw)
		}
		if raw.Mode != components.ModeIdle {
			t.Errorf("expected idle mode, got %v", raw.Mode)
		}
	}
}

func TestRaw_SingleFist(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	raw := e.Raw(components.Observation{handAt(0.25, 0.75, 0.01)})

	if raw.Expansion != 0.1 {
		t.Errorf("expected expansion 0.1, got %v", raw.Expansion)
	}
	if raw.Attraction != 20 {
		t.Errorf("expected attraction 20, got %v", raw.Attraction)
	}
	if !raw.Imploding {
		t.Error("expected imploding")
	}
	if raw.Mode != components.ModeSingleFist {
		t.Errorf("expected single_fist, got %v", raw.Mode)
	}
	if !approx(raw.Target.X, 7.5, 1e-6) || !approx(raw.Target.Y, -7.5, 1e-6) || raw.Target.Z != 0 {
		t.Errorf("expected target (7.5, -7.5, 0), got %v", raw.Target)
	}
}

func TestRaw_SingleOpenSamePosition(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	fist := e.Raw(components.Observation{handAt(0.25, 0.75, 0.01)})
	open := e.Raw(components.Observation{handAt(0.25, 0.75, 0.2)})

	if open.Expansion != 1.0 || open.Attraction != 3 || open.Imploding {
		t.Errorf("expected open hand attractor, got %+v", open)
	}
	if open.Mode != components.ModeSingleOpen {
		t.Errorf("expected single_open, got %v", open.Mode)
	}
	if open.Target != fist.Target {
		t.Errorf("fist and open hand at the same palm should share a target: %v vs %v", open.Target, fist.Target)
	}
}

func TestRaw_TwoHandsCoincident(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	raw := e.Raw(components.Observation{handAt(0.4, 0.4, 0.2), handAt(0.4, 0.4, 0.2)})

	if !approx(raw.Expansion, 0.5, 1e-9) {
		t.Errorf("expected expansion 0.5 for coincident palms, got %v", raw.Expansion)
	}
	if raw.Attraction != 5 || raw.Imploding {
		t.Errorf("expected dual warp attraction 5 without implosion, got %+v", raw)
	}
	if raw.Mode != components.ModeDualWarp {
		t.Errorf("expected dual_warp, got %v", raw.Mode)
	}
}

func TestRaw_TwoHandsQuarterApart(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	raw := e.Raw(components.Observation{handAt(0.25, 0.5, 0.2), handAt(0.5, 0.5, 0.2)})

	if !approx(raw.Expansion, 1.5, 1e-6) {
		t.Errorf("expected expansion 1.5 for palms 0.25 apart, got %v", raw.Expansion)
	}
	// Midpoint of mapped x: (7.5 + 0) / 2
	if !approx(raw.Target.X, 3.75, 1e-6) || !approx(raw.Target.Y, 0, 1e-6) || raw.Target.Z != 0 {
		t.Errorf("expected target (3.75, 0, 0), got %v", raw.Target)
	}
}

func TestRaw_TwoFistsDoNotImplode(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	raw := e.Raw(components.Observation{handAt(0.3, 0.5, 0), handAt(0.7, 0.5, 0)})
	if raw.Imploding {
		t.Error("two hands never implode, even when both are fists")
	}
}

func TestRaw_ExtraHandsIgnored(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	two := e.Raw(components.Observation{handAt(0.25, 0.5, 0.2), handAt(0.5, 0.5, 0.2)})
	three := e.Raw(components.Observation{handAt(0.25, 0.5, 0.2), handAt(0.5, 0.5, 0.2), handAt(0.9, 0.1, 0)})
	if two != three {
		t.Errorf("third hand should be ignored: %+v vs %+v", two, three)
	}
}

// ---------- smoothing ----------

func TestSmooth_ZeroHandsConvergesGeometrically(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	state := components.NewAttractorState()
	state.Target.X, state.Target.Y, state.Target.Z = 10, -4, 2
	state.Expansion = 3

	prevX := state.Target.X
	prevExp := state.Expansion - 1
	for i := 0; i < 50; i++ {
		e.Update(&state, nil)
		if !approx(state.Target.X, prevX*0.9, 1e-9) {
			t.Fatalf("step %d: target.x residual %v, want %v", i, state.Target.X, prevX*0.9)
		}
		if !approx(state.Expansion-1, prevExp*0.9, 1e-9) {
			t.Fatalf("step %d: expansion residual %v, want %v", i, state.Expansion-1, prevExp*0.9)
		}
		prevX = state.Target.X
		prevExp = state.Expansion - 1
	}
	if math.Abs(state.Target.Y) > 4*math.Pow(0.9, 50)+1e-9 {
		t.Errorf("target.y did not decay: %v", state.Target.Y)
	}
}

func TestSmooth_StrengthIsInstantaneous(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	state := components.NewAttractorState()

	e.Update(&state, components.Observation{handAt(0.5, 0.5, 0)})
	if state.Attraction != 20 || !state.Imploding {
		t.Errorf("fist should engage in one frame, got %+v", state)
	}
	if !approx(state.Expansion, 1+(0.1-1)*0.1, 1e-9) {
		t.Errorf("expansion should move one smoothing step, got %v", state.Expansion)
	}

	e.Update(&state, nil)
	if state.Attraction != 0 || state.Imploding {
		t.Errorf("release should disengage in one frame, got %+v", state)
	}
}

func TestUpdate_ReportsModeChange(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	state := components.NewAttractorState()

	if _, changed := e.Update(&state, nil); changed {
		t.Error("idle to idle is not a change")
	}
	prev, changed := e.Update(&state, components.Observation{handAt(0.5, 0.5, 0.2)})
	if !changed || prev != components.ModeIdle || state.Mode != components.ModeSingleOpen {
		t.Errorf("expected idle -> single_open, got %v -> %v (changed=%v)", prev, state.Mode, changed)
	}
	prev, changed = e.Update(&state, components.Observation{handAt(0.5, 0.5, 0)})
	if !changed || prev != components.ModeSingleOpen || state.Mode != components.ModeSingleFist {
		t.Errorf("expected single_open -> single_fist, got %v -> %v", prev, state.Mode)
	}
}

func TestSmooth_FixedPoint(t *testing.T) {
	e := NewAttractorEstimator(config.Cfg())
	state := components.NewAttractorState()
	obs := components.Observation{handAt(0.25, 0.5, 0.2), handAt(0.5, 0.5, 0.2)}
	raw := e.Raw(obs)

	for i := 0; i < 400; i++ {
		e.Update(&state, obs)
	}
	if !approx(state.Target.X, raw.Target.X, 1e-9) || !approx(state.Expansion, raw.Expansion, 1e-9) {
		t.Errorf("expected fixed point %+v, got %+v", raw, state)
	}

	before := state
	e.Update(&state, obs)
	if !approx(before.Target.X, state.Target.X, 1e-12) || !approx(before.Expansion, state.Expansion, 1e-12) {
		t.Error("state should not move once at the fixed point")
	}
}
