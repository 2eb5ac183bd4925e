package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/ui"
)

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyTwo) {
		g.mouse.Second = !g.mouse.Second
	}

	g.overlays.HandleKeys()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.particles.Resize(int32(h))
	g.controls = ui.NewControlsPanel(int32(w)-230, 10, 220)
	g.instruments.SetPosition(int32(w)-230, 170)
}

// readInput returns the observation for this tick in graphical mode. The
// mouse simulator, when enabled, overrides every other source.
func (g *Game) readInput() (components.Observation, bool) {
	if g.mouse.Enabled {
		g.active = true
		pos := rl.GetMousePosition()
		fist := rl.IsMouseButtonDown(rl.MouseButtonLeft)
		if g.overlays.IsEnabled(ui.OverlayHandPanel) && g.handPanel.Contains(pos.X, pos.Y) {
			fist = false
		}
		return g.mouse.Observation(pos.X, pos.Y, g.screenWidth, g.screenHeight, fist), true
	}
	return g.readSource()
}

// readSource publishes the observation of a time-sampled source (a replay,
// or the demo script when headless) for the current simulation time, then
// reads the slot.
func (g *Game) readSource() (components.Observation, bool) {
	if g.source != nil {
		g.slot.Put(g.source.At(g.simTime))
	}
	fresh, _ := g.slot.Fresh()
	obs, ok := g.slot.Latest()
	if ok {
		g.active = true
	}
	after, _ := g.slot.Fresh()
	return obs, after > fresh
}
