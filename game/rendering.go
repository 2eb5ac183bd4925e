package game

import (
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/telemetry"
	"github.com/pthm-cable/gargantua/ui"
)

const controlsLegend = "[Space] pause  [</>] speed  [2] second hand  [F11] fullscreen"

// Draw renders the current frame.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	state := &g.sim.State
	rl.BeginMode3D(g.view)
	if g.overlays.IsEnabled(ui.OverlayStars) {
		g.stars.Draw()
	}
	if g.overlays.IsEnabled(ui.OverlayHorizon) {
		g.horizon.Draw(rl.NewVector3(float32(state.Target.X), float32(state.Target.Y), float32(state.Target.Z)))
	}
	g.particles.Draw(g.view, g.sim.Field, float32(g.sim.Integrator.Rotation))
	rl.EndMode3D()

	g.drawUI()

	rl.EndDrawing()
}

// drawUI renders the banners and the toggleable panels.
func (g *Game) drawUI() {
	w, h := int32(g.screenWidth), int32(g.screenHeight)

	g.hud.Draw(ui.HUDData{
		Active:       g.active,
		Mode:         g.sim.State.Mode.String(),
		Hands:        g.hands,
		Source:       g.sourceLabel(),
		Clients:      g.clients(),
		Tick:         g.sim.Tick(),
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		ScreenWidth:  w,
		ScreenHeight: h,
	})
	g.hud.DrawControls(h, controlsLegend)

	bottom := g.controls.Draw(g.overlays)
	if g.overlays.IsEnabled(ui.OverlayInstruments) {
		g.instruments.SetPosition(w-230, bottom+10)
		g.instruments.Draw(g.instrumentsData())
	}
	if g.overlays.IsEnabled(ui.OverlayHandPanel) {
		g.handPanel.Draw(&g.mouse)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		stats := g.perfCollector.Stats()
		g.hud.DrawPerf(30, h-200, ui.PerfPanelData{
			AvgTickUS: stats.AvgTickDuration.Microseconds(),
			MaxTickUS: stats.MaxTickDuration.Microseconds(),
			FPS:       stats.FPS,
			PhasePct:  stats.PhasePct,
			Phases:    telemetry.Phases,
		})
	}
}

func (g *Game) instrumentsData() *ui.InstrumentsData {
	s := &g.sim.State
	return &ui.InstrumentsData{
		Mode:       s.Mode.String(),
		Hands:      g.hands,
		TargetX:    float32(s.Target.X),
		TargetY:    float32(s.Target.Y),
		Expansion:  float32(s.Expansion),
		Attraction: float32(s.Attraction),
		Imploding:  s.Imploding,
		Rotation:   float32(g.sim.Integrator.Rotation),
		Particles:  g.sim.Field.Len(),
		Disk:       g.sim.Field.DiskCount(),
	}
}

func (g *Game) sourceLabel() string {
	if g.mouse.Enabled {
		return "mouse"
	}
	return g.sourceName
}

func (g *Game) clients() int {
	if g.server == nil {
		return 0
	}
	return g.server.Clients()
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
