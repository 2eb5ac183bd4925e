package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gargantua/camera"
	"github.com/pthm-cable/gargantua/components"
	"github.com/pthm-cable/gargantua/config"
	"github.com/pthm-cable/gargantua/input"
	"github.com/pthm-cable/gargantua/renderer"
	"github.com/pthm-cable/gargantua/systems"
	"github.com/pthm-cable/gargantua/telemetry"
	"github.com/pthm-cable/gargantua/ui"
)

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int

	// Input sources, at most one of them. With none set a headless run
	// falls back to the demo script so the field has something to follow.
	ListenAddr string // websocket address for an external tracker
	ReplayPath string // landmark CSV to play back
	Demo       bool   // cycle through the scripted gestures
	RecordPath string // save every consumed observation here on exit
}

// Source produces the observation for a point in simulation time.
type Source interface {
	At(t float64) components.Observation
}

// Game holds the complete game state.
type Game struct {
	cfg *config.Config
	sim *systems.Simulation

	// Input
	slot       *input.Slot
	server     *input.Server
	source     Source
	producer   *input.Script
	sourceName string
	mouse      input.MouseHands
	recorder   *input.Recorder
	recordPath string
	active     bool
	hands      int

	// Rendering (nil when headless)
	camera    *camera.Camera
	view      rl.Camera3D
	particles *renderer.ParticleRenderer
	horizon   *renderer.HorizonRenderer
	stars     *renderer.StarRenderer

	// UI
	hud         *ui.HUD
	instruments *ui.InstrumentsPanel
	controls    *ui.ControlsPanel
	handPanel   *ui.HandPanel
	overlays    *ui.OverlayRegistry

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool

	// State
	simTime        float64
	paused         bool
	headless       bool
	stepsPerUpdate int
	rngSeed        int64

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. Graphical games must be created after
// the raylib window is open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}
	window := opts.StatsWindowSec
	if window <= 0 {
		window = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:            cfg,
		sim:            systems.NewSimulation(cfg, opts.Seed),
		slot:           input.NewSlot(),
		collector:      telemetry.NewCollector(window, float32(cfg.Derived.FrameDT)),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		rngSeed:        opts.Seed,
		recordPath:     opts.RecordPath,
		screenWidth:    cfg.Derived.ScreenW32,
		screenHeight:   cfg.Derived.ScreenH32,
		mouse:          input.MouseHands{Spread: float32(cfg.Input.SyntheticSpread)},
	}

	if err := g.setupInput(opts); err != nil {
		return nil, err
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	if !opts.Headless {
		g.setupRendering()
	}

	slog.Info("game created",
		"seed", opts.Seed,
		"particles", g.sim.Field.Len(),
		"disk", g.sim.Field.DiskCount(),
		"source", g.sourceName,
		"headless", opts.Headless,
	)
	return g, nil
}

// setupInput picks the observation source. The websocket server, a replay
// and the demo script are mutually exclusive producers.
func (g *Game) setupInput(opts Options) error {
	if err := input.CheckSources(opts.ListenAddr, opts.ReplayPath, opts.Demo); err != nil {
		return err
	}

	switch {
	case opts.ListenAddr != "":
		g.server = input.NewServer(opts.ListenAddr, g.slot, g.cfg.Input.ReadLimit)
		g.sourceName = "ws " + opts.ListenAddr
	case opts.ReplayPath != "":
		rec, err := input.LoadRecording(opts.ReplayPath, g.cfg.Input.ReplayFPS)
		if err != nil {
			return err
		}
		g.source = rec
		g.sourceName = "replay " + opts.ReplayPath
		slog.Info("replaying recording", "path", opts.ReplayPath, "frames", rec.Len(), "fps", rec.FPS)
	case opts.Demo || opts.Headless:
		script := input.NewScript(input.DefaultPhases, float32(g.cfg.Input.SyntheticSpread))
		g.sourceName = "demo"
		if opts.Headless {
			// Sampled at simulation time so headless runs are reproducible
			g.source = script
		} else {
			// Publishes on its own ticker like a tracker would
			g.producer = script
		}
	default:
		g.sourceName = "none"
	}

	if opts.RecordPath != "" {
		g.recorder = input.NewRecorder()
	}
	return nil
}

// setupRendering creates the camera, renderers and UI panels.
func (g *Game) setupRendering() {
	cfg := g.cfg
	g.camera = camera.New(cfg)
	g.view = renderer.Camera3D(g.camera)

	g.particles = renderer.NewParticleRenderer(g.camera, int32(cfg.Screen.Height))
	g.particles.Init()
	g.horizon = renderer.NewHorizonRenderer(cfg)

	// Stars use their own stream so the field layout does not depend on them
	starRng := newRand(g.rngSeed ^ 0x57a25)
	g.stars = renderer.NewStarRenderer(systems.GenerateStars(cfg.Stars.Count, cfg.Stars.Radius, cfg.Stars.Depth, starRng))

	g.hud = ui.NewHUD()
	g.overlays = ui.NewOverlayRegistry()
	g.controls = ui.NewControlsPanel(int32(g.screenWidth)-230, 10, 220)
	g.instruments = ui.NewInstrumentsPanel(int32(g.screenWidth)-230, 170, 220)
	g.handPanel = ui.NewHandPanel(30, 140, 260)
}

// StartInput runs the background producer, the websocket server or the
// demo script, until ctx is done.
func (g *Game) StartInput(ctx context.Context) {
	if g.producer != nil {
		interval := time.Duration(float64(time.Second) / g.cfg.Input.DemoFPS)
		go g.producer.Run(ctx, g.slot, interval)
	}
	if g.server != nil {
		go func() {
			if err := g.server.Run(ctx); err != nil {
				slog.Error("hand input server stopped", "error", err)
			}
		}()
	}
}

// Update runs one frame in graphical mode.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}

	dt := rl.GetFrameTime()
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(dt, g.readInput)
	}
}

// UpdateHeadless runs stepsPerUpdate fixed-rate ticks without graphics.
func (g *Game) UpdateHeadless() {
	dt := float32(g.cfg.Derived.FrameDT)
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step(dt, g.readSource)
	}
}

// step advances the simulation by one tick using read for the observation.
func (g *Game) step(dt float32, read func() (components.Observation, bool)) {
	g.perfCollector.StartTick()

	g.perfCollector.StartPhase(telemetry.PhaseInput)
	obs, fresh := read()
	g.hands = len(obs.Tracked())
	if g.recorder != nil {
		g.recorder.Add(obs)
	}

	g.perfCollector.StartPhase(telemetry.PhaseAttractor)
	res := g.sim.Observe(obs)

	g.perfCollector.StartPhase(telemetry.PhaseIntegrate)
	g.sim.Advance(dt)
	g.simTime += float64(dt)

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordTick(g.sim.State.Mode, fresh)
	if res.ModeChanged {
		g.recordTransition(res.PrevMode)
	}
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.particles != nil {
		g.particles.Unload()
	}
	if g.recorder != nil {
		if err := g.recorder.Save(g.recordPath); err != nil {
			slog.Error("failed to save recording", "error", err)
		} else {
			slog.Info("recording saved", "path", g.recordPath, "frames", g.recorder.Frames())
		}
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output files", "error", err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.sim.Tick()
}

// SimTime returns elapsed simulation seconds.
func (g *Game) SimTime() float64 {
	return g.simTime
}
