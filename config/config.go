// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Camera     CameraConfig     `yaml:"camera"`
	Field      FieldConfig      `yaml:"field"`
	Gesture    GestureConfig    `yaml:"gesture"`
	Attractor  AttractorConfig  `yaml:"attractor"`
	Integrator IntegratorConfig `yaml:"integrator"`
	Horizon    HorizonConfig    `yaml:"horizon"`
	Stars      StarsConfig      `yaml:"stars"`
	Input      InputConfig      `yaml:"input"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps" env:"GARGANTUA_TARGET_FPS"`
}

// CameraConfig holds the fixed perspective camera.
type CameraConfig struct {
	Position   [3]float64 `yaml:"position"`
	Target     [3]float64 `yaml:"target"`
	FovY       float64    `yaml:"fov_y"`       // Vertical field of view in degrees
	PointScale float64    `yaml:"point_scale"` // k in size * k / -viewZ
}

// FieldConfig holds particle field generation parameters.
type FieldConfig struct {
	Count         int     `yaml:"count"`
	HaloFraction  float64 `yaml:"halo_fraction"`  // Probability a particle is a halo particle
	DiskInner     float64 `yaml:"disk_inner"`     // Inner disk radius
	DiskWidth     float64 `yaml:"disk_width"`     // Radial extent beyond inner radius
	DiskThickness float64 `yaml:"disk_thickness"` // Vertical thickness at the inner edge
	HaloInner     float64 `yaml:"halo_inner"`
	HaloWidth     float64 `yaml:"halo_width"`
	SizeMin       float64 `yaml:"size_min"`
	SizeRange     float64 `yaml:"size_range"`
	CoreRadius    float64 `yaml:"core_radius"` // Below this planar distance particles are white
	GoldRadius    float64 `yaml:"gold_radius"` // Below this planar distance particles are gold
	ColorBlend    float64 `yaml:"color_blend"` // Lerp factor toward the random palette pick
}

// GestureConfig holds hand pose classification parameters.
type GestureConfig struct {
	FistThreshold float64 `yaml:"fist_threshold"` // Mean wrist-to-tip distance below this is a fist
}

// AttractorConfig holds attractor estimation parameters.
type AttractorConfig struct {
	Smoothing         float64 `yaml:"smoothing"`   // EMA weight applied to target and expansion
	CoordScale        float64 `yaml:"coord_scale"` // (v - 0.5) * this maps landmarks to world units
	OpenStrength      float64 `yaml:"open_strength"`
	OpenExpansion     float64 `yaml:"open_expansion"`
	FistStrength      float64 `yaml:"fist_strength"`
	FistExpansion     float64 `yaml:"fist_expansion"`
	DualStrength      float64 `yaml:"dual_strength"`
	DualBaseExpansion float64 `yaml:"dual_base_expansion"`
	DualExpansionGain float64 `yaml:"dual_expansion_gain"` // Expansion per unit of normalized hand distance
}

// IntegratorConfig holds per-particle update parameters.
type IntegratorConfig struct {
	AttractSpeed  float64 `yaml:"attract_speed"`
	ImplodeSpeed  float64 `yaml:"implode_speed"`
	RelaxSpeed    float64 `yaml:"relax_speed"`
	ImplodeJitter float64 `yaml:"implode_jitter"` // Full width of the implosion jitter interval
	AmbientJitter float64 `yaml:"ambient_jitter"` // Full width of the ambient jitter interval
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second about the vertical axis
}

// HorizonConfig holds the decorative meshes that follow the attractor.
type HorizonConfig struct {
	SphereRadius  float64 `yaml:"sphere_radius"`
	RingRadius    float64 `yaml:"ring_radius"`
	RingThickness float64 `yaml:"ring_thickness"`
	RingOpacity   float64 `yaml:"ring_opacity"`
}

// StarsConfig holds the background starfield.
type StarsConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Depth  float64 `yaml:"depth"`
}

// InputConfig holds hand observation ingest settings.
type InputConfig struct {
	ListenAddr      string  `yaml:"listen_addr" env:"GARGANTUA_LISTEN_ADDR"`
	ReadLimit       int64   `yaml:"read_limit"`       // Max websocket message size in bytes
	ReplayFPS       float64 `yaml:"replay_fps"`       // Frame rate of recorded landmark files
	DemoFPS         float64 `yaml:"demo_fps"`         // Publish rate of the windowed demo script
	SyntheticSpread float64 `yaml:"synthetic_spread"` // Fingertip distance of an open synthetic hand
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window" env:"GARGANTUA_STATS_WINDOW"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	FovYRad      float64 // Camera.FovY in radians
	ExpectedDisk int     // Expected disk population for Field.Count
	ExpectedHalo int     // Expected halo population for Field.Count
	SizeMax      float64 // Field.SizeMin + Field.SizeRange
	FrameDT      float64 // 1 / Screen.TargetFPS
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults,
// then applies environment overrides.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Field.Count <= 0 {
		return fmt.Errorf("field.count must be positive, got %d", c.Field.Count)
	}
	if c.Field.HaloFraction < 0 || c.Field.HaloFraction > 1 {
		return fmt.Errorf("field.halo_fraction must be in [0,1], got %v", c.Field.HaloFraction)
	}
	if c.Attractor.Smoothing <= 0 || c.Attractor.Smoothing > 1 {
		return fmt.Errorf("attractor.smoothing must be in (0,1], got %v", c.Attractor.Smoothing)
	}
	if c.Screen.TargetFPS <= 0 {
		return fmt.Errorf("screen.target_fps must be positive, got %d", c.Screen.TargetFPS)
	}
	if c.Input.DemoFPS <= 0 {
		return fmt.Errorf("input.demo_fps must be positive, got %v", c.Input.DemoFPS)
	}
	if c.Camera.FovY <= 0 || c.Camera.FovY >= 180 {
		return fmt.Errorf("camera.fov_y must be in (0,180), got %v", c.Camera.FovY)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.FovYRad = c.Camera.FovY * math.Pi / 180
	c.Derived.ExpectedHalo = int(math.Round(float64(c.Field.Count) * c.Field.HaloFraction))
	c.Derived.ExpectedDisk = c.Field.Count - c.Derived.ExpectedHalo
	c.Derived.SizeMax = c.Field.SizeMin + c.Field.SizeRange
	c.Derived.FrameDT = 1.0 / float64(c.Screen.TargetFPS)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
