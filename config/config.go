// Package config provides configuration loading and access for the effects.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all effect configuration parameters.
type Config struct {
	Screen     ScreenConfig    `yaml:"screen"`
	Ripple     RippleConfig    `yaml:"ripple"`
	Foam       FoamConfig      `yaml:"foam"`
	MiniRipple RippleConfig    `yaml:"mini_ripple"`
	MiniFoam   FoamConfig      `yaml:"mini_foam"`
	Streams    StreamsConfig   `yaml:"streams"`
	Current    CurrentConfig   `yaml:"current"`
	Bloom      BloomConfig     `yaml:"bloom"`
	Curtain    CurtainConfig   `yaml:"curtain"`
	Pond       PondConfig      `yaml:"pond"`
	Page       PageConfig      `yaml:"page"`
	Telemetry  TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// RippleConfig holds wave grid parameters for one ripple surface.
type RippleConfig struct {
	CellSize    float64 `yaml:"cell_size"`    // Pixels per grid cell
	MinCols     int     `yaml:"min_cols"`     // Grid never narrower than this
	MinRows     int     `yaml:"min_rows"`     // Grid never shorter than this
	Diffusion   float64 `yaml:"diffusion"`    // Fraction relaxed toward the neighbour mean per step; the Laplacian weight is Diffusion/4
	Advection   float64 `yaml:"advection"`    // Transport weight of the drift-shifted neighbour
	Damping     float64 `yaml:"damping"`      // Per-step decay
	FastDamping float64 `yaml:"fast_damping"` // Decay while the modifier key is held
	FixedRadius int     `yaml:"fixed_radius"` // Splash radius in cells (0 = derive from power)
	RadiusBase  float64 `yaml:"radius_base"`
	RadiusScale float64 `yaml:"radius_scale"`
	RadiusMin   float64 `yaml:"radius_min"`
	RadiusMax   float64 `yaml:"radius_max"`
	Epsilon     float64 `yaml:"epsilon"` // Guard added to the falloff divisor

	MistSplashes int     `yaml:"mist_splashes"` // Soft splashes seeded on every allocation
	MistPower    float64 `yaml:"mist_power"`
	MistJitter   float64 `yaml:"mist_jitter"`

	HoverPower     float64 `yaml:"hover_power"` // Pointer move without buttons (0 = ignore)
	PressPower     float64 `yaml:"press_power"`
	PressPowerFast float64 `yaml:"press_power_fast"`
	DragPower      float64 `yaml:"drag_power"`
	DragPowerFast  float64 `yaml:"drag_power_fast"`
	ButtonPower    float64 `yaml:"button_power"`
}

// FoamConfig holds foam tile rendering thresholds.
type FoamConfig struct {
	SlopeWeight float64 `yaml:"slope_weight"`
	AmpWeight   float64 `yaml:"amp_weight"`
	Threshold   float64 `yaml:"threshold"`
	AlphaScale  float64 `yaml:"alpha_scale"`
	TideAlpha   float64 `yaml:"tide_alpha"`
	MaxAlpha    float64 `yaml:"max_alpha"`
}

// StreamsConfig holds falling stream emitter parameters.
type StreamsConfig struct {
	Count      int     `yaml:"count"`
	BaseX      float64 `yaml:"base_x"`
	Spacing    float64 `yaml:"spacing"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedRange float64 `yaml:"speed_range"`
	WidthMin   float64 `yaml:"width_min"`
	WidthRange float64 `yaml:"width_range"`
	JitterMax  float64 `yaml:"jitter_max"`
	Power      float64 `yaml:"power"`
}

// CurrentConfig holds scroll-driven current and tide parameters.
type CurrentConfig struct {
	ScrollLimit  float64 `yaml:"scroll_limit"`
	ScrollRelax  float64 `yaml:"scroll_relax"`
	DriftScale   float64 `yaml:"drift_scale"`
	VerticalAmp  float64 `yaml:"vertical_amp"`
	VerticalFreq float64 `yaml:"vertical_freq"`
	TideFreq     float64 `yaml:"tide_freq"`
}

// BloomConfig holds particle emitter parameters.
type BloomConfig struct {
	Count         int     `yaml:"count"`
	DenseCount    int     `yaml:"dense_count"`
	MaxParticles  int     `yaml:"max_particles"`
	Speed         float64 `yaml:"speed"`
	DenseSpeed    float64 `yaml:"dense_speed"`
	SpeedRange    float64 `yaml:"speed_range"`
	Lift          float64 `yaml:"lift"`
	VerticalScale float64 `yaml:"vertical_scale"`
	RadiusMin     float64 `yaml:"radius_min"`
	RadiusRange   float64 `yaml:"radius_range"`
	HueMin        float64 `yaml:"hue_min"`
	HueRange      float64 `yaml:"hue_range"`
	DriftRange    float64 `yaml:"drift_range"`
	Damping       float64 `yaml:"damping"`
	Gravity       float64 `yaml:"gravity"`
	Wobble        float64 `yaml:"wobble"`
	LifeDecay     float64 `yaml:"life_decay"`
	MinLife       float64 `yaml:"min_life"`
	WrapMargin    float64 `yaml:"wrap_margin"`
	FloorMargin   float64 `yaml:"floor_margin"`
	MaxAlpha      float64 `yaml:"max_alpha"`
}

// CurtainConfig holds the scroll-proximity curtain parameters.
type CurtainConfig struct {
	Anchor        float64 `yaml:"anchor"`         // Viewport fraction where influence peaks
	Reach         float64 `yaml:"reach"`          // Viewport fraction where influence reaches 0
	Gain          float64 `yaml:"gain"`           // Influence -> state scale
	Relax         float64 `yaml:"relax"`          // Per-frame decay
	OffsetStart   float64 `yaml:"offset_start"`   // Percent offset at state 0
	OffsetTravel  float64 `yaml:"offset_travel"`  // Percent travelled at state 1
	SpringFreq    float64 `yaml:"spring_freq"`    // Displayed offset spring angular frequency
	SpringDamping float64 `yaml:"spring_damping"` // Displayed offset spring damping ratio
}

// PondConfig holds floating tag physics parameters.
type PondConfig struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	Tags        []string `yaml:"tags"`
	Margin      float64  `yaml:"margin"`
	CurrentX    float64  `yaml:"current_x"`
	CurrentY    float64  `yaml:"current_y"`
	CurrentPull float64  `yaml:"current_pull"`
	Friction    float64  `yaml:"friction"`
	Restitution float64  `yaml:"restitution"`
	ThrowScale  float64  `yaml:"throw_scale"`
	TagHeight   float64  `yaml:"tag_height"`
	CharWidth   float64  `yaml:"char_width"`
	TagPadding  float64  `yaml:"tag_padding"`
}

// PageConfig holds the card layout of the page.
type PageConfig struct {
	CardWidth   float64 `yaml:"card_width"`
	CardHeight  float64 `yaml:"card_height"`
	Gap         float64 `yaml:"gap"`
	CompactGap  float64 `yaml:"compact_gap"`
	Margin      float64 `yaml:"margin"`
	WheelScale  float64 `yaml:"wheel_scale"` // Wheel notches -> pixel delta
	FallbackVH  float64 `yaml:"fallback_vh"`
	MinPixelRat float64 `yaml:"min_pixel_ratio"`
	MaxPixelRat float64 `yaml:"max_pixel_ratio"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	StepTimerWindow     int     `yaml:"step_timer_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	FrameMS   float64 // Milliseconds per frame at TargetFPS
	ScreenW32 float32
	ScreenH32 float32
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

// Load loads configuration from a YAML file, merging with embedded defaults.
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

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects ripple parameters that would let the field gain energy.
func (c *Config) Validate() error {
	var errs []error
	for _, r := range []struct {
		name string
		cfg  RippleConfig
	}{
		{"ripple", c.Ripple},
		{"mini_ripple", c.MiniRipple},
	} {
		if r.cfg.CellSize <= 0 {
			errs = append(errs, fmt.Errorf("%s.cell_size must be positive, got %g", r.name, r.cfg.CellSize))
		}
		if r.cfg.Damping <= 0 || r.cfg.Damping > 1 {
			errs = append(errs, fmt.Errorf("%s.damping must be in (0, 1], got %g", r.name, r.cfg.Damping))
		}
		if r.cfg.FastDamping <= 0 || r.cfg.FastDamping > 1 {
			errs = append(errs, fmt.Errorf("%s.fast_damping must be in (0, 1], got %g", r.name, r.cfg.FastDamping))
		}
		if r.cfg.Diffusion < 0 || r.cfg.Advection < 0 || r.cfg.Diffusion+r.cfg.Advection > 1 {
			errs = append(errs, fmt.Errorf("%s: diffusion + advection must stay within [0, 1], got %g + %g",
				r.name, r.cfg.Diffusion, r.cfg.Advection))
		}
	}
	if c.Bloom.LifeDecay <= 0 || c.Bloom.LifeDecay >= 1 {
		errs = append(errs, fmt.Errorf("bloom.life_decay must be in (0, 1), got %g", c.Bloom.LifeDecay))
	}
	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	fps := c.Screen.TargetFPS
	if fps <= 0 {
		fps = 60
	}
	c.Derived.FrameMS = 1000.0 / float64(fps)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if c.Page.FallbackVH <= 0 {
		c.Page.FallbackVH = 800
	}
	if c.Page.MinPixelRat <= 0 {
		c.Page.MinPixelRat = 1
	}
	if c.Page.MaxPixelRat < c.Page.MinPixelRat {
		c.Page.MaxPixelRat = c.Page.MinPixelRat
	}
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
