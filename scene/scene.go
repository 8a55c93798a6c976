// Package scene composes the page effects into one frame-driven state:
// the background ripple field with its streams, the project cards, the
// page viewport and the telemetry that watches them. It has no drawing or
// windowing dependencies; the game package feeds it input and renders it.
package scene

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/lagoon/camera"
	"github.com/pthm-cable/lagoon/config"
	"github.com/pthm-cable/lagoon/page"
	"github.com/pthm-cable/lagoon/systems"
	"github.com/pthm-cable/lagoon/telemetry"
)

// Options configures a scene.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	StepsPerUpdate int
}

// capture is the surface that owns the pointer between press and release.
type capture int

const (
	captureNone capture = iota
	captureMain
	captureMini
	capturePond
)

// Scene holds the complete effect state.
type Scene struct {
	cfg *config.Config
	rng *rand.Rand

	// Background surface
	Main    *systems.WaveGrid
	Streams *systems.StreamSet
	Current *systems.Current

	// Cards
	Mini    *systems.WaveGrid
	Bloom   *systems.BloomEmitter
	Curtain *systems.Curtain
	Pond    *systems.Pond

	Page   *page.Page
	Camera *camera.Camera

	Foam     systems.FoamParams
	MiniFoam systems.FoamParams

	// Frame clock
	frame int32
	clock float64 // ms
	tide  float32
	cx    float32
	cy    float32

	// Pointer state
	captured     capture
	shift        bool
	lastX, lastY float32 // screen position seen last frame
	pointerSeen  bool

	stepsPerUpdate int

	// Telemetry
	collector     *telemetry.Collector
	timer         *telemetry.StepTimer
	output        *telemetry.OutputManager
	logStats      bool
	lastSplashes  int
	lastMini      int
	statsCallback func(telemetry.WindowStats)

	width, height float32
}

// New creates a scene for a viewport of width x height pixels.
func New(cfg *config.Config, width, height float32, opts Options) (*Scene, error) {
	rng := rand.New(rand.NewSource(opts.Seed))

	s := &Scene{
		cfg:            cfg,
		rng:            rng,
		Current:        systems.NewCurrent(cfg.Current),
		Streams:        systems.NewStreamSet(cfg.Streams, rng),
		Bloom:          systems.NewBloomEmitter(cfg.Bloom, rng),
		Curtain:        systems.NewCurtain(cfg.Curtain, cfg.Screen.TargetFPS),
		Pond:           systems.NewPond(cfg.Pond, float32(cfg.Pond.Width), float32(cfg.Pond.Height), rng),
		Page:           page.NewPage(cfg.Page),
		Foam:           systems.FoamParamsFromConfig(cfg.Foam),
		MiniFoam:       systems.FoamParamsFromConfig(cfg.MiniFoam),
		stepsPerUpdate: max(1, opts.StepsPerUpdate),
		logStats:       opts.LogStats,
		width:          width,
		height:         height,
	}

	s.Main = systems.NewWaveGrid(float64(width), float64(height), systems.WaveParamsFromConfig(cfg.Ripple))
	s.Main.AddEmitter(s.Streams)
	s.seedMist()

	s.Mini = systems.NewWaveGrid(cfg.Page.CardWidth, cfg.Page.CardHeight, systems.WaveParamsFromConfig(cfg.MiniRipple))

	s.Camera = camera.New(width, height, s.Page.Layout(width))

	// Initial gentle bloom
	bw, bh := s.bloomSize()
	s.Bloom.Spawn(bw*0.38, bh*0.62, false)

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}
	s.collector = telemetry.NewCollector(statsWindow, float32(cfg.Derived.FrameMS/1000))
	s.timer = telemetry.NewStepTimer(cfg.Telemetry.StepTimerWindow)

	out, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("creating output manager: %w", err)
	}
	if err := out.WriteConfig(cfg); err != nil {
		out.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}
	s.output = out
	if out != nil {
		slog.Info("writing telemetry", "dir", out.Dir())
	}

	return s, nil
}

func (s *Scene) seedMist() {
	r := s.cfg.Ripple
	s.Main.SeedMist(s.rng, r.MistSplashes, r.MistPower, r.MistJitter)
}

// Resize reallocates the background field for a new viewport and reflows
// the page. Runs between steps on the frame goroutine.
func (s *Scene) Resize(width, height float32) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.Main.Resize(float64(width), float64(height))
	s.seedMist()
	s.Camera.Resize(width, height)
	s.Relayout()
	slog.Debug("resized", "width", width, "height", height, "grid_w", s.Main.W, "grid_h", s.Main.H)
}

// Relayout reflows the cards after a density or disclosure change.
func (s *Scene) Relayout() {
	s.Camera.SetContentHeight(s.Page.Layout(s.width))
}

// SetStatsCallback registers a function called with every flushed window.
func (s *Scene) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// Frame returns the number of steps taken.
func (s *Scene) Frame() int32 { return s.frame }

// Clock returns the scene time in milliseconds.
func (s *Scene) Clock() float64 { return s.clock }

// Tide returns the tide level computed by the last step.
func (s *Scene) Tide() float32 { return s.tide }

// Drift returns the current vector used by the last step.
func (s *Scene) Drift() (float32, float32) { return s.cx, s.cy }

// Ripples returns the number of splashes applied to the background.
func (s *Scene) Ripples() int { return s.Main.Splashes }

// Size returns the viewport size.
func (s *Scene) Size() (float32, float32) { return s.width, s.height }

// Timer returns the step timer.
func (s *Scene) Timer() *telemetry.StepTimer { return s.timer }

// StepsPerUpdate returns how many frames one update advances.
func (s *Scene) StepsPerUpdate() int { return s.stepsPerUpdate }

// bloomSize is the bloom canvas size in pixels.
func (s *Scene) bloomSize() (float32, float32) {
	return float32(s.cfg.Page.CardWidth), float32(s.cfg.Page.CardHeight)
}

// PondRect returns the pond area in page coordinates, centred in its card
// body. Returns false when the card is missing or collapsed.
func (s *Scene) PondRect() (page.Rect, bool) {
	c := s.Page.Card(page.CardPond)
	if c == nil || c.Collapsed {
		return page.Rect{}, false
	}
	b := c.Body()
	w, h := s.Pond.W, s.Pond.H
	return page.Rect{X: b.X + (b.W-w)/2, Y: b.Y + (b.H-h)/2, W: w, H: h}, true
}

// Close flushes and closes telemetry output.
func (s *Scene) Close() error {
	return s.output.Close()
}
