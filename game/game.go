// Package game hosts the scene in a raylib window: it polls input, draws
// every surface and the page controls, and drives headless runs.
package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/config"
	"github.com/pthm-cable/lagoon/renderer"
	"github.com/pthm-cable/lagoon/scene"
	"github.com/pthm-cable/lagoon/telemetry"
	"github.com/pthm-cable/lagoon/ui"
)

// Options configures a game run.
type Options = scene.Options

// Game owns the scene and everything that draws it.
type Game struct {
	scene *scene.Scene
	cfg   *config.Config

	// Renderers
	mainWater *renderer.WaterRenderer
	miniWater *renderer.WaterRenderer
	bloom     *renderer.BloomRenderer
	curtain   *renderer.CurtainRenderer
	pond      *renderer.PondRenderer
	band      *renderer.BandRenderer

	// UI
	hud       *ui.HUD
	controls  *ui.Controls
	uiRender  *ui.Renderer
	perfPanel *ui.PerfPanel

	// Headless input
	script *scene.Script

	paused     bool
	showPerf   bool
	pixelRatio float32
}

// NewGameWithOptions creates a game sized to the configured screen.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()
	s, err := scene.New(cfg, cfg.Derived.ScreenW32, cfg.Derived.ScreenH32, opts)
	if err != nil {
		return nil, fmt.Errorf("creating scene: %w", err)
	}

	g := &Game{
		scene:      s,
		cfg:        cfg,
		mainWater:  renderer.NewWaterRenderer(),
		miniWater:  renderer.NewWaterRenderer(),
		bloom:      renderer.NewBloomRenderer(),
		curtain:    renderer.NewCurtainRenderer(),
		pond:       renderer.NewPondRenderer(),
		band:       renderer.NewBandRenderer(),
		hud:        ui.NewHUD(),
		controls:   ui.NewControls(),
		uiRender:   ui.NewRenderer(),
		perfPanel:  ui.NewPerfPanel(int32(cfg.Screen.Width)-270, 90),
		script:     scene.NewScript(opts.Seed),
		showPerf:   opts.LogStats,
		pixelRatio: 1,
	}
	return g, nil
}

// SetStatsCallback registers a function called with every telemetry window.
func (g *Game) SetStatsCallback(fn func(telemetry.WindowStats)) {
	g.scene.SetStatsCallback(fn)
}

// Update polls the window and advances the scene.
func (g *Game) Update() {
	g.handleKeys()
	g.handleResize()
	g.scene.Timer().Present()

	in := g.pollInput()
	if g.paused {
		// Scrolling and pointer routing still work while the water is frozen
		g.scene.HandleInput(in)
		return
	}
	g.scene.Update(in)
}

// UpdateHeadless advances the scene with scripted input and no window.
func (g *Game) UpdateHeadless() {
	g.scene.Update(g.script.Next(g.scene))
}

// Tick returns the number of frames simulated.
func (g *Game) Tick() int32 {
	return g.scene.Frame()
}

// Unload frees GPU resources and closes telemetry output.
func (g *Game) Unload() error {
	g.mainWater.Unload()
	g.miniWater.Unload()
	return g.scene.Close()
}

// updatePixelRatio reads the monitor scale and applies it to strokes.
func (g *Game) updatePixelRatio() {
	scale := rl.GetWindowScaleDPI()
	g.pixelRatio = renderer.PixelRatio(scale.X, float32(g.cfg.Page.MinPixelRat), float32(g.cfg.Page.MaxPixelRat))
	g.mainWater.PixelRatio = g.pixelRatio
	g.miniWater.PixelRatio = g.pixelRatio
}

// AttachWindow syncs the scene with the opened window's real size and
// pixel density. Call once after rl.InitWindow.
func (g *Game) AttachWindow() {
	g.scene.Resize(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	g.updatePixelRatio()
}
