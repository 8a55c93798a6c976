// Ripple tuning tool - live wave field with sliders for the propagation
// constants.
//
// Usage: go run ./cmd/tune [-config path]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/config"
	"github.com/pthm-cable/lagoon/renderer"
	"github.com/pthm-cable/lagoon/systems"
)

const (
	windowWidth  = 1100
	windowHeight = 640
	previewW     = 720
	previewH     = 480
	panelWidth   = windowWidth - previewW - 40
)

// tuning holds the slider values.
type tuning struct {
	Diffusion float32
	Advection float32
	Damping   float32
	Power     float32
	Drift     float32
	Streams   bool
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rl.InitWindow(windowWidth, windowHeight, "Ripple Tuning")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	params := tuning{
		Diffusion: float32(cfg.Ripple.Diffusion),
		Advection: float32(cfg.Ripple.Advection),
		Damping:   float32(cfg.Ripple.Damping),
		Power:     float32(cfg.Ripple.PressPower),
		Streams:   true,
	}

	rng := rand.New(rand.NewSource(1))
	grid := systems.NewWaveGrid(previewW, previewH, systems.WaveParamsFromConfig(cfg.Ripple))
	streams := systems.NewStreamSet(cfg.Streams, rng)
	foam := systems.FoamParamsFromConfig(cfg.Foam)
	water := renderer.NewWaterRenderer()
	defer water.Unload()

	preview := rl.Rectangle{X: 10, Y: 10, Width: previewW, Height: previewH}
	var clock float64
	var peakEnergy float64

	for !rl.WindowShouldClose() {
		// Splash on click inside the preview, and on drags that move
		mouse := rl.GetMousePosition()
		delta := rl.GetMouseDelta()
		if rl.CheckCollisionPointRec(mouse, preview) {
			px, py := float64(mouse.X-preview.X), float64(mouse.Y-preview.Y)
			if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
				grid.Splash(px, py, float64(params.Power))
			} else if rl.IsMouseButtonDown(rl.MouseButtonLeft) && (delta.X != 0 || delta.Y != 0) {
				grid.Splash(px, py, float64(params.Power)*cfg.Ripple.DragPower/cfg.Ripple.PressPower)
			}
		}

		grid.SetTuning(float64(params.Diffusion), float64(params.Advection), float64(params.Damping))
		grid.SetDrift(params.Drift, 0)
		grid.Step(clock)
		if params.Streams {
			streams.Emit(grid, clock)
		}
		clock += cfg.Derived.FrameMS

		energy := grid.Energy()
		if energy > peakEnergy {
			peakEnergy = energy
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 6, G: 38, B: 45, A: 255})

		foamCells := water.DrawMain(grid, foam, preview, 0.5, params.Drift, 0)
		rl.DrawRectangleLinesEx(preview, 1, rl.DarkGray)

		// Stats
		statsY := int32(previewH + 25)
		rl.DrawText(fmt.Sprintf("Grid: %dx%d  Energy: %.1f  Peak: %.1f  Max cell: %.2f",
			grid.W, grid.H, energy, peakEnergy, grid.Peak()), 15, statsY, 16, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Foam cells: %d  Splashes: %d", foamCells, grid.Splashes), 15, statsY+20, 16, rl.LightGray)
		rl.DrawText(fmt.Sprintf("Time: %.1fs", clock/1000), 15, statsY+40, 16, rl.LightGray)

		// Control panel
		panelX := float32(previewW + 25)
		panelY := float32(10)

		rl.DrawText("Ripple Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		params.Diffusion, panelY = slider(panelX, panelY, "Diffusion (neighbour relax)", "0", "1", params.Diffusion, 0, 1, "%.2f")
		params.Advection, panelY = slider(panelX, panelY, "Advection (transport weight)", "0", "1", params.Advection, 0, 1, "%.2f")
		if params.Diffusion+params.Advection > 1 {
			params.Advection = 1 - params.Diffusion
		}
		params.Damping, panelY = slider(panelX, panelY, "Damping (per step decay)", "0.9", "1", params.Damping, 0.9, 1, "%.3f")
		params.Power, panelY = slider(panelX, panelY, "Splash power", "10", "250", params.Power, 10, 250, "%.0f")
		params.Drift, panelY = slider(panelX, panelY, "Drift (current x)", "-0.7", "0.7", params.Drift, -0.7, 0.7, "%.2f")

		panelY += 10
		streamLabel := "Streams: off"
		if params.Streams {
			streamLabel = "Streams: on"
		}
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, streamLabel) {
			params.Streams = !params.Streams
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 100, Height: 30}, "Clear") {
			grid.Clear()
			peakEnergy = 0
		}
		if gui.Button(rl.Rectangle{X: panelX + 240, Y: panelY, Width: 100, Height: 30}, "Mist") {
			grid.SeedMist(rng, cfg.Ripple.MistSplashes, cfg.Ripple.MistPower, cfg.Ripple.MistJitter)
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 150, Height: 30}, "Reset to config") {
			params.Diffusion = float32(cfg.Ripple.Diffusion)
			params.Advection = float32(cfg.Ripple.Advection)
			params.Damping = float32(cfg.Ripple.Damping)
			params.Power = float32(cfg.Ripple.PressPower)
			params.Drift = 0
		}
		if gui.Button(rl.Rectangle{X: panelX + 160, Y: panelY, Width: 150, Height: 30}, "Print YAML") {
			fmt.Printf("ripple:\n  diffusion: %.3f\n  advection: %.3f\n  damping: %.4f\n  press_power: %.0f\n",
				params.Diffusion, params.Advection, params.Damping, params.Power)
		}
		panelY += 45

		rl.DrawText("Click or drag on the preview to splash.", int32(panelX), int32(panelY), 14, rl.Gray)
		rl.DrawText("Diffusion + advection is capped at 1.", int32(panelX), int32(panelY+18), 14, rl.Gray)

		rl.EndDrawing()
	}
}

// slider draws a labelled slider and returns the new value and next Y.
func slider(x, y float32, label, left, right string, value, lo, hi float32, format string) (float32, float32) {
	rl.DrawText(label, int32(x), int32(y), 14, rl.Gray)
	y += 18
	v := gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: float32(panelWidth - 80), Height: 20},
		left, right,
		value, lo, hi,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(x+float32(panelWidth-70)), int32(y+2), 16, rl.RayWhite)
	return v, y + 35
}
