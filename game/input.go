package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/scene"
)

// handleKeys processes keyboard shortcuts.
func (g *Game) handleKeys() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyP) {
		g.showPerf = !g.showPerf
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.scene.ResetCurtain()
	}
}

// handleResize propagates window size changes to the scene.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	g.scene.Resize(w, h)
	g.perfPanel.SetPosition(int32(w)-270, 90)
	g.updatePixelRatio()
	slog.Info("window resized", "width", w, "height", h, "pixel_ratio", g.pixelRatio)
}

// pollInput reads the pointer, modifier and wheel state for this frame.
func (g *Game) pollInput() scene.Input {
	pos := rl.GetMousePosition()
	return scene.Input{
		Pointer: scene.Pointer{
			X:        pos.X,
			Y:        pos.Y,
			Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
			Pressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
			Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
			Shift:    rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift),
		},
		Wheel: rl.GetMouseWheelMove(),
	}
}
