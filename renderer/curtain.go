package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CurtainRenderer draws a waterfall sheet that slides over a card.
type CurtainRenderer struct {
	Streaks int
}

// NewCurtainRenderer creates a curtain renderer.
func NewCurtainRenderer() *CurtainRenderer {
	return &CurtainRenderer{Streaks: 14}
}

// Draw renders the revealed text and the curtain at offsetPct percent of
// the card height.
func (r *CurtainRenderer) Draw(dst rl.Rectangle, offsetPct float64, t float64, lines []string) {
	x, y := int32(dst.X), int32(dst.Y)
	w, h := int32(dst.Width), int32(dst.Height)

	rl.BeginScissorMode(x, y, w, h)
	rl.DrawRectangleGradientV(x, y, w, h, tint(lagoonTeal, 0.10), rgba(0, 0, 0, 0.22))
	for i, line := range lines {
		rl.DrawText(line, x+16, y+24+int32(i)*22, 16, tint(mistWhite, 0.85))
	}

	top := dst.Y + float32(offsetPct/100)*dst.Height
	cy := int32(top)
	rl.DrawRectangleGradientV(x, cy, w, h, tint(mistWhite, 0.55), tint(lagoonMint, 0.35))

	// Falling streaks
	for i := 0; i < r.Streaks; i++ {
		sx := dst.X + (float32(i)+0.5)*dst.Width/float32(r.Streaks)
		phase := math.Mod(t*0.0004*(1+float64(i%3)*0.3)+float64(i)*0.37, 1)
		sy := top + float32(phase)*dst.Height
		rl.DrawLineEx(rl.Vector2{X: sx, Y: sy}, rl.Vector2{X: sx, Y: sy + 26}, 1.5, tint(mistWhite, 0.35))
	}
	rl.DrawRectangle(x, cy+h-6, w, 6, tint(foamWhite, 0.45))
	rl.EndScissorMode()
}
