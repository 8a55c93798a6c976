package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/lagoon/systems"
)

// WaterRenderer draws a wave grid as a washed surface with foam tiles.
// Foam is written into a grid-sized texture and scaled up with point
// filtering so each cell reads as one tile.
type WaterRenderer struct {
	// PixelRatio scales stroke widths on high density displays.
	PixelRatio float32

	texture     rl.Texture2D
	pixels      []color.RGBA
	texW, texH  int
	initialized bool
}

// NewWaterRenderer creates a water renderer. The texture is created lazily
// on the first draw after the raylib window exists.
func NewWaterRenderer() *WaterRenderer {
	return &WaterRenderer{PixelRatio: 1}
}

// ensure (re)allocates the foam texture to match the grid.
func (w *WaterRenderer) ensure(gw, gh int) {
	if w.initialized && w.texW == gw && w.texH == gh {
		return
	}
	if w.initialized {
		rl.UnloadTexture(w.texture)
	}

	img := rl.GenImageColor(gw, gh, rl.Blank)
	w.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(w.texture, rl.FilterPoint)

	w.pixels = make([]color.RGBA, gw*gh)
	w.texW, w.texH = gw, gh
	w.initialized = true
}

// uploadFoam renders the grid's foam into the texture and returns the
// number of foamy cells.
func (w *WaterRenderer) uploadFoam(g *systems.WaveGrid, p systems.FoamParams, tide float32) int {
	w.ensure(g.W, g.H)
	clear(w.pixels)
	n := g.ForEachFoam(p, tide, func(x, y int, alpha float32) {
		w.pixels[x+y*g.W] = color.RGBA{R: foamWhite[0], G: foamWhite[1], B: foamWhite[2], A: uint8(alpha * 255)}
	})
	rl.UpdateTexture(w.texture, w.pixels)
	return n
}

func (w *WaterRenderer) drawFoam(dst rl.Rectangle) {
	rl.DrawTexturePro(
		w.texture,
		rl.Rectangle{X: 0, Y: 0, Width: float32(w.texW), Height: float32(w.texH)},
		dst,
		rl.Vector2{},
		0,
		rl.White,
	)
}

// DrawMain renders the full-window surface: gradient wash, waterfall
// sheen, foam and the current hint arrow.
func (w *WaterRenderer) DrawMain(g *systems.WaveGrid, p systems.FoamParams, dst rl.Rectangle, tide, cx, cy float32) int {
	x, y := int32(dst.X), int32(dst.Y)
	width, height := int32(dst.Width), int32(dst.Height)

	// Base gradient wash
	half := height / 2
	rl.DrawRectangleGradientV(x, y, width, half, tint(lagoonTeal, 0.08), tint(lagoonMint, 0.05))
	rl.DrawRectangleGradientV(x, y+half, width, height-half, tint(lagoonMint, 0.05), rgba(0, 0, 0, 0.12))

	// Waterfall sheen from the top, brighter at high tide
	sheenH := int32(float32(height) * 0.55 * 0.55)
	rl.DrawRectangleGradientV(x, y, width, sheenH, tint(mistWhite, 0.14+tide*0.10), tint(lagoonMint, 0.07))
	rl.DrawRectangleGradientV(x, y+sheenH, width, int32(float32(height)*0.62)-sheenH, tint(lagoonMint, 0.07), tint(mistWhite, 0))

	n := w.uploadFoam(g, p, tide)
	w.drawFoam(dst)

	drawCurrentHint(dst.X+dst.Width-110, dst.Y+dst.Height-80, systems.CurrentAngle(cx, cy), 2*w.PixelRatio)
	return n
}

// DrawMini renders a card-sized surface with a slow glint band.
func (w *WaterRenderer) DrawMini(g *systems.WaveGrid, p systems.FoamParams, dst rl.Rectangle, t float64) int {
	x, y := int32(dst.X), int32(dst.Y)
	width, height := int32(dst.Width), int32(dst.Height)
	rl.DrawRectangleGradientV(x, y, width, height, tint(lagoonMint, 0.12), rgba(0, 0, 0, 0.18))

	n := w.uploadFoam(g, p, 0)
	w.drawFoam(dst)

	band := float32(math.Sin(t*0.0012)*0.5+0.5) * dst.Height
	rl.DrawRectangle(x, y+int32(band), width, 10, tint(mistWhite, 0.12*0.22))
	return n
}

// drawCurrentHint draws a faint arrow at (x, y) pointing along angle.
func drawCurrentHint(x, y float32, angle float64, thick float32) {
	const alpha = 0.18

	rl.PushMatrix()
	rl.Translatef(x, y, 0)
	rl.Rotatef(float32(angle*180/math.Pi), 0, 0, 1)
	rl.DrawLineEx(rl.Vector2{X: -26}, rl.Vector2{X: 26}, thick, tint(mistWhite, 0.40*alpha))
	rl.DrawTriangle(
		rl.Vector2{X: 26, Y: 0},
		rl.Vector2{X: 15, Y: -8},
		rl.Vector2{X: 15, Y: 8},
		tint(mistWhite, 0.18*alpha),
	)
	rl.PopMatrix()
}

// Unload frees resources.
func (w *WaterRenderer) Unload() {
	if w.initialized {
		rl.UnloadTexture(w.texture)
		w.initialized = false
	}
}
