package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BandRenderer draws the title band decorations: a drifting foam strip
// and a floral overlay that leans with the current.
type BandRenderer struct {
	Blobs   int
	Flowers int
}

// NewBandRenderer creates a band renderer.
func NewBandRenderer() *BandRenderer {
	return &BandRenderer{Blobs: 18, Flowers: 7}
}

// Draw renders both layers inside dst. driftPct is the foam strip position
// in [0, 100), overlayPx the horizontal overlay shift in pixels.
func (r *BandRenderer) Draw(dst rl.Rectangle, driftPct, overlayPx float64, tide float32) {
	x, y := int32(dst.X), int32(dst.Y)
	w, h := int32(dst.Width), int32(dst.Height)

	rl.BeginScissorMode(x, y, w, h)

	// Foam strip along the bottom edge, wrapping horizontally
	strip := 0.55 + tide*0.25
	shift := float32(driftPct/100) * dst.Width
	spacing := dst.Width / float32(r.Blobs)
	base := dst.Y + dst.Height - 10
	for i := 0; i < r.Blobs+1; i++ {
		bx := float32(math.Mod(float64(float32(i)*spacing+shift), float64(dst.Width+spacing))) + dst.X - spacing/2
		rad := 5 + 3*float32(math.Sin(float64(i)*1.7))
		rl.DrawCircleV(rl.Vector2{X: bx, Y: base}, rad, tint(foamWhite, strip*0.35))
	}

	// Floral overlay
	bloom := 0.88 + tide*0.10
	for i := 0; i < r.Flowers; i++ {
		cx := dst.X + (float32(i)+0.5)*dst.Width/float32(r.Flowers) + float32(overlayPx)
		cy := dst.Y + dst.Height*0.45 + 6*float32(math.Sin(float64(i)*2.3))
		drawFlower(cx, cy, 7, tint(mistWhite, bloom*0.12))
	}

	rl.EndScissorMode()
}

// drawFlower draws five petals around (x, y).
func drawFlower(x, y, size float32, col rl.Color) {
	for k := 0; k < 5; k++ {
		a := float64(k) * 2 * math.Pi / 5
		px := x + size*float32(math.Cos(a))
		py := y + size*float32(math.Sin(a))
		rl.DrawCircleV(rl.Vector2{X: px, Y: py}, size*0.6, col)
	}
}
