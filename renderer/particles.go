package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/lagoon/systems"
)

// BloomRenderer draws petals as rotated ellipses over a soft wash.
type BloomRenderer struct {
	// Petal colour cache keyed by whole-degree hue
	palette map[int]colorful.Color
}

// NewBloomRenderer creates a new petal renderer.
func NewBloomRenderer() *BloomRenderer {
	return &BloomRenderer{palette: make(map[int]colorful.Color)}
}

// petalColor maps a hue in degrees to a pale blossom colour.
func (r *BloomRenderer) petalColor(hue float32) colorful.Color {
	deg := int(math.Floor(float64(hue))) % 360
	if deg < 0 {
		deg += 360
	}
	if c, ok := r.palette[deg]; ok {
		return c
	}
	c := colorful.Hsl(float64(deg), 1.0, 0.85).Clamped()
	r.palette[deg] = c
	return c
}

// Draw renders the wash and every live petal inside dst.
func (r *BloomRenderer) Draw(e *systems.BloomEmitter, dst rl.Rectangle) {
	x, y := int32(dst.X), int32(dst.Y)
	rl.DrawRectangleGradientV(x, y, int32(dst.Width), int32(dst.Height), tint(lagoonMint, 0.10), rgba(0, 0, 0, 0.18))

	rl.BeginScissorMode(x, y, int32(dst.Width), int32(dst.Height))
	for i := range e.Particles {
		p := &e.Particles[i]
		cr, cg, cb := r.petalColor(p.Hue).RGB255()

		rl.PushMatrix()
		rl.Translatef(dst.X+p.X, dst.Y+p.Y, 0)
		rl.Rotatef(p.Rotation*180/math.Pi, 0, 0, 1)
		rl.DrawEllipse(0, 0, p.Radius*1.25, p.Radius*0.85, rgba(cr, cg, cb, e.Alpha(p)))
		rl.PopMatrix()
	}
	rl.EndScissorMode()
}
