package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/lagoon/config"
)

// WaveParams configures a WaveGrid. See config.RippleConfig for field meanings.
type WaveParams struct {
	CellSize    float64
	MinCols     int
	MinRows     int
	Diffusion   float64 // pull toward the neighbour mean; each neighbour weighs Diffusion/4
	Advection   float64
	Damping     float64
	FastDamping float64
	FixedRadius int
	RadiusBase  float64
	RadiusScale float64
	RadiusMin   float64
	RadiusMax   float64
	Epsilon     float64
}

// WaveParamsFromConfig converts a ripple config section into grid parameters.
func WaveParamsFromConfig(c config.RippleConfig) WaveParams {
	return WaveParams{
		CellSize:    c.CellSize,
		MinCols:     c.MinCols,
		MinRows:     c.MinRows,
		Diffusion:   c.Diffusion,
		Advection:   c.Advection,
		Damping:     c.Damping,
		FastDamping: c.FastDamping,
		FixedRadius: c.FixedRadius,
		RadiusBase:  c.RadiusBase,
		RadiusScale: c.RadiusScale,
		RadiusMin:   c.RadiusMin,
		RadiusMax:   c.RadiusMax,
		Epsilon:     c.Epsilon,
	}
}

// Emitter injects disturbances into a grid once per step.
type Emitter interface {
	Emit(g *WaveGrid, t float64)
}

// WaveGrid is a double-buffered scalar wave field with a one-cell dead border.
// Border cells are never written, so interior stencils need no bounds checks.
type WaveGrid struct {
	W, H int

	// Cur is the live field; Next is scratch for the step in progress.
	Cur  []float32
	Next []float32

	// Pixel dimensions the grid maps onto
	pixelW, pixelH float64

	params WaveParams

	// Drift biases propagation by sampling upstream neighbours
	driftX, driftY float32
	fast           bool

	emitters []Emitter

	// Splashes counts applied disturbances since creation.
	Splashes int
}

// NewWaveGrid allocates a grid covering pixelW x pixelH pixels.
func NewWaveGrid(pixelW, pixelH float64, p WaveParams) *WaveGrid {
	if p.CellSize <= 0 {
		p.CellSize = 8
	}
	if p.MinCols < 3 {
		p.MinCols = 3
	}
	if p.MinRows < 3 {
		p.MinRows = 3
	}
	g := &WaveGrid{params: p}
	g.Resize(pixelW, pixelH)
	return g
}

// Resize reallocates both buffers for new pixel dimensions. The previous field is dropped.
func (g *WaveGrid) Resize(pixelW, pixelH float64) {
	g.pixelW = pixelW
	g.pixelH = pixelH

	g.W = max(g.params.MinCols, int(math.Floor(pixelW/g.params.CellSize)))
	g.H = max(g.params.MinRows, int(math.Floor(pixelH/g.params.CellSize)))

	g.Cur = make([]float32, g.W*g.H)
	g.Next = make([]float32, g.W*g.H)
}

// PixelSize returns the pixel dimensions the grid maps onto.
func (g *WaveGrid) PixelSize() (float64, float64) { return g.pixelW, g.pixelH }

// Params returns the grid parameters.
func (g *WaveGrid) Params() WaveParams { return g.params }

// SetTuning changes the propagation constants in place. Advection is
// reduced so the pair never exceeds 1.
func (g *WaveGrid) SetTuning(diffusion, advection, damping float64) {
	diffusion = clampFloat64(diffusion, 0, 1)
	advection = clampFloat64(advection, 0, 1-diffusion)
	g.params.Diffusion = diffusion
	g.params.Advection = advection
	g.params.Damping = clampFloat64(damping, 0, 1)
}

// SetDrift sets the current vector used by the advection term.
func (g *WaveGrid) SetDrift(cx, cy float32) {
	g.driftX = cx
	g.driftY = cy
}

// SetFast selects the faster-dissipating damping constant.
func (g *WaveGrid) SetFast(fast bool) { g.fast = fast }

// AddEmitter attaches an emitter that runs after every step.
func (g *WaveGrid) AddEmitter(e Emitter) { g.emitters = append(g.emitters, e) }

func (g *WaveGrid) idx(x, y int) int { return x + y*g.W }

// At returns the current value at a cell, or 0 outside the grid.
func (g *WaveGrid) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0
	}
	return g.Cur[g.idx(x, y)]
}

// interior reports whether a cell lies inside the dead border.
func (g *WaveGrid) interior(x, y int) bool {
	return x >= 1 && y >= 1 && x < g.W-1 && y < g.H-1
}

// CellOf maps pixel coordinates to grid coordinates.
func (g *WaveGrid) CellOf(px, py float64) (int, int) {
	if g.pixelW <= 0 || g.pixelH <= 0 {
		return -1, -1
	}
	gx := int(math.Floor(px / g.pixelW * float64(g.W)))
	gy := int(math.Floor(py / g.pixelH * float64(g.H)))
	return gx, gy
}

// SplashRadius returns the disturbance radius in cells for a given power.
func (g *WaveGrid) SplashRadius(power float64) int {
	if g.params.FixedRadius > 0 {
		return g.params.FixedRadius
	}
	s := clampFloat64(power*g.params.RadiusScale, g.params.RadiusMin, g.params.RadiusMax)
	return int(g.params.RadiusBase) + int(math.Floor(s))
}

// Splash adds a cone-shaped disturbance centred on pixel (px, py).
// Returns false without touching the field when the centre is in the border.
func (g *WaveGrid) Splash(px, py, power float64) bool {
	gx, gy := g.CellOf(px, py)
	if !g.interior(gx, gy) {
		return false
	}

	rad := g.SplashRadius(power)
	if rad < 0 {
		rad = 0
	}
	denom := float64(rad) + g.params.Epsilon

	for y := -rad; y <= rad; y++ {
		for x := -rad; x <= rad; x++ {
			xx, yy := gx+x, gy+y
			if !g.interior(xx, yy) {
				continue
			}
			d := math.Hypot(float64(x), float64(y))
			if d > float64(rad) {
				continue
			}
			k := 1.0
			if denom > 0 {
				k = 1 - d/denom
			}
			g.Cur[g.idx(xx, yy)] += float32(k * power)
		}
	}
	g.Splashes++
	return true
}

// Step advances the field one frame, swaps buffers, then runs emitters for time t.
//
// Each interior cell relaxes toward its neighbour mean by Diffusion and toward its
// drift-upstream neighbour by Advection. The mean is lap/4, so the Laplacian
// itself is weighted by Diffusion/4 (0.52 gives 0.13). With Diffusion+Advection
// <= 1 the update weights are non-negative and sum to one, so Damping alone sets
// the decay.
func (g *WaveGrid) Step(t float64) {
	damp := float32(g.params.Damping)
	if g.fast {
		damp = float32(g.params.FastDamping)
	}
	k := float32(g.params.Diffusion * 0.25) // Laplacian weight
	adv := float32(g.params.Advection)

	// Upstream offset; border cells read as 0
	ox := sign(g.driftX)
	oy := sign(g.driftY)
	shift := ox + oy*g.W

	a, b := g.Cur, g.Next
	w := g.W
	for y := 1; y < g.H-1; y++ {
		row := y * w
		for x := 1; x < w-1; x++ {
			i := row + x
			c := a[i]
			lap := a[i-1] + a[i+1] + a[i-w] + a[i+w] - 4*c

			var transport float32
			if adv != 0 && shift != 0 {
				transport = (a[i-shift] - c) * adv
			}

			b[i] = (c + lap*k + transport) * damp
		}
	}

	g.Cur, g.Next = g.Next, g.Cur

	for _, e := range g.emitters {
		e.Emit(g, t)
	}
}

// Energy returns the sum of absolute cell values.
func (g *WaveGrid) Energy() float64 {
	var sum float64
	for _, v := range g.Cur {
		sum += math.Abs(float64(v))
	}
	return sum
}

// Peak returns the largest absolute cell value.
func (g *WaveGrid) Peak() float32 {
	var peak float32
	for _, v := range g.Cur {
		if a := absf(v); a > peak {
			peak = a
		}
	}
	return peak
}

// Clear zeroes both buffers.
func (g *WaveGrid) Clear() {
	clear(g.Cur)
	clear(g.Next)
}

// SeedMist scatters n soft splashes across the top band of the surface.
func (g *WaveGrid) SeedMist(rng *rand.Rand, n int, power, jitter float64) {
	for i := 0; i < n; i++ {
		x := (0.08 + rng.Float64()*0.84) * g.pixelW
		y := (0.03 + rng.Float64()*0.12) * g.pixelH
		g.Splash(x, y, power+rng.Float64()*jitter)
	}
}
