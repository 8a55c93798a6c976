package systems

import (
	"math"

	"github.com/pthm-cable/lagoon/config"
)

// Current tracks the wheel-driven scroll accumulator and derives the drift
// vector and tide phase shared by the page effects.
type Current struct {
	Scroll float64

	cfg config.CurrentConfig
}

// NewCurrent creates a current at rest.
func NewCurrent(cfg config.CurrentConfig) *Current {
	if cfg.ScrollLimit <= 0 {
		cfg.ScrollLimit = 1200
	}
	return &Current{cfg: cfg}
}

// Wheel feeds a scroll delta into the accumulator.
func (c *Current) Wheel(dy float64) {
	c.Scroll = clampFloat64(c.Scroll+dy, -c.cfg.ScrollLimit, c.cfg.ScrollLimit)
}

// Relax eases the accumulator toward 0. Called once per frame.
func (c *Current) Relax() {
	c.Scroll *= c.cfg.ScrollRelax
}

// Drift returns the current vector at time t (ms).
func (c *Current) Drift(t float64) (cx, cy float32) {
	cx = float32(c.Scroll / c.cfg.ScrollLimit * c.cfg.DriftScale)
	cy = float32(math.Sin(t*c.cfg.VerticalFreq) * c.cfg.VerticalAmp)
	return cx, cy
}

// Tide returns the tide level in [0, 1] at time t (ms).
func (c *Current) Tide(t float64) float32 {
	return float32(math.Sin(t*c.cfg.TideFreq)*0.5 + 0.5)
}

// FoamStripDrift returns the tide foam strip offset as a percent in [0, 100).
func (c *Current) FoamStripDrift(t float64) float64 {
	return fmod(t*0.004+c.Scroll*0.04, 100)
}

// OverlayOffset returns the floral overlay vertical offset in pixels.
func (c *Current) OverlayOffset() float64 {
	return clampFloat64(c.Scroll*0.015, -30, 30)
}

// CurrentAngle returns the heading of a drift vector for the hint arrow.
func CurrentAngle(cx, cy float32) float64 {
	if cx == 0 {
		cx = 0.001
	}
	return math.Atan2(float64(cy), float64(cx))
}
