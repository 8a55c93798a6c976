package systems

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/pthm-cable/lagoon/config"
)

// Curtain is a reveal driven by how close its card sits to the viewport anchor.
// State rises to the scroll influence and relaxes exponentially toward 0.
type Curtain struct {
	State float32

	cfg config.CurtainConfig

	// Displayed offset chases Offset() through a spring
	spring    harmonica.Spring
	shown     float64
	shownVel  float64
	hasSpring bool
}

// NewCurtain creates a curtain at rest. fps sets the spring time step (0 disables smoothing).
func NewCurtain(cfg config.CurtainConfig, fps int) *Curtain {
	c := &Curtain{cfg: cfg}
	if fps > 0 && cfg.SpringFreq > 0 {
		c.spring = harmonica.NewSpring(harmonica.FPS(fps), cfg.SpringFreq, cfg.SpringDamping)
		c.hasSpring = true
	}
	c.shown = c.Offset()
	return c
}

// Influence returns how strongly a card centred at screen y = mid pulls the curtain
// for a viewport of height vh. Non-positive vh falls back to fallbackVH.
func (c *Curtain) Influence(mid, vh, fallbackVH float64) float32 {
	if vh <= 0 {
		vh = fallbackVH
	}
	dist := math.Abs(mid - vh*c.cfg.Anchor)
	reach := vh * c.cfg.Reach
	if reach <= 0 {
		return 0
	}
	return float32(math.Max(0, 1-dist/reach))
}

// Update folds this frame's influence into the state and relaxes it.
func (c *Curtain) Update(influence float32) {
	if v := influence * float32(c.cfg.Gain); v > c.State {
		c.State = v
	}
	c.State *= float32(c.cfg.Relax)

	if c.hasSpring {
		c.shown, c.shownVel = c.spring.Update(c.shown, c.shownVel, c.Offset())
	} else {
		c.shown = c.Offset()
	}
}

// Reset drops the state to 0 immediately.
func (c *Curtain) Reset() {
	c.State = 0
}

// Offset returns the target vertical offset of the curtain as a percent of card height.
func (c *Curtain) Offset() float64 {
	return c.cfg.OffsetStart + float64(c.State)*c.cfg.OffsetTravel
}

// Shown returns the smoothed offset used for drawing.
func (c *Curtain) Shown() float64 {
	return c.shown
}
