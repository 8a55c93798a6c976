package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/lagoon/config"
)

// BloomParticle is a short-lived petal.
type BloomParticle struct {
	X, Y     float32
	VX, VY   float32
	Life     float32
	Radius   float32
	Hue      float32 // Degrees; may exceed 360 and wraps when rendered
	Drift    float32 // Phase of the horizontal wobble
	Rotation float32

	seq uint32
}

// BloomEmitter owns a live list of petals spawned on interaction.
type BloomEmitter struct {
	Particles []BloomParticle

	cfg     config.BloomConfig
	rng     *rand.Rand
	nextSeq uint32
}

// NewBloomEmitter creates an empty emitter.
func NewBloomEmitter(cfg config.BloomConfig, rng *rand.Rand) *BloomEmitter {
	if cfg.MaxParticles <= 0 {
		cfg.MaxParticles = 1500
	}
	return &BloomEmitter{
		Particles: make([]BloomParticle, 0, cfg.DenseCount*4),
		cfg:       cfg,
		rng:       rng,
	}
}

// Spawn releases a burst of petals at (x, y). Dense bursts are larger and faster.
// Returns how many were added; the burst is truncated at capacity.
func (e *BloomEmitter) Spawn(x, y float32, dense bool) int {
	n := e.cfg.Count
	base := e.cfg.Speed
	if dense {
		n = e.cfg.DenseCount
		base = e.cfg.DenseSpeed
	}

	added := 0
	for i := 0; i < n; i++ {
		if len(e.Particles) >= e.cfg.MaxParticles {
			break
		}
		ang := e.rng.Float64() * math.Pi * 2
		sp := base + e.rng.Float64()*e.cfg.SpeedRange

		e.Particles = append(e.Particles, BloomParticle{
			X:      x,
			Y:      y,
			VX:     float32(math.Cos(ang) * sp),
			VY:     float32(math.Sin(ang)*sp*e.cfg.VerticalScale - e.cfg.Lift),
			Life:   1,
			Radius: float32(e.cfg.RadiusMin + e.rng.Float64()*e.cfg.RadiusRange),
			Hue:    float32(e.cfg.HueMin + e.rng.Float64()*e.cfg.HueRange),
			Drift:  float32((e.rng.Float64()*2 - 1) * e.cfg.DriftRange),
			seq:    e.nextSeq,
		})
		e.nextSeq++
		added++
	}
	return added
}

// Advance moves every petal one frame at time t (ms) inside a w x h area and
// drops petals that faded out or fell below the floor margin.
func (e *BloomEmitter) Advance(t float64, w, h float32) {
	damp := float32(e.cfg.Damping)
	gravity := float32(e.cfg.Gravity)
	decay := float32(e.cfg.LifeDecay)
	minLife := float32(e.cfg.MinLife)
	margin := float32(e.cfg.WrapMargin)
	floor := h + float32(e.cfg.FloorMargin)

	alive := 0
	for i := range e.Particles {
		p := &e.Particles[i]

		p.VX *= damp
		p.VY *= damp
		p.VY += gravity
		p.X += p.VX + float32(math.Sin(t*0.001+float64(p.Drift))*e.cfg.Wobble)
		p.Y += p.VY
		p.Life *= decay

		// Teleport across the sides
		if p.X < -margin {
			p.X = w + margin
		} else if p.X > w+margin {
			p.X = -margin
		}

		p.Rotation = float32(fmod(t*0.002+float64(p.seq), math.Pi))

		if p.Life < minLife || p.Y > floor {
			continue
		}
		e.Particles[alive] = *p
		alive++
	}
	e.Particles = e.Particles[:alive]
}

// Alpha returns the render opacity of a petal.
func (e *BloomEmitter) Alpha(p *BloomParticle) float32 {
	ceiling := float32(e.cfg.MaxAlpha)
	return clampFloat(p.Life*ceiling, 0, ceiling)
}

// Count returns the current number of live petals.
func (e *BloomEmitter) Count() int {
	return len(e.Particles)
}

// Clear drops every petal.
func (e *BloomEmitter) Clear() {
	e.Particles = e.Particles[:0]
}
