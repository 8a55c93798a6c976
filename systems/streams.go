package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/lagoon/config"
)

// Stream is one falling water column.
type Stream struct {
	X      float64 // Base horizontal position as a fraction of width
	Phase  float64
	Speed  float64
	Width  float64
	Jitter float64
}

// StreamSet emits periodic splashes from falling columns. It implements Emitter.
type StreamSet struct {
	Streams []Stream
	power   float64
}

// NewStreamSet creates cfg.Count streams spread evenly across the width.
func NewStreamSet(cfg config.StreamsConfig, rng *rand.Rand) *StreamSet {
	s := &StreamSet{
		Streams: make([]Stream, cfg.Count),
		power:   cfg.Power,
	}
	for i := range s.Streams {
		s.Streams[i] = Stream{
			X:      cfg.BaseX + float64(i)*cfg.Spacing,
			Phase:  rng.Float64() * math.Pi * 2,
			Speed:  cfg.SpeedMin + rng.Float64()*cfg.SpeedRange,
			Width:  cfg.WidthMin + rng.Float64()*cfg.WidthRange,
			Jitter: rng.Float64() * cfg.JitterMax,
		}
	}
	return s
}

// Position returns the emission point of a stream at time t (ms) in pixels.
// Horizontal position sways sinusoidally; vertical position falls on a sawtooth.
func (s Stream) Position(t, w, h float64) (float64, float64) {
	x := s.X +
		math.Sin(t*0.0008*s.Speed+s.Phase)*0.012 +
		math.Sin(t*0.0017+s.Phase)*s.Jitter*0.004
	y := 0.02 + fmod(t*0.00006*s.Speed, 0.25)
	return x * w, y * h
}

// Emit splashes every stream into the grid.
func (s *StreamSet) Emit(g *WaveGrid, t float64) {
	w, h := g.PixelSize()
	for _, st := range s.Streams {
		x, y := st.Position(t, w, h)
		g.Splash(x, y, s.power*st.Width)
	}
}
