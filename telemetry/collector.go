package telemetry

import "math"

// FrameSample is the per-frame state the collector aggregates.
type FrameSample struct {
	RippleEnergy float64
	RipplePeak   float64
	MiniEnergy   float64
	BloomLive    int
	CurtainState float64
	Tide         float64
}

// Collector accumulates frame samples and events within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec    float64
	windowDurationFrames int32
	dt                   float32

	// Current window tracking
	windowStartFrame int32

	// Event counters for current window
	splashes      int
	miniSplashes  int
	bloomsSpawned int
	pondThrows    int
	curtainResets int

	// Per-frame series for current window
	rippleEnergy []float64
	miniEnergy   []float64
	bloomLive    []float64
	curtain      []float64
	tide         []float64
	ripplePeak   float64
	bloomMax     int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in seconds
// dt: seconds per frame (used for frame-to-time conversion)
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	// Round: dt arrives as float32, so 5s at 60fps divides to 299.99...
	framesPerWindow := int32(math.Round(windowDurationSec / float64(dt)))
	if framesPerWindow < 1 {
		framesPerWindow = 1
	}

	return &Collector{
		windowDurationSec:    windowDurationSec,
		windowDurationFrames: framesPerWindow,
		dt:                   dt,
	}
}

// RecordSplashes adds applied splashes on the main field.
func (c *Collector) RecordSplashes(n int) {
	c.splashes += n
}

// RecordMiniSplashes adds applied splashes on the mini field.
func (c *Collector) RecordMiniSplashes(n int) {
	c.miniSplashes += n
}

// RecordBloom records spawned particles.
func (c *Collector) RecordBloom(n int) {
	c.bloomsSpawned += n
}

// RecordPondThrow records a released tag drag.
func (c *Collector) RecordPondThrow() {
	c.pondThrows++
}

// RecordCurtainReset records a reset of the reveal state.
func (c *Collector) RecordCurtainReset() {
	c.curtainResets++
}

// Record adds one frame sample to the current window.
func (c *Collector) Record(s FrameSample) {
	c.rippleEnergy = append(c.rippleEnergy, s.RippleEnergy)
	c.miniEnergy = append(c.miniEnergy, s.MiniEnergy)
	c.bloomLive = append(c.bloomLive, float64(s.BloomLive))
	c.curtain = append(c.curtain, s.CurtainState)
	c.tide = append(c.tide, s.Tide)
	if s.RipplePeak > c.ripplePeak {
		c.ripplePeak = s.RipplePeak
	}
	if s.BloomLive > c.bloomMax {
		c.bloomMax = s.BloomLive
	}
}

// ShouldFlush returns true if enough frames have passed to flush the window.
func (c *Collector) ShouldFlush(currentFrame int32) bool {
	return currentFrame-c.windowStartFrame >= c.windowDurationFrames
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentFrame int32) WindowStats {
	mean, std, p10, p50, p90 := ComputeSeriesStats(c.rippleEnergy)
	miniMean, _, _, _, _ := ComputeSeriesStats(c.miniEnergy)
	bloomMean, _, _, _, _ := ComputeSeriesStats(c.bloomLive)
	curtainMean, _, _, _, _ := ComputeSeriesStats(c.curtain)
	tideMean, _, _, _, _ := ComputeSeriesStats(c.tide)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		SimTimeSec:       float64(currentFrame) * float64(c.dt),

		Splashes:      c.splashes,
		MiniSplashes:  c.miniSplashes,
		BloomsSpawned: c.bloomsSpawned,
		PondThrows:    c.pondThrows,
		CurtainResets: c.curtainResets,

		RippleEnergyMean: mean,
		RippleEnergyStd:  std,
		RippleEnergyP10:  p10,
		RippleEnergyP50:  p50,
		RippleEnergyP90:  p90,
		RipplePeak:       c.ripplePeak,

		MiniEnergyMean: miniMean,
		BloomLiveMean:  bloomMean,
		BloomLiveMax:   c.bloomMax,
		CurtainMean:    curtainMean,
		TideMean:       tideMean,
	}

	// Reset for next window
	c.windowStartFrame = currentFrame
	c.splashes = 0
	c.miniSplashes = 0
	c.bloomsSpawned = 0
	c.pondThrows = 0
	c.curtainResets = 0
	c.rippleEnergy = c.rippleEnergy[:0]
	c.miniEnergy = c.miniEnergy[:0]
	c.bloomLive = c.bloomLive[:0]
	c.curtain = c.curtain[:0]
	c.tide = c.tide[:0]
	c.ripplePeak = 0
	c.bloomMax = 0

	return stats
}

// WindowDurationFrames returns the number of frames per window.
func (c *Collector) WindowDurationFrames() int32 {
	return c.windowDurationFrames
}
