package scene

import (
	"github.com/pthm-cable/lagoon/page"
	"github.com/pthm-cable/lagoon/telemetry"
)

// Update applies one frame of input and advances the scene by
// StepsPerUpdate frames.
func (s *Scene) Update(in Input) {
	s.HandleInput(in)
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.Step()
	}
}

// Step advances every effect by one frame.
func (s *Scene) Step() {
	s.timer.Begin(telemetry.PhaseRipple)
	s.Current.Relax()
	s.tide = s.Current.Tide(s.clock)
	s.cx, s.cy = s.Current.Drift(s.clock)
	s.Main.SetDrift(s.cx, s.cy)
	s.Main.SetFast(s.shift)
	s.Main.Step(s.clock)

	s.timer.Mark(telemetry.PhaseMini)
	s.Mini.Step(s.clock)

	s.timer.Mark(telemetry.PhaseBloom)
	bw, bh := s.bloomSize()
	s.Bloom.Advance(s.clock, bw, bh)

	s.timer.Mark(telemetry.PhasePond)
	s.Pond.Tick()

	s.timer.Mark(telemetry.PhaseCurtain)
	s.Curtain.Update(s.curtainInfluence())

	s.timer.Mark(telemetry.PhaseTelemetry)
	s.recordFrame()
	s.timer.End()

	s.frame++
	s.clock += s.cfg.Derived.FrameMS
}

// curtainInfluence measures how close the curtain card sits to the
// viewport anchor. A collapsed card has nothing to reveal.
func (s *Scene) curtainInfluence() float32 {
	c := s.Page.Card(page.CardCurtain)
	if c == nil || c.Collapsed {
		return 0
	}
	b := c.Body()
	_, mid := s.Camera.PageToScreen(b.X, b.Y+b.H/2)
	return s.Curtain.Influence(float64(mid), float64(s.Camera.ViewportH), s.cfg.Page.FallbackVH)
}

// Direction returns the arrow for the pond current.
func (s *Scene) Direction() string {
	return s.Pond.Direction()
}
