package telemetry

import (
	"log/slog"
	"time"
)

// Phase is one stage of a simulation step.
type Phase int

const (
	PhaseRipple Phase = iota
	PhaseMini
	PhaseBloom
	PhasePond
	PhaseCurtain
	PhaseTelemetry

	NumPhases
)

var phaseNames = [NumPhases]string{"ripple", "mini_ripple", "bloom", "pond", "curtain", "telemetry"}

func (p Phase) String() string {
	if p < 0 || p >= NumPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// Phases lists the step phases in execution order.
var Phases = []Phase{PhaseRipple, PhaseMini, PhaseBloom, PhasePond, PhaseCurtain, PhaseTelemetry}

type stepSample struct {
	total  time.Duration
	phases [NumPhases]time.Duration
}

// StepTimer times simulation steps phase by phase over a ring of recent
// steps. A presented frame may run several steps or none, so input
// handling and presentation are tracked on their own.
type StepTimer struct {
	ring   []stepSample
	next   int
	filled int

	cur       stepSample
	running   bool
	phase     Phase
	stepStart time.Time
	markAt    time.Time

	// Smoothed cost of one input pass
	input time.Duration

	lastPresent time.Time
	present     time.Duration
}

// NewStepTimer creates a timer averaging over the last window steps.
func NewStepTimer(window int) *StepTimer {
	if window < 1 {
		window = 60
	}
	return &StepTimer{ring: make([]stepSample, window)}
}

// Begin starts a step in phase p.
func (t *StepTimer) Begin(p Phase) {
	now := time.Now()
	t.cur = stepSample{}
	t.running = true
	t.phase = p
	t.stepStart = now
	t.markAt = now
}

// Mark closes the running phase and opens p. Ignored outside a step.
func (t *StepTimer) Mark(p Phase) {
	if !t.running {
		return
	}
	now := time.Now()
	t.cur.phases[t.phase] += now.Sub(t.markAt)
	t.phase = p
	t.markAt = now
}

// End closes the step and stores it in the ring.
func (t *StepTimer) End() {
	if !t.running {
		return
	}
	now := time.Now()
	t.cur.phases[t.phase] += now.Sub(t.markAt)
	t.cur.total = now.Sub(t.stepStart)
	t.running = false

	t.ring[t.next] = t.cur
	t.next = (t.next + 1) % len(t.ring)
	if t.filled < len(t.ring) {
		t.filled++
	}
}

// ObserveInput folds the duration of one input pass into a running average.
func (t *StepTimer) ObserveInput(d time.Duration) {
	if t.input == 0 {
		t.input = d
		return
	}
	t.input += (d - t.input) / 8
}

// Present records that a frame reached the screen.
func (t *StepTimer) Present() {
	now := time.Now()
	if !t.lastPresent.IsZero() {
		t.present = now.Sub(t.lastPresent)
	}
	t.lastPresent = now
}

// StepStats summarises the timer's window.
type StepStats struct {
	Steps int

	AvgStep time.Duration
	MinStep time.Duration
	MaxStep time.Duration

	// StepsPerSec is how many steps one core could run back to back.
	StepsPerSec float64

	PhaseAvg [NumPhases]time.Duration
	PhasePct [NumPhases]float64 // share of the average step

	Input time.Duration
	FPS   float64
}

// Stats aggregates the steps currently in the ring.
func (t *StepTimer) Stats() StepStats {
	s := StepStats{Steps: t.filled, Input: t.input}
	if t.present > 0 {
		s.FPS = float64(time.Second) / float64(t.present)
	}
	if t.filled == 0 {
		return s
	}

	var total time.Duration
	var phaseSum [NumPhases]time.Duration
	for i, sample := range t.ring[:t.filled] {
		total += sample.total
		if i == 0 || sample.total < s.MinStep {
			s.MinStep = sample.total
		}
		s.MaxStep = max(s.MaxStep, sample.total)
		for p, d := range sample.phases {
			phaseSum[p] += d
		}
	}

	n := time.Duration(t.filled)
	s.AvgStep = total / n
	for p := range phaseSum {
		s.PhaseAvg[p] = phaseSum[p] / n
		if total > 0 {
			s.PhasePct[p] = float64(phaseSum[p]) / float64(total) * 100
		}
	}
	if s.AvgStep > 0 {
		s.StepsPerSec = float64(time.Second) / float64(s.AvgStep)
	}
	return s
}

// LogStats logs the timing summary.
func (s StepStats) LogStats() {
	attrs := []any{
		"steps", s.Steps,
		"avg_step_us", s.AvgStep.Microseconds(),
		"max_step_us", s.MaxStep.Microseconds(),
		"input_us", s.Input.Microseconds(),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, p := range Phases {
		if pct := s.PhasePct[p]; pct > 0.1 {
			attrs = append(attrs, p.String()+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("timing", attrs...)
}

// StepStatsCSV is one perf.csv row.
type StepStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	Steps        int     `csv:"steps"`
	AvgStepUS    int64   `csv:"avg_step_us"`
	MinStepUS    int64   `csv:"min_step_us"`
	MaxStepUS    int64   `csv:"max_step_us"`
	StepsPerSec  float64 `csv:"steps_per_sec"`
	InputUS      int64   `csv:"input_us"`
	FPS          float64 `csv:"fps"`
	RipplePct    float64 `csv:"ripple_pct"`
	MiniPct      float64 `csv:"mini_ripple_pct"`
	BloomPct     float64 `csv:"bloom_pct"`
	PondPct      float64 `csv:"pond_pct"`
	CurtainPct   float64 `csv:"curtain_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens the summary for perf.csv.
func (s StepStats) ToCSV(windowEnd int32) StepStatsCSV {
	return StepStatsCSV{
		WindowEnd:    windowEnd,
		Steps:        s.Steps,
		AvgStepUS:    s.AvgStep.Microseconds(),
		MinStepUS:    s.MinStep.Microseconds(),
		MaxStepUS:    s.MaxStep.Microseconds(),
		StepsPerSec:  s.StepsPerSec,
		InputUS:      s.Input.Microseconds(),
		FPS:          s.FPS,
		RipplePct:    s.PhasePct[PhaseRipple],
		MiniPct:      s.PhasePct[PhaseMini],
		BloomPct:     s.PhasePct[PhaseBloom],
		PondPct:      s.PhasePct[PhasePond],
		CurtainPct:   s.PhasePct[PhaseCurtain],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
