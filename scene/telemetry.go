package scene

import (
	"log/slog"

	"github.com/pthm-cable/lagoon/telemetry"
)

// recordFrame samples the effects and flushes the window when it ends.
func (s *Scene) recordFrame() {
	if n := s.Main.Splashes - s.lastSplashes; n > 0 {
		s.collector.RecordSplashes(n)
	}
	s.lastSplashes = s.Main.Splashes
	if n := s.Mini.Splashes - s.lastMini; n > 0 {
		s.collector.RecordMiniSplashes(n)
	}
	s.lastMini = s.Mini.Splashes

	s.collector.Record(telemetry.FrameSample{
		RippleEnergy: s.Main.Energy(),
		RipplePeak:   float64(s.Main.Peak()),
		MiniEnergy:   s.Mini.Energy(),
		BloomLive:    s.Bloom.Count(),
		CurtainState: float64(s.Curtain.State),
		Tide:         float64(s.tide),
	})

	s.flushTelemetry()
}

// flushTelemetry writes the finished window to the log and output files.
func (s *Scene) flushTelemetry() {
	next := s.frame + 1
	if !s.collector.ShouldFlush(next) {
		return
	}

	stats := s.collector.Flush(next)
	perfStats := s.timer.Stats()

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.output != nil {
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.output.WritePerf(perfStats, next); err != nil {
			slog.Error("failed to write perf stats", "error", err)
		}
	}

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}
}
