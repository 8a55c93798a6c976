package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`

	// Interactions during window
	Splashes      int `csv:"splashes"`
	MiniSplashes  int `csv:"mini_splashes"`
	BloomsSpawned int `csv:"blooms_spawned"`
	PondThrows    int `csv:"pond_throws"`
	CurtainResets int `csv:"curtain_resets"`

	// Main ripple field energy, sampled every frame
	RippleEnergyMean float64 `csv:"ripple_energy_mean"`
	RippleEnergyStd  float64 `csv:"ripple_energy_std"`
	RippleEnergyP10  float64 `csv:"ripple_energy_p10"`
	RippleEnergyP50  float64 `csv:"ripple_energy_p50"`
	RippleEnergyP90  float64 `csv:"ripple_energy_p90"`
	RipplePeak       float64 `csv:"ripple_peak"`

	MiniEnergyMean float64 `csv:"mini_energy_mean"`

	// Particles
	BloomLiveMean float64 `csv:"bloom_live_mean"`
	BloomLiveMax  int     `csv:"bloom_live_max"`

	CurtainMean float64 `csv:"curtain_mean"`
	TideMean    float64 `csv:"tide_mean"`
}

// ComputeSeriesStats returns the mean, sample standard deviation and the
// 10th, 50th and 90th percentiles of a series. Percentiles interpolate the
// empirical distribution. The input slice is not modified.
func ComputeSeriesStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	if n == 1 {
		v := values[0]
		return v, 0, v, v, v
	}

	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.LinInterp, sorted, nil)
	p50 = stat.Quantile(0.50, stat.LinInterp, sorted, nil)
	p90 = stat.Quantile(0.90, stat.LinInterp, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("splashes", s.Splashes),
		slog.Int("mini_splashes", s.MiniSplashes),
		slog.Int("blooms_spawned", s.BloomsSpawned),
		slog.Int("pond_throws", s.PondThrows),
		slog.Int("curtain_resets", s.CurtainResets),
		slog.Float64("ripple_energy_mean", s.RippleEnergyMean),
		slog.Float64("ripple_energy_std", s.RippleEnergyStd),
		slog.Float64("ripple_energy_p10", s.RippleEnergyP10),
		slog.Float64("ripple_energy_p50", s.RippleEnergyP50),
		slog.Float64("ripple_energy_p90", s.RippleEnergyP90),
		slog.Float64("ripple_peak", s.RipplePeak),
		slog.Float64("mini_energy_mean", s.MiniEnergyMean),
		slog.Float64("bloom_live_mean", s.BloomLiveMean),
		slog.Int("bloom_live_max", s.BloomLiveMax),
		slog.Float64("curtain_mean", s.CurtainMean),
		slog.Float64("tide_mean", s.TideMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndFrame,
		"sim_time", s.SimTimeSec,
		"splashes", s.Splashes,
		"mini_splashes", s.MiniSplashes,
		"blooms_spawned", s.BloomsSpawned,
		"pond_throws", s.PondThrows,
		"curtain_resets", s.CurtainResets,
		"ripple_energy_mean", s.RippleEnergyMean,
		"ripple_energy_p50", s.RippleEnergyP50,
		"ripple_energy_p90", s.RippleEnergyP90,
		"ripple_peak", s.RipplePeak,
		"mini_energy_mean", s.MiniEnergyMean,
		"bloom_live_mean", s.BloomLiveMean,
		"bloom_live_max", s.BloomLiveMax,
		"curtain_mean", s.CurtainMean,
		"tide_mean", s.TideMean,
	)
}
