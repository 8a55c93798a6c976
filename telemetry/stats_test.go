package telemetry

import (
	"math"
	"testing"
)

func TestComputeSeriesStats(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	mean, std, p10, p50, p90 := ComputeSeriesStats(values)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}

	// Sample standard deviation (n-1)
	if math.Abs(std-0.30277) > 0.001 {
		t.Errorf("std = %v, want ~0.30277", std)
	}

	// Each sample owns 1/n of the distribution, so these land on samples
	if math.Abs(p10-0.1) > 1e-9 {
		t.Errorf("p10 = %v, want 0.1", p10)
	}
	if math.Abs(p50-0.5) > 1e-9 {
		t.Errorf("p50 = %v, want 0.5", p50)
	}
	if math.Abs(p90-0.9) > 1e-9 {
		t.Errorf("p90 = %v, want 0.9", p90)
	}
}

func TestComputeSeriesStatsInterpolates(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want50 float64
	}{
		{"two values", []float64{2, 4}, 2},
		{"four values", []float64{4, 1, 3, 2}, 2},
		{"five values", []float64{10, 20, 30, 40, 50}, 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, p10, p50, p90 := ComputeSeriesStats(tc.values)
			if math.Abs(p50-tc.want50) > 1e-9 {
				t.Errorf("p50 = %v, want %v", p50, tc.want50)
			}
			if p10 > p50 || p50 > p90 {
				t.Errorf("percentiles out of order: %v %v %v", p10, p50, p90)
			}
		})
	}
}

func TestComputeSeriesStatsDoesNotSortInput(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeSeriesStats(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}

func TestComputeSeriesStatsSmall(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeSeriesStats([]float64{})
	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}

	mean, std, _, p50, _ = ComputeSeriesStats([]float64{4})
	if mean != 4 || std != 0 || p50 != 4 {
		t.Errorf("single value: mean=%v std=%v p50=%v", mean, std, p50)
	}
}
