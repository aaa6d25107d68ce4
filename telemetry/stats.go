// Package telemetry aggregates per-generation statistics from a runner's
// samples and writes them to structured logs and CSV files.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"quanta/lattice"
)

// GenStats aggregates the per-location samples of one generation.
type GenStats struct {
	Generation uint64  `csv:"generation"`
	Count      int     `csv:"count"`
	Min        float64 `csv:"min"`
	Max        float64 `csv:"max"`
	Mean       float64 `csv:"mean"`
	Std        float64 `csv:"std"`
	P10        float64 `csv:"p10"`
	P50        float64 `csv:"p50"`
	P90        float64 `csv:"p90"`
}

// Collect computes the generation's stats from its samples. An empty sample
// set yields a zero record.
func Collect(gen lattice.Generation, samples []float64) GenStats {
	s := GenStats{Generation: uint64(gen), Count: len(samples)}
	if len(samples) == 0 {
		return s
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	s.Min = sorted[0]
	s.Max = sorted[len(sorted)-1]
	s.Mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.P10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	s.P50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	s.P90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s GenStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", s.Generation),
		slog.Int("count", s.Count),
		slog.Float64("min", s.Min),
		slog.Float64("max", s.Max),
		slog.Float64("mean", s.Mean),
		slog.Float64("std", s.Std),
		slog.Float64("p10", s.P10),
		slog.Float64("p50", s.P50),
		slog.Float64("p90", s.P90),
	)
}

// LogStats logs the generation's stats using slog.
func (s GenStats) LogStats() {
	slog.Info("stats", "gen", s)
}
