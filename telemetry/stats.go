package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int32 `csv:"-"`
	WindowEndTick   int32 `csv:"window_end"`

	// Population counts at window end
	Plants    int `csv:"plants"`
	Prey      int `csv:"prey"`
	Predators int `csv:"predators"`

	// Events during window
	PlantSpawns   int     `csv:"plant_spawns"`
	PreySpawns    int     `csv:"prey_spawns"`
	PredSpawns    int     `csv:"pred_spawns"`
	Grazes        int     `csv:"grazes"`
	GrazedHealth  float64 `csv:"grazed_health"`
	PlantsGrazed  int     `csv:"plants_grazed_out"`
	PreyEaten     int     `csv:"prey_eaten"`
	PreyStarved   int     `csv:"prey_starved"`
	PredStarved   int     `csv:"pred_starved"`
	PredatorMeals float64 `csv:"predator_meals"`

	// Plant biomass (sampled at window end)
	PlantHealthMean float64 `csv:"plant_health_mean"`
	PlantMassMean   float64 `csv:"plant_mass_mean"`
	PlantMassStd    float64 `csv:"plant_mass_std"`

	// Health distribution (sampled at window end)
	PreyHealthMean float64 `csv:"prey_health_mean"`
	PreyHealthP10  float64 `csv:"prey_health_p10"`
	PreyHealthP50  float64 `csv:"prey_health_p50"`
	PreyHealthP90  float64 `csv:"prey_health_p90"`

	PredHealthMean float64 `csv:"pred_health_mean"`
	PredHealthP10  float64 `csv:"pred_health_p10"`
	PredHealthP50  float64 `csv:"pred_health_p50"`
	PredHealthP90  float64 `csv:"pred_health_p90"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDistribution calculates mean, population standard deviation and
// percentiles. An empty sample yields all zeros.
func ComputeDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	mean := stat.Mean(values, nil)
	std := stat.PopStdDev(values, nil)

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
	}
}

// Extinct reports whether any animal population died out by window end.
func (s WindowStats) Extinct() bool {
	return s.Prey == 0 || s.Predators == 0
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("plants", s.Plants),
		slog.Int("prey", s.Prey),
		slog.Int("predators", s.Predators),
		slog.Int("plant_spawns", s.PlantSpawns),
		slog.Int("grazes", s.Grazes),
		slog.Int("plants_grazed_out", s.PlantsGrazed),
		slog.Int("prey_eaten", s.PreyEaten),
		slog.Int("prey_starved", s.PreyStarved),
		slog.Int("pred_starved", s.PredStarved),
		slog.Float64("plant_mass_mean", s.PlantMassMean),
		slog.Float64("prey_health_mean", s.PreyHealthMean),
		slog.Float64("pred_health_mean", s.PredHealthMean),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
