package main

import (
	"math"

	"github.com/pthm-cable/aquarium/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
	Integer bool    // Rounded before use
}

// Params is one decoded candidate. Field order matches the ParamSpec order
// returned by NewParamVector.
type Params struct {
	PreyPeakSpeed   float64 `csv:"prey_peak_speed"`
	PreyCruise      float64 `csv:"prey_cruise_factor"`
	PreyMaxForce    float64 `csv:"prey_max_force"`
	PredPeakSpeed   float64 `csv:"pred_peak_speed"`
	PredMaxForce    float64 `csv:"pred_max_force"`
	PredVisionDepth float64 `csv:"pred_vision_depth"`
	PredMetabolism  float64 `csv:"pred_metabolism"`
	PredFeedGain    float64 `csv:"pred_feed_gain"`
	GrowthInterval  float64 `csv:"growth_interval"`
	GrazeDamage     float64 `csv:"graze_damage"`
	DivisionMass    float64 `csv:"division_mass"`
}

func (p *Params) fields() []*float64 {
	return []*float64{
		&p.PreyPeakSpeed,
		&p.PreyCruise,
		&p.PreyMaxForce,
		&p.PredPeakSpeed,
		&p.PredMaxForce,
		&p.PredVisionDepth,
		&p.PredMetabolism,
		&p.PredFeedGain,
		&p.GrowthInterval,
		&p.GrazeDamage,
		&p.DivisionMass,
	}
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable parameters.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			// Prey
			{Name: "prey_peak_speed", Path: "prey.peak_speed", Min: 2, Max: 10, Default: 5},
			{Name: "prey_cruise_factor", Path: "prey.cruise_factor", Min: 0.2, Max: 0.9, Default: 0.5},
			{Name: "prey_max_force", Path: "prey.max_force", Min: 2, Max: 40, Default: 10},
			// Predator
			{Name: "pred_peak_speed", Path: "predator.peak_speed", Min: 3, Max: 14, Default: 8},
			{Name: "pred_max_force", Path: "predator.max_force", Min: 10, Max: 120, Default: 40},
			{Name: "pred_vision_depth", Path: "predator.vision_depth", Min: 200, Max: 1500, Default: 1000},
			{Name: "pred_metabolism", Path: "predator.metabolism", Min: 0, Max: 0.2, Default: 0},
			{Name: "pred_feed_gain", Path: "predator.feed_gain", Min: 0, Max: 200, Default: 50},
			// Plants
			{Name: "growth_interval", Path: "plant.growth_interval", Min: 20, Max: 600, Default: 121, Integer: true},
			{Name: "graze_damage", Path: "plant.graze_damage", Min: 0.1, Max: 5, Default: 0.5},
			{Name: "division_mass", Path: "plant.division_mass", Min: 20, Max: 120, Default: 40},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds every value and rounds integer parameters.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		val := math.Max(spec.Min, math.Min(spec.Max, v[i]))
		if spec.Integer {
			val = math.Round(val)
		}
		clamped[i] = val
	}
	return clamped
}

// Decode clamps values and unpacks them into Params.
func (pv *ParamVector) Decode(values []float64) Params {
	var p Params
	for i, v := range pv.Clamp(values) {
		*p.fields()[i] = v
	}
	return p
}

// ApplyToConfig writes clamped parameter values into cfg and refreshes its
// derived values.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	p := pv.Decode(values)

	cfg.Prey.PeakSpeed = p.PreyPeakSpeed
	cfg.Prey.CruiseFactor = p.PreyCruise
	cfg.Prey.MaxForce = p.PreyMaxForce

	cfg.Predator.PeakSpeed = p.PredPeakSpeed
	cfg.Predator.MaxForce = p.PredMaxForce
	cfg.Predator.VisionDepth = p.PredVisionDepth
	cfg.Predator.Metabolism = p.PredMetabolism
	cfg.Predator.FeedGain = p.PredFeedGain

	cfg.Plant.GrowthInterval = int(p.GrowthInterval)
	cfg.Plant.GrazeDamage = p.GrazeDamage
	cfg.Plant.DivisionMass = p.DivisionMass

	cfg.Refresh()
}

// ExtractFromConfig reads current parameter values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	return []float64{
		cfg.Prey.PeakSpeed,
		cfg.Prey.CruiseFactor,
		cfg.Prey.MaxForce,
		cfg.Predator.PeakSpeed,
		cfg.Predator.MaxForce,
		cfg.Predator.VisionDepth,
		cfg.Predator.Metabolism,
		cfg.Predator.FeedGain,
		float64(cfg.Plant.GrowthInterval),
		cfg.Plant.GrazeDamage,
		cfg.Plant.DivisionMass,
	}
}
