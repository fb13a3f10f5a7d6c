package telemetry

import (
	"math"
	"testing"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDistribution(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	d := ComputeDistribution(values)

	if math.Abs(d.Mean-55) > 0.001 {
		t.Errorf("mean = %v, want 55", d.Mean)
	}
	if math.Abs(d.Std-math.Sqrt(825)) > 0.001 {
		t.Errorf("std = %v, want %v", d.Std, math.Sqrt(825))
	}
	if math.Abs(d.P10-19) > 0.01 || math.Abs(d.P50-55) > 0.01 || math.Abs(d.P90-91) > 0.01 {
		t.Errorf("percentiles = %v/%v/%v, want 19/55/91", d.P10, d.P50, d.P90)
	}
	if values[0] != 10 || values[9] != 100 {
		t.Error("ComputeDistribution reordered its input")
	}
}

func TestComputeDistributionEmpty(t *testing.T) {
	if d := ComputeDistribution(nil); d != (Distribution{}) {
		t.Errorf("empty sample = %+v, want zeros", d)
	}
}

func TestCollectorFlush(t *testing.T) {
	c := NewCollector(10)
	if c.ShouldFlush(9) {
		t.Error("ShouldFlush(9) = true before window elapsed")
	}
	if !c.ShouldFlush(10) {
		t.Error("ShouldFlush(10) = false after window elapsed")
	}

	c.Record(Event{Type: EventSpawn, Species: SpeciesPlant})
	c.Record(Event{Type: EventSpawn, Species: SpeciesPlant})
	c.Record(Event{Type: EventGraze, Species: SpeciesPrey, Amount: 0.5})
	c.Record(Event{Type: EventGraze, Species: SpeciesPrey, Amount: 0.25})
	c.Record(Event{Type: EventGrazedOut, Species: SpeciesPlant})
	c.Record(Event{Type: EventEaten, Species: SpeciesPrey, Amount: 50})
	c.Record(Event{Type: EventStarved, Species: SpeciesPredator})

	s := c.Flush(10, Census{Plants: 3, Prey: 2, Predators: 0, PreyHealth: []float64{40, 60}})
	if s.PlantSpawns != 2 || s.Grazes != 2 || s.PlantsGrazed != 1 || s.PreyEaten != 1 || s.PredStarved != 1 {
		t.Errorf("event counts = %+v", s)
	}
	if math.Abs(s.GrazedHealth-0.75) > 1e-9 || s.PredatorMeals != 50 {
		t.Errorf("grazed %v meals %v, want 0.75 and 50", s.GrazedHealth, s.PredatorMeals)
	}
	if s.PreyHealthMean != 50 || s.WindowStartTick != 0 || s.WindowEndTick != 10 {
		t.Errorf("window = %+v", s)
	}
	if !s.Extinct() {
		t.Error("Extinct() = false with no predators")
	}

	next := c.Flush(20, Census{})
	if next.PlantSpawns != 0 || next.PreyEaten != 0 || next.WindowStartTick != 10 {
		t.Errorf("counters not reset: %+v", next)
	}
	if c.WindowTicks() != 10 {
		t.Errorf("WindowTicks() = %d, want 10", c.WindowTicks())
	}
}
