package main

import (
	"testing"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/telemetry"
)

func TestComputeQuality(t *testing.T) {
	healthy := telemetry.WindowStats{Plants: 20, Prey: 50, Predators: 1, PreyEaten: 4}
	extinct := telemetry.WindowStats{Plants: 20, Prey: 0, Predators: 1}

	tests := []struct {
		name    string
		windows []telemetry.WindowStats
		wantMin float64
		wantMax float64
	}{
		{"empty", nil, 0, 0},
		{"warmup only", []telemetry.WindowStats{healthy}, 0, 0},
		{"all extinct", []telemetry.WindowStats{healthy, extinct, extinct}, 0, 0},
		{"steady", []telemetry.WindowStats{healthy, healthy, healthy, healthy}, 0.9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeQuality(tt.windows)
			if got < tt.wantMin || got > tt.wantMax {
				t.Errorf("computeQuality = %v, want in [%v, %v]", got, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestComputeFitness(t *testing.T) {
	if got := computeFitness(1000, 0); got != -1000 {
		t.Errorf("computeFitness(1000, 0) = %v, want -1000", got)
	}
	if got := computeFitness(1000, 1); got != -1200 {
		t.Errorf("computeFitness(1000, 1) = %v, want -1200", got)
	}
	if computeFitness(2000, 0) >= computeFitness(1000, 1) {
		t.Error("longer survival should dominate quality")
	}
}

func TestEvaluateShortRun(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config.Load: %v", err)
	}
	pv := NewParamVector()
	fe := NewFitnessEvaluator(pv, 200, []int64{1, 2}, cfg, 0)

	fitness := fe.Evaluate(pv.DefaultVector())
	if fitness > 0 || fitness < -200*1.2 {
		t.Errorf("fitness = %v, want in [-240, 0]", fitness)
	}
	if q := fe.LastQuality(); q < 0 || q > 1 {
		t.Errorf("quality = %v, want in [0, 1]", q)
	}
	if fe.BestFitness() != fitness {
		t.Errorf("BestFitness = %v, want %v", fe.BestFitness(), fitness)
	}

	// The base config must not be touched by candidate runs.
	if cfg.Telemetry.StatsWindowTicks != 600 {
		t.Errorf("base stats window = %d, want 600", cfg.Telemetry.StatsWindowTicks)
	}
}
