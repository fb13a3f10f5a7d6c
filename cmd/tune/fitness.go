package main

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/game"
	"github.com/pthm-cable/aquarium/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	statsWindow int
	workers     int // 0 = one goroutine per seed

	mu          sync.Mutex
	bestFitness float64
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, workers int) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		statsWindow: 300,
		workers:     workers,
		bestFitness: math.Inf(1),
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// BestFitness returns the lowest fitness seen so far.
func (fe *FitnessEvaluator) BestFitness() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestFitness
}

// Populations are counted as collapsed once any of them stays empty for
// extinctionGraceTicks, after warmupTicks have passed.
const (
	warmupTicks          = 120
	extinctionGraceTicks = 60
)

// runResult holds the results from a single simulation run.
type runResult struct {
	survivalTicks int32                   // ticks before collapse (or maxTicks if survived)
	windowStats   []telemetry.WindowStats // collected via StatsCallback each window
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is negative survival ticks: longer coexistence = lower fitness.
// A candidate the config rejects scores 0, the worst possible value.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.seeds))

	var g errgroup.Group
	if fe.workers > 0 {
		g.SetLimit(fe.workers)
	}
	for i, seed := range fe.seeds {
		g.Go(func() error {
			r, err := fe.runSimulation(x, seed)
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fe.record(0, 0)
		return 0
	}

	var totalFitness, totalQuality float64
	for _, r := range results {
		q := computeQuality(r.windowStats)
		totalFitness += computeFitness(r.survivalTicks, q)
		totalQuality += q
	}
	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n
	fe.record(avgFitness, totalQuality/n)
	return avgFitness
}

func (fe *FitnessEvaluator) record(fitness, quality float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	if fitness < fe.bestFitness {
		fe.bestFitness = fitness
	}
	fe.lastQuality = quality
}

// runSimulation executes a single headless simulation run.
// Runs until a population collapses or maxTicks, whichever comes first.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) (runResult, error) {
	// Config holds only values, so a struct copy is independent of the base.
	cfg := *fe.baseConfig
	fe.params.ApplyToConfig(&cfg, x)
	if err := cfg.Validate(); err != nil {
		return runResult{}, err
	}

	var result runResult
	g := game.NewGameWithOptions(game.Options{
		Seed:             seed,
		Headless:         true,
		StatsWindowTicks: fe.statsWindow,
		StepsPerUpdate:   1,
		Config:           &cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			result.windowStats = append(result.windowStats, stats)
		},
	})
	defer g.Unload()

	var emptyTicks int32
	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()

		tick := g.Tick()
		if tick < warmupTicks {
			continue
		}

		c := g.Aquarium().Counts()
		if c.Plants == 0 || c.Prey == 0 || c.Predators == 0 {
			emptyTicks++
		} else {
			emptyTicks = 0
		}
		if emptyTicks >= extinctionGraceTicks {
			result.survivalTicks = tick
			return result, nil
		}
	}

	result.survivalTicks = fe.maxTicks
	return result, nil
}

// computeFitness calculates the scalar fitness (lower = better).
// Formula: -(survivalTicks × (1.0 + 0.2 × quality))
func computeFitness(survivalTicks int32, quality float64) float64 {
	return -(float64(survivalTicks) * (1.0 + 0.2*quality))
}

// Quality component weights.
const (
	qualityWeightRatio     = 0.30
	qualityWeightStability = 0.25
	qualityWeightPlants    = 0.25
	qualityWeightHunting   = 0.20

	qualityWarmupWindows  = 1  // skip first N windows
	targetPreyPerPredator = 50 // ratio scored highest
)

// computeQuality scores ecosystem quality in [0, 1] from window stats.
func computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	var ratioSum, plantSum, huntSum float64
	var count int
	preyCounts := make([]float64, 0, len(valid))

	for _, w := range valid {
		if w.Extinct() {
			continue
		}
		count++
		preyCounts = append(preyCounts, float64(w.Prey))

		// Log-normal around the target ratio
		logErr := math.Log(float64(w.Prey) / float64(w.Predators) / targetPreyPerPredator)
		ratioSum += math.Exp(-logErr * logErr)

		plantSum += 1 - math.Exp(-float64(w.Plants)/10)

		eatenPerPred := float64(w.PreyEaten) / float64(w.Predators)
		huntSum += 1 - math.Exp(-eatenPerPred/2)
	}
	if count == 0 {
		return 0
	}

	stability := 0.0
	if len(preyCounts) >= 2 {
		mean, std := stat.PopMeanStdDev(preyCounts, nil)
		if mean > 0 {
			cv := std / mean
			stability = math.Exp(-cv * cv)
		}
	}

	n := float64(count)
	quality := qualityWeightRatio*ratioSum/n +
		qualityWeightStability*stability +
		qualityWeightPlants*plantSum/n +
		qualityWeightHunting*huntSum/n

	return math.Max(0, math.Min(1, quality))
}
