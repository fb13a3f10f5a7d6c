package telemetry

// Census is the population snapshot sampled when a window is flushed.
type Census struct {
	Plants    int
	Prey      int
	Predators int

	PlantHealth    []float64
	PlantMass      []float64
	PreyHealth     []float64
	PredatorHealth []float64
}

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks     int32
	windowStartTick int32

	// Event counters for current window
	plantSpawns   int
	preySpawns    int
	predSpawns    int
	grazes        int
	grazedHealth  float64
	plantsGrazed  int
	preyEaten     int
	preyStarved   int
	predStarved   int
	predatorMeals float64
}

// NewCollector creates a collector that flushes every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: int32(windowTicks)}
}

// Record counts one event in the current window.
func (c *Collector) Record(ev Event) {
	switch ev.Type {
	case EventSpawn:
		switch ev.Species {
		case SpeciesPlant:
			c.plantSpawns++
		case SpeciesPrey:
			c.preySpawns++
		case SpeciesPredator:
			c.predSpawns++
		}
	case EventGraze:
		c.grazes++
		c.grazedHealth += ev.Amount
	case EventGrazedOut:
		c.plantsGrazed++
	case EventEaten:
		c.preyEaten++
		c.predatorMeals += ev.Amount
	case EventStarved:
		if ev.Species == SpeciesPredator {
			c.predStarved++
		} else {
			c.preyStarved++
		}
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int32 {
	return c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, census Census) WindowStats {
	plantHealth := ComputeDistribution(census.PlantHealth)
	preyHealth := ComputeDistribution(census.PreyHealth)
	predHealth := ComputeDistribution(census.PredatorHealth)
	plantMass := ComputeDistribution(census.PlantMass)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Plants:    census.Plants,
		Prey:      census.Prey,
		Predators: census.Predators,

		PlantSpawns:   c.plantSpawns,
		PreySpawns:    c.preySpawns,
		PredSpawns:    c.predSpawns,
		Grazes:        c.grazes,
		GrazedHealth:  c.grazedHealth,
		PlantsGrazed:  c.plantsGrazed,
		PreyEaten:     c.preyEaten,
		PreyStarved:   c.preyStarved,
		PredStarved:   c.predStarved,
		PredatorMeals: c.predatorMeals,

		PlantHealthMean: plantHealth.Mean,
		PlantMassMean:   plantMass.Mean,
		PlantMassStd:    plantMass.Std,

		PreyHealthMean: preyHealth.Mean,
		PreyHealthP10:  preyHealth.P10,
		PreyHealthP50:  preyHealth.P50,
		PreyHealthP90:  preyHealth.P90,

		PredHealthMean: predHealth.Mean,
		PredHealthP10:  predHealth.P10,
		PredHealthP50:  predHealth.P50,
		PredHealthP90:  predHealth.P90,
	}

	// Reset for next window
	*c = Collector{windowTicks: c.windowTicks, windowStartTick: currentTick}

	return stats
}
