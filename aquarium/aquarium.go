// Package aquarium owns the three populations and drives the per-tick
// ecosystem update.
package aquarium

import (
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
	"github.com/pthm-cable/aquarium/vector"
)

// Counts holds current population sizes.
type Counts struct {
	Plants    int
	Prey      int
	Predators int
}

// Aquarium is the ecosystem container. Populations live in an ECS world:
// plants carry a Plant component, fish carry a Fish plus a Prey or Predator tag.
type Aquarium struct {
	cfg *config.Config
	rng *rand.Rand

	world *ecs.World

	plantMap   *ecs.Map[components.Plant]
	preyMapper *ecs.Map2[components.Fish, components.Prey]
	predMapper *ecs.Map2[components.Fish, components.Predator]
	fishMap    *ecs.Map[components.Fish]

	plantFilter *ecs.Filter1[components.Plant]
	preyFilter  *ecs.Filter2[components.Fish, components.Prey]
	predFilter  *ecs.Filter2[components.Fish, components.Predator]

	counts Counts

	// tick matches the telemetry tick type and wraps after 2^31 ticks.
	tick         int32
	growthClock  int32
	growthActive bool

	camera *camera.Camera
	pan    panState

	// Scratch buffers reused across ticks
	plantSnap []systems.Snapshot
	preySnap  []systems.Snapshot
	predSnap  []systems.Snapshot
	grid      *systems.SpatialGrid
	neighbors []systems.Neighbor

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
}

// New creates an empty aquarium. A nil rng is replaced by a time-seeded one.
func New(cfg *config.Config, rng *rand.Rand) *Aquarium {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	world := ecs.NewWorld()

	a := &Aquarium{
		cfg:   cfg,
		rng:   rng,
		world: world,

		plantMap:   ecs.NewMap[components.Plant](world),
		preyMapper: ecs.NewMap2[components.Fish, components.Prey](world),
		predMapper: ecs.NewMap2[components.Fish, components.Predator](world),
		fishMap:    ecs.NewMap[components.Fish](world),

		plantFilter: ecs.NewFilter1[components.Plant](world),
		preyFilter:  ecs.NewFilter2[components.Fish, components.Prey](world),
		predFilter:  ecs.NewFilter2[components.Fish, components.Predator](world),

		camera: camera.New(
			float64(cfg.Screen.Width), float64(cfg.Screen.Height),
			cfg.Camera.MinZoom, cfg.Camera.MaxZoom,
		),

		collector: telemetry.NewCollector(cfg.Telemetry.StatsWindowTicks),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfWindowTicks),
	}
	if cfg.Schooling.Enabled {
		a.grid = systems.NewSpatialGrid(cfg.Schooling.Radius)
	}
	return a
}

// Populate spawns the configured initial populations around the world center.
// Fish start with a small random drift so they have a heading.
func (a *Aquarium) Populate() {
	pop := a.cfg.Population
	center := vector.New(a.cfg.Derived.CenterX, a.cfg.Derived.CenterY)
	scatter := func(r float64) vector.Vector2 {
		return center.Add(vector.RandomInRadius(a.rng, r))
	}

	for i := 0; i < pop.Plants.Count; i++ {
		a.AddPlant(scatter(pop.Plants.Spread), pop.Plants.Mass)
	}
	for i := 0; i < pop.Prey.Count; i++ {
		f := a.fishMap.Get(a.AddPrey(scatter(pop.Prey.Spread)))
		f.SetVelocity(vector.RandomInRadius(a.rng, 1))
	}
	for i := 0; i < pop.Predators.Count; i++ {
		f := a.fishMap.Get(a.AddPredator(scatter(pop.Predators.Spread)))
		f.SetVelocity(vector.RandomInRadius(a.rng, 1))
	}
}

// AddPlant inserts a plant of the given mass.
func (a *Aquarium) AddPlant(pos vector.Vector2, mass float64) ecs.Entity {
	p := components.NewPlant(pos, mass, a.cfg.Derived.PlantTraits)
	return a.insertPlant(&p)
}

func (a *Aquarium) insertPlant(p *components.Plant) ecs.Entity {
	e := a.plantMap.NewEntity(p)
	a.counts.Plants++
	a.collector.Record(telemetry.Event{Type: telemetry.EventSpawn, Tick: a.tick, Species: telemetry.SpeciesPlant})
	return e
}

// AddPrey inserts a still prey fish.
func (a *Aquarium) AddPrey(pos vector.Vector2) ecs.Entity {
	f := components.NewFish(pos, a.cfg.Derived.PreyParams)
	e := a.preyMapper.NewEntity(&f, &components.Prey{})
	a.counts.Prey++
	a.collector.Record(telemetry.Event{Type: telemetry.EventSpawn, Tick: a.tick, Species: telemetry.SpeciesPrey})
	return e
}

// AddPredator inserts a still predator fish.
func (a *Aquarium) AddPredator(pos vector.Vector2) ecs.Entity {
	f := components.NewFish(pos, a.cfg.Derived.PredatorParams)
	e := a.predMapper.NewEntity(&f, &components.Predator{})
	a.counts.Predators++
	a.collector.Record(telemetry.Event{Type: telemetry.EventSpawn, Tick: a.tick, Species: telemetry.SpeciesPredator})
	return e
}

// Plants returns pointers to every plant. They stay valid until the next Tick
// or insertion.
func (a *Aquarium) Plants() []*components.Plant {
	out := make([]*components.Plant, 0, a.counts.Plants)
	q := a.plantFilter.Query()
	for q.Next() {
		out = append(out, q.Get())
	}
	return out
}

// Preys returns pointers to every prey fish, valid until the next Tick.
func (a *Aquarium) Preys() []*components.Fish {
	out := make([]*components.Fish, 0, a.counts.Prey)
	q := a.preyFilter.Query()
	for q.Next() {
		f, _ := q.Get()
		out = append(out, f)
	}
	return out
}

// Predators returns pointers to every predator fish, valid until the next Tick.
func (a *Aquarium) Predators() []*components.Fish {
	out := make([]*components.Fish, 0, a.counts.Predators)
	q := a.predFilter.Query()
	for q.Next() {
		f, _ := q.Get()
		out = append(out, f)
	}
	return out
}

// Fish returns the fish stored on e, or nil if e is gone or not a fish.
func (a *Aquarium) Fish(e ecs.Entity) *components.Fish {
	if !a.world.Alive(e) || !a.fishMap.Has(e) {
		return nil
	}
	return a.fishMap.Get(e)
}

// Plant returns the plant stored on e, or nil if e is gone or not a plant.
func (a *Aquarium) Plant(e ecs.Entity) *components.Plant {
	if !a.world.Alive(e) || !a.plantMap.Has(e) {
		return nil
	}
	return a.plantMap.Get(e)
}

// Counts returns current population sizes.
func (a *Aquarium) Counts() Counts { return a.counts }

// Extinct reports whether prey or predators have died out.
func (a *Aquarium) Extinct() bool {
	return a.counts.Prey == 0 || a.counts.Predators == 0
}

// TickCount returns the number of completed ticks.
func (a *Aquarium) TickCount() int32 { return a.tick }

// Camera returns the view the pan input drives.
func (a *Aquarium) Camera() *camera.Camera { return a.camera }

// Collector returns the ecosystem event collector.
func (a *Aquarium) Collector() *telemetry.Collector { return a.collector }

// Perf returns the tick timing collector.
func (a *Aquarium) Perf() *telemetry.PerfCollector { return a.perf }

// Census samples populations for a telemetry flush.
func (a *Aquarium) Census() telemetry.Census {
	c := telemetry.Census{
		Plants:         a.counts.Plants,
		Prey:           a.counts.Prey,
		Predators:      a.counts.Predators,
		PlantHealth:    make([]float64, 0, a.counts.Plants),
		PlantMass:      make([]float64, 0, a.counts.Plants),
		PreyHealth:     make([]float64, 0, a.counts.Prey),
		PredatorHealth: make([]float64, 0, a.counts.Predators),
	}
	for _, p := range a.Plants() {
		c.PlantHealth = append(c.PlantHealth, p.Health)
		c.PlantMass = append(c.PlantMass, p.Mass)
	}
	for _, f := range a.Preys() {
		c.PreyHealth = append(c.PreyHealth, f.Health)
	}
	for _, f := range a.Predators() {
		c.PredatorHealth = append(c.PredatorHealth, f.Health)
	}
	return c
}
