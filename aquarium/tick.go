package aquarium

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/systems"
	"github.com/pthm-cable/aquarium/telemetry"
)

// meal pairs a caught prey with the predator that caught it.
type meal struct {
	prey     ecs.Entity
	predator ecs.Entity
}

// Tick runs one ecosystem step: plants, then prey, then predators, then the
// pan offset. Each population reads snapshots of the others taken at the start
// of its own pass, and its insertions and removals are applied when the pass
// ends, so the next population sees them.
func (a *Aquarium) Tick() {
	a.perf.StartTick()

	a.stepGrowthClock()

	a.perf.StartPhase(telemetry.PhasePlants)
	a.processPlants()

	a.perf.StartPhase(telemetry.PhasePrey)
	a.processPreys()

	a.perf.StartPhase(telemetry.PhasePredators)
	a.processPredators()

	a.perf.StartPhase(telemetry.PhasePan)
	a.processPan()

	a.perf.EndTick()
	a.tick++
}

// stepGrowthClock fires once every GrowthInterval ticks, first on tick
// GrowthInterval, and resets on firing.
func (a *Aquarium) stepGrowthClock() {
	interval := int32(a.cfg.Plant.GrowthInterval)
	a.growthActive = interval > 0 && a.growthClock >= interval
	if a.growthActive {
		a.growthClock = 0
	}
	a.growthClock++
}

// snapshotFish copies the kinematic state of one fish population.
func snapshotFish[T any](dst []systems.Snapshot, f *ecs.Filter2[components.Fish, T]) []systems.Snapshot {
	dst = dst[:0]
	q := f.Query()
	for q.Next() {
		fish, _ := q.Get()
		dst = append(dst, systems.SnapshotBody(q.Entity(), &fish.Body))
	}
	return dst
}

func (a *Aquarium) snapshotPlants() {
	a.plantSnap = a.plantSnap[:0]
	q := a.plantFilter.Query()
	for q.Next() {
		a.plantSnap = append(a.plantSnap, systems.SnapshotBody(q.Entity(), &q.Get().Body))
	}
}

// processPlants lets prey graze the plants they are on and grows the rest.
func (a *Aquarium) processPlants() {
	cfg := a.cfg.Plant
	a.preySnap = snapshotFish(a.preySnap, a.preyFilter)

	var grazedOut []ecs.Entity
	var offspring []components.Plant

	q := a.plantFilter.Query()
	for q.Next() {
		p := q.Get()

		if s, ok := systems.CheckProximity(p, a.preySnap); ok {
			taken := p.Graze(cfg.GrazeDamage)
			if grazer := a.fishMap.Get(a.preySnap[s.Index].Entity); grazer != nil {
				grazer.Feed(taken * cfg.FeedEfficiency)
			}
			a.collector.Record(telemetry.Event{Type: telemetry.EventGraze, Tick: a.tick, Species: telemetry.SpeciesPrey, Amount: taken})

			if !p.Alive(cfg.MinHealth) {
				grazedOut = append(grazedOut, q.Entity())
			}
			continue
		}

		if a.growthActive {
			offspring = append(offspring, p.Grow(a.rng)...)
		}
	}

	// Apply structural changes after the query has finished
	for _, e := range grazedOut {
		a.world.RemoveEntity(e)
		a.counts.Plants--
		a.collector.Record(telemetry.Event{Type: telemetry.EventGrazedOut, Tick: a.tick, Species: telemetry.SpeciesPlant})
	}
	for i := range offspring {
		a.insertPlant(&offspring[i])
	}
}

// processPreys flees predators, eats plants, schools or wanders.
func (a *Aquarium) processPreys() {
	cfg := a.cfg
	a.predSnap = snapshotFish(a.predSnap, a.predFilter)
	a.snapshotPlants()
	if a.grid != nil {
		a.preySnap = snapshotFish(a.preySnap, a.preyFilter)
		a.grid.Clear()
		for i, s := range a.preySnap {
			a.grid.Insert(i, s.Position)
		}
	}

	var meals []meal
	var starved []ecs.Entity

	q := a.preyFilter.Query()
	for q.Next() {
		e := q.Entity()
		f, _ := q.Get()

		if s, ok := systems.CheckProximity(f, a.predSnap); ok {
			f.Evade(s.Position, s.Velocity)
			predator := a.predSnap[s.Index]
			if f.CollisionRect().Intersects(predator.Collision) {
				meals = append(meals, meal{prey: e, predator: predator.Entity})
				continue
			}
		} else if s, ok := systems.CheckProximity(f, a.plantSnap); ok {
			f.Arrive(s.Position)
		} else if !a.school(e, f) {
			f.Wander(a.rng)
		}

		if cfg.Prey.Metabolism > 0 {
			f.Starve(cfg.Prey.Metabolism)
			if !f.Alive() {
				starved = append(starved, e)
			}
		}
	}

	for _, m := range meals {
		a.world.RemoveEntity(m.prey)
		a.counts.Prey--
		if hunter := a.Fish(m.predator); hunter != nil {
			hunter.Feed(cfg.Predator.FeedGain)
		}
		a.collector.Record(telemetry.Event{Type: telemetry.EventEaten, Tick: a.tick, Species: telemetry.SpeciesPrey, Amount: cfg.Predator.FeedGain})
	}
	for _, e := range starved {
		a.world.RemoveEntity(e)
		a.counts.Prey--
		a.collector.Record(telemetry.Event{Type: telemetry.EventStarved, Tick: a.tick, Species: telemetry.SpeciesPrey})
	}
}

// school folds nearby prey into the fish's flock accumulator and steers with
// it. Returns false when schooling is off or no neighbour is in range.
func (a *Aquarium) school(self ecs.Entity, f *components.Fish) bool {
	if a.grid == nil {
		return false
	}
	a.neighbors = a.grid.QueryRadiusInto(a.neighbors[:0], f.Position, a.cfg.Schooling.Radius, -1)
	for _, n := range a.neighbors {
		s := a.preySnap[n.Index]
		if s.Entity == self {
			continue
		}
		f.FoldNeighbor(s.Position, s.Velocity)
	}
	return f.ComputeFlock()
}

// processPredators pursues the nearest visible prey or wanders.
func (a *Aquarium) processPredators() {
	cfg := a.cfg.Predator
	a.preySnap = snapshotFish(a.preySnap, a.preyFilter)

	var starved []ecs.Entity

	q := a.predFilter.Query()
	for q.Next() {
		f, _ := q.Get()

		if s, ok := systems.CheckProximity(f, a.preySnap); ok {
			f.Pursuit(s.Position, s.Velocity)
		} else {
			f.Wander(a.rng)
		}

		if cfg.Metabolism > 0 {
			f.Starve(cfg.Metabolism)
			if !f.Alive() {
				starved = append(starved, q.Entity())
			}
		}
	}

	for _, e := range starved {
		a.world.RemoveEntity(e)
		a.counts.Predators--
		a.collector.Record(telemetry.Event{Type: telemetry.EventStarved, Tick: a.tick, Species: telemetry.SpeciesPredator})
	}
}
