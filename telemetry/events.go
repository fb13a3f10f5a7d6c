// Package telemetry provides ecosystem tracking, windowed statistics and
// CSV output for aquarium runs.
package telemetry

// Species identifies a population.
type Species uint8

const (
	SpeciesPlant Species = iota
	SpeciesPrey
	SpeciesPredator
)

func (s Species) String() string {
	switch s {
	case SpeciesPlant:
		return "plant"
	case SpeciesPrey:
		return "prey"
	case SpeciesPredator:
		return "predator"
	default:
		return "unknown"
	}
}

// EventType identifies telemetry events.
type EventType uint8

const (
	EventSpawn     EventType = iota // agent inserted by growth or spawning
	EventGraze                      // prey grazed a plant
	EventGrazedOut                  // plant removed under grazing
	EventEaten                      // prey caught by a predator
	EventStarved                    // fish ran out of health
)

// Event is a single ecosystem occurrence.
type Event struct {
	Type    EventType
	Tick    int32
	Species Species
	Amount  float64 // health moved by grazing or feeding
}
