package components

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/aquarium/vector"
)

// PlantTraits are the growth and reproduction parameters of a plant.
type PlantTraits struct {
	SeedHealth      float64 // health of a newly spawned plant
	GrowthMass      float64 // mass gained per growth step
	GrowthHealth    float64 // health gained per growth step
	DivisionMass    float64 // mass above which the plant spreads
	ChildFraction   float64 // share of DivisionMass given to each offspring
	SpreadingRadius float64 // offspring land within this radius
	GrazeRadius     float64 // prey closer than this graze the plant
}

// Plant is a stationary resource that grows and spreads.
type Plant struct {
	Body
	Traits PlantTraits
}

// NewPlant returns a plant of the given mass at pos.
func NewPlant(pos vector.Vector2, mass float64, traits PlantTraits) Plant {
	return Plant{
		Body:   NewBody(traits.SeedHealth, mass, pos),
		Traits: traits,
	}
}

// Grow runs one growth step. Once mass exceeds the division threshold the
// plant spreads and the two offspring are returned for the caller to insert.
func (p *Plant) Grow(rng *rand.Rand) []Plant {
	p.Body.Grow(p.Traits.GrowthMass, p.Traits.GrowthHealth)
	if p.Traits.DivisionMass > 0 && p.Mass > p.Traits.DivisionMass {
		return p.Spread(rng)
	}
	return nil
}

// Spread halves the parent's mass and health and returns exactly two
// offspring scattered within the spreading radius.
func (p *Plant) Spread(rng *rand.Rand) []Plant {
	p.Shrink(p.Mass/2, p.Health/2)

	childMass := p.Traits.DivisionMass * p.Traits.ChildFraction
	children := make([]Plant, 2)
	for i := range children {
		pos := p.Position.Add(vector.RandomInRadius(rng, p.Traits.SpreadingRadius))
		children[i] = NewPlant(pos, childMass, p.Traits)
	}
	return children
}

// Graze removes up to damage health and returns how much was taken.
func (p *Plant) Graze(damage float64) float64 {
	taken := math.Min(math.Max(damage, 0), p.Health)
	p.Shrink(0, taken)
	return taken
}

// Alive reports whether health is still at or above minHealth.
func (p *Plant) Alive(minHealth float64) bool {
	return p.Health >= minHealth
}

// InSight returns the squared distance to a grazer inside the graze radius,
// or -1. Plants have no facing.
func (p *Plant) InSight(target vector.Vector2) float64 {
	d := target.Sub(p.Position).LengthSqr()
	if d > p.Traits.GrazeRadius*p.Traits.GrazeRadius {
		return -1
	}
	return d
}
