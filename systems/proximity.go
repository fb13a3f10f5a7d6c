// Package systems holds the queries the aquarium runs over its populations.
package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/vector"
)

// Positioner is anything that can be found by a proximity query.
// Immobile implementers report a zero velocity.
type Positioner interface {
	Pos() vector.Vector2
	Vel() vector.Vector2
}

// Viewer decides whether a point is visible. InSight returns the squared
// distance for visible points and a negative value otherwise.
type Viewer interface {
	InSight(target vector.Vector2) float64
}

// Snapshot is a read-only copy of an agent taken before a population pass,
// so movement during the pass never feeds back into decisions in the same pass.
type Snapshot struct {
	Entity    ecs.Entity
	Position  vector.Vector2
	Velocity  vector.Vector2
	Collision components.Rect
}

func (s Snapshot) Pos() vector.Vector2 { return s.Position }
func (s Snapshot) Vel() vector.Vector2 { return s.Velocity }

// SnapshotBody copies the kinematic state of a body.
func SnapshotBody(e ecs.Entity, b *components.Body) Snapshot {
	return Snapshot{
		Entity:    e,
		Position:  b.Position,
		Velocity:  b.Velocity,
		Collision: b.CollisionRect(),
	}
}

// Sighting is the result of a successful proximity query.
type Sighting struct {
	Index    int // position in the scanned population
	Position vector.Vector2
	Velocity vector.Vector2
	DistSqr  float64
}

// CheckProximity scans population linearly and returns the nearest candidate
// the origin can see. Only strictly positive InSight values count; on ties the
// first candidate wins. An empty population yields no sighting.
func CheckProximity[T Positioner](origin Viewer, population []T) (Sighting, bool) {
	best := Sighting{Index: -1}
	for i, c := range population {
		d := origin.InSight(c.Pos())
		if d <= 0 {
			continue
		}
		if best.Index < 0 || d < best.DistSqr {
			best = Sighting{Index: i, Position: c.Pos(), Velocity: c.Vel(), DistSqr: d}
		}
	}
	return best, best.Index >= 0
}
