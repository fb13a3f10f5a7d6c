package components

import "github.com/pthm-cable/aquarium/vector"

// FlockWeights scales the three schooling terms.
type FlockWeights struct {
	Separation float64 `yaml:"separation"`
	Cohesion   float64 `yaml:"cohesion"`
	Alignment  float64 `yaml:"alignment"`
}

// Flock accumulates neighbour contributions for one tick.
type Flock struct {
	Separation vector.Vector2
	Cohesion   vector.Vector2 // sum of neighbour positions
	Alignment  vector.Vector2 // sum of neighbour headings
	Count      int
	Weights    FlockWeights
}

func (fl *Flock) reset() {
	fl.Separation = vector.Zero
	fl.Cohesion = vector.Zero
	fl.Alignment = vector.Zero
	fl.Count = 0
}

// FoldNeighbor adds one neighbour to the flock accumulator.
func (f *Fish) FoldNeighbor(pos, vel vector.Vector2) {
	away := f.Position.Sub(pos)
	if d := away.LengthSqr(); d > 0 {
		f.Flock.Separation = f.Flock.Separation.Add(away.Norm().Scale(1 / d))
	}
	f.Flock.Cohesion = f.Flock.Cohesion.Add(pos)
	f.Flock.Alignment = f.Flock.Alignment.Add(vel.Norm())
	f.Flock.Count++
}

// ComputeFlock blends the accumulated terms into one steering force, steers
// at cruising speed and clears the accumulator. The blend also becomes the
// wander vector so the fish drifts on smoothly once it leaves the school.
// It returns false, after clearing, when no neighbour was folded.
func (f *Fish) ComputeFlock() bool {
	fl := &f.Flock
	defer fl.reset()
	if fl.Count == 0 {
		return false
	}

	w := fl.Weights
	center := fl.Cohesion.Scale(1 / float64(fl.Count))
	sum := fl.Separation.Norm().Scale(w.Separation).
		Add(center.Sub(f.Position).Norm().Scale(w.Cohesion)).
		Add(fl.Alignment.Norm().Scale(w.Alignment))
	if sum.IsZero() {
		sum = f.Velocity
	}

	f.behaviour = wandering(sum.Mag(f.Steering.WanderRadius))
	f.Steer(sum.Mag(f.MaxForce).Sub(f.Velocity), f.DefaultSpeed)
	return true
}
