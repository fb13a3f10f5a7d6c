package components

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/aquarium/vector"
)

// Steer applies a steering force and integrates one tick.
// A force within unit distance of the position is treated as negligible and
// leaves the fish untouched.
func (f *Fish) Steer(force vector.Vector2, clampSpeed float64) {
	if force.Sub(f.Position).LengthSqr() < 1 {
		return
	}

	f.rampSpeed(clampSpeed)

	dv := force.Clamp(f.MaxForce).Scale(1 / f.Mass)
	f.SetVelocity(f.Velocity.Add(dv).Clamp(f.CurrentSpeed))
	f.Position = f.Position.Add(f.Velocity)
}

// rampSpeed moves CurrentSpeed one step toward target without overshooting.
func (f *Fish) rampSpeed(target float64) {
	step := f.Steering.SpeedStep
	switch {
	case f.CurrentSpeed < target:
		f.CurrentSpeed = math.Min(f.CurrentSpeed+step, target)
	case f.CurrentSpeed > target:
		f.CurrentSpeed = math.Max(f.CurrentSpeed-step, target)
	}
}

// Wander meanders at cruising speed. While already wandering the wander
// vector takes a small random step; entering the state reseeds it from the
// current velocity, or a random heading when still.
func (f *Fish) Wander(rng *rand.Rand) {
	radius := f.Steering.WanderRadius
	w, ok := f.behaviour.Wander()
	if ok {
		w = w.Add(vector.RandomInRadius(rng, f.Steering.WanderJitter))
	} else {
		w = f.Velocity
		for w.IsZero() {
			w = vector.RandomInRadius(rng, 1)
		}
	}
	w = w.Mag(radius)

	f.behaviour = wandering(w)
	f.Steer(w.Mag(f.MaxForce).Sub(f.Velocity), f.DefaultSpeed)
}

// Seek heads straight for target at peak speed.
func (f *Fish) Seek(target vector.Vector2) {
	desired := target.Sub(f.Position).Mag(f.MaxForce)
	f.behaviour = stateOf(Seeking)
	f.Steer(desired.Sub(f.Velocity), f.PeakSpeed)
}

// Arrive heads for target, slowing down inside the arrive radius.
func (f *Fish) Arrive(target vector.Vector2) {
	to := target.Sub(f.Position)
	desired := to.Mag(f.ArriveSpeed(to.Length()))
	f.behaviour = stateOf(Arriving)
	f.Steer(desired.Sub(f.Velocity), f.PeakSpeed)
}

// ArriveSpeed is the desired speed at the given distance from the target.
func (f *Fish) ArriveSpeed(distance float64) float64 {
	if f.Steering.ArriveRadius <= 0 {
		return f.PeakSpeed
	}
	return math.Min(f.PeakSpeed, f.PeakSpeed*distance/f.Steering.ArriveRadius)
}

// Flee heads directly away from target at peak speed.
func (f *Fish) Flee(target vector.Vector2) {
	desired := f.Position.Sub(target).Mag(f.MaxForce)
	f.behaviour = stateOf(Fleeing)
	f.Steer(desired.Sub(f.Velocity), f.PeakSpeed)
}

// Pursuit seeks where a moving target is predicted to be.
func (f *Fish) Pursuit(pos, vel vector.Vector2) {
	f.Seek(f.predict(pos, vel))
}

// Evade flees where a moving target is predicted to be.
func (f *Fish) Evade(pos, vel vector.Vector2) {
	f.Flee(f.predict(pos, vel))
}

// predict leads the target along its velocity by a fraction of the distance.
func (f *Fish) predict(pos, vel vector.Vector2) vector.Vector2 {
	lead := pos.Sub(f.Position).Length() * f.Steering.PredictFactor
	return pos.Add(vel.Mag(lead))
}
