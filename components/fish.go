package components

import (
	"math"

	"github.com/pthm-cable/aquarium/vector"
)

// BehaviourKind names the last steering behaviour a fish ran.
type BehaviourKind uint8

const (
	Still BehaviourKind = iota
	Wandering
	Seeking
	Arriving
	Fleeing
)

func (k BehaviourKind) String() string {
	switch k {
	case Still:
		return "still"
	case Wandering:
		return "wandering"
	case Seeking:
		return "seeking"
	case Arriving:
		return "arriving"
	case Fleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// Behaviour is the fish state machine. Only the Wandering state carries data:
// the persistent wander vector of the correlated random walk.
type Behaviour struct {
	kind   BehaviourKind
	wander vector.Vector2
}

// Kind returns the current state.
func (b Behaviour) Kind() BehaviourKind { return b.kind }

// Wander returns the wander vector when the fish is wandering.
func (b Behaviour) Wander() (vector.Vector2, bool) {
	if b.kind != Wandering {
		return vector.Zero, false
	}
	return b.wander, true
}

func stateOf(k BehaviourKind) Behaviour { return Behaviour{kind: k} }

func wandering(w vector.Vector2) Behaviour {
	return Behaviour{kind: Wandering, wander: w}
}

// Vision is a forward cone: targets are visible when within Depth and the
// cosine between heading and target direction is at least Range.
type Vision struct {
	Range float64 // cosine of the half angle
	Depth float64
}

// NewVision builds a cone from its full angle in degrees.
func NewVision(angleDeg, depth float64) Vision {
	half := angleDeg / 2 * math.Pi / 180
	return Vision{Range: math.Cos(half), Depth: depth}
}

// SteeringParams are the constants of the steering pipeline.
type SteeringParams struct {
	SpeedStep     float64 // current speed ramp per tick
	WanderRadius  float64 // length of the wander vector
	WanderJitter  float64 // perturbation radius per wandering tick
	ArriveRadius  float64 // distance under which arrive slows down
	PredictFactor float64 // pursuit/evade lead, fraction of distance
}

// DefaultSteering returns the reference steering constants.
func DefaultSteering() SteeringParams {
	return SteeringParams{
		SpeedStep:     0.6,
		WanderRadius:  10,
		WanderJitter:  3,
		ArriveRadius:  100,
		PredictFactor: 0.5,
	}
}

// FishParams configures a new fish.
type FishParams struct {
	Health       float64
	Mass         float64
	VisionAngle  float64 // degrees
	VisionDepth  float64
	PeakSpeed    float64
	DefaultSpeed float64
	MaxForce     float64
	Steering     SteeringParams
	Flocking     FlockWeights
}

// Fish is a mobile agent driven by steering behaviours.
type Fish struct {
	Body
	Vision       Vision
	MaxForce     float64
	PeakSpeed    float64
	DefaultSpeed float64
	CurrentSpeed float64
	Steering     SteeringParams
	Flock        Flock

	behaviour Behaviour
}

// NewFish returns a still fish at pos.
func NewFish(pos vector.Vector2, p FishParams) Fish {
	return Fish{
		Body:         NewBody(p.Health, p.Mass, pos),
		Vision:       NewVision(p.VisionAngle, p.VisionDepth),
		MaxForce:     p.MaxForce,
		PeakSpeed:    p.PeakSpeed,
		DefaultSpeed: p.DefaultSpeed,
		Steering:     p.Steering,
		Flock:        Flock{Weights: p.Flocking},
	}
}

// Behaviour returns the current state.
func (f *Fish) Behaviour() Behaviour { return f.behaviour }

// InSight returns the squared distance to target, or -1 when the target is
// beyond the vision depth or outside the cone. A fish without velocity has no
// facing and sees all around.
func (f *Fish) InSight(target vector.Vector2) float64 {
	to := target.Sub(f.Position)
	d := to.LengthSqr()
	if d > f.Vision.Depth*f.Vision.Depth {
		return -1
	}
	if !f.VelocityNorm.IsZero() && f.VelocityNorm.Dot(to.Norm()) < f.Vision.Range {
		return -1
	}
	return d
}

// Feed restores health.
func (f *Fish) Feed(amount float64) {
	f.Grow(0, amount)
}

// Starve drains health by the metabolic cost.
func (f *Fish) Starve(cost float64) {
	f.Shrink(0, cost)
}

// Alive reports whether the fish still has health.
func (f *Fish) Alive() bool {
	return f.Health > 0
}
