package components

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/aquarium/vector"
)

func newTestFish(pos vector.Vector2) Fish {
	return NewFish(pos, FishParams{
		Health:       100,
		Mass:         20,
		VisionAngle:  170,
		VisionDepth:  800,
		PeakSpeed:    5,
		DefaultSpeed: 2.5,
		MaxForce:     10,
		Steering:     DefaultSteering(),
		Flocking:     FlockWeights{Separation: 1.5, Cohesion: 1, Alignment: 1},
	})
}

func TestNewFishIsStill(t *testing.T) {
	f := newTestFish(vector.New(5, 5))
	if k := f.Behaviour().Kind(); k != Still {
		t.Errorf("new fish behaviour = %v, want still", k)
	}
	if f.CurrentSpeed != 0 || !f.Velocity.IsZero() {
		t.Errorf("new fish moving: speed %v velocity %v", f.CurrentSpeed, f.Velocity)
	}
}

func TestSteerDeadZone(t *testing.T) {
	f := newTestFish(vector.New(3, 4))
	f.SetVelocity(vector.New(1, 1))
	f.CurrentSpeed = 2
	before := f

	f.Steer(f.Position, 5)
	if f.Position != before.Position || f.Velocity != before.Velocity || f.CurrentSpeed != before.CurrentSpeed {
		t.Errorf("Steer inside dead zone changed state: %+v -> %+v", before.Body, f.Body)
	}

	f.Steer(f.Position.Offset(0.5, 0.5), 5)
	if f.Position != before.Position {
		t.Errorf("Steer at sub-unit distance moved fish to %v", f.Position)
	}
}

func TestSteerRampsSpeed(t *testing.T) {
	f := newTestFish(vector.Zero)
	f.Steer(vector.New(100, 0), 5)

	if math.Abs(f.CurrentSpeed-0.6) > 1e-9 {
		t.Errorf("CurrentSpeed after one step = %v, want 0.6", f.CurrentSpeed)
	}
	if l := f.Velocity.Length(); l > f.CurrentSpeed+1e-9 {
		t.Errorf("velocity %v exceeds current speed %v", l, f.CurrentSpeed)
	}
	if f.Position != f.Velocity {
		t.Errorf("Position = %v, want integrated velocity %v", f.Position, f.Velocity)
	}
	if f.VelocityNorm != f.Velocity.Norm() {
		t.Errorf("VelocityNorm stale: %v vs %v", f.VelocityNorm, f.Velocity.Norm())
	}

	// Ramp down never overshoots the target speed.
	f.CurrentSpeed = 5
	f.Steer(vector.New(100, 0), 4.8)
	if math.Abs(f.CurrentSpeed-4.8) > 1e-9 {
		t.Errorf("CurrentSpeed after ramp down = %v, want 4.8", f.CurrentSpeed)
	}
}

func TestArriveSpeedMonotonic(t *testing.T) {
	f := newTestFish(vector.Zero)
	prev := f.ArriveSpeed(0)
	for d := 1.0; d < 100; d++ {
		s := f.ArriveSpeed(d)
		if s <= prev {
			t.Fatalf("ArriveSpeed(%v) = %v, not above ArriveSpeed(%v) = %v", d, s, d-1, prev)
		}
		prev = s
	}
	for _, d := range []float64{100, 250, 1e4} {
		if s := f.ArriveSpeed(d); s != f.PeakSpeed {
			t.Errorf("ArriveSpeed(%v) = %v, want peak %v", d, s, f.PeakSpeed)
		}
	}
}

func TestBehaviours(t *testing.T) {
	tests := []struct {
		name  string
		run   func(f *Fish)
		want  BehaviourKind
		check func(f *Fish) bool
	}{
		{"seek", func(f *Fish) { f.Seek(vector.New(100, 0)) }, Seeking, func(f *Fish) bool { return f.Position.X > 0 }},
		{"arrive", func(f *Fish) { f.Arrive(vector.New(50, 0)) }, Arriving, func(f *Fish) bool { return f.Position.X > 0 }},
		{"flee", func(f *Fish) { f.Flee(vector.New(30, 0)) }, Fleeing, func(f *Fish) bool { return f.Position.X < 0 }},
		{"pursuit", func(f *Fish) { f.Pursuit(vector.New(100, 0), vector.New(0, 1)) }, Seeking, func(f *Fish) bool { return f.Position.X > 0 && f.Position.Y > 0 }},
		{"evade", func(f *Fish) { f.Evade(vector.New(100, 0), vector.New(0, 1)) }, Fleeing, func(f *Fish) bool { return f.Position.X < 0 && f.Position.Y < 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFish(vector.Zero)
			tt.run(&f)
			if k := f.Behaviour().Kind(); k != tt.want {
				t.Errorf("behaviour = %v, want %v", k, tt.want)
			}
			if !tt.check(&f) {
				t.Errorf("unexpected position %v", f.Position)
			}
		})
	}
}

func TestWanderReseedsFromVelocity(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	f := newTestFish(vector.New(500, 500))
	f.SetVelocity(vector.New(0, 2))
	f.CurrentSpeed = 2

	f.Wander(rng)
	w, ok := f.Behaviour().Wander()
	if !ok {
		t.Fatalf("behaviour = %v, want wandering", f.Behaviour().Kind())
	}
	if math.Abs(w.X) > 1e-9 || math.Abs(w.Y-10) > 1e-9 {
		t.Errorf("reseeded wander vector = %v, want (0, 10)", w)
	}
}

func TestWanderCorrelatedWalk(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	f := newTestFish(vector.New(500, 500))

	prev := vector.Zero
	for i := 0; i < 200; i++ {
		f.Wander(rng)
		w, ok := f.Behaviour().Wander()
		if !ok {
			t.Fatalf("tick %d: not wandering", i)
		}
		if math.Abs(w.Length()-f.Steering.WanderRadius) > 1e-9 {
			t.Fatalf("tick %d: wander length %v, want %v", i, w.Length(), f.Steering.WanderRadius)
		}
		// Successive wander vectors differ by at most the jitter radius
		// before renormalisation, so their headings stay close.
		if i > 0 && w.Norm().Dot(prev.Norm()) < 0.5 {
			t.Errorf("tick %d: wander heading jumped from %v to %v", i, prev, w)
		}
		prev = w
		if l := f.Velocity.Length(); l > f.DefaultSpeed+1e-9 {
			t.Fatalf("tick %d: speed %v above cruising %v", i, l, f.DefaultSpeed)
		}
	}
}

func TestInSight(t *testing.T) {
	f := newTestFish(vector.Zero)
	f.Vision = NewVision(90, 100)

	// Still fish see all around.
	if d := f.InSight(vector.New(-10, 0)); d != 100 {
		t.Errorf("still fish InSight behind = %v, want 100", d)
	}

	f.SetVelocity(vector.New(1, 0))
	tests := []struct {
		name   string
		target vector.Vector2
		want   float64
	}{
		{"ahead", vector.New(10, 0), 100},
		{"inside cone", vector.New(10, 5), 125},
		{"outside cone", vector.New(0, 10), -1},
		{"behind", vector.New(-10, 0), -1},
		{"too far", vector.New(101, 0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.InSight(tt.target); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("InSight(%v) = %v, want %v", tt.target, got, tt.want)
			}
		})
	}
}

func TestFeedAndStarve(t *testing.T) {
	f := newTestFish(vector.Zero)
	f.Starve(60)
	f.Feed(10)
	if f.Health != 50 {
		t.Errorf("Health = %v, want 50", f.Health)
	}
	f.Starve(80)
	if f.Alive() {
		t.Errorf("fish with health %v reported alive", f.Health)
	}
}
