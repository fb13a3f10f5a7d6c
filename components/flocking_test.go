package components

import (
	"testing"

	"github.com/pthm-cable/aquarium/vector"
)

func TestComputeFlockEmpty(t *testing.T) {
	f := newTestFish(vector.New(200, 200))
	if f.ComputeFlock() {
		t.Error("ComputeFlock() with no neighbours = true, want false")
	}
	if f.Position != vector.New(200, 200) {
		t.Errorf("fish moved to %v without neighbours", f.Position)
	}
}

func TestComputeFlockSteersAndResets(t *testing.T) {
	f := newTestFish(vector.New(200, 200))
	f.SetVelocity(vector.New(1, 0))
	f.CurrentSpeed = 1

	f.FoldNeighbor(vector.New(260, 200), vector.New(0, 2))
	f.FoldNeighbor(vector.New(260, 260), vector.New(0, 1))
	if f.Flock.Count != 2 {
		t.Fatalf("Count = %d, want 2", f.Flock.Count)
	}

	if !f.ComputeFlock() {
		t.Fatal("ComputeFlock() = false, want true")
	}
	if k := f.Behaviour().Kind(); k != Wandering {
		t.Errorf("behaviour = %v, want wandering", k)
	}
	if f.Flock.Count != 0 || !f.Flock.Separation.IsZero() || !f.Flock.Cohesion.IsZero() || !f.Flock.Alignment.IsZero() {
		t.Errorf("accumulator not cleared: %+v", f.Flock)
	}
	// Neighbours sit ahead and below, heading down: the fish turns toward +Y.
	if f.Velocity.Y <= 0 {
		t.Errorf("velocity %v, want a turn toward the school", f.Velocity)
	}
}

func TestSeparationDominatesWhenCrowded(t *testing.T) {
	f := newTestFish(vector.New(200, 200))
	f.Flock.Weights = FlockWeights{Separation: 1}

	f.FoldNeighbor(vector.New(203, 200), vector.Zero)
	f.ComputeFlock()
	if f.Position.X >= 200 {
		t.Errorf("Position = %v, want pushed away from the neighbour", f.Position)
	}
}
