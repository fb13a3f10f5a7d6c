package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/vector"
)

// radar sees everything within a fixed range.
type radar struct {
	at    vector.Vector2
	reach float64
}

func (r radar) InSight(t vector.Vector2) float64 {
	d := t.Sub(r.at).LengthSqr()
	if d > r.reach*r.reach {
		return -1
	}
	return d
}

func snaps(points ...vector.Vector2) []Snapshot {
	out := make([]Snapshot, len(points))
	for i, p := range points {
		out[i] = Snapshot{Position: p, Velocity: vector.New(float64(i), 0)}
	}
	return out
}

func TestCheckProximity(t *testing.T) {
	origin := radar{reach: 50}
	tests := []struct {
		name      string
		pop       []Snapshot
		wantIndex int
		wantOK    bool
	}{
		{"empty", nil, -1, false},
		{"all out of range", snaps(vector.New(100, 0), vector.New(0, -60)), -1, false},
		{"nearest wins", snaps(vector.New(40, 0), vector.New(10, 10), vector.New(0, 30)), 1, true},
		{"first minimum wins ties", snaps(vector.New(20, 0), vector.New(0, 20), vector.New(-20, 0)), 0, true},
		{"zero distance ignored", snaps(vector.Zero, vector.New(30, 0)), 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CheckProximity(origin, tt.pop)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Index != tt.wantIndex {
				t.Errorf("Index = %d, want %d", got.Index, tt.wantIndex)
			}
			if got.Position != tt.pop[tt.wantIndex].Position || got.Velocity != tt.pop[tt.wantIndex].Velocity {
				t.Errorf("sighting %+v does not match candidate %+v", got, tt.pop[tt.wantIndex])
			}
		})
	}
}

func TestCheckProximityWithFish(t *testing.T) {
	prey := components.NewFish(vector.Zero, components.FishParams{
		Health: 100, Mass: 20, VisionAngle: 90, VisionDepth: 100,
		PeakSpeed: 5, MaxForce: 10, Steering: components.DefaultSteering(),
	})
	prey.SetVelocity(vector.New(1, 0))

	var body components.Body
	behind := body
	behind.Position = vector.New(-10, 0)
	ahead := body
	ahead.Position = vector.New(60, 0)

	pop := []Snapshot{SnapshotBody(ecs.Entity{}, &behind), SnapshotBody(ecs.Entity{}, &ahead)}
	got, ok := CheckProximity(&prey, pop)
	if !ok || got.Index != 1 {
		t.Errorf("CheckProximity = %+v, %v, want the target ahead", got, ok)
	}
}
