package vector

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func TestNormUnitLength(t *testing.T) {
	tests := []Vector2{
		{3, 4},
		{-1, 0},
		{0, 0.001},
		{1e6, -1e6},
		{-7.5, 2.25},
	}
	for _, v := range tests {
		if got := v.Norm().Length(); math.Abs(got-1) > 1e-9 {
			t.Errorf("%v.Norm().Length() = %v, want 1", v, got)
		}
	}
}

func TestNormZero(t *testing.T) {
	if got := Zero.Norm(); got != Zero {
		t.Errorf("Zero.Norm() = %v, want zero vector", got)
	}
	if got := Zero.Mag(10); got != Zero {
		t.Errorf("Zero.Mag(10) = %v, want zero vector", got)
	}
}

func TestMag(t *testing.T) {
	v := New(3, 4).Mag(10)
	if math.Abs(v.X-6) > 1e-9 || math.Abs(v.Y-8) > 1e-9 {
		t.Errorf("Mag(10) = %v, want (6, 8)", v)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector2
		limit float64
		want  float64
	}{
		{"shorter unchanged", New(1, 1), 5, math.Sqrt2},
		{"longer scaled down", New(30, 40), 5, 5},
		{"exact limit", New(3, 4), 5, 5},
		{"zero limit", New(3, 4), 0, 0},
		{"negative limit", New(3, 4), -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Clamp(tt.limit).Length(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Clamp(%v).Length() = %v, want %v", tt.limit, got, tt.want)
			}
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		v := RandomInRadius(rng, 100)
		limit := rng.Float64() * 60
		once := v.Clamp(limit)
		twice := once.Clamp(limit)
		if math.Abs(once.X-twice.X) > 1e-9 || math.Abs(once.Y-twice.Y) > 1e-9 {
			t.Fatalf("Clamp not idempotent for %v limit %v: %v then %v", v, limit, once, twice)
		}
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		v    Vector2
		want float64
	}{
		{New(1, 0), 0},
		{New(0, 1), 90},
		{New(-1, 0), 180},
		{New(0, -1), -90},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v.Angle() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestRandomInRadiusBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, r := range []float64{0.5, 3, 300} {
		for i := 0; i < 2000; i++ {
			if l := RandomInRadius(rng, r).Length(); l > r {
				t.Fatalf("RandomInRadius(%v) produced length %v", r, l)
			}
		}
	}
}

// Squared length over r^2 should be uniform on [0, 1].
func TestRandomInRadiusAreaUniform(t *testing.T) {
	const n = 20000
	const r = 40.0
	rng := rand.New(rand.NewSource(42))

	u := make([]float64, n)
	for i := range u {
		u[i] = RandomInRadius(rng, r).LengthSqr() / (r * r)
	}

	mean, variance := stat.MeanVariance(u, nil)
	if math.Abs(mean-0.5) > 0.02 {
		t.Errorf("mean of normalized squared length = %v, want ~0.5", mean)
	}
	if math.Abs(variance-1.0/12) > 0.01 {
		t.Errorf("variance of normalized squared length = %v, want ~%v", variance, 1.0/12)
	}

	sort.Float64s(u)
	for _, p := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		q := stat.Quantile(p, stat.Empirical, u, nil)
		if math.Abs(q-p) > 0.02 {
			t.Errorf("quantile %v = %v, want ~%v", p, q, p)
		}
	}
}
