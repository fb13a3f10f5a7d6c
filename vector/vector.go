// Package vector provides the 2D value type used by every agent in the aquarium.
package vector

import (
	"math"
	"math/rand"
)

// Vector2 is an immutable 2D vector. Every method returns a new value.
type Vector2 struct {
	X, Y float64
}

// Zero is the zero vector.
var Zero = Vector2{}

// New returns the vector (x, y).
func New(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vector2) Scale(s float64) Vector2 {
	return Vector2{v.X * s, v.Y * s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{-v.X, -v.Y}
}

// Offset returns v shifted by (dx, dy).
func (v Vector2) Offset(dx, dy float64) Vector2 {
	return Vector2{v.X + dx, v.Y + dy}
}

// Dot returns the dot product of v and o.
func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSqr returns the squared Euclidean length.
func (v Vector2) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length.
func (v Vector2) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// DistanceSqr returns the squared distance between v and o.
func (v Vector2) DistanceSqr(o Vector2) float64 {
	return o.Sub(v).LengthSqr()
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vector2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Norm returns the unit vector pointing along v.
// The zero vector has no direction and normalizes to the zero vector.
func (v Vector2) Norm() Vector2 {
	l := v.Length()
	if l == 0 {
		return Zero
	}
	return Vector2{v.X / l, v.Y / l}
}

// Mag returns v scaled to exactly the given length.
// The zero vector stays zero.
func (v Vector2) Mag(length float64) Vector2 {
	return v.Norm().Scale(length)
}

// Clamp limits the length of v to limit. Vectors at or above the limit are
// scaled down to exactly limit; shorter vectors are returned unchanged.
// A non-positive limit yields the zero vector.
func (v Vector2) Clamp(limit float64) Vector2 {
	if limit <= 0 {
		return Zero
	}
	if v.LengthSqr() >= limit*limit {
		return v.Mag(limit)
	}
	return v
}

// Angle returns the heading of v in degrees, measured from the +X axis
// toward +Y (clockwise on a y-down screen).
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// RandomInRadius samples a point uniformly over the area of a disk of
// radius r centered at the origin.
func RandomInRadius(rng *rand.Rand, r float64) Vector2 {
	theta := rng.Float64() * 2 * math.Pi
	d := r * math.Sqrt(rng.Float64())
	return Vector2{d * math.Cos(theta), d * math.Sin(theta)}
}
