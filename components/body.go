package components

import (
	"math"

	"github.com/pthm-cable/aquarium/vector"
)

const (
	// SizeFactor maps sqrt(mass) to rendered edge length.
	SizeFactor = 5.0
	// MinMass is the floor applied whenever mass changes.
	MinMass = 0.1
)

// Body is the physical state shared by fish and plants.
// Velocity is only changed through SetVelocity so VelocityNorm stays in sync.
type Body struct {
	Health       float64
	Mass         float64
	Position     vector.Vector2
	Velocity     vector.Vector2
	VelocityNorm vector.Vector2
}

// NewBody returns a motionless body. Mass is floored at MinMass.
func NewBody(health, mass float64, pos vector.Vector2) Body {
	return Body{
		Health:   math.Max(health, 0),
		Mass:     math.Max(mass, MinMass),
		Position: pos,
	}
}

// SetVelocity replaces the velocity and refreshes its unit vector.
func (b *Body) SetVelocity(v vector.Vector2) {
	b.Velocity = v
	b.VelocityNorm = v.Norm()
}

// Grow adds mass and health.
func (b *Body) Grow(mass, health float64) {
	b.Mass = math.Max(b.Mass+mass, MinMass)
	b.Health = math.Max(b.Health+health, 0)
}

// Shrink removes mass and health, never dropping mass below MinMass or
// health below zero.
func (b *Body) Shrink(mass, health float64) {
	b.Grow(-mass, -health)
}

// Size is the edge length of the render rectangle.
func (b *Body) Size() float64 {
	return SizeFactor * math.Sqrt(b.Mass)
}

// Rect is the render extent, centered on the position.
func (b *Body) Rect() Rect {
	s := b.Size()
	return RectAround(b.Position, s, s)
}

// CollisionRect is half the render extent, pushed a quarter size toward the
// direction of travel.
func (b *Body) CollisionRect() Rect {
	s := b.Size()
	c := b.Position.Add(b.VelocityNorm.Scale(s / 4))
	return RectAround(c, s/2, s/2)
}

// Angle is the heading in degrees.
func (b *Body) Angle() float64 {
	return b.Velocity.Angle()
}

// Pos returns the position.
func (b *Body) Pos() vector.Vector2 { return b.Position }

// Vel returns the velocity.
func (b *Body) Vel() vector.Vector2 { return b.Velocity }
