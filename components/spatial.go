package components

import "github.com/pthm-cable/aquarium/vector"

// Rect is an axis-aligned rectangle in world coordinates.
// X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns a w by h rectangle centered on c.
func RectAround(c vector.Vector2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() vector.Vector2 {
	return vector.New(r.X+r.W/2, r.Y+r.H/2)
}

// Intersects reports whether r and o overlap. Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
