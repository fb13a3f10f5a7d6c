// Package camera maps the aquarium's unbounded world onto the screen.
package camera

import "github.com/pthm-cable/aquarium/vector"

// Camera holds the pan offset and zoom applied when drawing the world.
// Panning shifts the world under a fixed viewport; zoom scales around the
// viewport center.
type Camera struct {
	// Offset is added to world positions before zooming.
	Offset vector.Vector2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates an unpanned camera at 1:1 zoom.
func New(viewportW, viewportH, minZoom, maxZoom float64) *Camera {
	if minZoom <= 0 {
		minZoom = 0.1
	}
	if maxZoom < minZoom {
		maxZoom = minZoom
	}
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   minZoom,
		MaxZoom:   maxZoom,
	}
}

func (c *Camera) center() vector.Vector2 {
	return vector.New(c.ViewportW/2, c.ViewportH/2)
}

// WorldToScreen converts a world position to screen coordinates.
func (c *Camera) WorldToScreen(p vector.Vector2) (sx, sy float32) {
	mid := c.center()
	s := p.Add(c.Offset).Sub(mid).Scale(c.Zoom).Add(mid)
	return float32(s.X), float32(s.Y)
}

// ScreenToWorld converts screen coordinates to a world position.
func (c *Camera) ScreenToWorld(sx, sy float32) vector.Vector2 {
	mid := c.center()
	return vector.New(float64(sx), float64(sy)).Sub(mid).Scale(1 / c.Zoom).Add(mid).Sub(c.Offset)
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(length float64) float32 {
	return float32(length * c.Zoom)
}

// IsVisible returns true if a circle at p with the given radius could be on
// screen (conservative check for culling).
func (c *Camera) IsVisible(p vector.Vector2, radius float64) bool {
	sx, sy := c.WorldToScreen(p)
	r := radius * c.Zoom
	return float64(sx)+r >= 0 && float64(sx)-r <= c.ViewportW &&
		float64(sy)+r >= 0 && float64(sy)-r <= c.ViewportH
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float64) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Pan shifts the world by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float64) {
	c.Offset = c.Offset.Offset(dx/c.Zoom, dy/c.Zoom)
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Reset removes any pan and returns to 1:1 zoom.
func (c *Camera) Reset() {
	c.Offset = vector.Zero
	c.Zoom = 1.0
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
