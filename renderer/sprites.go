// Package renderer draws the aquarium through raylib. It only reads
// simulation state; nothing here feeds back into a tick.
package renderer

import (
	"log/slog"
	"math"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/camera"
	"github.com/pthm-cable/aquarium/components"
)

// Tints used when a sprite is missing and a shape is drawn instead.
var (
	PlantColor    = rl.NewColor(60, 170, 90, 255)
	PreyColor     = rl.NewColor(240, 200, 80, 255)
	PredatorColor = rl.NewColor(220, 70, 70, 255)
	RectColor     = rl.NewColor(255, 255, 255, 90)
	HitColor      = rl.NewColor(255, 60, 60, 160)
)

// sprite is an optional texture. ok is false when the file could not be loaded.
type sprite struct {
	tex rl.Texture2D
	ok  bool
}

func loadSprite(path string) sprite {
	if !rl.FileExists(path) {
		slog.Warn("sprite missing, using shape fallback", "path", path)
		return sprite{}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		slog.Warn("sprite failed to load, using shape fallback", "path", path)
		return sprite{}
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	return sprite{tex: tex, ok: true}
}

// draw stretches the texture over a size x size square centered on (x, y),
// rotated by angle degrees.
func (s sprite) draw(x, y, size, angle float32) {
	src := rl.Rectangle{Width: float32(s.tex.Width), Height: float32(s.tex.Height)}
	dst := rl.Rectangle{X: x, Y: y, Width: size, Height: size}
	origin := rl.Vector2{X: size / 2, Y: size / 2}
	rl.DrawTexturePro(s.tex, src, dst, origin, angle, rl.White)
}

func (s sprite) unload() {
	if s.ok {
		rl.UnloadTexture(s.tex)
	}
}

// Sprites holds the plant, prey and predator textures.
type Sprites struct {
	seaweed sprite
	fish    sprite
	shark   sprite
}

// LoadSprites loads seaweed.png, fish.png and shark.png from dir. It must be
// called after the raylib window exists. Missing files are not an error.
func LoadSprites(dir string) *Sprites {
	return &Sprites{
		seaweed: loadSprite(filepath.Join(dir, "seaweed.png")),
		fish:    loadSprite(filepath.Join(dir, "fish.png")),
		shark:   loadSprite(filepath.Join(dir, "shark.png")),
	}
}

// Unload frees GPU textures.
func (s *Sprites) Unload() {
	s.seaweed.unload()
	s.fish.unload()
	s.shark.unload()
}

// DrawPlant draws a plant at its render extent. Plants do not rotate.
func (s *Sprites) DrawPlant(cam *camera.Camera, p *components.Plant) {
	size := p.Size()
	if !cam.IsVisible(p.Position, size) {
		return
	}
	x, y := cam.WorldToScreen(p.Position)
	sz := cam.Scale(size)
	if s.seaweed.ok {
		s.seaweed.draw(x, y, sz, 0)
		return
	}
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, sz/2, PlantColor)
}

// DrawPrey draws a prey fish facing its heading.
func (s *Sprites) DrawPrey(cam *camera.Camera, f *components.Fish) {
	s.drawFish(cam, f, s.fish, PreyColor)
}

// DrawPredator draws a predator fish facing its heading.
func (s *Sprites) DrawPredator(cam *camera.Camera, f *components.Fish) {
	s.drawFish(cam, f, s.shark, PredatorColor)
}

func (s *Sprites) drawFish(cam *camera.Camera, f *components.Fish, spr sprite, color rl.Color) {
	size := f.Size()
	if !cam.IsVisible(f.Position, size) {
		return
	}
	x, y := cam.WorldToScreen(f.Position)
	sz := cam.Scale(size)
	angle := float32(f.Angle())
	if spr.ok {
		spr.draw(x, y, sz, angle)
		return
	}
	drawOrientedTriangle(x, y, angle*rl.Deg2rad, sz/2, color)
}

// DrawRects outlines the render extent and the collision rectangle of b.
func DrawRects(cam *camera.Camera, b *components.Body) {
	drawRect(cam, b.Rect(), RectColor)
	drawRect(cam, b.CollisionRect(), HitColor)
}

func drawRect(cam *camera.Camera, r components.Rect, color rl.Color) {
	x, y := cam.WorldToScreen(r.Center())
	w, h := cam.Scale(r.W), cam.Scale(r.H)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x - w/2, Y: y - h/2, Width: w, Height: h}, 1, color)
}

// drawOrientedTriangle draws a triangle pointing along heading (radians).
func drawOrientedTriangle(x, y, heading, radius float32, color rl.Color) {
	point := func(a, r float32) rl.Vector2 {
		return rl.Vector2{
			X: x + float32(math.Cos(float64(a)))*r,
			Y: y + float32(math.Sin(float64(a)))*r,
		}
	}

	front := point(heading, radius*1.5)
	backLeft := point(heading+math.Pi*0.8, radius)
	backRight := point(heading-math.Pi*0.8, radius)

	// DrawTriangle requires counter-clockwise winding
	rl.DrawTriangle(front, backRight, backLeft, color)
	rl.DrawTriangleLines(front, backLeft, backRight, rl.White)
}
