package renderer

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/ojrac/opensimplex-go"

	"github.com/pthm-cable/aquarium/camera"
)

// SeabedParams control the fractal noise behind the tank.
type SeabedParams struct {
	Size       int     // texture edge in pixels, tiled across the view
	Scale      float64 // noise periods per tile
	Octaves    int
	Lacunarity float64
	Gain       float64
	Seed       int64
}

// DefaultSeabedParams returns a soft, low-contrast sand pattern.
func DefaultSeabedParams() SeabedParams {
	return SeabedParams{
		Size:       256,
		Scale:      3,
		Octaves:    4,
		Lacunarity: 2,
		Gain:       0.5,
		Seed:       1,
	}
}

// Seabed is a tileable noise texture scrolled with the camera.
type Seabed struct {
	params SeabedParams
	deep   color.RGBA
	light  color.RGBA

	tex         rl.Texture2D
	initialized bool
}

// NewSeabed creates a seabed renderer. Init runs lazily on first Draw.
func NewSeabed(p SeabedParams) *Seabed {
	return &Seabed{
		params: p,
		deep:   color.RGBA{R: 8, G: 30, B: 52, A: 255},
		light:  color.RGBA{R: 24, G: 70, B: 96, A: 255},
	}
}

// Pixels generates the texture contents. Sampling on a torus in 4D noise space
// makes the tile wrap without seams.
func (s *Seabed) Pixels() []color.RGBA {
	p := s.params
	noise := opensimplex.NewNormalized(p.Seed)
	out := make([]color.RGBA, p.Size*p.Size)

	r := p.Scale / (2 * math.Pi)
	for y := 0; y < p.Size; y++ {
		ay := 2 * math.Pi * float64(y) / float64(p.Size)
		for x := 0; x < p.Size; x++ {
			ax := 2 * math.Pi * float64(x) / float64(p.Size)

			var v, amp, norm float64 = 0, 1, 0
			freq := 1.0
			for o := 0; o < p.Octaves; o++ {
				v += amp * noise.Eval4(
					r*freq*math.Cos(ax), r*freq*math.Sin(ax),
					r*freq*math.Cos(ay), r*freq*math.Sin(ay),
				)
				norm += amp
				amp *= p.Gain
				freq *= p.Lacunarity
			}
			if norm > 0 {
				v /= norm
			}
			out[y*p.Size+x] = lerpColor(s.deep, s.light, v)
		}
	}
	return out
}

func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}

// Init uploads the texture (must be called after raylib window is created).
func (s *Seabed) Init() {
	if s.initialized {
		return
	}
	n := s.params.Size
	img := rl.GenImageColor(n, n, rl.Black)
	s.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(s.tex, rl.FilterBilinear)
	rl.SetTextureWrap(s.tex, rl.WrapRepeat)
	rl.UpdateTexture(s.tex, s.Pixels())
	s.initialized = true
}

// Draw fills the viewport with the tiled texture, offset so it moves with
// the world.
func (s *Seabed) Draw(cam *camera.Camera) {
	if !s.initialized {
		s.Init()
	}
	w, h := float32(cam.ViewportW), float32(cam.ViewportH)
	zoom := float32(cam.Zoom)

	// One texture pixel per world unit; WrapRepeat tiles the visible area.
	origin := cam.ScreenToWorld(0, 0)
	src := rl.Rectangle{
		X:      float32(origin.X),
		Y:      float32(origin.Y),
		Width:  w / zoom,
		Height: h / zoom,
	}
	dst := rl.Rectangle{Width: w, Height: h}
	rl.DrawTexturePro(s.tex, src, dst, rl.Vector2{}, 0, rl.White)
}

// Unload frees GPU resources.
func (s *Seabed) Unload() {
	if s.initialized {
		rl.UnloadTexture(s.tex)
		s.initialized = false
	}
}
