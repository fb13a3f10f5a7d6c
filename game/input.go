package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/aquarium"
)

// panKeys maps arrow keys to pan directions.
var panKeys = []struct {
	key int32
	dir aquarium.Direction
}{
	{rl.KeyUp, aquarium.PanUp},
	{rl.KeyDown, aquarium.PanDown},
	{rl.KeyLeft, aquarium.PanLeft},
	{rl.KeyRight, aquarium.PanRight},
}

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < MaxStepsPerUpdate {
		g.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyD) {
		g.debugMode = !g.debugMode
	}

	// Pan is applied inside the tick, so it freezes with the simulation.
	for _, pk := range panKeys {
		if rl.IsKeyPressed(pk.key) {
			g.aq.SetPan(pk.dir, true)
		}
		if rl.IsKeyReleased(pk.key) {
			g.aq.SetPan(pk.dir, false)
		}
	}

	g.handleZoomInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h
	g.aq.Camera().Resize(float64(w), float64(h))
}

// handleZoomInput processes mouse wheel and +/- zoom and Home reset.
func (g *Game) handleZoomInput() {
	cam := g.aq.Camera()

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		cam.ZoomBy(1 + float64(wheel)*0.1)
	}

	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}
}
