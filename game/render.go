package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/renderer"
)

// Draw renders one frame: seabed, plants, prey, predators, then the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	cam := g.aq.Camera()
	g.seabed.Draw(cam)

	for _, p := range g.aq.Plants() {
		g.sprites.DrawPlant(cam, p)
		if g.debugMode {
			renderer.DrawRects(cam, &p.Body)
		}
	}
	for _, f := range g.aq.Preys() {
		g.sprites.DrawPrey(cam, f)
		if g.debugMode {
			renderer.DrawRects(cam, &f.Body)
		}
	}
	for _, f := range g.aq.Predators() {
		g.sprites.DrawPredator(cam, f)
		if g.debugMode {
			renderer.DrawRects(cam, &f.Body)
		}
	}

	g.drawHUD()

	rl.EndDrawing()
}

// drawHUD renders the tick counter, populations and controls.
func (g *Game) drawHUD() {
	c := g.aq.Counts()
	rl.DrawText(fmt.Sprintf("Tick: %d", g.aq.TickCount()), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Plants: %d  Prey: %d  Predators: %d", c.Plants, c.Prey, c.Predators), 10, 35, 20, rl.White)
	rl.DrawText(fmt.Sprintf("Speed: %dx  [</>]  Zoom: %.2f", g.stepsPerUpdate, g.aq.Camera().Zoom), 10, 60, 20, rl.White)
	if g.paused {
		rl.DrawText("PAUSED", 10, 85, 20, rl.Yellow)
	}
	if g.debugMode {
		rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10, 110, 20, rl.Green)
	}
}
