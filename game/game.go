// Package game wraps an Aquarium with the window loop: input, pacing,
// drawing and telemetry flushing.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/aquarium/aquarium"
	"github.com/pthm-cable/aquarium/config"
	"github.com/pthm-cable/aquarium/renderer"
	"github.com/pthm-cable/aquarium/telemetry"
)

// MaxStepsPerUpdate caps the fast-forward multiplier.
const MaxStepsPerUpdate = 10

// Options configures a Game.
type Options struct {
	Seed             int64 // 0 = time-based
	LogStats         bool
	StatsWindowTicks int // 0 = use config
	OutputDir        string
	Headless         bool
	StepsPerUpdate   int
	AssetsDir        string
	Config           *config.Config // nil = config.Cfg()
	StatsCallback    func(telemetry.WindowStats)
}

// Game holds the aquarium and everything around it.
type Game struct {
	cfg *config.Config
	aq  *aquarium.Aquarium

	// Rendering (nil when headless)
	sprites *renderer.Sprites
	seabed  *renderer.Seabed

	// State
	paused         bool
	debugMode      bool
	headless       bool
	stepsPerUpdate int

	screenWidth, screenHeight float32

	// Telemetry
	logStats      bool
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
}

// NewGameWithOptions creates a populated game. In graphical mode the raylib
// window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}
	if opts.StatsWindowTicks > 0 {
		cfg.Telemetry.StatsWindowTicks = opts.StatsWindowTicks
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		aq:             aquarium.New(cfg, rand.New(rand.NewSource(seed))),
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
		logStats:       opts.LogStats,
		statsCallback:  opts.StatsCallback,
	}
	g.aq.Populate()

	if !opts.Headless {
		assets := opts.AssetsDir
		if assets == "" {
			assets = "assets"
		}
		g.sprites = renderer.LoadSprites(assets)
		seabed := renderer.DefaultSeabedParams()
		seabed.Seed = seed
		g.seabed = renderer.NewSeabed(seabed)
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	return g
}

// Update handles input and advances the simulation by stepsPerUpdate ticks
// unless paused.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
	g.aq.Perf().RecordFrame()
}

// UpdateHeadless advances the simulation without reading input.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.step()
	}
}

func (g *Game) step() {
	g.aq.Tick()
	g.flushTelemetry()
}

// Aquarium exposes the simulation.
func (g *Game) Aquarium() *aquarium.Aquarium { return g.aq }

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 { return g.aq.TickCount() }

// Paused reports whether stepping is suspended.
func (g *Game) Paused() bool { return g.paused }

// StepsPerUpdate returns the current fast-forward multiplier.
func (g *Game) StepsPerUpdate() int { return g.stepsPerUpdate }

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.sprites != nil {
		g.sprites.Unload()
	}
	if g.seabed != nil {
		g.seabed.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
