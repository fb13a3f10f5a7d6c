// Package config provides configuration loading and access for the aquarium.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/aquarium/components"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Population PopulationConfig `yaml:"population"`
	Prey       FishConfig       `yaml:"prey"`
	Predator   FishConfig       `yaml:"predator"`
	Steering   SteeringConfig   `yaml:"steering"`
	Schooling  SchoolingConfig  `yaml:"schooling"`
	Plant      PlantConfig      `yaml:"plant"`
	Pan        PanConfig        `yaml:"pan"`
	Camera     CameraConfig     `yaml:"camera"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig places the spawn origin. Zero means the screen center.
type WorldConfig struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

// SpawnConfig describes one initial population.
type SpawnConfig struct {
	Count  int     `yaml:"count"`
	Mass   float64 `yaml:"mass"`
	Spread float64 `yaml:"spread"` // spawn radius around the world center
}

// PopulationConfig holds the initial populations.
type PopulationConfig struct {
	Plants    SpawnConfig `yaml:"plants"`
	Prey      SpawnConfig `yaml:"prey"`
	Predators SpawnConfig `yaml:"predators"`
}

// FishConfig holds per-species fish parameters.
type FishConfig struct {
	Health       float64 `yaml:"health"`
	VisionAngle  float64 `yaml:"vision_angle"` // full cone, degrees
	VisionDepth  float64 `yaml:"vision_depth"`
	PeakSpeed    float64 `yaml:"peak_speed"`
	CruiseFactor float64 `yaml:"cruise_factor"` // default speed as a fraction of peak
	MaxForce     float64 `yaml:"max_force"`
	Metabolism   float64 `yaml:"metabolism"` // health lost per tick, 0 disables starvation
	FeedGain     float64 `yaml:"feed_gain"`  // health gained per meal
}

// SteeringConfig holds the shared steering constants.
type SteeringConfig struct {
	SpeedStep     float64 `yaml:"speed_step"`
	WanderRadius  float64 `yaml:"wander_radius"`
	WanderJitter  float64 `yaml:"wander_jitter"`
	ArriveRadius  float64 `yaml:"arrive_radius"`
	PredictFactor float64 `yaml:"predict_factor"`
}

// SchoolingConfig holds prey flocking parameters.
type SchoolingConfig struct {
	Enabled bool                    `yaml:"enabled"`
	Radius  float64                 `yaml:"radius"`
	Weights components.FlockWeights `yaml:"weights"`
}

// PlantConfig holds plant growth and grazing parameters.
type PlantConfig struct {
	SeedHealth      float64 `yaml:"seed_health"`
	GrowthInterval  int     `yaml:"growth_interval"` // ticks between growth steps
	GrowthMass      float64 `yaml:"growth_mass"`
	GrowthHealth    float64 `yaml:"growth_health"`
	DivisionMass    float64 `yaml:"division_mass"`
	ChildFraction   float64 `yaml:"child_fraction"`
	SpreadingRadius float64 `yaml:"spreading_radius"`
	GrazeRadius     float64 `yaml:"graze_radius"`
	GrazeDamage     float64 `yaml:"graze_damage"`
	MinHealth       float64 `yaml:"min_health"`
	FeedEfficiency  float64 `yaml:"feed_efficiency"` // share of grazed health passed to the prey
}

// PanConfig holds screen panning parameters.
type PanConfig struct {
	Speed float64 `yaml:"speed"`
}

// CameraConfig holds zoom limits.
type CameraConfig struct {
	MinZoom float64 `yaml:"min_zoom"`
	MaxZoom float64 `yaml:"max_zoom"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindowTicks int `yaml:"stats_window_ticks"`
	PerfWindowTicks  int `yaml:"perf_window_ticks"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CenterX, CenterY float64 // spawn origin
	ScreenW32        float32
	ScreenH32        float32
	PreyParams       components.FishParams
	PredatorParams   components.FishParams
	PlantTraits      components.PlantTraits
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()
	return cfg, nil
}

// Defaults returns the embedded default configuration.
func Defaults() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	cfg.computeDerived()
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	for name, s := range map[string]SpawnConfig{
		"plants":    c.Population.Plants,
		"prey":      c.Population.Prey,
		"predators": c.Population.Predators,
	} {
		if s.Count < 0 {
			return fmt.Errorf("population.%s.count must not be negative, got %d", name, s.Count)
		}
		if s.Mass <= 0 {
			return fmt.Errorf("population.%s.mass must be positive, got %v", name, s.Mass)
		}
	}
	if c.Plant.GrowthInterval <= 0 {
		return fmt.Errorf("plant.growth_interval must be positive, got %d", c.Plant.GrowthInterval)
	}
	if c.Schooling.Enabled && c.Schooling.Radius <= 0 {
		return fmt.Errorf("schooling.radius must be positive when schooling is enabled, got %v", c.Schooling.Radius)
	}
	return nil
}

// Refresh recomputes derived values after fields were edited in place.
func (c *Config) Refresh() {
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Spawn origin defaults to screen center
	c.Derived.CenterX = c.World.CenterX
	if c.Derived.CenterX == 0 {
		c.Derived.CenterX = float64(c.Screen.Width) / 2
	}
	c.Derived.CenterY = c.World.CenterY
	if c.Derived.CenterY == 0 {
		c.Derived.CenterY = float64(c.Screen.Height) / 2
	}

	steering := components.SteeringParams{
		SpeedStep:     c.Steering.SpeedStep,
		WanderRadius:  c.Steering.WanderRadius,
		WanderJitter:  c.Steering.WanderJitter,
		ArriveRadius:  c.Steering.ArriveRadius,
		PredictFactor: c.Steering.PredictFactor,
	}
	c.Derived.PreyParams = c.Prey.params(c.Population.Prey.Mass, steering, c.Schooling.Weights)
	c.Derived.PredatorParams = c.Predator.params(c.Population.Predators.Mass, steering, components.FlockWeights{})

	c.Derived.PlantTraits = components.PlantTraits{
		SeedHealth:      c.Plant.SeedHealth,
		GrowthMass:      c.Plant.GrowthMass,
		GrowthHealth:    c.Plant.GrowthHealth,
		DivisionMass:    c.Plant.DivisionMass,
		ChildFraction:   c.Plant.ChildFraction,
		SpreadingRadius: c.Plant.SpreadingRadius,
		GrazeRadius:     c.Plant.GrazeRadius,
	}
}

func (f FishConfig) params(mass float64, steering components.SteeringParams, flock components.FlockWeights) components.FishParams {
	return components.FishParams{
		Health:       f.Health,
		Mass:         mass,
		VisionAngle:  f.VisionAngle,
		VisionDepth:  f.VisionDepth,
		PeakSpeed:    f.PeakSpeed,
		DefaultSpeed: f.PeakSpeed * math.Max(f.CruiseFactor, 0),
		MaxForce:     f.MaxForce,
		Steering:     steering,
		Flocking:     flock,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
