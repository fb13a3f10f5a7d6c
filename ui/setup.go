package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/config"
)

// SetupSections lists the parameters the setup form edits.
func SetupSections() []SectionDescriptor {
	return []SectionDescriptor{
		{
			Title: "Population",
			Fields: []FieldDescriptor{
				countField("plants.count", "Plants", 200,
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Plants }),
				countField("prey.count", "Prey", 500,
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Prey }),
				countField("predators.count", "Predators", 20,
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Predators }),
				massField("plants.mass", "Plant mass",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Plants }),
				massField("prey.mass", "Prey mass",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Prey }),
				massField("predators.mass", "Predator mass",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Predators }),
				spreadField("plants.spread", "Plant spread",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Plants }),
				spreadField("prey.spread", "Prey spread",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Prey }),
				spreadField("predators.spread", "Predator spread",
					func(c *config.Config) *config.SpawnConfig { return &c.Population.Predators }),
			},
		},
		{
			Title:  "Prey",
			Fields: fishFields("prey", func(c *config.Config) *config.FishConfig { return &c.Prey }),
		},
		{
			Title:  "Predators",
			Fields: fishFields("predator", func(c *config.Config) *config.FishConfig { return &c.Predator }),
		},
	}
}

func countField(id, label string, max float64, spawn func(*config.Config) *config.SpawnConfig) FieldDescriptor {
	return FieldDescriptor{
		ID: id, Label: label, Format: "%.0f", Max: max, Integer: true,
		Get: func(c *config.Config) float64 { return float64(spawn(c).Count) },
		Set: func(c *config.Config, v float64) { spawn(c).Count = int(v) },
	}
}

func massField(id, label string, spawn func(*config.Config) *config.SpawnConfig) FieldDescriptor {
	return FieldDescriptor{
		ID: id, Label: label, Format: "%.1f", Min: 1, Max: 200,
		Get: func(c *config.Config) float64 { return spawn(c).Mass },
		Set: func(c *config.Config, v float64) { spawn(c).Mass = v },
	}
}

func spreadField(id, label string, spawn func(*config.Config) *config.SpawnConfig) FieldDescriptor {
	return FieldDescriptor{
		ID: id, Label: label, Format: "%.0f", Max: 1000,
		Get: func(c *config.Config) float64 { return spawn(c).Spread },
		Set: func(c *config.Config, v float64) { spawn(c).Spread = v },
	}
}

func fishFields(prefix string, fish func(*config.Config) *config.FishConfig) []FieldDescriptor {
	return []FieldDescriptor{
		{
			ID: prefix + ".vision_angle", Label: "Vision angle", Format: "%.0f deg", Min: 10, Max: 360,
			Get: func(c *config.Config) float64 { return fish(c).VisionAngle },
			Set: func(c *config.Config, v float64) { fish(c).VisionAngle = v },
		},
		{
			ID: prefix + ".vision_depth", Label: "Vision depth", Format: "%.0f", Min: 50, Max: 2000,
			Get: func(c *config.Config) float64 { return fish(c).VisionDepth },
			Set: func(c *config.Config, v float64) { fish(c).VisionDepth = v },
		},
		{
			ID: prefix + ".peak_speed", Label: "Peak speed", Format: "%.1f", Min: 0.5, Max: 20,
			Get: func(c *config.Config) float64 { return fish(c).PeakSpeed },
			Set: func(c *config.Config, v float64) { fish(c).PeakSpeed = v },
		},
	}
}

// SetupForm edits a config in place before the simulation starts.
type SetupForm struct {
	Theme    Theme
	Sections []SectionDescriptor

	cfg     *config.Config
	initial config.Config
}

// NewSetupForm creates a form over cfg. Reset restores the values cfg had
// at this point.
func NewSetupForm(cfg *config.Config) *SetupForm {
	return &SetupForm{
		Theme:    DefaultTheme(),
		Sections: SetupSections(),
		cfg:      cfg,
		initial:  *cfg,
	}
}

// Reset restores the values the form started with.
func (f *SetupForm) Reset() {
	*f.cfg = f.initial
}

// Finish recomputes derived config values after editing.
func (f *SetupForm) Finish() {
	f.cfg.Refresh()
}

// Draw renders the form and reports whether Start was pressed. Must be
// called between BeginDrawing and EndDrawing.
func (f *SetupForm) Draw() bool {
	t := f.Theme
	rl.ClearBackground(t.Background)

	x := t.Padding * 2
	y := t.Padding * 2
	width := t.LabelWidth + t.SliderWidth + 120
	height := f.height()
	rl.DrawRectangleRec(rl.Rectangle{X: x - t.Padding, Y: y - t.Padding, Width: width, Height: height}, t.PanelBg)
	rl.DrawRectangleLinesEx(rl.Rectangle{X: x - t.Padding, Y: y - t.Padding, Width: width, Height: height}, 1, t.PanelBorder)

	rl.DrawText("Aquarium setup", int32(x), int32(y), t.HeaderFontSize+4, t.ValueColor)
	y += t.RowHeight * 1.5

	for _, s := range f.Sections {
		rl.DrawText(s.Title, int32(x), int32(y), t.HeaderFontSize, t.SectionHeader)
		y += t.RowHeight
		for _, field := range s.Fields {
			f.drawField(field, x, y)
			y += t.RowHeight
		}
		y += t.RowHeight / 2
	}

	start := gui.Button(rl.Rectangle{X: x, Y: y, Width: 120, Height: 30}, "Start")
	if gui.Button(rl.Rectangle{X: x + 130, Y: y, Width: 120, Height: 30}, "Reset") {
		f.Reset()
	}
	return start
}

func (f *SetupForm) drawField(field FieldDescriptor, x, y float32) {
	t := f.Theme
	rl.DrawText(field.Label, int32(x), int32(y+2), t.FontSize, t.LabelColor)

	cur := field.Get(f.cfg)
	bounds := rl.Rectangle{X: x + t.LabelWidth, Y: y, Width: t.SliderWidth, Height: t.RowHeight - 6}
	v := gui.SliderBar(bounds, "", "", float32(cur), float32(field.Min), float32(field.Max))
	if float64(v) != cur {
		field.Apply(f.cfg, float64(v))
	}

	rl.DrawText(fmt.Sprintf(field.Format, field.Get(f.cfg)),
		int32(x+t.LabelWidth+t.SliderWidth+10), int32(y+2), t.FontSize, t.ValueColor)
}

func (f *SetupForm) height() float32 {
	t := f.Theme
	rows := 1.5 + 1 // title and buttons
	for _, s := range f.Sections {
		rows += 1.5 + float64(len(s.Fields))
	}
	return float32(rows)*t.RowHeight + t.Padding*2
}

// RunSetup shows the form until Start is pressed or the window is closed.
// It returns false if the window was closed.
func RunSetup(cfg *config.Config) bool {
	form := NewSetupForm(cfg)
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		start := form.Draw()
		rl.EndDrawing()
		if start {
			form.Finish()
			return true
		}
	}
	return false
}
