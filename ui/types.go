// Package ui provides the pre-run parameter form. Fields are described by
// metadata so the form stays in step with the config layout.
package ui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/aquarium/config"
)

// FieldDescriptor binds one slider to a config value.
type FieldDescriptor struct {
	ID      string  // Unique identifier for the field
	Label   string  // Display label
	Format  string  // Printf format for the value
	Min     float64 // Slider range
	Max     float64
	Integer bool // Round to whole numbers

	Get func(*config.Config) float64
	Set func(*config.Config, float64)
}

// Apply clamps v to the field range, rounds integer fields and stores it.
func (f FieldDescriptor) Apply(cfg *config.Config, v float64) {
	v = math.Max(f.Min, math.Min(f.Max, v))
	if f.Integer {
		v = math.Round(v)
	}
	f.Set(cfg, v)
}

// SectionDescriptor groups fields under a header.
type SectionDescriptor struct {
	Title  string
	Fields []FieldDescriptor
}

// Theme holds UI styling constants.
type Theme struct {
	Background     rl.Color
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	Padding        float32
	RowHeight      float32
	LabelWidth     float32
	SliderWidth    float32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:     rl.Color{R: 10, G: 28, B: 46, A: 255},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		Padding:        16,
		RowHeight:      26,
		LabelWidth:     170,
		SliderWidth:    260,
		FontSize:       16,
		HeaderFontSize: 20,
	}
}
