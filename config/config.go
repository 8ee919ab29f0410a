package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// SceneConfig contains everything that shapes the chain and its animation
type SceneConfig struct {
	// Chain
	NodeCount int `yaml:"nodeCount" toml:"node_count"`

	// Figure
	LineGroups    int     `yaml:"lineGroups" toml:"line_groups"`       // rotated copies of the rotating line
	PartsPerGroup int     `yaml:"partsPerGroup" toml:"parts_per_group"` // segments per rotating line
	Staggered     bool    `yaml:"staggered" toml:"staggered"`           // offset each group's progress
	SizeFactor    float64 `yaml:"sizeFactor" toml:"size_factor"`        // node gap / figure size
	StrokeFactor  float64 `yaml:"strokeFactor" toml:"stroke_factor"`    // min(w, h) / stroke width

	// Stepping
	StepGap      float64 `yaml:"stepGap" toml:"step_gap"`           // base per-tick increment
	ScaleDivider float64 `yaml:"scaleDivider" toml:"scale_divider"` // threshold between slow and fast halves
	FrameDelayMs int     `yaml:"frameDelayMs" toml:"frame_delay_ms"`

	// Colors
	ForeColor HexColor `yaml:"foreColor" toml:"fore_color"`
	BackColor HexColor `yaml:"backColor" toml:"back_color"`
}

// FrameDelay is the pause between two animation steps
func (s SceneConfig) FrameDelay() time.Duration {
	return time.Duration(s.FrameDelayMs) * time.Millisecond
}

// Validate reports the first field that would break the animation
func (s SceneConfig) Validate() error {
	switch {
	case s.NodeCount < 1:
		return fmt.Errorf("%w: nodeCount must be at least 1, got %d", ErrInvalid, s.NodeCount)
	case s.LineGroups < 1:
		return fmt.Errorf("%w: lineGroups must be at least 1, got %d", ErrInvalid, s.LineGroups)
	case s.PartsPerGroup < 1:
		return fmt.Errorf("%w: partsPerGroup must be at least 1, got %d", ErrInvalid, s.PartsPerGroup)
	case s.StepGap <= 0:
		return fmt.Errorf("%w: stepGap must be positive, got %v", ErrInvalid, s.StepGap)
	case s.ScaleDivider <= 0:
		return fmt.Errorf("%w: scaleDivider must be positive, got %v", ErrInvalid, s.ScaleDivider)
	case s.SizeFactor <= 0:
		return fmt.Errorf("%w: sizeFactor must be positive, got %v", ErrInvalid, s.SizeFactor)
	case s.StrokeFactor <= 0:
		return fmt.Errorf("%w: strokeFactor must be positive, got %v", ErrInvalid, s.StrokeFactor)
	case s.FrameDelayMs < 0:
		return fmt.Errorf("%w: frameDelayMs must not be negative, got %d", ErrInvalid, s.FrameDelayMs)
	}
	return nil
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool // Draw the node/direction overlay
}

// HUDConfig contains overlay layout values
type HUDConfig struct {
	Margin     float64
	LineHeight float64
	FontSize   float64
	TextColor  color.RGBA
	BoxColor   color.RGBA
}

// Global configuration instances
var C *Config
var Scene SceneConfig
var Debug DebugConfig
var HUD HUDConfig

// Presets are the two figure variants. "rich" draws all four sides with
// staggered groups, "simple" draws two sides and steps ten times faster.
var Presets map[string]SceneConfig

// DefaultPreset is used when no preset is named
const DefaultPreset = "rich"

func init() {
	C = &Config{
		Width:  480,
		Height: 800,
		Title:  "Square To Plus",
		TPS:    60,
	}

	Presets = map[string]SceneConfig{
		"rich": {
			NodeCount:     5,
			LineGroups:    4,
			PartsPerGroup: 2,
			Staggered:     true,
			SizeFactor:    3.8,
			StrokeFactor:  90,
			StepGap:       0.05,
			ScaleDivider:  0.51,
			FrameDelayMs:  15,
			ForeColor:     HexColor{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF},
			BackColor:     HexColor{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF},
		},
		"simple": {
			NodeCount:     5,
			LineGroups:    2,
			PartsPerGroup: 2,
			Staggered:     false,
			SizeFactor:    2.9,
			StrokeFactor:  90,
			StepGap:       0.5,
			ScaleDivider:  0.51,
			FrameDelayMs:  15,
			ForeColor:     HexColor{R: 0x67, G: 0x3A, B: 0xB7, A: 0xFF},
			BackColor:     HexColor{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF},
		},
	}

	Scene = Presets[DefaultPreset]

	// Debug Config (defaults, can be overridden by CLI flags and saved settings)
	Debug = DebugConfig{
		ShowHUD: false,
	}

	HUD = HUDConfig{
		Margin:     8,
		LineHeight: 16,
		FontSize:   12,
		TextColor:  White,
		BoxColor:   BlackOverlay,
	}
}

// Preset returns a named preset
func Preset(name string) (SceneConfig, error) {
	p, ok := Presets[name]
	if !ok {
		return SceneConfig{}, fmt.Errorf("%w: unknown preset %q", ErrInvalid, name)
	}
	return p, nil
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)
