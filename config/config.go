package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Default is the only render layer used by the court scene
const Default ecs.LayerID = 0

// BallConfig contains projectile configuration values
type BallConfig struct {
	Radius       float64
	InitialAngle float64 // degrees
	Speed        float64 // pixels per second
}

// PaddleConfig contains paddle configuration values
type PaddleConfig struct {
	Width        float64
	Height       float64
	Speed        float64 // pixels per second
	PlayerOffset float64 // horizontal offset from screen center
	EnemyOffset  float64

	// AI tracking
	DeadZone float64 // +/- band around the AI paddle center where it holds still
}

// BounceConfig contains wall and paddle bounce tuning
type BounceConfig struct {
	Variation  int     // max random angle perturbation in degrees
	Adjustment float64 // pixels the ball is pushed back out of a wall or paddle
}

// HUDConfig contains score label layout
type HUDConfig struct {
	FontSize     int
	PlayerOffset [2]float64 // offset from screen center
	EnemyOffset  [2]float64
}

// PromptConfig contains the "press to start" prompt
type PromptConfig struct {
	Text     string
	FontSize int
	OffsetX  float64 // offset from screen center
	OffsetY  float64

	// Fade pulse, seconds per half cycle
	PulseDuration float32
	MinAlpha      float32
}

// PaletteConfig contains the fixed colors of the court
type PaletteConfig struct {
	Background color.RGBA
	Entity     color.RGBA
	Label      color.RGBA
	Prompt     color.RGBA
	Debug      color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool   // Draw collision outlines and TPS
	Seed        uint64 // Bounce perturbation seed, 0 = time based
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// Global configuration instances
var C *Config
var Ball BallConfig
var Paddle PaddleConfig
var Bounce BounceConfig
var HUD HUDConfig
var Prompt PromptConfig
var Palette PaletteConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	RayWhite = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	Red      = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Gray     = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	Black    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Cyan     = color.RGBA{R: 0, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 450,
		Title:  "paddleball",
		TPS:    60,
	}

	Ball = BallConfig{
		Radius:       5.0,
		InitialAngle: 12.0,
		Speed:        700.0,
	}

	Paddle = PaddleConfig{
		Width:        15.0,
		Height:       50.0,
		Speed:        550.0,
		PlayerOffset: 340.0,
		EnemyOffset:  -340.0,
		DeadZone:     10.0,
	}

	Bounce = BounceConfig{
		Variation:  10,
		Adjustment: 8,
	}

	HUD = HUDConfig{
		FontSize:     35,
		PlayerOffset: [2]float64{200, -200},
		EnemyOffset:  [2]float64{-200, -200},
	}

	Prompt = PromptConfig{
		Text:          "Press UP or DOWN to start!",
		FontSize:      30,
		OffsetX:       -100,
		OffsetY:       0,
		PulseDuration: 0.8,
		MinAlpha:      0.35,
	}

	Palette = PaletteConfig{
		Background: RayWhite,
		Entity:     Red,
		Label:      Gray,
		Prompt:     Black,
		Debug:      Cyan,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
		Seed:        0,
	}
}

// Center returns the screen center, truncated to whole pixels
func (c *Config) Center() math.Vec2 {
	return math.NewVec2(float64(c.Width/2), float64(c.Height/2))
}
