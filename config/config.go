package config

import (
	"image/color"
	"time"

	"github.com/automoto/blastoff/shared/flight"
	"github.com/automoto/blastoff/shared/gamemath"
	"github.com/automoto/blastoff/shared/leveldata"
)

// FlightConfig contains the player simulation tuning
type FlightConfig struct {
	LaunchSpeed  float32 `yaml:"launch_speed"`
	WalkSpeed    float32 `yaml:"walk_speed"`
	Gravity      float32 `yaml:"gravity"`
	BlastoffRate float32 `yaml:"blastoff_rate"` // progress per second
	ProbeHeight  float32 `yaml:"probe_height"`  // tiles above the player
	PlatformSize float32 `yaml:"platform_size"` // world units, square
}

// Params converts the config into simulation parameters for a tile size.
func (f FlightConfig) Params(tileSize float32) flight.Params {
	return flight.Params{
		LaunchSpeed:  f.LaunchSpeed,
		WalkSpeed:    f.WalkSpeed,
		Gravity:      f.Gravity,
		BlastoffRate: f.BlastoffRate,
		ProbeHeight:  f.ProbeHeight,
		PlatformSize: f.PlatformSize,
		TileSize:     tileSize,
	}
}

// CameraConfig contains camera placement and blend configuration
type CameraConfig struct {
	FovY           float32 `yaml:"fov_y"` // degrees
	Near           float32 `yaml:"near"`
	Far            float32 `yaml:"far"`
	EyeHeight      float32 `yaml:"eye_height"`      // tiles
	FlightLift     float32 `yaml:"flight_lift"`     // tiles, scaled by blastoff
	BodyLift       float32 `yaml:"body_lift"`       // tiles, scaled by blastoff
	OverviewHeight float32 `yaml:"overview_height"` // world units
	PreviewRate    float32 `yaml:"preview_rate"`    // progress per second
	InitialPreview float32 `yaml:"initial_preview"` // seconds of forced overview after a level load
}

// ViewParams converts the config into camera parameters for a level.
func (c CameraConfig) ViewParams(dims leveldata.Dimensions) gamemath.ViewParams {
	return gamemath.ViewParams{
		TileSize:       dims.TileSize,
		EyeHeight:      c.EyeHeight,
		FlightLift:     c.FlightLift,
		BodyLift:       c.BodyLift,
		OverviewHeight: c.OverviewHeight,
		GridCenter:     dims.Size / 2,
	}
}

// LevelConfig contains level grid and level file configuration
type LevelConfig struct {
	Size     int     `yaml:"size"`
	Height   int     `yaml:"height"`
	TileSize float32 `yaml:"tile_size"`
	Margin   int     `yaml:"margin"`

	Dir   string `yaml:"dir"`   // directory with level<N>.png files; empty uses the embedded set
	Start int    `yaml:"start"` // first level index

	Watch         bool          `yaml:"watch"`
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// Dimensions returns the grid dimensions for the level loader.
func (l LevelConfig) Dimensions() leveldata.Dimensions {
	return leveldata.Dimensions{
		Size:     l.Size,
		Height:   l.Height,
		TileSize: l.TileSize,
		Margin:   l.Margin,
	}
}

// RenderConfig contains the software renderer configuration
type RenderConfig struct {
	ClearColor     color.RGBA `yaml:"clear_color"`
	AstronautScale float32    `yaml:"astronaut_scale"` // fraction of a tile
	AstronautColor color.RGBA `yaml:"astronaut_color"`
	Ambient        float32    `yaml:"ambient"` // light floor for faces turned away
}

// HUDConfig contains text overlay configuration
type HUDConfig struct {
	FontSize     float64    `yaml:"font_size"`
	Margin       float64    `yaml:"margin"`
	ShadowOffset float64    `yaml:"shadow_offset"`
	TextColor    color.RGBA `yaml:"text_color"`
	ShadowColor  color.RGBA `yaml:"shadow_color"`

	Hint           string `yaml:"hint"`
	ControllerHint string `yaml:"controller_hint"`
	WinText        string `yaml:"win_text"`

	BannerFontSize float64 `yaml:"banner_font_size"`
	BannerSeconds  float32 `yaml:"banner_seconds"`
}

// Config holds general game configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled  bool   `yaml:"enabled"`   // draw the debug overlay
	LogLevel string `yaml:"log_level"` // logrus level name
}

// Global configuration instances
var C *Config
var Flight FlightConfig
var Camera CameraConfig
var Level LevelConfig
var Render RenderConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Sky     = color.RGBA{R: 128, G: 179, B: 230, A: 255}
	Shadow  = color.RGBA{R: 0, G: 0, B: 0, A: 160}
	Suit    = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	Overlay = color.RGBA{R: 0, G: 0, B: 0, A: 120}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Blastoff",
	}

	Flight = FlightConfig{
		LaunchSpeed:  75,
		WalkSpeed:    30,
		Gravity:      150,
		BlastoffRate: 2,
		ProbeHeight:  1.5,
		PlatformSize: 40,
	}

	Camera = CameraConfig{
		FovY:           70,
		Near:           1,
		Far:            2000,
		EyeHeight:      1.5,
		FlightLift:     10,
		BodyLift:       1.5,
		OverviewHeight: 150,
		PreviewRate:    2.5,
		InitialPreview: 3,
	}

	Level = LevelConfig{
		Size:          32,
		Height:        16,
		TileSize:      10,
		Margin:        2,
		Start:         1,
		WatchDebounce: 100 * time.Millisecond,
	}

	Render = RenderConfig{
		ClearColor:     Sky, // (0.5, 0.7, 0.9)
		AstronautScale: 0.25,
		AstronautColor: Suit,
		Ambient:        0.35,
	}

	HUD = HUDConfig{
		FontSize:       18,
		Margin:         12,
		ShadowOffset:   2,
		TextColor:      White,
		ShadowColor:    Shadow,
		Hint:           "Move: WASD; Level overview: Enter; Blastoff: Space",
		ControllerHint: "Move: Left Stick; Level overview: Y; Blastoff: A",
		WinText:        "Congratulations! You won!",
		BannerFontSize: 40,
		BannerSeconds:  1.5,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled:  false,
		LogLevel: "info",
	}
}
