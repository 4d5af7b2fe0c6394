package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer the world scene draws on.
const Default ecs.LayerID = 0

// HeroConfig contains all hero-related configuration values
type HeroConfig struct {
	// Movement (pixels per tick)
	DefaultSpeed float64
	SprintSpeed  float64

	// Animation speed at DefaultSpeed; scaled with the base speed
	DefaultAnimationSpeed float64

	// Dimensions of the flat-shape hero and its resolv object
	CollisionWidth  int
	CollisionHeight int

	// Extra margin around the hero box used when taking pickups
	PickupReach float64
}

// ResolverConfig contains movement resolver tuning
type ResolverConfig struct {
	// Fallback probe angles in degrees, tried in order when the direct path
	// makes no progress
	ProbeAngleDegrees []float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows the hero (0.0-1.0, 1 = locked)
}

// PersistenceConfig contains save data configuration
type PersistenceConfig struct {
	AppName          string
	AutosaveInterval int // ticks between progress saves (0 disables autosave)
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64
	HUDMargin     float64
	HUDLineHeight float64
	HUDBoxColor   color.RGBA
	HUDTextColor  color.RGBA

	// Level and entity colors
	BackgroundColor color.RGBA
	FloorTint       color.RGBA
	HeroColor       color.RGBA
	HeroBlocked     color.RGBA
	PickupColor     color.RGBA
}

// ScriptConfig contains scripted walk configuration
type ScriptConfig struct {
	TickSeconds float32 // seconds advanced per tick
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipSavedProgress bool // Ignore saved progress and start at the spawn point
	ShowHUD           bool // Show the position HUD at start
	LevelIndex        int  // Level to load when no progress is restored
	Verbose           bool // Log mask dimensions and walkable ratio on level load
}

// Global configuration instances
var C *Config
var Hero HeroConfig
var Resolver ResolverConfig
var Camera CameraConfig
var Persistence PersistenceConfig
var UI UIConfig
var Script ScriptConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Hero = HeroConfig{
		DefaultSpeed:          2,
		SprintSpeed:           4,
		DefaultAnimationSpeed: 0.1666,
		CollisionWidth:        12,
		CollisionHeight:       12,
		PickupReach:           6,
	}

	Resolver = ResolverConfig{
		ProbeAngleDegrees: []float64{30, -30},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
	}

	Persistence = PersistenceConfig{
		AppName:          "walkabout",
		AutosaveInterval: 300, // 5 seconds at 60fps
	}

	UI = UIConfig{
		HUDFontSize:     12,
		HUDMargin:       8,
		HUDLineHeight:   16,
		HUDBoxColor:     BlackOverlay,
		HUDTextColor:    White,
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		FloorTint:       color.RGBA{R: 90, G: 140, B: 90, A: 255},
		HeroColor:       Blue,
		HeroBlocked:     LightRed,
		PickupColor:     BrightYellow,
	}

	Script = ScriptConfig{
		TickSeconds: 1.0 / 60.0,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipSavedProgress: false,
		ShowHUD:           false,
		LevelIndex:        0,
	}
}
