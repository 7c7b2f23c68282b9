package config

import (
	"image/color"
	"math"
)

// FlightConfig contains the flap/flight controller tuning values
type FlightConfig struct {
	Gravity             float64 `toml:"gravity"`               // units/s², negative is down
	FlapSpeedMultiplier float64 `toml:"flap_speed_multiplier"` // scales summed downward hand speed into lift
	HoverHeight         float64 `toml:"hover_height"`          // altitude held outside of play
	WingDrop            float64 `toml:"wing_drop"`             // wing anchor offset below the head

	// Wing angle (radians, summed across hands) to gravity multiplier mapping
	GlideAngle   float64 `toml:"glide_angle"`   // below this the wings glide at GlideGravity
	FullAngle    float64 `toml:"full_angle"`    // at or above this gravity is unscaled
	GlideGravity float64 `toml:"glide_gravity"` // multiplier while gliding
}

// FlapConfig contains stroke detection values used in the lobby
type FlapConfig struct {
	StrokeDistance float64 `toml:"stroke_distance"` // minimum downward travel that counts as a flap
	CancelDistance float64 `toml:"cancel_distance"` // strokes longer than this but short of a flap reset progress
	FlapsToStart   int     `toml:"flaps_to_start"`
}

// TrackConfig describes the circular flight path
type TrackConfig struct {
	AngularSpeed float64 `toml:"angular_speed"` // yaw radians per second
	Radius       float64 `toml:"radius"`        // player distance from the track center
}

// RingConfig contains the ring spawner values
type RingConfig struct {
	Interval      float64 `toml:"interval"`       // seconds between ring checks
	StartingScale float64 `toml:"starting_scale"` // ring diameter at game start
	StartHeight   float64 `toml:"start_height"`
	MinHeight     float64 `toml:"min_height"`
	HeightRange   float64 `toml:"height_range"` // new heights fall in [MinHeight, MinHeight+HeightRange)
	Shrink        float64 `toml:"shrink"`       // scale multiplier applied on every pass
}

// StorageConfig names the local key-value store and its keys
type StorageConfig struct {
	AppName        string
	RecordScoreKey string
	PlayerIDKey    string
}

// EmulatorConfig drives the desktop controller emulator
type EmulatorConfig struct {
	HeadHeight   float64 // head height above the player origin
	RestHeight   float64 // hand height with arms hanging
	SpreadHeight float64 // hand height with wings spread for gliding
	FlapHeight   float64 // lowest point of a flap stroke
	ShoulderSpan float64 // sideways hand offset from the head
	HandSpeed    float64 // units per second the emulated hand travels
}

// HUDConfig contains HUD layout and colors
type HUDConfig struct {
	Margin         float64
	LineHeight     float64
	MapRadius      float64 // on-screen radius of the track map
	GaugeHeight    float64 // on-screen height of the altitude gauge
	GaugeWidth     float64
	GaugeMaxHeight float64 // altitude at the top of the gauge
	PopScale       float64 // score text scale at the start of the pop tween
	PopDuration    float64 // seconds

	BackgroundColor color.RGBA
	TrackColor      color.RGBA
	PlayerColor     color.RGBA
	RingColor       color.RGBA
	WingColor       color.RGBA
	TextColor       color.RGBA
	PanelColor      color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// Global configuration instances
var C *Config
var Flight FlightConfig
var Flap FlapConfig
var Track TrackConfig
var Ring RingConfig
var Storage StorageConfig
var Emulator EmulatorConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	StartPresenting bool  // Begin with an active session instead of waiting for the toggle
	Seed            int64 // Ring height seed, 0 = time based
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 30, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Flight = FlightConfig{
		Gravity:             -9.81,
		FlapSpeedMultiplier: 0.1,
		HoverHeight:         4,
		WingDrop:            0.25,
		GlideAngle:          0.2,
		FullAngle:           0.5,
		GlideGravity:        0.5,
	}

	Flap = FlapConfig{
		StrokeDistance: 0.5,
		CancelDistance: 0.1,
		FlapsToStart:   3,
	}

	Track = TrackConfig{
		AngularSpeed: math.Pi / 25,
		Radius:       34,
	}

	Ring = RingConfig{
		Interval:      3,
		StartingScale: 5,
		StartHeight:   4,
		MinHeight:     4,
		HeightRange:   5,
		Shrink:        0.98,
	}

	Storage = StorageConfig{
		AppName:        "wingflap",
		RecordScoreKey: "record-score",
		PlayerIDKey:    "player-id",
	}

	Emulator = EmulatorConfig{
		HeadHeight:   1.6,
		RestHeight:   0.9,
		SpreadHeight: 1.35,
		FlapHeight:   0.3,
		ShoulderSpan: 0.6,
		HandSpeed:    4.0,
	}

	HUD = HUDConfig{
		Margin:         10,
		LineHeight:     16,
		MapRadius:      70,
		GaugeHeight:    240,
		GaugeWidth:     24,
		GaugeMaxHeight: 12,
		PopScale:       1.6,
		PopDuration:    0.35,

		BackgroundColor: DarkBlue,
		TrackColor:      color.RGBA{R: 80, G: 100, B: 140, A: 255},
		PlayerColor:     Yellow,
		RingColor:       Orange,
		WingColor:       LightBlue,
		TextColor:       White,
		PanelColor:      BlackOverlay,
	}

	Debug = DebugConfig{
		StartPresenting: false,
	}
}
