package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// ActorConfig describes the player-controlled actor.
type ActorConfig struct {
	// Movement
	Speed   float64 // pixels per tick
	CanSwim bool

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64

	SpriteSheet string     // path inside the embedded images directory
	SwimTint    color.RGBA // color scale applied while overlapping water
}

// WorldConfig selects the map a fresh game starts on.
type WorldConfig struct {
	StartMap string
}

// TransitionConfig contains the loading overlay shown while a map loads.
type TransitionConfig struct {
	FadeSeconds  float32 // overlay fade-in duration
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Text         string
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	SavedText         string
	SaveFailedText    string
}

// UIConfig contains debug overlay colors and font sizes.
type UIConfig struct {
	DebugTileColors map[string]color.RGBA // keyed by resolv tag, Cyan otherwise
	DebugTextColor  color.RGBA

	FontSize      float64
	TitleFontSize float64
	SmallFontSize float64
}

// MessageConfig contains the map banner configuration
type MessageConfig struct {
	DisplayDuration int        // Frames to display the banner after arriving
	BoxPadding      float64    // Padding inside message box
	BoxColor        color.RGBA // Semi-transparent background color
	TextColor       color.RGBA
	TopMargin       float64 // Distance from top of screen

	// Display titles by map name; unlisted maps show their name
	MapTitles map[string]string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowOverlay bool // Start with the collision overlay visible
	FreshStart  bool // Ignore saved progress
}

// Global configuration instances
var C *Config
var Actor ActorConfig
var World WorldConfig
var Transition TransitionConfig
var Pause PauseConfig
var UI UIConfig
var Message MessageConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Grey         = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Overworld",
	}

	Actor = ActorConfig{
		Speed:   2,
		CanSwim: false,

		FrameWidth:      32,
		FrameHeight:     32,
		CollisionWidth:  32,
		CollisionHeight: 32,

		SpriteSheet: "images/player.png",
		SwimTint:    color.RGBA{R: 150, G: 180, B: 255, A: 255},
	}

	World = WorldConfig{
		StartMap: "firstMap",
	}

	Transition = TransitionConfig{
		FadeSeconds:  0.25,
		OverlayColor: BlackOverlay,
		TextColor:    White,
		Text:         "Loading...",
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Save", "Exit"},
		SavedText:         "Progress saved",
		SaveFailedText:    "Could not save progress",
	}

	UI = UIConfig{
		DebugTileColors: map[string]color.RGBA{
			"solid":  Grey,
			"water":  Blue,
			"exit":   Yellow,
			"spawn":  BrightGreen,
			"actor":  Magenta,
		},
		DebugTextColor: White,

		FontSize:      16,
		TitleFontSize: 32,
		SmallFontSize: 12,
	}

	Message = MessageConfig{
		DisplayDuration: 180, // 3 seconds at 60fps
		BoxPadding:      8.0,
		BoxColor:        color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:       White,
		TopMargin:       30.0,

		MapTitles: map[string]string{
			"firstMap":  "Meadow",
			"secondMap": "Lakeside",
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowOverlay: false,
		FreshStart:  false,
	}
}
