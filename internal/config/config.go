// Package config holds the screen and gameplay constants plus the runtime
// settings read from the environment.
package config

import "time"

// Screen
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	TPS          = 60
	WindowTitle  = "Black Hole Game"
)

// Gameplay
const (
	InitialLives   = 3
	InitialSpeed   = 100.0 // px per second, per ship
	SpeedIncrement = 10.0

	ShipMargin        = 100.0
	MinShipSeparation = 300.0
	CollisionDistance = 40.0
	CaptureDistance   = 40.0

	TransitionPause    = time.Second
	PortalFrameDelay   = 80 * time.Millisecond
	BackgroundInterval = 5 * time.Second
)

// Assets
const (
	SpriteFile      = "spaceship.png"
	FontFile        = "spacefuture.ttf"
	PortalFrames    = 64
	BackgroundCount = 3

	ShipScale   = 0.1
	ShipAlpha   = 180
	PortalScale = 0.2
	GlowFactor  = 0.06 // glow radius relative to sprite width
	GlowAlpha   = 100

	HUDFontSize     = 24
	TitleFontSize   = 64
	SummaryFontSize = 28
)
