package config

import "image/color"

const (
	WindowWidth  = 1024
	WindowHeight = 576
	WindowTitle  = "Alien Chase"

	// Debug overlay with FPS/TPS in the top-left corner
	ShowFPS = false
)

// Timing
const (
	MaxDeltaMs     = 1000.0
	TearIntervalMs = 140.0
)

// Scene population
const (
	HumanCount = 3
	EmberCount = 80
)

// Alien motion
const (
	AlienStartX     = 0.18
	AlienStartY     = 0.6
	AlienStartSpeed = 180.0

	AlienWobbleRate = 6.0
	AlienPulseRate  = 3.0
	AlienDriftY     = 0.55
	AlienDriftAmp   = 40.0
	AlienDriftFreq  = 0.0007
	AlienBobFreq    = 1.6
	AlienBobAmp     = 12.0

	ResetMargin   = 120.0
	ResetMinY     = 0.5
	ResetRangeY   = 0.2
	ResetMinSpeed = 170.0
	ResetSpeedVar = 40.0
)

// Human motion
const (
	HumanWobbleRate = 6.5
	HumanPulseRate  = 2.6
	HumanLag        = 140.0
	HumanSpacing    = 60.0
	HumanDropY      = 20.0
	HumanStaggerY   = 12.0
	HumanBobFreq    = 1.7
	HumanBobAmp     = 10.0
)

// Easing factors, applied once per tick
const (
	FollowEase = 0.08
	HeightEase = 0.04
)

// Tears and embers
const (
	TearOffsetX = 6.0
	TearOffsetY = 12.0
	TearFade    = 0.9

	EmberSway    = 8.0
	EmberSwayK   = 0.03
	EmberMargin  = 10.0
	EmberMinSize = 0.4
	EmberSizeVar = 1.8
)

// Palette
var (
	SkyTop    = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	SkyMiddle = color.RGBA{R: 0x1e, G: 0x1b, B: 0x4b, A: 0xff}
	SkyBottom = color.RGBA{R: 0x02, G: 0x06, B: 0x17, A: 0xff}

	AlienBody = color.RGBA{R: 0x34, G: 0xd3, B: 0x99, A: 0xff}
	AlienHead = color.RGBA{R: 0x4a, G: 0xde, B: 0x80, A: 0xff}
	AlienLimb = color.RGBA{R: 0x05, G: 0x96, B: 0x69, A: 0xff}
	Ink       = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	HumanSkin = color.RGBA{R: 0xfd, G: 0xe6, B: 0x8a, A: 0xff}

	// Straight (non-premultiplied) alpha; alpha is applied per draw
	TearBlue  = color.NRGBA{R: 191, G: 219, B: 254, A: 0xff}
	AuraGreen = color.NRGBA{R: 74, G: 222, B: 128, A: 0xff}
	TrailRed  = color.NRGBA{R: 248, G: 113, B: 113, A: 0xff}

	HumanColors = [...]color.RGBA{
		{R: 0xf9, G: 0x73, B: 0x66, A: 0xff},
		{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff},
		{R: 0xfb, G: 0x71, B: 0x85, A: 0xff},
	}
)
