// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 480
	ScreenHeight = 800
	MaxDeltaTime = 0.06

	// Bottom bar holding the attack mode buttons. Ghost targets stay above it.
	ActionsHeight = 96

	GhostPad          = 10
	OffscreenMargin   = 80
	OffscreenSpanTrim = 100

	GhostWidthFactor = 0.12
	GhostMinWidth    = 54
	GhostMaxWidth    = 100
	GhostJitterMin   = 0.9
	GhostJitterMax   = 1.15

	ProjectileSizeFactor = 0.08
	ProjectileMinSize    = 40
	ProjectileMaxSize    = 64
	ThrowOriginInset     = 4

	DropOvershoot = 140
	RiseOvershoot = 160
	DropRotation  = 24.0

	ParticleCount    = 14
	ParticleSpeedMin = 120.0
	ParticleSpeedMax = 280.0
	RingStartScale   = 0.6
	RingEndScale     = 2.1
	RingBaseSize     = 40.0
	FloatTextRise    = 28.0
	ComboTextOffsetX = 22.0
	ComboTextOffsetY = -10.0
)

const (
	ProjectileSpin  = 420 * time.Millisecond
	RingDuration    = 420 * time.Millisecond
	ParticleLife    = 520 * time.Millisecond
	FloatTextLife   = 600 * time.Millisecond
	ComboPopLife    = 120 * time.Millisecond
	DropDuration    = 900 * 5 * time.Millisecond
	RiseDuration    = 1000 * 5 * time.Millisecond
	ClickCooldown   = 80 * time.Millisecond
	DefaultAssetDir = "assets"
)

var (
	BackgroundColor = color.RGBA{24, 18, 40, 255}
	ActionsBarColor = color.RGBA{12, 8, 22, 230}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{170, 160, 200, 255}
	ComboColor      = color.RGBA{255, 214, 64, 255}
	GhostBodyColor  = color.RGBA{236, 236, 255, 235}
	GhostSadColor   = color.RGBA{150, 170, 230, 235}
	GhostHappyColor = color.RGBA{255, 236, 170, 235}
	GhostEyeColor   = color.RGBA{20, 20, 30, 255}
	ButtonColor     = color.RGBA{70, 60, 110, 230}
	ButtonActive    = color.RGBA{220, 120, 60, 240}
	OverlayColor    = color.RGBA{0, 0, 0, 160}
)
