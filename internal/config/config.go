// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 560
	WindowTitle  = "Click-a-Dot"
	MaxDeltaTime = 0.06

	// Target limits, shared by the board and the sliders.
	MinTargetRadius     = 1
	MaxTargetRadius     = 50
	DefaultTargetRadius = 20
	MinTargetTimeMillis = 250
	MaxTargetTimeMillis = 2000
	DefaultTargetTime   = 1000

	// Layout of the shell around the board.
	MenuBarHeight    = 22
	ScoreLabelHeight = 40
	StartButtonH     = 44
	SliderPanelWidth = 70
	SliderMargin     = 4
	SliderKnobRadius = 8.0
	BoardStroke      = 1.0

	MenuItemWidth  = 110
	MenuItemHeight = 22

	ToastSeconds = 3.0

	HitToneHz     = 880.0
	HitToneMillis = 60
)

var (
	BackgroundColor  = color.RGBA{20, 20, 30, 255}
	BoardColor       = color.RGBA{36, 40, 56, 255}
	BoardStrokeColor = color.RGBA{70, 100, 120, 220}
	TargetColor      = color.RGBA{220, 60, 60, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	ButtonColor      = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor = color.RGBA{100, 160, 210, 235}
	MenuBarColor     = color.RGBA{50, 55, 70, 255}
	MenuOpenColor    = color.RGBA{65, 72, 92, 255}
	SliderTrackColor = color.RGBA{70, 100, 120, 220}
	SliderKnobColor  = color.RGBA{194, 178, 128, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 160}
	ErrorColor       = color.RGBA{220, 60, 60, 255}
	OKColor          = color.RGBA{50, 205, 50, 255}
)
