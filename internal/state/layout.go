package state

import (
	"image"

	"click-a-dot/internal/config"
)

// Layout places the shell widgets around the board.
type Layout struct {
	Menu        image.Rectangle
	Score       image.Rectangle
	Board       image.Rectangle
	Start       image.Rectangle
	SizeSlider  image.Rectangle
	SpeedSlider image.Rectangle
	Indicator   image.Point
}

// ComputeLayout splits a width x height window: menu bar and score on
// top, Start button at the bottom, Size slider left, Speed slider right,
// board in the middle.
func ComputeLayout(width, height int) Layout {
	top := config.MenuBarHeight + config.ScoreLabelHeight
	bottom := max(height-config.StartButtonH, top)
	left := config.SliderPanelWidth
	right := max(width-config.SliderPanelWidth, left)
	m := config.SliderMargin

	cx := width / 2
	startW := 120

	return Layout{
		Menu:        image.Rect(0, 0, width, config.MenuBarHeight),
		Score:       image.Rect(0, config.MenuBarHeight, width, top),
		Board:       image.Rect(left, top, right, bottom),
		Start:       image.Rect(cx-startW/2, bottom+6, cx+startW/2, max(height-6, bottom+6)),
		SizeSlider:  image.Rect(m, top+m, left-m, bottom-m),
		SpeedSlider: image.Rect(right+m, top+m, right+config.SliderPanelWidth-m, bottom-m),
		Indicator:   image.Pt(width-20, config.MenuBarHeight+config.ScoreLabelHeight/2),
	}
}
