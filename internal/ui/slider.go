// internal/ui/slider.go
package ui

import (
	"image"

	"click-a-dot/internal/config"
	"click-a-dot/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sliderTitleH = 20 // title above the track
	sliderLabelH = 16 // end labels
)

// Slider is a vertical integer slider. By default Min sits at the bottom
// and Max at the top; Inverted swaps the ends.
type Slider struct {
	Rect     image.Rectangle
	Title    string
	MinLabel string
	MaxLabel string
	Min, Max int
	Inverted bool
	OnChange func(int)

	value    int
	dragging bool
}

// NewSlider creates a slider holding value (clamped).
func NewSlider(rect image.Rectangle, title string, min, max, value int) *Slider {
	return &Slider{
		Rect:  rect,
		Title: title,
		Min:   min,
		Max:   max,
		value: utils.Clamp(value, min, max),
	}
}

// Value returns the current value.
func (s *Slider) Value() int {
	return s.value
}

// Dragging reports whether the knob is held.
func (s *Slider) Dragging() bool {
	return s.dragging
}

// SetValue clamps v and calls OnChange if the value changed.
func (s *Slider) SetValue(v int) {
	v = utils.Clamp(v, s.Min, s.Max)
	if v == s.value {
		return
	}
	s.value = v
	if s.OnChange != nil {
		s.OnChange(v)
	}
}

// track returns the top and bottom y of the knob's travel.
func (s *Slider) track() (top, bottom int) {
	return s.Rect.Min.Y + sliderTitleH + sliderLabelH, s.Rect.Max.Y - sliderLabelH
}

// ValueAt maps a pointer y to a slider value.
func (s *Slider) ValueAt(y int) int {
	top, bottom := s.track()
	if bottom <= top || s.Max <= s.Min {
		return s.Min
	}
	y = utils.Clamp(y, top, bottom)
	// fraction of the way from the Min end
	frac := float32(bottom-y) / float32(bottom-top)
	if s.Inverted {
		frac = 1 - frac
	}
	v := utils.Lerp(float32(s.Min), float32(s.Max), frac)
	return int(v + 0.5)
}

// KnobY is the y of the knob centre for the current value.
func (s *Slider) KnobY() float32 {
	top, bottom := s.track()
	if s.Max <= s.Min {
		return float32(bottom)
	}
	frac := float32(s.value-s.Min) / float32(s.Max-s.Min)
	if s.Inverted {
		frac = 1 - frac
	}
	return utils.Lerp(float32(bottom), float32(top), frac)
}

// HandlePress starts a drag for a press inside the slider and jumps the
// value to the pointer.
func (s *Slider) HandlePress(x, y int) bool {
	if !image.Pt(x, y).In(s.Rect) {
		return false
	}
	s.dragging = true
	s.SetValue(s.ValueAt(y))
	return true
}

// HandleDrag follows the pointer while dragging.
func (s *Slider) HandleDrag(y int) {
	if s.dragging {
		s.SetValue(s.ValueAt(y))
	}
}

// HandleRelease ends a drag.
func (s *Slider) HandleRelease() {
	s.dragging = false
}

// Draw renders title, track, knob and end labels.
func (s *Slider) Draw(screen *ebiten.Image) {
	cx := s.Rect.Min.X + s.Rect.Dx()/2
	top, bottom := s.track()

	DrawCentered(screen, s.Title, cx, s.Rect.Min.Y+sliderTitleH/2, config.TextLightColor)

	vector.StrokeLine(screen, float32(cx), float32(top), float32(cx), float32(bottom), 4, config.SliderTrackColor, true)
	vector.DrawFilledCircle(screen, float32(cx), s.KnobY(), config.SliderKnobRadius, config.SliderKnobColor, true)

	topLabel, bottomLabel := s.MaxLabel, s.MinLabel
	if s.Inverted {
		topLabel, bottomLabel = s.MinLabel, s.MaxLabel
	}
	DrawCentered(screen, topLabel, cx, top-sliderLabelH/2-2, config.TextLightColor)
	DrawCentered(screen, bottomLabel, cx, bottom+sliderLabelH/2+2, config.TextLightColor)
}
