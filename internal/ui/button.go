// internal/ui/button.go
package ui

import (
	"image"

	"click-a-dot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable rectangle with a centred caption.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Hovered bool
	OnClick func()
}

// NewButton creates a button.
func NewButton(rect image.Rectangle, text string, onClick func()) *Button {
	return &Button{
		Rect:    rect,
		Text:    text,
		OnClick: onClick,
	}
}

// Contains reports whether (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// HandlePress fires OnClick for a press inside the button and reports
// whether the press was consumed.
func (b *Button) HandlePress(x, y int) bool {
	if !b.Contains(x, y) {
		return false
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	return true
}

// Draw renders the button.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.Hovered {
		bg = config.ButtonHoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)

	c := b.Rect.Min.Add(b.Rect.Size().Div(2))
	DrawCentered(screen, b.Text, c.X, c.Y, config.TextLightColor)
}
