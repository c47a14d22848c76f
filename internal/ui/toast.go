// internal/ui/toast.go
package ui

import (
	"image"
	"image/color"

	"click-a-dot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Toast is a message that fades out after a few seconds.
type Toast struct {
	Text      string
	Color     color.Color
	remaining float64
}

// Show replaces the current message.
func (t *Toast) Show(text string, clr color.Color) {
	t.Text = text
	t.Color = clr
	t.remaining = config.ToastSeconds
}

// Visible reports whether the message is still showing.
func (t *Toast) Visible() bool {
	return t.remaining > 0
}

// Update counts the display time down.
func (t *Toast) Update(deltaTime float64) {
	if t.remaining > 0 {
		t.remaining -= deltaTime
	}
}

// Draw renders the message in a strip along the bottom of area.
func (t *Toast) Draw(screen *ebiten.Image, area image.Rectangle) {
	if !t.Visible() {
		return
	}
	h := 24
	r := image.Rect(area.Min.X, area.Max.Y-h, area.Max.X, area.Max.Y)
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.OverlayColor, false)
	c := r.Min.Add(r.Size().Div(2))
	DrawCentered(screen, t.Text, c.X, c.Y, t.Color)
}
