// internal/ui/input.go
package ui

import (
	"image"
	"time"
	"unicode/utf8"

	"click-a-dot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TextInput is a single-line text field fed with typed characters.
type TextInput struct {
	Rect   image.Rectangle
	Value  string
	MaxLen int
}

func NewTextInput(rect image.Rectangle, value string, maxLen int) *TextInput {
	return &TextInput{Rect: rect, Value: value, MaxLen: maxLen}
}

// Apply deletes backspaces runes from the end, then appends the printable
// runes of chars up to MaxLen.
func (t *TextInput) Apply(chars []rune, backspaces int) {
	r := []rune(t.Value)
	for ; backspaces > 0 && len(r) > 0; backspaces-- {
		r = r[:len(r)-1]
	}
	for _, c := range chars {
		if c < 0x20 || c == 0x7f {
			continue
		}
		if t.MaxLen > 0 && len(r) >= t.MaxLen {
			break
		}
		r = append(r, c)
	}
	t.Value = string(r)
}

// Draw renders the field with a blinking caret.
func (t *TextInput) Draw(screen *ebiten.Image, now time.Time) {
	x, y := float32(t.Rect.Min.X), float32(t.Rect.Min.Y)
	w, h := float32(t.Rect.Dx()), float32(t.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.TextLightColor, false)
	vector.StrokeRect(screen, x, y, w, h, 1, config.BoardStrokeColor, false)

	shown := t.Value
	maxW := t.Rect.Dx() - 12
	for TextWidth(shown) > maxW && len(shown) > 0 {
		_, size := utf8.DecodeRuneInString(shown)
		shown = shown[size:]
	}
	cy := t.Rect.Min.Y + t.Rect.Dy()/2
	DrawLeft(screen, shown, t.Rect.Min.X+6, cy, config.TextDarkColor)

	if now.UnixMilli()/500%2 == 0 {
		cx := float32(t.Rect.Min.X + 6 + TextWidth(shown) + 1)
		vector.StrokeLine(screen, cx, float32(cy-7), cx, float32(cy+7), 1, config.TextDarkColor, false)
	}
}
