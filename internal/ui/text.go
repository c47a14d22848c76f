// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face is the single bitmap font used by every widget.
var Face font.Face = basicfont.Face7x13

// TextWidth returns the advance width of s in pixels.
func TextWidth(s string) int {
	return font.MeasureString(Face, s).Ceil()
}

// textBaseline converts a vertical centre into a baseline for Face.
func textBaseline(cy int) int {
	m := Face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	return cy + (ascent-descent)/2
}

// DrawCentered draws s centred on (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, cx, cy int, clr color.Color) {
	text.Draw(screen, s, Face, cx-TextWidth(s)/2, textBaseline(cy), clr)
}

// DrawLeft draws s starting at x, vertically centred on cy.
func DrawLeft(screen *ebiten.Image, s string, x, cy int, clr color.Color) {
	text.Draw(screen, s, Face, x, textBaseline(cy), clr)
}
