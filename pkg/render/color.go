// pkg/render/color.go
package render

import "image/color"

// BoardColors holds the colors used to paint the board and its target.
type BoardColors struct {
	Background  color.RGBA
	Board       color.RGBA
	BoardStroke color.RGBA
	Target      color.RGBA
	StrokeWidth float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
