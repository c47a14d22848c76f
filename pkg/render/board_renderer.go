package render

import (
	"image"

	"click-a-dot/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// BoardRenderer paints the board area and the target circle.
type BoardRenderer struct {
	colors BoardColors
}

func NewBoardRenderer(colors BoardColors) *BoardRenderer {
	return &BoardRenderer{colors: colors}
}

// TargetCenter converts a target's board coordinates to screen space.
func TargetCenter(area image.Rectangle, t board.Target) (float32, float32) {
	return float32(area.Min.X + t.X), float32(area.Min.Y + t.Y)
}

// Draw fills area and draws t as a filled circle with a darker rim.
func (r *BoardRenderer) Draw(screen *ebiten.Image, area image.Rectangle, t board.Target) {
	screen.Fill(r.colors.Background)

	x, y := float32(area.Min.X), float32(area.Min.Y)
	w, h := float32(area.Dx()), float32(area.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, r.colors.Board, false)
	vector.StrokeRect(screen, x, y, w, h, r.colors.StrokeWidth, r.colors.BoardStroke, false)

	if !t.Visible {
		return
	}
	cx, cy := TargetCenter(area, t)
	vector.DrawFilledCircle(screen, cx, cy, float32(t.Radius), r.colors.Target, true)
	if t.Radius > 2 {
		vector.StrokeCircle(screen, cx, cy, float32(t.Radius), 2, DarkenColor(r.colors.Target), true)
	}
}
