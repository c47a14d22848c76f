// internal/ui/label.go
package ui

import (
	"fmt"
	"image"
	"sync"

	"click-a-dot/internal/config"
	"click-a-dot/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScoreLabel shows "Score: N". It is updated by ScoreChanged events, which
// may arrive from any goroutine.
type ScoreLabel struct {
	Rect image.Rectangle

	mu   sync.Mutex
	text string
}

func NewScoreLabel(rect image.Rectangle, score int) *ScoreLabel {
	return &ScoreLabel{Rect: rect, text: scoreText(score)}
}

func scoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Text returns the current caption.
func (l *ScoreLabel) Text() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text
}

// OnEvent implements event.Listener.
func (l *ScoreLabel) OnEvent(e event.Event) {
	if e.Type != event.ScoreChanged {
		return
	}
	score, ok := e.Data.(int)
	if !ok {
		return
	}
	l.mu.Lock()
	l.text = scoreText(score)
	l.mu.Unlock()
}

// Draw renders the caption centred in Rect.
func (l *ScoreLabel) Draw(screen *ebiten.Image) {
	c := l.Rect.Min.Add(l.Rect.Size().Div(2))
	DrawCentered(screen, l.Text(), c.X, c.Y, config.TextLightColor)
}
