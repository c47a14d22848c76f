// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"click-a-dot/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a small dot that shows whether the game is running.
// It pulses briefly whenever the state flips.
type StateIndicator struct {
	X, Y        float32
	Radius      float32
	running     bool
	lastToggled time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// SetRunning records the state; a change restarts the pulse.
func (i *StateIndicator) SetRunning(running bool, now time.Time) {
	if running != i.running {
		i.running = running
		i.lastToggled = now
	}
}

// Scale is the pulse factor at now: 1.3 right after a toggle, easing to 1.
func (i *StateIndicator) Scale(now time.Time) float32 {
	elapsed := now.Sub(i.lastToggled).Seconds()
	return float32(1.0 + 0.3*math.Exp(-elapsed*8))
}

// Draw renders the indicator.
func (i *StateIndicator) Draw(screen *ebiten.Image, now time.Time) {
	var clr color.Color = config.ErrorColor
	if i.running {
		clr = config.OKColor
	}
	r := i.Radius * i.Scale(now)
	vector.DrawFilledCircle(screen, i.X, i.Y, r, clr, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, config.TextLightColor, true)
}
