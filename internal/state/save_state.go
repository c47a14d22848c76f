// internal/state/save_state.go
package state

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"click-a-dot/internal/config"
	"click-a-dot/internal/event"
	"click-a-dot/internal/scorefile"
	"click-a-dot/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*SaveState)(nil)

// SaveState asks for a file name over the previous state and appends the
// score to it. The game behind keeps running.
type SaveState struct {
	sm            *StateMachine
	previousState State
	dispatcher    *event.Dispatcher
	logger        *slog.Logger
	score         int
	input         *ui.TextInput
	chars         []rune
}

func NewSaveState(sm *StateMachine, prevState State, dispatcher *event.Dispatcher, score int, path string, logger *slog.Logger) *SaveState {
	return &SaveState{
		sm:            sm,
		previousState: prevState,
		dispatcher:    dispatcher,
		logger:        logger,
		score:         score,
		input:         ui.NewTextInput(image.Rectangle{}, path, 256),
	}
}

func (s *SaveState) Enter() {}

func (s *SaveState) Exit() {}

// Resize forwards to the state underneath and centres the prompt.
func (s *SaveState) Resize(width, height int) {
	if r, ok := s.previousState.(Resizer); ok {
		r.Resize(width, height)
	}
	w := min(width-40, 420)
	s.input.Rect = image.Rect((width-w)/2, height/2-12, (width+w)/2, height/2+12)
}

func (s *SaveState) Update(deltaTime float64) error {
	s.chars = ebiten.AppendInputChars(s.chars[:0])
	backspaces := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		backspaces = 1
	}
	s.input.Apply(s.chars, backspaces)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		s.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(s.previousState)
	}
	return nil
}

// save appends the score and returns to the previous state. A failure is
// reported through ScoreSaveFailed and never stops the game.
func (s *SaveState) save() {
	path := s.input.Value
	if err := scorefile.Append(path, s.score); err != nil {
		s.logger.Error("save score failed", "path", path, "score", s.score, "error", err)
		s.dispatcher.Dispatch(event.Event{Type: event.ScoreSaveFailed, Data: err})
	} else {
		s.logger.Info("score saved", "path", path, "score", s.score)
		s.dispatcher.Dispatch(event.Event{Type: event.ScoreSaved, Data: path})
	}
	s.sm.SetState(s.previousState)
}

func (s *SaveState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}

	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), config.OverlayColor, false)

	r := s.input.Rect
	cx := r.Min.X + r.Dx()/2
	ui.DrawCentered(screen, fmt.Sprintf("Save score %d to file:", s.score), cx, r.Min.Y-20, config.TextLightColor)
	s.input.Draw(screen, time.Now())
	ui.DrawCentered(screen, "Enter to save, Esc to cancel", cx, r.Max.Y+20, config.TextLightColor)
}
