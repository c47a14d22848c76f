// internal/state/play_state.go
package state

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"click-a-dot/internal/board"
	"click-a-dot/internal/config"
	"click-a-dot/internal/event"
	"click-a-dot/internal/sound"
	"click-a-dot/internal/ui"
	"click-a-dot/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PlayState)(nil)

// PlayState is the main window: the board plus the widgets that drive it.
type PlayState struct {
	sm       *StateMachine
	board    *board.Board
	settings *config.Settings
	player   sound.Player
	logger   *slog.Logger

	layout      Layout
	menu        *ui.MenuBar
	score       *ui.ScoreLabel
	start       *ui.Button
	sizeSlider  *ui.Slider
	speedSlider *ui.Slider
	indicator   *ui.StateIndicator
	toast       ui.Toast
	renderer    *render.BoardRenderer
	hits        *sound.HitListener

	saveFile string
	quit     bool
}

// NewPlayState wires the widgets to b and subscribes to its events.
func NewPlayState(sm *StateMachine, b *board.Board, settings *config.Settings, player sound.Player, logger *slog.Logger) *PlayState {
	if player == nil {
		player = sound.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &PlayState{
		sm:       sm,
		board:    b,
		settings: settings,
		player:   player,
		logger:   logger,
		saveFile: settings.ScoreFile,
	}

	s.menu = ui.NewMenuBar(image.Rectangle{}, &ui.Menu{
		Title: "File",
		Items: []ui.MenuItem{
			{Label: "Save score", Action: s.openSaveDialog},
			{Label: "Exit", Action: func() { s.quit = true }},
		},
	})
	s.score = ui.NewScoreLabel(image.Rectangle{}, b.Score())
	s.start = ui.NewButton(image.Rectangle{}, "Start", b.StartGame)

	s.sizeSlider = ui.NewSlider(image.Rectangle{}, "Size", config.MinTargetRadius, config.MaxTargetRadius, b.TargetRadius())
	s.sizeSlider.MinLabel, s.sizeSlider.MaxLabel = "Small", "Large"
	s.sizeSlider.OnChange = b.SetTargetRadius

	s.speedSlider = ui.NewSlider(image.Rectangle{}, "Speed", config.MinTargetTimeMillis, config.MaxTargetTimeMillis, b.TargetTimeMillis())
	s.speedSlider.MinLabel, s.speedSlider.MaxLabel = "Fast", "Slow"
	s.speedSlider.Inverted = true
	s.speedSlider.OnChange = b.SetTargetTimeMillis

	s.indicator = ui.NewStateIndicator(0, 0, 6)
	s.hits = &sound.HitListener{Player: player}
	s.renderer = render.NewBoardRenderer(render.BoardColors{
		Background:  config.BackgroundColor,
		Board:       config.BoardColor,
		BoardStroke: config.BoardStrokeColor,
		Target:      config.TargetColor,
		StrokeWidth: config.BoardStroke,
	})

	b.Subscribe(s.score)
	b.Subscribe(s.hits)
	b.Dispatcher().Subscribe(event.ScoreSaved, s)
	b.Dispatcher().Subscribe(event.ScoreSaveFailed, s)

	s.Resize(config.ScreenWidth, config.ScreenHeight)
	return s
}

func (s *PlayState) Enter() {}

func (s *PlayState) Exit() {}

// Resize lays the widgets out for the window and tells the board its new
// drawable size.
func (s *PlayState) Resize(width, height int) {
	s.layout = ComputeLayout(width, height)
	s.menu.SetRect(s.layout.Menu)
	s.score.Rect = s.layout.Score
	s.start.Rect = s.layout.Start
	s.sizeSlider.Rect = s.layout.SizeSlider
	s.speedSlider.Rect = s.layout.SpeedSlider
	s.indicator.X, s.indicator.Y = float32(s.layout.Indicator.X), float32(s.layout.Indicator.Y)
	s.board.SetBounds(s.layout.Board.Dx(), s.layout.Board.Dy())
}

// OnEvent shows the outcome of a save.
func (s *PlayState) OnEvent(e event.Event) {
	switch e.Type {
	case event.ScoreSaved:
		if path, ok := e.Data.(string); ok {
			s.saveFile = path
			s.toast.Show(fmt.Sprintf("Score saved to %s", path), config.OKColor)
		}
	case event.ScoreSaveFailed:
		s.toast.Show(fmt.Sprintf("Could not save score: %v", e.Data), config.ErrorColor)
	}
}

func (s *PlayState) Update(deltaTime float64) error {
	s.toast.Update(deltaTime)
	s.indicator.SetRunning(s.board.Running(), time.Now())

	x, y := ebiten.CursorPosition()
	s.start.Hovered = s.start.Contains(x, y) && !s.menu.IsOpen()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.menu.Close()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.handlePress(x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.sizeSlider.HandleDrag(y)
		s.speedSlider.HandleDrag(y)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		s.sizeSlider.HandleRelease()
		s.speedSlider.HandleRelease()
	}

	if s.quit {
		return ebiten.Termination
	}
	return nil
}

// handlePress routes a left press: menu first, then widgets, then board.
func (s *PlayState) handlePress(x, y int) {
	if s.menu.HandlePress(x, y) {
		return
	}
	if s.start.HandlePress(x, y) {
		return
	}
	if s.sizeSlider.HandlePress(x, y) || s.speedSlider.HandlePress(x, y) {
		return
	}
	if image.Pt(x, y).In(s.layout.Board) {
		bx, by := x-s.layout.Board.Min.X, y-s.layout.Board.Min.Y
		if !s.board.OnPointerDown(bx, by) {
			s.logger.Debug("board miss", "x", bx, "y", by)
		}
	}
}

func (s *PlayState) openSaveDialog() {
	s.sm.SetState(NewSaveState(s.sm, s, s.board.Dispatcher(), s.board.Score(), s.saveFile, s.logger))
}

// Quitting reports whether Exit was chosen from the menu.
func (s *PlayState) Quitting() bool {
	return s.quit
}

// Close stops the game and releases the sound device. Called once the
// window is gone.
func (s *PlayState) Close() {
	s.board.Unsubscribe(s.score)
	s.board.Unsubscribe(s.hits)
	s.board.Dispatcher().Unsubscribe(event.ScoreSaved, s)
	s.board.Dispatcher().Unsubscribe(event.ScoreSaveFailed, s)
	s.board.StopGame()
	s.player.Close()
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	br := s.layout.Board
	s.renderer.Draw(screen, br, s.board.Target())

	s.score.Draw(screen)
	s.start.Draw(screen)
	s.sizeSlider.Draw(screen)
	s.speedSlider.Draw(screen)
	s.indicator.Draw(screen, time.Now())
	s.toast.Draw(screen, br)
	// меню последним, чтобы выпадающий список был поверх доски
	s.menu.Draw(screen)
}
