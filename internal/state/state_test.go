package state

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"click-a-dot/internal/board"
	"click-a-dot/internal/clock"
	"click-a-dot/internal/config"
	"click-a-dot/internal/event"
	"click-a-dot/internal/utils"
)

type fakeState struct {
	name    string
	log     *[]string
	resized [2]int
}

func (f *fakeState) Enter()                   { *f.log = append(*f.log, f.name+".enter") }
func (f *fakeState) Exit()                    { *f.log = append(*f.log, f.name+".exit") }
func (f *fakeState) Update(float64) error     { *f.log = append(*f.log, f.name+".update"); return nil }
func (f *fakeState) Draw(*ebiten.Image)       {}
func (f *fakeState) Resize(width, height int) { f.resized = [2]int{width, height} }

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestStateMachine_Transitions(t *testing.T) {
	var log []string
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}
	sm := NewStateMachine()

	require.NoError(t, sm.Update(0.016), "no state is fine")
	sm.SetState(a)
	require.NoError(t, sm.Update(0.016))
	sm.SetState(b)

	assert.Equal(t, []string{"a.enter", "a.update", "a.exit", "b.enter"}, log)
	assert.Same(t, b, sm.Current())
}

func TestStateMachine_ResizeForwarding(t *testing.T) {
	var log []string
	a := &fakeState{name: "a", log: &log}
	b := &fakeState{name: "b", log: &log}
	sm := NewStateMachine()
	sm.SetState(a)

	sm.Resize(800, 600)
	assert.Equal(t, [2]int{800, 600}, a.resized)

	sm.SetState(b)
	assert.Equal(t, [2]int{800, 600}, b.resized, "new state gets the known size")
}

func TestComputeLayout(t *testing.T) {
	l := ComputeLayout(config.ScreenWidth, config.ScreenHeight)

	assert.Equal(t, 0, l.Menu.Min.Y)
	assert.Equal(t, l.Menu.Max.Y, l.Score.Min.Y)
	assert.Equal(t, l.Score.Max.Y, l.Board.Min.Y)
	assert.Equal(t, config.SliderPanelWidth, l.Board.Min.X)
	assert.Equal(t, config.ScreenWidth-config.SliderPanelWidth, l.Board.Max.X)
	assert.Equal(t, config.ScreenHeight-config.StartButtonH, l.Board.Max.Y)

	assert.Less(t, l.SizeSlider.Max.X, l.Board.Min.X)
	assert.Greater(t, l.SpeedSlider.Min.X, l.Board.Max.X)
	assert.GreaterOrEqual(t, l.Start.Min.Y, l.Board.Max.Y)
	assert.LessOrEqual(t, l.Start.Max.Y, config.ScreenHeight)
}

func TestComputeLayout_TinyWindow(t *testing.T) {
	l := ComputeLayout(50, 40)

	assert.GreaterOrEqual(t, l.Board.Dx(), 0)
	assert.GreaterOrEqual(t, l.Board.Dy(), 0)
}

func newTestPlay(t *testing.T, scoreFile string) (*PlayState, *board.Board, *StateMachine) {
	t.Helper()
	b := board.New(
		board.WithClock(clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))),
		board.WithRand(utils.NewPRNGService(5)),
		board.WithLogger(quiet),
	)
	sm := NewStateMachine()
	play := NewPlayState(sm, b, &config.Settings{ScoreFile: scoreFile}, nil, quiet)
	sm.SetState(play)
	return play, b, sm
}

func boardToScreen(p *PlayState, x, y int) (int, int) {
	return p.layout.Board.Min.X + x, p.layout.Board.Min.Y + y
}

func TestPlayState_ResizeSetsBoardBounds(t *testing.T) {
	play, b, _ := newTestPlay(t, "")

	snap := b.Snapshot()
	assert.Equal(t, play.layout.Board.Dx(), snap.Width)
	assert.Equal(t, play.layout.Board.Dy(), snap.Height)

	play.Resize(800, 700)
	snap = b.Snapshot()
	assert.Equal(t, 800-2*config.SliderPanelWidth, snap.Width)
}

func TestPlayState_StartButtonAndBoardHit(t *testing.T) {
	play, b, _ := newTestPlay(t, "")

	c := play.layout.Start.Min.Add(play.layout.Start.Size().Div(2))
	play.handlePress(c.X, c.Y)
	require.True(t, b.Running())

	tg := b.Target()
	play.handlePress(boardToScreen(play, tg.X, tg.Y))

	assert.Equal(t, 1, b.Score())
	assert.Equal(t, "Score: 1", play.score.Text())
}

func TestPlayState_PressOutsideTargetMisses(t *testing.T) {
	play, b, _ := newTestPlay(t, "")
	b.StartGame()
	tg := b.Target()

	play.handlePress(boardToScreen(play, tg.X+tg.Radius+1, tg.Y))
	play.handlePress(2, play.layout.Board.Max.Y+10)

	assert.Equal(t, 0, b.Score())
	assert.Equal(t, "Score: 0", play.score.Text())
}

func TestPlayState_SlidersDriveBoard(t *testing.T) {
	play, b, _ := newTestPlay(t, "")
	ss := play.layout.SizeSlider
	sp := play.layout.SpeedSlider

	// top of the size track is Large
	play.handlePress(ss.Min.X+ss.Dx()/2, ss.Min.Y+36)
	assert.Equal(t, config.MaxTargetRadius, b.TargetRadius())
	play.sizeSlider.HandleDrag(ss.Max.Y)
	assert.Equal(t, config.MinTargetRadius, b.TargetRadius())
	play.sizeSlider.HandleRelease()

	// top of the inverted speed track is Fast
	play.handlePress(sp.Min.X+sp.Dx()/2, sp.Min.Y+36)
	assert.Equal(t, config.MinTargetTimeMillis, b.TargetTimeMillis())
}

func TestPlayState_SliderInitialValuesFromBoard(t *testing.T) {
	play, b, _ := newTestPlay(t, "")

	assert.Equal(t, b.TargetRadius(), play.sizeSlider.Value())
	assert.Equal(t, b.TargetTimeMillis(), play.speedSlider.Value())
}

func TestPlayState_MenuExit(t *testing.T) {
	play, _, _ := newTestPlay(t, "")

	play.handlePress(5, 10)  // File
	play.handlePress(10, 50) // Exit

	assert.True(t, play.Quitting())
}

func TestPlayState_MenuBlocksBoardWhileOpen(t *testing.T) {
	play, b, _ := newTestPlay(t, "")
	b.StartGame()
	tg := b.Target()

	play.handlePress(5, 10) // open File
	play.handlePress(boardToScreen(play, tg.X, tg.Y))

	assert.Equal(t, 0, b.Score(), "first press only closes the menu")
}

func TestSaveFlow_AppendsScore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.txt")
	play, b, sm := newTestPlay(t, path)
	b.StartGame()
	for i := 0; i < 7; i++ {
		tg := b.Target()
		require.True(t, b.OnPointerDown(tg.X, tg.Y))
	}

	play.handlePress(5, 10)  // File
	play.handlePress(10, 30) // Save score
	save, ok := sm.Current().(*SaveState)
	require.True(t, ok)
	assert.Equal(t, path, save.input.Value)

	save.save()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "7\n", string(data))
	assert.Same(t, play, sm.Current())
	assert.True(t, play.toast.Visible())
	assert.True(t, b.Running(), "saving does not touch the game")
}

func TestSaveFlow_FailureIsReportedNotFatal(t *testing.T) {
	dir := t.TempDir()
	play, b, sm := newTestPlay(t, dir)
	b.StartGame()

	play.openSaveDialog()
	save := sm.Current().(*SaveState)
	require.NotPanics(t, save.save)

	assert.Same(t, play, sm.Current())
	assert.True(t, play.toast.Visible())
	assert.Contains(t, play.toast.Text, "Could not save score")
	assert.True(t, b.Running())
}

func TestPlayState_CloseStopsGame(t *testing.T) {
	play, b, _ := newTestPlay(t, "")
	b.StartGame()

	play.Close()

	assert.False(t, b.Running())
	assert.Equal(t, 0, b.Dispatcher().Count(event.ScoreChanged))
}
