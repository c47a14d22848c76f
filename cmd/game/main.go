// cmd/game/main.go
package main

import (
	"log/slog"
	"os"
	"time"

	"click-a-dot/internal/board"
	"click-a-dot/internal/config"
	"click-a-dot/internal/event"
	"click-a-dot/internal/sound"
	"click-a-dot/internal/state"
	"click-a-dot/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.stateMachine.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	settings := config.Load()
	setupLogger(settings)

	dispatcher := event.NewDispatcher()
	b := board.New(
		board.WithRand(utils.NewPRNGService(settings.Seed)),
		board.WithDispatcher(dispatcher),
		board.WithLogger(slog.Default()),
	)

	sm := state.NewStateMachine()
	play := state.NewPlayState(sm, b, settings, newSoundPlayer(settings), slog.Default())
	sm.SetState(play)

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(app)
	// окно закрыто или выбран Exit: таймер не должен пережить окно
	play.Close()
	if err != nil {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
	slog.Info("bye", "score", b.Score())
}

func newSoundPlayer(settings *config.Settings) sound.Player {
	if !settings.SoundEnabled {
		return sound.Nop{}
	}
	p, err := sound.NewBeep()
	if err != nil {
		slog.Warn("sound disabled", "error", err)
		return sound.Nop{}
	}
	return p
}

func setupLogger(settings *config.Settings) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch settings.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch settings.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
