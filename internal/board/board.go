// Package board holds the game core: the target, its reposition timer,
// pointer hit-testing and the score.
package board

import (
	"log/slog"
	"sync"
	"time"

	"click-a-dot/internal/clock"
	"click-a-dot/internal/config"
	"click-a-dot/internal/event"
	"click-a-dot/internal/utils"

	"github.com/google/uuid"
)

// Rand picks placement offsets. *utils.PRNGService satisfies it.
type Rand interface {
	Intn(n int) int
}

// Target is the clickable circle as the shell should draw it.
type Target struct {
	X, Y    int
	Radius  int
	Visible bool
}

// Snapshot is a consistent copy of the board state for rendering.
type Snapshot struct {
	Running          bool
	Target           Target
	TargetTimeMillis int
	Score            int
	Width, Height    int
}

// Board is the game board core. All state is guarded by mu; timer
// callbacks, setters and pointer events may arrive on any goroutine.
//
// Events are dispatched after mu is released but while notifyMu is held,
// so listeners may call the read accessors and always observe events in
// the order they happened. Listeners must not call mutating methods.
type Board struct {
	mu       sync.Mutex
	notifyMu sync.Mutex

	clock      clock.Clock
	rng        Rand
	dispatcher *event.Dispatcher
	logger     *slog.Logger

	running bool
	round   string
	width   int
	height  int

	x, y       int
	placed     bool
	radius     int
	intervalMs int
	score      int

	timer clock.Timer
	gen   uint64 // bumped on every arm and on stop; stale callbacks compare against it
}

// Option configures a Board.
type Option func(*Board)

// WithClock sets the scheduler. Defaults to the real clock.
func WithClock(c clock.Clock) Option {
	return func(b *Board) { b.clock = c }
}

// WithRand sets the placement source. Defaults to a time-seeded PRNG.
func WithRand(r Rand) Option {
	return func(b *Board) { b.rng = r }
}

// WithBounds sets the initial board size.
func WithBounds(width, height int) Option {
	return func(b *Board) {
		b.width = max(width, 0)
		b.height = max(height, 0)
	}
}

// WithDispatcher shares an event dispatcher with the rest of the app.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(b *Board) { b.dispatcher = d }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) { b.logger = l }
}

// WithRadius sets the initial target radius (clamped).
func WithRadius(r int) Option {
	return func(b *Board) { b.radius = clampRadius(r) }
}

// WithTargetTime sets the initial reposition interval in ms (clamped).
func WithTargetTime(ms int) Option {
	return func(b *Board) { b.intervalMs = clampInterval(ms) }
}

// New creates a stopped board with default radius and interval.
func New(opts ...Option) *Board {
	b := &Board{
		radius:     config.DefaultTargetRadius,
		intervalMs: config.DefaultTargetTime,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.clock == nil {
		b.clock = clock.NewReal()
	}
	if b.rng == nil {
		b.rng = utils.NewPRNGService(0)
	}
	if b.dispatcher == nil {
		b.dispatcher = event.NewDispatcher()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	return b
}

// StartGame places the first target and starts the reposition timer.
// It does nothing while the game is already running.
func (b *Board) StartGame() {
	b.mutate(func() []event.Event {
		if b.running {
			return nil
		}
		b.running = true
		b.round = uuid.NewString()
		b.placeLocked()
		b.armLocked()

		b.logger.Info("game started",
			"round", b.round,
			"radius", b.radius,
			"interval_ms", b.intervalMs,
			"score", b.score)
		return []event.Event{
			{Type: event.GameStarted, Data: b.round},
			b.movedLocked(),
		}
	})
}

// StopGame cancels the timer and stops the game. The score is kept.
// Once StopGame returns no tick can move the target or change the score.
func (b *Board) StopGame() {
	b.mutate(func() []event.Event {
		if !b.running {
			return nil
		}
		b.running = false
		b.placed = false
		if b.timer != nil {
			b.timer.Stop()
			b.timer = nil
		}
		b.gen++

		b.logger.Info("game stopped", "round", b.round, "score", b.score)
		return []event.Event{{Type: event.GameStopped, Data: b.round}}
	})
}

// SetTargetRadius clamps r to the allowed range and applies it to the
// current target right away.
func (b *Board) SetTargetRadius(r int) {
	b.mutate(func() []event.Event {
		b.radius = clampRadius(r)
		if b.fitLocked() {
			return []event.Event{b.movedLocked()}
		}
		return nil
	})
}

// SetTargetTimeMillis clamps ms to the allowed range. The new interval is
// used when the timer is next armed; the pending tick keeps its deadline.
func (b *Board) SetTargetTimeMillis(ms int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.intervalMs = clampInterval(ms)
}

// SetBounds updates the drawable board size. A running target that no
// longer fits is pulled back inside without restarting the timer.
func (b *Board) SetBounds(width, height int) {
	b.mutate(func() []event.Event {
		width, height = max(width, 0), max(height, 0)
		if width == b.width && height == b.height {
			return nil
		}
		b.width, b.height = width, height
		if b.fitLocked() {
			return []event.Event{b.movedLocked()}
		}
		return nil
	})
}

// OnPointerDown handles a press at board coordinates (x, y). A press inside
// the target while running scores one point and counts as a tick: the
// target moves and the timer restarts. It reports whether it was a hit.
func (b *Board) OnPointerDown(x, y int) bool {
	hit := false
	b.mutate(func() []event.Event {
		if !b.running || !b.placed || !utils.InCircle(x, y, b.x, b.y, b.radius) {
			return nil
		}
		hit = true
		b.score++
		score := b.score
		b.logger.Debug("target hit", "round", b.round, "x", x, "y", y, "score", score)

		b.placeLocked()
		b.armLocked()
		return []event.Event{
			{Type: event.ScoreChanged, Data: score},
			b.movedLocked(),
		}
	})
	return hit
}

// Subscribe registers l for score changes. The event Data is the new score.
func (b *Board) Subscribe(l event.Listener) {
	b.dispatcher.Subscribe(event.ScoreChanged, l)
}

// Unsubscribe removes a listener added with Subscribe.
func (b *Board) Unsubscribe(l event.Listener) {
	b.dispatcher.Unsubscribe(event.ScoreChanged, l)
}

// Dispatcher exposes the board's dispatcher for other event types.
func (b *Board) Dispatcher() *event.Dispatcher {
	return b.dispatcher
}

func (b *Board) Score() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.score
}

func (b *Board) TargetRadius() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.radius
}

func (b *Board) TargetTimeMillis() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.intervalMs
}

func (b *Board) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.running
}

// Target returns the current target. Visible is false while stopped.
func (b *Board) Target() Target {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.targetLocked()
}

// Snapshot returns all observable state under one lock.
func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	return Snapshot{
		Running:          b.running,
		Target:           b.targetLocked(),
		TargetTimeMillis: b.intervalMs,
		Score:            b.score,
		Width:            b.width,
		Height:           b.height,
	}
}

// mutate runs fn under mu and dispatches the events it returns once mu is
// released.
func (b *Board) mutate(fn func() []event.Event) {
	b.notifyMu.Lock()
	defer b.notifyMu.Unlock()

	b.mu.Lock()
	events := fn()
	b.mu.Unlock()

	for _, e := range events {
		b.dispatcher.Dispatch(e)
	}
}

// onTimeout is the scheduled tick. A callback from a timer that was
// replaced or stopped finds a different generation and does nothing.
func (b *Board) onTimeout(gen uint64) {
	b.mutate(func() []event.Event {
		if !b.running || gen != b.gen {
			return nil
		}
		b.placeLocked()
		b.armLocked()
		return []event.Event{b.movedLocked()}
	})
}

// armLocked (re)starts the reposition timer with the current interval.
// Caller must hold b.mu.
func (b *Board) armLocked() {
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	d := time.Duration(b.intervalMs) * time.Millisecond
	b.timer = b.clock.AfterFunc(d, func() { b.onTimeout(gen) })
}

// placeLocked moves the target to a random spot where the whole circle
// fits. Caller must hold b.mu.
func (b *Board) placeLocked() {
	b.x = place(b.rng, b.width, b.radius)
	b.y = place(b.rng, b.height, b.radius)
	b.placed = true
	b.logger.Debug("target moved", "round", b.round, "x", b.x, "y", b.y, "radius", b.radius)
}

// fitLocked pulls a placed target back inside the bounds and reports
// whether it moved. Caller must hold b.mu.
func (b *Board) fitLocked() bool {
	if !b.running || !b.placed {
		return false
	}
	x, y := fit(b.x, b.width, b.radius), fit(b.y, b.height, b.radius)
	if x == b.x && y == b.y {
		return false
	}
	b.x, b.y = x, y
	return true
}

func (b *Board) targetLocked() Target {
	return Target{
		X:       b.x,
		Y:       b.y,
		Radius:  b.radius,
		Visible: b.running && b.placed,
	}
}

func (b *Board) movedLocked() event.Event {
	return event.Event{Type: event.TargetMoved, Data: b.targetLocked()}
}

// place picks a coordinate in [r, size-r], or the centre when the axis is
// narrower than the circle.
func place(rng Rand, size, r int) int {
	if size < 2*r {
		return size / 2
	}
	return r + rng.Intn(size-2*r+1)
}

// fit clamps an existing coordinate into [r, size-r] with the same
// centre fallback as place.
func fit(v, size, r int) int {
	if size < 2*r {
		return size / 2
	}
	return utils.Clamp(v, r, size-r)
}

func clampRadius(r int) int {
	return utils.Clamp(r, config.MinTargetRadius, config.MaxTargetRadius)
}

func clampInterval(ms int) int {
	return utils.Clamp(ms, config.MinTargetTimeMillis, config.MaxTargetTimeMillis)
}
