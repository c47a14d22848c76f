// Package clock schedules one-shot callbacks behind an interface so game
// timing can be driven by real time or stepped manually in tests.
package clock

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or the timer was already stopped.
	Stop() bool
}

// Clock arms one-shot callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Real schedules callbacks with the runtime timer.
type Real struct{}

// NewReal returns the system clock.
func NewReal() Real {
	return Real{}
}

// AfterFunc calls f on its own goroutine after d elapses.
func (Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
