// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the app.
type State interface {
	Enter()
	// Update advances the state; a non-nil error ends the run loop
	// (ebiten.Termination for a clean exit).
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// Resizer is implemented by states that lay themselves out to the window.
type Resizer interface {
	Resize(width, height int)
}

// StateMachine switches between states.
type StateMachine struct {
	current       State
	width, height int
}

// NewStateMachine creates a machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		if r, ok := sm.current.(Resizer); ok && sm.width > 0 && sm.height > 0 {
			r.Resize(sm.width, sm.height)
		}
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update updates the current state.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current != nil {
		return sm.current.Update(deltaTime)
	}
	return nil
}

// Draw draws the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// Resize records the window size and forwards it to the current state
// when it changed.
func (sm *StateMachine) Resize(width, height int) {
	if width == sm.width && height == sm.height {
		return
	}
	sm.width, sm.height = width, height
	if r, ok := sm.current.(Resizer); ok {
		r.Resize(width, height)
	}
}
