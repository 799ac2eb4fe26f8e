// internal/state/state.go
package state

import (
	"go-robot-survivor/internal/input"
	"go-robot-survivor/pkg/render"
)

// State is one screen of the application.
type State interface {
	Enter()
	Update(in input.Frame)
	Draw(s render.Surface)
	Exit()
}

// StateMachine manages the current state.
type StateMachine struct {
	current State
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
		sm.current.Enter()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update forwards one frame of input to the current state.
func (sm *StateMachine) Update(in input.Frame) {
	if sm.current != nil {
		sm.current.Update(in)
	}
}

// Draw renders the current state.
func (sm *StateMachine) Draw(s render.Surface) {
	if sm.current != nil {
		sm.current.Draw(s)
	}
}
