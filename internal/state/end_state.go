// internal/state/end_state.go
package state

import (
	"go-robot-survivor/internal/input"
	"go-robot-survivor/pkg/render"
)

var _ State = (*EndState)(nil)

// EndState shows the result of a finished run until the player restarts or
// returns to the menu.
type EndState struct {
	sm   *StateMachine
	sess *Session
}

func NewEndState(sm *StateMachine, sess *Session) *EndState {
	return &EndState{sm: sm, sess: sess}
}

func (e *EndState) Enter() {
	e.sess.End.Show()
}

func (e *EndState) Update(in input.Frame) {
	e.sess.End.Update()
	switch {
	case in.Pressed.Has(input.Confirm):
		e.sess.Game.Restart()
		e.sm.SetState(NewPlayState(e.sm, e.sess))
	case in.Pressed.Has(input.Dismiss):
		e.sm.SetState(NewMenuState(e.sm, e.sess))
	}
}

func (e *EndState) Draw(s render.Surface) {
	e.sess.drawField(s)
	e.sess.End.Draw(s, e.sess.Game.World())
}

func (e *EndState) Exit() {
	e.sess.End.Hide()
}
