// internal/state/menu_state.go
package state

import (
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/ui"
	"go-robot-survivor/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState is the title screen.
type MenuState struct {
	sm   *StateMachine
	sess *Session
}

func NewMenuState(sm *StateMachine, sess *Session) *MenuState {
	return &MenuState{sm: sm, sess: sess}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(in input.Frame) {
	menu := m.sess.Menu
	switch {
	case in.Pressed.Has(input.Up):
		menu.Move(-1)
	case in.Pressed.Has(input.Down):
		menu.Move(1)
	case in.Pressed.Has(input.Left):
		menu.AdjustLevel(-1)
	case in.Pressed.Has(input.Right):
		menu.AdjustLevel(1)
	case in.Pressed.Has(input.Dismiss):
		m.sess.RequestQuit()
	case in.Pressed.Has(input.Confirm), in.Pressed.Has(input.Mine):
		switch menu.Selected {
		case ui.MenuStart, ui.MenuLevel:
			m.sess.Game.Start(menu.Level)
			m.sm.SetState(NewPlayState(m.sm, m.sess))
		case ui.MenuQuit:
			m.sess.RequestQuit()
		}
	}
}

func (m *MenuState) Draw(s render.Surface) {
	m.sess.Menu.Draw(s)
}

func (m *MenuState) Exit() {}
