// internal/state/play_state.go
package state

import (
	"go-robot-survivor/internal/app"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/pkg/render"
)

var _ State = (*PlayState)(nil)

// PlayState runs one simulation tick per update.
type PlayState struct {
	sm   *StateMachine
	sess *Session
}

func NewPlayState(sm *StateMachine, sess *Session) *PlayState {
	return &PlayState{sm: sm, sess: sess}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(in input.Frame) {
	g := p.sess.Game
	if in.Pressed.Has(input.ToggleCraft) {
		g.ToggleCrafting()
		p.sm.SetState(NewCraftingState(p.sm, p.sess))
		return
	}
	if in.Pressed.Has(input.CycleBlock) {
		g.CycleBlock()
	}
	if in.Pressed.Has(input.PlaceBlock) {
		g.PlaceBlock()
	}
	g.Tick(in.Held)
	if g.Phase() == app.PhaseEnded {
		p.sm.SetState(NewEndState(p.sm, p.sess))
	}
}

func (p *PlayState) Draw(s render.Surface) {
	p.sess.drawField(s)
}

func (p *PlayState) Exit() {}
