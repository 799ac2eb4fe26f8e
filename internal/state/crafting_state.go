// internal/state/crafting_state.go
package state

import (
	"go-robot-survivor/internal/input"
	"go-robot-survivor/pkg/render"
)

var _ State = (*CraftingState)(nil)

// CraftingState shows the recipe overlay. The simulation is paused while it
// is active.
type CraftingState struct {
	sm   *StateMachine
	sess *Session
}

func NewCraftingState(sm *StateMachine, sess *Session) *CraftingState {
	return &CraftingState{sm: sm, sess: sess}
}

func (c *CraftingState) Enter() {}

func (c *CraftingState) Update(in input.Frame) {
	g := c.sess.Game
	menu := c.sess.Crafting
	switch {
	case in.Pressed.Has(input.ToggleCraft), in.Pressed.Has(input.Dismiss):
		g.CloseCrafting()
		c.sm.SetState(NewPlayState(c.sm, c.sess))
	case in.Pressed.Has(input.Up):
		menu.Move(-1)
	case in.Pressed.Has(input.Down):
		menu.Move(1)
	case in.Pressed.Has(input.Confirm):
		if g.Craft(menu.SelectedRecipe()) {
			c.sm.SetState(NewPlayState(c.sm, c.sess))
		}
	}
}

func (c *CraftingState) Draw(s render.Surface) {
	c.sess.drawField(s)
	if w := c.sess.Game.World(); w != nil {
		c.sess.Crafting.Draw(s, &w.Inventory)
	}
}

func (c *CraftingState) Exit() {}
