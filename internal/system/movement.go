// internal/system/movement.go
package system

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/utils"
)

// MovementSystem moves the player from the held direction keys.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

// Update applies one tick of player movement. The proposed position is
// clamped to the screen and then committed per axis against the grid.
func (s *MovementSystem) Update(w *entity.World, in input.Set) {
	p := &w.Player
	nx, ny := p.X, p.Y
	if in.Has(input.Left) {
		nx -= p.Speed
		p.Facing = component.FacingLeft
	}
	if in.Has(input.Right) {
		nx += p.Speed
		p.Facing = component.FacingRight
	}
	if in.Has(input.Up) {
		ny -= p.Speed
		p.Facing = component.FacingUp
	}
	if in.Has(input.Down) {
		ny += p.Speed
		p.Facing = component.FacingDown
	}

	nx = utils.Clamp(nx, 0, config.ScreenWidth-config.PlayerSize)
	ny = utils.Clamp(ny, 0, config.ScreenHeight-config.PlayerSize)
	p.X, p.Y = w.Grid.Slide(w.PlayerRect(), nx, ny)
}
