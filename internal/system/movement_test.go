package system

import (
	"testing"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/input"
)

func TestMovePlayer(t *testing.T) {
	tests := []struct {
		name       string
		start      component.Position
		in         input.Set
		want       component.Position
		wantFacing component.Facing
	}{
		{"right", component.Position{X: 100, Y: 300}, input.NewSet(input.Right), component.Position{X: 102.5, Y: 300}, component.FacingRight},
		{"up left", component.Position{X: 100, Y: 300}, input.NewSet(input.Left, input.Up), component.Position{X: 97.5, Y: 297.5}, component.FacingUp},
		{"clamped to screen", component.Position{X: 767, Y: 1}, input.NewSet(input.Right, input.Up), component.Position{X: 768, Y: 0}, component.FacingUp},
		{"idle keeps facing", component.Position{X: 100, Y: 300}, 0, component.Position{X: 100, Y: 300}, component.FacingLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Player.Position = tt.start
			w.Player.Facing = component.FacingLeft
			NewMovementSystem().Update(w, tt.in)
			if w.Player.Position != tt.want || w.Player.Facing != tt.wantFacing {
				t.Errorf("at %+v facing %d, want %+v facing %d", w.Player.Position, w.Player.Facing, tt.want, tt.wantFacing)
			}
		})
	}
}

func TestMovePlayerSlides(t *testing.T) {
	w := newTestWorld()
	w.Grid.Place(3, 10, defs.StoneTile) // (96,320)-(128,352)
	w.Player.X, w.Player.Y = 100, 286
	NewMovementSystem().Update(w, input.NewSet(input.Right, input.Down))
	if w.Player.X != 102.5 || w.Player.Y != 286 {
		t.Errorf("player at (%v,%v), want (102.5,286)", w.Player.X, w.Player.Y)
	}
}
