// internal/system/ai.go
package system

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/pkg/tilegrid"
)

// AISystem steers enemies and the companion.
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

// Target picks what an enemy chases: the companion when it is alive and
// strictly closer than the player, otherwise the player.
func Target(w *entity.World, e *component.Enemy) component.Position {
	if !w.Companion.Dead && e.DistanceTo(w.Companion.Position) < e.DistanceTo(w.Player.Position) {
		return w.Companion.Position
	}
	return w.Player.Position
}

// MoveEnemies steps every enemy towards its target. Enemies stop at the
// chase radius and halt on any axis a tile blocks.
func (s *AISystem) MoveEnemies(w *entity.World) {
	speedMult := 1.0
	if w.Progress.Night() {
		speedMult = config.NightSpeedBonus
	}
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead() {
			continue
		}
		def := e.Kind.Def()
		target := Target(w, e)
		dist := e.DistanceTo(target)
		if dist <= config.EnemyChaseStop {
			continue
		}
		step := def.Speed * speedMult
		nx := e.X + (target.X-e.X)/dist*step
		ny := e.Y + (target.Y-e.Y)/dist*step
		e.X, e.Y = w.Grid.Slide(tilegrid.Rect{X: e.X, Y: e.Y, W: def.Size, H: def.Size}, nx, ny)
	}
}

// FollowPlayer keeps the companion near the player. Low energy halves its
// speed.
func (s *AISystem) FollowPlayer(w *entity.World) {
	c := &w.Companion
	if c.Dead {
		return
	}
	dist := c.DistanceTo(w.Player.Position)
	if dist <= config.RobotFollowRadius {
		return
	}
	speed := config.RobotSpeed
	if c.Energy <= config.RobotSlowEnergy {
		speed *= 0.5
	}
	nx := c.X + (w.Player.X-c.X)/dist*speed
	ny := c.Y + (w.Player.Y-c.Y)/dist*speed
	c.X, c.Y = w.Grid.Slide(w.CompanionRect(), nx, ny)
}
