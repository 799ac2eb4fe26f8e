// internal/component/enemy.go
package component

import "go-robot-survivor/internal/defs"

// EntityID identifies spawned entities such as enemies and drops.
type EntityID uint64

// NeverAttacked is the initial last-attack time so that the first strike
// against a target is not delayed by the attack interval.
const NeverAttacked int64 = -1 << 40

// Enemy is a spawned hostile. Health may drop below zero before the enemy is
// removed at the end of the tick.
type Enemy struct {
	ID EntityID
	Position
	Kind                defs.EnemyKind
	Health              float64
	MaxHealth           float64
	LastPlayerAttack    int64 // logical ms
	LastCompanionAttack int64 // logical ms
}

// NewEnemy creates an enemy of the given kind at full health.
func NewEnemy(id EntityID, kind defs.EnemyKind, x, y float64) Enemy {
	hp := kind.Def().Health
	return Enemy{
		ID:                  id,
		Position:            Position{X: x, Y: y},
		Kind:                kind,
		Health:              hp,
		MaxHealth:           hp,
		LastPlayerAttack:    NeverAttacked,
		LastCompanionAttack: NeverAttacked,
	}
}

// Dead reports whether the enemy should be removed.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}
