// internal/component/robot.go
package component

import (
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
)

// Companion is the AI robot that follows and defends the player.
type Companion struct {
	Position
	Health         float64
	MaxHealth      float64
	Energy         float64
	MaxEnergy      float64
	Armor          float64
	Upgraded       bool
	Dead           bool
	RespawnTimer   float64 // ms left until respawn
	AttackCooldown float64 // ms
	Attacking      bool
	SwordVisible   bool
}

// Alive reports whether the companion takes part in AI, collision and combat.
func (c *Companion) Alive() bool {
	return !c.Dead
}

// Damage is the laser damage before enemy armor.
func (c *Companion) Damage() float64 {
	if c.Upgraded {
		return config.RobotUpgradedDmg
	}
	return defs.RobotLaser.Def().Damage
}

// Revive restores the companion at the given position with full meters.
func (c *Companion) Revive(x, y float64) {
	c.Dead = false
	c.RespawnTimer = 0
	c.Health = c.MaxHealth
	c.Energy = c.MaxEnergy
	c.X, c.Y = x, y
}
