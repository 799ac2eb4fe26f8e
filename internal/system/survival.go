// internal/system/survival.go
package system

import (
	"math"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
)

// SurvivalSystem runs the day/night cycle, the survival meters and the
// companion's death and respawn.
type SurvivalSystem struct{}

func NewSurvivalSystem() *SurvivalSystem {
	return &SurvivalSystem{}
}

// Update advances the day/night phase and drains hunger, health and energy.
func (s *SurvivalSystem) Update(w *entity.World) {
	w.Progress.DayNight = math.Mod(w.Progress.DayNight+config.DayNightStep, config.DayNightCycle)

	p := &w.Player
	p.Hunger = clampMeter(p.Hunger-config.HungerDecay, config.MaxHunger)
	if p.Hunger <= 0 {
		p.Health = clampMeter(p.Health-config.StarvationRate, p.MaxHealth)
	}

	c := &w.Companion
	c.Energy = clampMeter(c.Energy-config.RobotEnergyDecay, c.MaxEnergy)
}

// UpdateCompanion kills the companion once its health runs out and revives
// it next to the player when the respawn timer elapses.
func (s *SurvivalSystem) UpdateCompanion(w *entity.World) {
	c := &w.Companion
	if !c.Dead && c.Health <= 0 {
		c.Dead = true
		c.Health = 0
		c.Attacking = false
		c.SwordVisible = false
		c.RespawnTimer = config.RobotRespawnMs
		w.Emit(event.CompanionDied, nil)
		log.Debug("companion died")
	}
	if !c.Dead {
		return
	}
	c.RespawnTimer -= config.TickMs
	if c.RespawnTimer <= 0 {
		c.Revive(w.Player.X+config.RobotRespawnDX, w.Player.Y+config.RobotRespawnDY)
		w.Emit(event.CompanionRespawned, nil)
		log.Debug("companion respawned")
	}
}
