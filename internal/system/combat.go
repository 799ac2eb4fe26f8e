// internal/system/combat.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
)

// CombatSystem resolves melee between the player, the companion and enemies.
type CombatSystem struct {
	loot *LootSystem
}

func NewCombatSystem(loot *LootSystem) *CombatSystem {
	return &CombatSystem{loot: loot}
}

// PlayerAttack swings at every enemy in range when the cooldown has elapsed
// and the player is not mining.
func (s *CombatSystem) PlayerAttack(w *entity.World) {
	p := &w.Player
	inRange := 0
	for i := range w.Enemies {
		if p.DistanceTo(w.Enemies[i].Position) < config.AttackRange {
			inRange++
		}
	}
	p.SwordVisible = inRange > 0 || w.Mining.Active()
	if inRange == 0 || p.AttackCooldown > 0 || w.Mining.Active() {
		return
	}

	p.Attacking = true
	p.AttackCooldown = config.PlayerCooldownMs
	damage := p.Damage()
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if p.DistanceTo(e.Position) < config.AttackRange {
			e.Health -= ApplyArmor(damage, e.Kind.Def().Armor)
		}
	}
	w.Emit(event.PlayerSwing, nil)
}

// CompanionAttack fires the laser at the first enemy in list order that is
// in range. Enemies already killed this tick are skipped, so a shot is never
// spent on a corpse. It needs a minimum of energy and spends some on every shot.
func (s *CombatSystem) CompanionAttack(w *entity.World) {
	c := &w.Companion
	if c.Dead {
		return
	}
	target := -1
	for i := range w.Enemies {
		if w.Enemies[i].Dead() {
			continue
		}
		if c.DistanceTo(w.Enemies[i].Position) < config.RobotAttackRange {
			target = i
			break
		}
	}
	c.SwordVisible = target >= 0
	if target < 0 || c.AttackCooldown > 0 || c.Energy <= config.RobotAttackEnergy {
		return
	}

	c.Attacking = true
	c.AttackCooldown = config.RobotCooldownMs
	c.Energy = clampMeter(c.Energy-config.RobotAttackCost, c.MaxEnergy)
	e := &w.Enemies[target]
	e.Health -= ApplyArmor(c.Damage(), e.Kind.Def().Armor)
	w.Emit(event.CompanionShot, nil)
}

// EnemyAttacks lets every enemy strike the player and the companion when
// each is in reach and the per-target interval has passed.
func (s *CombatSystem) EnemyAttacks(w *entity.World) {
	p, c := &w.Player, &w.Companion
	for i := range w.Enemies {
		e := &w.Enemies[i]
		if e.Dead() {
			continue
		}
		def := e.Kind.Def()
		if e.DistanceTo(p.Position) < config.EnemyAttackRange && w.Clock-e.LastPlayerAttack > config.EnemyAttackIntervalMs {
			dmg := ApplyArmor(def.Damage, p.Armor)
			p.Health = clampMeter(p.Health-dmg, p.MaxHealth)
			e.LastPlayerAttack = w.Clock
			w.Emit(event.PlayerHit, event.DamageData{Amount: dmg, Remaining: p.Health})
		}
		if !c.Dead && e.DistanceTo(c.Position) < config.EnemyAttackRange && w.Clock-e.LastCompanionAttack > config.EnemyAttackIntervalMs {
			dmg := ApplyArmor(def.Damage, c.Armor)
			c.Health = clampMeter(c.Health-dmg, c.MaxHealth)
			e.LastCompanionAttack = w.Clock
			w.Emit(event.CompanionHit, event.DamageData{Amount: dmg, Remaining: c.Health})
		}
	}
}

// ResolveKills removes dead enemies, rolling their loot and awarding score.
func (s *CombatSystem) ResolveKills(w *entity.World) {
	alive := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Dead() {
			alive = append(alive, e)
			continue
		}
		w.Drops = append(w.Drops, s.loot.Roll(w, e.Kind, e.X, e.Y)...)
		w.Progress.Score += config.ScorePerKill
		w.Progress.KillsThisLevel++
		w.Emit(event.EnemyKilled, event.EnemyData{ID: uint64(e.ID), Kind: e.Kind.String(), X: e.X, Y: e.Y})
		log.WithFields(logrus.Fields{
			"enemy": e.Kind.String(),
			"kills": w.Progress.KillsThisLevel,
		}).Debug("enemy killed")
	}
	w.Enemies = alive
}

// UpdateCooldowns ticks both attack cooldowns down and derives the
// attacking flags from the remaining time.
func (s *CombatSystem) UpdateCooldowns(w *entity.World) {
	p, c := &w.Player, &w.Companion
	p.AttackCooldown = max(0, p.AttackCooldown-config.TickMs)
	c.AttackCooldown = max(0, c.AttackCooldown-config.TickMs)
	p.Attacking = p.AttackCooldown > config.PlayerAttackAnimMs
	c.Attacking = c.AttackCooldown > config.RobotAttackAnimMs
}
