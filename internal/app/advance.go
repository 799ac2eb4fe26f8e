// internal/app/advance.go
package app

import (
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/system"
	"go-robot-survivor/internal/utils"
)

// Systems bundles the subsystems a tick runs. They share one random source.
type Systems struct {
	Movement    *system.MovementSystem
	Survival    *system.SurvivalSystem
	Mining      *system.MiningSystem
	Combat      *system.CombatSystem
	AI          *system.AISystem
	Spawn       *system.SpawnSystem
	Drops       *system.DropSystem
	Crafting    *system.CraftingSystem
	Placement   *system.PlacementSystem
	Progression *system.ProgressionSystem
}

// NewSystems wires every subsystem to rng.
func NewSystems(rng utils.Source) *Systems {
	return &Systems{
		Movement:    system.NewMovementSystem(),
		Survival:    system.NewSurvivalSystem(),
		Mining:      system.NewMiningSystem(rng),
		Combat:      system.NewCombatSystem(system.NewLootSystem(rng)),
		AI:          system.NewAISystem(),
		Spawn:       system.NewSpawnSystem(rng),
		Drops:       system.NewDropSystem(),
		Crafting:    system.NewCraftingSystem(),
		Placement:   system.NewPlacementSystem(),
		Progression: system.NewProgressionSystem(rng),
	}
}

// Advance computes the world one tick after prev for the held inputs. prev
// is never modified. A nil or finished world is returned unchanged.
func Advance(prev *entity.World, in input.Set, sys *Systems) *entity.World {
	if prev == nil || prev.Terminal() {
		return prev
	}
	w := prev.Clone()
	w.Clock += config.TickMs

	sys.Survival.Update(w)
	sys.Movement.Update(w, in)
	sys.Mining.Update(w, in.Has(input.Mine))

	sys.Combat.PlayerAttack(w)
	sys.AI.FollowPlayer(w)
	sys.Combat.CompanionAttack(w)
	sys.AI.MoveEnemies(w)
	sys.Combat.EnemyAttacks(w)
	sys.Combat.ResolveKills(w)
	sys.Combat.UpdateCooldowns(w)

	sys.Survival.UpdateCompanion(w)
	sys.Drops.Update(w)

	// Defeat and victory are both judged on the post-combat state.
	sys.Progression.Update(w)
	if !w.Terminal() {
		sys.Spawn.Update(w)
	}
	return w
}
