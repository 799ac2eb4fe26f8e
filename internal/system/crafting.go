// internal/system/crafting.go
package system

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
)

// CraftingSystem turns resources into tools and permanent upgrades.
type CraftingSystem struct{}

func NewCraftingSystem() *CraftingSystem {
	return &CraftingSystem{}
}

// CanCraft reports whether inv covers the whole recipe.
func (s *CraftingSystem) CanCraft(inv *component.Inventory, kind defs.RecipeKind) bool {
	if kind < 0 || kind >= defs.RecipeKindCount {
		return false
	}
	return inv.Has(kind.Def().Cost)
}

// Craft consumes the recipe's resources and applies its effect. Without
// enough resources nothing changes and false is returned.
func (s *CraftingSystem) Craft(w *entity.World, kind defs.RecipeKind) bool {
	if !s.CanCraft(&w.Inventory, kind) {
		return false
	}
	recipe := kind.Def()
	w.Inventory.Take(recipe.Cost)

	p, c := &w.Player, &w.Companion
	switch recipe.Effect {
	case defs.EffectEquipTool:
		p.EquipTool(recipe.Tool)
	case defs.EffectRobotUpgrade:
		c.Upgraded = true
		c.MaxHealth = config.RobotUpgradedHP
		c.Health = c.MaxHealth
	case defs.EffectRobotArmor:
		c.Armor += defs.ArmorBoost
	case defs.EffectPlayerArmor:
		p.Armor += defs.ArmorBoost
	case defs.EffectHealthBoost:
		p.MaxHealth += defs.HealthBoostAmount
		p.Health = p.MaxHealth
	case defs.EffectSpeedBoost:
		p.Speed += defs.SpeedBoostAmount
	case defs.EffectDamageBoost:
		p.DamageMultiplier += defs.DamageBoostAmount
	}
	w.Emit(event.ItemCrafted, event.ResourceData{Resource: recipe.Name, Amount: 1})
	log.WithField("recipe", recipe.Name).Info("item crafted")
	return true
}
