// internal/component/player.go
package component

import "go-robot-survivor/internal/defs"

// Player holds everything the simulation tracks about the player character.
type Player struct {
	Position
	Health           float64
	MaxHealth        float64
	Hunger           float64
	Armor            float64
	Speed            float64
	DamageMultiplier float64
	Tool             defs.ToolKind
	ToolDurability   int
	AttackCooldown   float64 // ms
	Attacking        bool
	SwordVisible     bool
	Facing           Facing
	SelectedBlock    defs.TileKind
}

// Damage is the damage of one swing before enemy armor.
func (p *Player) Damage() float64 {
	return p.Tool.Def().Damage * p.DamageMultiplier
}

// EquipTool replaces the current tool with a fresh one.
func (p *Player) EquipTool(kind defs.ToolKind) {
	p.Tool = kind
	p.ToolDurability = kind.Def().Durability
}

// WearTool spends one point of durability. A broken tool is replaced by the
// starter tool. It reports whether the tool broke.
func (p *Player) WearTool() bool {
	p.ToolDurability = max(p.ToolDurability-1, 0)
	if p.ToolDurability > 0 {
		return false
	}
	p.EquipTool(defs.StarterTool)
	return true
}
