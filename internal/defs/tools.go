// internal/defs/tools.go
package defs

// ToolKind identifies an equippable weapon. RobotLaser is the companion's
// built-in weapon and has no recipe.
type ToolKind int

const (
	WoodenSword ToolKind = iota
	StoneSword
	IronSword
	DiamondSword
	ObsidianSword
	LegendarySword
	RobotLaser
	ToolKindCount
)

// StarterTool is equipped at the start and whenever a tool breaks.
const StarterTool = WoodenSword

// ToolDefinition contains the combat and mining stats of a tool.
type ToolDefinition struct {
	Name        string
	Damage      float64
	Durability  int
	MiningPower float64
}

// ToolDefs is indexed by ToolKind.
var ToolDefs = [ToolKindCount]ToolDefinition{
	WoodenSword:    {Name: "WOODEN_SWORD", Damage: 15, Durability: 30, MiningPower: 1},
	StoneSword:     {Name: "STONE_SWORD", Damage: 25, Durability: 60, MiningPower: 2},
	IronSword:      {Name: "IRON_SWORD", Damage: 40, Durability: 120, MiningPower: 3},
	DiamondSword:   {Name: "DIAMOND_SWORD", Damage: 60, Durability: 200, MiningPower: 5},
	ObsidianSword:  {Name: "OBSIDIAN_SWORD", Damage: 80, Durability: 300, MiningPower: 8},
	LegendarySword: {Name: "LEGENDARY_SWORD", Damage: 120, Durability: 500, MiningPower: 12},
	RobotLaser:     {Name: "ROBOT_LASER", Damage: 30, Durability: 999, MiningPower: 0},
}

func (k ToolKind) String() string {
	if k < 0 || k >= ToolKindCount {
		return "UNKNOWN"
	}
	return ToolDefs[k].Name
}

// Def returns the static definition of the tool.
func (k ToolKind) Def() ToolDefinition {
	return ToolDefs[k]
}
