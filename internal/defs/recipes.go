package defs

// RecipeKind identifies a craftable item or upgrade.
type RecipeKind int

const (
	CraftWoodenSword RecipeKind = iota
	CraftStoneSword
	CraftIronSword
	CraftDiamondSword
	CraftObsidianSword
	CraftLegendarySword
	CraftRobotUpgrade
	CraftRobotArmor
	CraftPlayerArmor
	CraftHealthBoost
	CraftSpeedBoost
	CraftDamageBoost
	RecipeKindCount
)

// Effect is what a successful craft does besides consuming resources.
type Effect int

const (
	EffectEquipTool Effect = iota
	EffectRobotUpgrade
	EffectRobotArmor
	EffectPlayerArmor
	EffectHealthBoost
	EffectSpeedBoost
	EffectDamageBoost
)

// Ingredient is one resource requirement of a recipe.
type Ingredient struct {
	Resource Resource
	Amount   int
}

// Recipe defines the inputs and the single effect of a craft.
type Recipe struct {
	Name        string
	Description string
	Cost        []Ingredient
	Effect      Effect
	Tool        ToolKind // only for EffectEquipTool
}

// Recipes is indexed by RecipeKind.
var Recipes = [RecipeKindCount]Recipe{
	CraftWoodenSword: {
		Name: "WOODEN_SWORD", Description: "A basic sword for starting out.",
		Cost:   []Ingredient{{Wood, 2}, {Stone, 1}},
		Effect: EffectEquipTool, Tool: WoodenSword,
	},
	CraftStoneSword: {
		Name: "STONE_SWORD", Description: "A sturdier sword with better damage.",
		Cost:   []Ingredient{{Wood, 1}, {Stone, 3}},
		Effect: EffectEquipTool, Tool: StoneSword,
	},
	CraftIronSword: {
		Name: "IRON_SWORD", Description: "A strong sword made from refined iron.",
		Cost:   []Ingredient{{Wood, 1}, {IronOre, 3}},
		Effect: EffectEquipTool, Tool: IronSword,
	},
	CraftDiamondSword: {
		Name: "DIAMOND_SWORD", Description: "A powerful sword that cuts through enemies.",
		Cost:   []Ingredient{{Wood, 1}, {Diamond, 2}, {IronOre, 1}},
		Effect: EffectEquipTool, Tool: DiamondSword,
	},
	CraftObsidianSword: {
		Name: "OBSIDIAN_SWORD", Description: "A very heavy and durable sword.",
		Cost:   []Ingredient{{Diamond, 1}, {Obsidian, 3}, {IronOre, 2}},
		Effect: EffectEquipTool, Tool: ObsidianSword,
	},
	CraftLegendarySword: {
		Name: "LEGENDARY_SWORD", Description: "A mythical weapon of immense power.",
		Cost:   []Ingredient{{Diamond, 3}, {Obsidian, 2}, {Coal, 5}},
		Effect: EffectEquipTool, Tool: LegendarySword,
	},
	CraftRobotUpgrade: {
		Name: "ROBOT_UPGRADE", Description: "Boosts robot's max health to 150 and base damage to 50.",
		Cost:   []Ingredient{{IronOre, 5}, {Diamond, 1}},
		Effect: EffectRobotUpgrade,
	},
	CraftRobotArmor: {
		Name: "ROBOT_ARMOR", Description: "Increases robot's defense by 2.",
		Cost:   []Ingredient{{IronOre, 3}, {Stone, 5}},
		Effect: EffectRobotArmor,
	},
	CraftPlayerArmor: {
		Name: "PLAYER_ARMOR", Description: "Increases your defense by 2.",
		Cost:   []Ingredient{{IronOre, 4}, {Stone, 6}},
		Effect: EffectPlayerArmor,
	},
	CraftHealthBoost: {
		Name: "HEALTH_BOOST", Description: "Increases your maximum health by 20.",
		Cost:   []Ingredient{{Coal, 8}, {Wood, 10}},
		Effect: EffectHealthBoost,
	},
	CraftSpeedBoost: {
		Name: "SPEED_BOOST", Description: "Increases your movement speed by 0.5.",
		Cost:   []Ingredient{{Diamond, 1}, {Coal, 5}},
		Effect: EffectSpeedBoost,
	},
	CraftDamageBoost: {
		Name: "DAMAGE_BOOST", Description: "Increases your attack damage by 20%.",
		Cost:   []Ingredient{{Obsidian, 1}, {Diamond, 1}},
		Effect: EffectDamageBoost,
	},
}

// Stat boost amounts applied by the non-tool recipes.
const (
	ArmorBoost        = 2.0
	HealthBoostAmount = 20.0
	SpeedBoostAmount  = 0.5
	DamageBoostAmount = 0.2
)

func (k RecipeKind) String() string {
	if k < 0 || k >= RecipeKindCount {
		return "UNKNOWN"
	}
	return Recipes[k].Name
}

// Def returns the recipe definition.
func (k RecipeKind) Def() Recipe {
	return Recipes[k]
}

// ParseRecipe looks a recipe up by its item name, e.g. "IRON_SWORD".
func ParseRecipe(name string) (RecipeKind, bool) {
	for k, r := range Recipes {
		if r.Name == name {
			return RecipeKind(k), true
		}
	}
	return 0, false
}
