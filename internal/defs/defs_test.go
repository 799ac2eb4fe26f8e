package defs

import (
	"strings"
	"testing"

	"go-robot-survivor/internal/config"
)

func TestTileDefsComplete(t *testing.T) {
	for k := TileKind(0); k < TileKindCount; k++ {
		def := k.Def()
		if def.Name == "" {
			t.Errorf("tile kind %d has no definition", k)
		}
		if def.Hardness <= 0 {
			t.Errorf("%s: hardness must be positive, got %v", def.Name, def.Hardness)
		}
		if def.Drop < 0 || def.Drop >= ResourceCount {
			t.Errorf("%s: drop %d is not a resource", def.Name, def.Drop)
		}
	}
}

func TestHardnessOrdering(t *testing.T) {
	order := []TileKind{Grass, StoneTile, IronOreTile, DiamondOreTile, ObsidianTile}
	for i := 1; i < len(order); i++ {
		if order[i-1].Def().Hardness >= order[i].Def().Hardness {
			t.Errorf("%s should be softer than %s", order[i-1], order[i])
		}
	}
}

func TestEnemyDefsComplete(t *testing.T) {
	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		def := k.Def()
		if def.Name == "" || def.Health <= 0 || def.Damage <= 0 || def.Speed <= 0 || def.Size <= 0 || def.Armor < 0 {
			t.Errorf("enemy kind %d has invalid stats: %+v", k, def)
		}
		if len(LootTables[k]) == 0 {
			t.Errorf("%s has no loot table", def.Name)
		}
		for _, e := range LootTables[k] {
			if e.Weight <= 0 {
				t.Errorf("%s: non-positive weight for %s", def.Name, e.Item)
			}
		}
	}
}

func TestRecipesComplete(t *testing.T) {
	for k := RecipeKind(0); k < RecipeKindCount; k++ {
		r := k.Def()
		if r.Name == "" || r.Description == "" {
			t.Errorf("recipe %d is missing a name or description", k)
		}
		if len(r.Cost) == 0 {
			t.Errorf("%s has no cost", r.Name)
		}
		seen := map[Resource]bool{}
		for _, ing := range r.Cost {
			if ing.Amount <= 0 {
				t.Errorf("%s: non-positive amount for %s", r.Name, ing.Resource)
			}
			if seen[ing.Resource] {
				t.Errorf("%s lists %s twice", r.Name, ing.Resource)
			}
			seen[ing.Resource] = true
		}
		isSword := strings.HasSuffix(r.Name, "_SWORD")
		if isSword != (r.Effect == EffectEquipTool) {
			t.Errorf("%s: sword recipes and only sword recipes equip tools", r.Name)
		}
		if isSword && r.Tool.String() != r.Name {
			t.Errorf("%s equips %s", r.Name, r.Tool)
		}
	}
}

func TestParseRecipe(t *testing.T) {
	k, ok := ParseRecipe("WOODEN_SWORD")
	if !ok || k != CraftWoodenSword {
		t.Errorf("ParseRecipe(WOODEN_SWORD) = %v, %v", k, ok)
	}
	if _, ok := ParseRecipe("BANANA"); ok {
		t.Error("ParseRecipe accepted an unknown name")
	}
}

func TestParseResource(t *testing.T) {
	for _, r := range Resources() {
		got, ok := ParseResource(r.String())
		if !ok || got != r {
			t.Errorf("ParseResource(%q) = %v, %v", r.String(), got, ok)
		}
	}
}

func TestLevelRequirements(t *testing.T) {
	if FinalLevel != config.MaxLevel {
		t.Fatalf("FinalLevel = %d, want %d", FinalLevel, config.MaxLevel)
	}
	for lvl := 2; lvl <= FinalLevel; lvl++ {
		if RequiredKills(lvl) <= RequiredKills(lvl-1) {
			t.Errorf("level %d quota %d does not exceed level %d quota", lvl, RequiredKills(lvl), lvl-1)
		}
	}
	if RequiredKills(99) != RequiredKills(FinalLevel) {
		t.Error("RequiredKills should clamp above the final level")
	}
}

func TestNextPlaceableWraps(t *testing.T) {
	k := PlaceableTiles[0]
	for range PlaceableTiles {
		k = NextPlaceable(k)
	}
	if k != PlaceableTiles[0] {
		t.Errorf("cycling through all placeable tiles ended on %s", k)
	}
	if NextPlaceable(Grass) != PlaceableTiles[0] {
		t.Error("a non-placeable kind should map to the first placeable kind")
	}
}
