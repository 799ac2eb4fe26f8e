package system

import (
	"testing"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/utils"
)

func TestCraftWoodenSwordScenario(t *testing.T) {
	w := newTestWorld()
	w.Player.ToolDurability = 3
	if !NewCraftingSystem().Craft(w, defs.CraftWoodenSword) {
		t.Fatal("craft failed with wood 5 stone 3")
	}
	want := component.Inventory{}
	want[defs.Wood], want[defs.Stone] = 3, 2
	if w.Inventory != want {
		t.Errorf("inventory = %v, want %v", w.Inventory, want)
	}
	if w.Player.Tool != defs.WoodenSword || w.Player.ToolDurability != 30 {
		t.Errorf("tool %s durability %d", w.Player.Tool, w.Player.ToolDurability)
	}
}

func TestCraftInsufficientIsNoop(t *testing.T) {
	w := newTestWorld()
	before := *w.Clone()
	if NewCraftingSystem().Craft(w, defs.CraftIronSword) {
		t.Fatal("crafted an iron sword without iron")
	}
	if w.Inventory != before.Inventory || w.Player != before.Player || w.Companion != before.Companion {
		t.Error("failed craft changed state")
	}
	if len(w.Events) != 0 {
		t.Error("failed craft emitted events")
	}
}

func TestCraftEffects(t *testing.T) {
	tests := []struct {
		kind  defs.RecipeKind
		check func(w *entity.World) bool
	}{
		{defs.CraftIronSword, func(w *entity.World) bool { return w.Player.Tool == defs.IronSword && w.Player.ToolDurability == 120 }},
		{defs.CraftLegendarySword, func(w *entity.World) bool { return w.Player.Tool == defs.LegendarySword }},
		{defs.CraftRobotUpgrade, func(w *entity.World) bool {
			return w.Companion.Upgraded && w.Companion.MaxHealth == 150 && w.Companion.Health == 150
		}},
		{defs.CraftRobotArmor, func(w *entity.World) bool { return w.Companion.Armor == 2 }},
		{defs.CraftPlayerArmor, func(w *entity.World) bool { return w.Player.Armor == 2 }},
		{defs.CraftHealthBoost, func(w *entity.World) bool { return w.Player.MaxHealth == 120 && w.Player.Health == 120 }},
		{defs.CraftSpeedBoost, func(w *entity.World) bool { return w.Player.Speed == 3 }},
		{defs.CraftDamageBoost, func(w *entity.World) bool { return approx(w.Player.DamageMultiplier, 1.2) }},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			w := newTestWorld()
			w.Player.Health = 50
			w.Companion.Health = 10
			for r := range w.Inventory {
				w.Inventory[r] = 20
			}
			if !NewCraftingSystem().Craft(w, tt.kind) {
				t.Fatal("craft failed with a full inventory")
			}
			if !tt.check(w) {
				t.Errorf("effect not applied: player %+v companion %+v", w.Player, w.Companion)
			}
		})
	}
}

// For any inventory a craft either changes nothing or removes exactly the
// recipe cost.
func TestCraftIsAtomic(t *testing.T) {
	rng := utils.NewPRNGService(2024)
	crafting := NewCraftingSystem()
	for i := 0; i < 500; i++ {
		w := newTestWorld()
		for r := range w.Inventory {
			w.Inventory[r] = rng.Intn(8)
		}
		kind := defs.RecipeKind(rng.Intn(int(defs.RecipeKindCount)))
		before := w.Inventory
		can := crafting.CanCraft(&w.Inventory, kind)
		ok := crafting.Craft(w, kind)
		if ok != can {
			t.Fatalf("Craft = %v but CanCraft = %v", ok, can)
		}
		want := before
		if ok {
			for _, ing := range kind.Def().Cost {
				want[ing.Resource] -= ing.Amount
			}
		}
		if w.Inventory != want {
			t.Fatalf("%s from %v: got %v, want %v", kind, before, w.Inventory, want)
		}
		for r, n := range w.Inventory {
			if n < 0 {
				t.Fatalf("%s left %s negative", kind, defs.Resource(r))
			}
		}
	}
}

func TestCanCraftUnknownKind(t *testing.T) {
	inv := component.StartingInventory()
	if NewCraftingSystem().CanCraft(&inv, defs.RecipeKindCount) {
		t.Error("CanCraft accepted an out-of-range recipe")
	}
}
