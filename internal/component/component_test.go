package component

import (
	"testing"

	"go-robot-survivor/internal/defs"
)

func TestInventoryTakeIsAtomic(t *testing.T) {
	inv := StartingInventory()
	before := inv
	cost := []defs.Ingredient{{Resource: defs.Wood, Amount: 2}, {Resource: defs.IronOre, Amount: 1}}
	if inv.Take(cost) {
		t.Fatal("Take succeeded without iron")
	}
	if inv != before {
		t.Fatalf("failed Take mutated inventory: %v", inv)
	}
	inv.Add(defs.IronOre, 1)
	if !inv.Take(cost) {
		t.Fatal("Take failed with all ingredients present")
	}
	if inv[defs.Wood] != 3 || inv[defs.IronOre] != 0 || inv[defs.Stone] != 3 {
		t.Errorf("unexpected inventory after Take: %v", inv)
	}
}

func TestInventoryAddIgnoresNegative(t *testing.T) {
	var inv Inventory
	inv.Add(defs.Coal, -4)
	if inv[defs.Coal] != 0 {
		t.Errorf("coal = %d, want 0", inv[defs.Coal])
	}
}

func TestWearToolResetsToStarter(t *testing.T) {
	p := Player{}
	p.EquipTool(defs.IronSword)
	p.ToolDurability = 2
	if p.WearTool() {
		t.Fatal("tool broke one use early")
	}
	if !p.WearTool() {
		t.Fatal("tool should break at zero durability")
	}
	if p.Tool != defs.StarterTool || p.ToolDurability != defs.StarterTool.Def().Durability {
		t.Errorf("after breaking: tool %s durability %d", p.Tool, p.ToolDurability)
	}
}

func TestWearToolNeverNegative(t *testing.T) {
	p := Player{Tool: defs.StoneSword, ToolDurability: 0}
	p.WearTool()
	if p.ToolDurability < 0 {
		t.Errorf("durability went negative: %d", p.ToolDurability)
	}
}

func TestCompanionDamage(t *testing.T) {
	c := Companion{}
	if c.Damage() != 30 {
		t.Errorf("base damage = %v, want 30", c.Damage())
	}
	c.Upgraded = true
	if c.Damage() != 50 {
		t.Errorf("upgraded damage = %v, want 50", c.Damage())
	}
}
