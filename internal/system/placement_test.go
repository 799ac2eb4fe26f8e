package system

import (
	"testing"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
)

func TestTargetCell(t *testing.T) {
	tests := []struct {
		facing   component.Facing
		col, row int
	}{
		{component.FacingRight, 5, 9},
		{component.FacingLeft, 2, 9},
		{component.FacingUp, 3, 8},
		{component.FacingDown, 3, 11},
	}
	for _, tt := range tests {
		w := newTestWorld()
		w.Player.Facing = tt.facing
		if col, row := TargetCell(w); col != tt.col || row != tt.row {
			t.Errorf("facing %d: cell (%d,%d), want (%d,%d)", tt.facing, col, row, tt.col, tt.row)
		}
	}
}

func TestPlaceBlock(t *testing.T) {
	s := NewPlacementSystem()
	w := newTestWorld()

	if s.PlaceBlock(w) {
		t.Fatal("placed dirt without any dirt")
	}
	w.Inventory[defs.Dirt] = 2
	if !s.PlaceBlock(w) {
		t.Fatal("placement into a free cell failed")
	}
	if w.Inventory[defs.Dirt] != 1 || len(w.Grid.Tiles) != 1 {
		t.Fatalf("dirt %d tiles %d, want 1 and 1", w.Inventory[defs.Dirt], len(w.Grid.Tiles))
	}
	if tile := w.Grid.Tiles[0]; tile.X != 160 || tile.Y != 288 || tile.Kind != defs.DirtTile {
		t.Errorf("placed %+v", tile)
	}
	if s.PlaceBlock(w) {
		t.Error("placed into an occupied cell")
	}
	if w.Inventory[defs.Dirt] != 1 {
		t.Error("failed placement consumed a resource")
	}
}

func TestPlaceBlockRejected(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *entity.World)
	}{
		{"overlaps companion", func(w *entity.World) {
			w.Player.Facing = component.FacingDown
			w.Companion.X, w.Companion.Y = 100, 360
		}},
		{"out of bounds", func(w *entity.World) {
			w.Player.X = 0
			w.Player.Facing = component.FacingLeft
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Inventory[defs.Dirt] = 1
			tt.setup(w)
			if NewPlacementSystem().PlaceBlock(w) {
				t.Error("placement should be rejected")
			}
			if w.Inventory[defs.Dirt] != 1 || len(w.Grid.Tiles) != 0 {
				t.Error("rejected placement changed state")
			}
		})
	}
}

func TestCycleBlock(t *testing.T) {
	w := newTestWorld()
	s := NewPlacementSystem()
	want := []defs.TileKind{defs.StoneTile, defs.WoodTile, defs.CoalOreTile, defs.ObsidianTile, defs.DirtTile}
	for _, k := range want {
		s.CycleBlock(w)
		if w.Player.SelectedBlock != k {
			t.Fatalf("selected %s, want %s", w.Player.SelectedBlock, k)
		}
	}
}
