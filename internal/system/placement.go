// internal/system/placement.go
package system

import (
	"math"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/pkg/tilegrid"
)

// PlacementSystem lets the player build with collected resources.
type PlacementSystem struct{}

func NewPlacementSystem() *PlacementSystem {
	return &PlacementSystem{}
}

// CycleBlock selects the next placeable tile kind.
func (s *PlacementSystem) CycleBlock(w *entity.World) {
	w.Player.SelectedBlock = defs.NextPlaceable(w.Player.SelectedBlock)
}

// TargetCell is the first cell beyond the player's edge in the facing
// direction, aligned with the player's centre on the other axis.
func TargetCell(w *entity.World) (col, row int) {
	p := &w.Player
	col = int(math.Floor((p.X + config.PlayerSize/2) / config.TileSize))
	row = int(math.Floor((p.Y + config.PlayerSize/2) / config.TileSize))
	switch p.Facing {
	case component.FacingLeft:
		col = int(math.Floor(p.X/config.TileSize)) - 1
	case component.FacingRight:
		col = int(math.Ceil((p.X + config.PlayerSize) / config.TileSize))
	case component.FacingUp:
		row = int(math.Floor(p.Y/config.TileSize)) - 1
	case component.FacingDown:
		row = int(math.Ceil((p.Y + config.PlayerSize) / config.TileSize))
	}
	return col, row
}

// PlaceBlock puts the selected tile into the cell in front of the player,
// paying one unit of the resource the tile drops. It is a no-op when the cell
// is outside the grid or occupied, when the tile would overlap the player or
// the companion, or when the resource is missing.
func (s *PlacementSystem) PlaceBlock(w *entity.World) bool {
	kind := w.Player.SelectedBlock
	col, row := TargetCell(w)
	if col < 0 || row < 0 || col >= w.Grid.Cols || row >= w.Grid.Rows || w.Grid.Occupied(col, row) {
		return false
	}
	cell := tilegrid.CellRect(col, row)
	if cell.Overlaps(w.PlayerRect()) || (!w.Companion.Dead && cell.Overlaps(w.CompanionRect())) {
		return false
	}
	cost := []defs.Ingredient{{Resource: kind.Def().Drop, Amount: 1}}
	if !w.Inventory.Take(cost) {
		return false
	}
	w.Grid.Place(col, row, kind)
	w.Emit(event.BlockPlaced, event.ResourceData{Resource: kind.String(), Amount: 1})
	log.WithField("tile", kind.String()).Debug("block placed")
	return true
}
