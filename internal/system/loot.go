// internal/system/loot.go
package system

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/utils"
)

// LootSystem rolls enemy loot tables into drops.
type LootSystem struct {
	rng utils.Source
}

func NewLootSystem(rng utils.Source) *LootSystem {
	return &LootSystem{rng: rng}
}

// Roll draws one or two drops for an enemy of the given kind that died at
// (x, y). Each drop is scattered around the death position and kept inside
// the playfield.
func (s *LootSystem) Roll(w *entity.World, kind defs.EnemyKind, x, y float64) []component.Drop {
	table := defs.LootTables[kind]
	if len(table) == 0 {
		return nil
	}
	count := s.rng.Intn(2) + 1
	drops := make([]component.Drop, 0, count)
	for i := 0; i < count; i++ {
		item, ok := utils.RollWeighted(s.rng, table)
		if !ok {
			continue
		}
		dx := (s.rng.Float64() - 0.5) * config.DropJitter
		dy := (s.rng.Float64() - 0.5) * config.DropJitter
		drops = append(drops, component.Drop{
			ID:   w.NewEntity(),
			Item: item,
			Position: component.Position{
				X: utils.Clamp(x+dx, config.DropMargin, config.ScreenWidth-config.DropFarMargin),
				Y: utils.Clamp(y+dy, config.DropMargin, config.ScreenHeight-config.DropFarMargin),
			},
			CreatedAt: w.Clock,
		})
	}
	return drops
}
