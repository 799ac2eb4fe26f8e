// internal/system/drops.go
package system

import (
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
)

// DropSystem handles pickup and expiry of ground drops.
type DropSystem struct{}

func NewDropSystem() *DropSystem {
	return &DropSystem{}
}

// Update collects drops within reach of the player and discards expired ones.
func (s *DropSystem) Update(w *entity.World) {
	kept := w.Drops[:0]
	for _, d := range w.Drops {
		if d.DistanceTo(w.Player.Position) < config.DropPickupRadius {
			w.Inventory.Add(d.Item, 1)
			w.Emit(event.DropCollected, event.ResourceData{Resource: d.Item.String(), Amount: 1})
			continue
		}
		if w.Clock-d.CreatedAt >= config.DropLifetimeMs {
			continue
		}
		kept = append(kept, d)
	}
	w.Drops = kept
}
