// internal/system/mining.go
package system

import (
	"math"

	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/utils"
)

// MiningSystem accumulates mining progress on the tile next to the player.
type MiningSystem struct {
	rng utils.Source
}

func NewMiningSystem(rng utils.Source) *MiningSystem {
	return &MiningSystem{rng: rng}
}

// FindTarget returns the index of the first live breakable tile whose centre
// is within mining range of the player's centre, or -1. Tiles are taken in
// slice order, not sorted by distance.
func FindTarget(w *entity.World) int {
	px := w.Player.X + config.PlayerSize/2
	py := w.Player.Y + config.PlayerSize/2
	for i, t := range w.Grid.Tiles {
		if t.Destroyed || !t.Kind.Def().Breakable {
			continue
		}
		cx, cy := t.Center()
		if utils.Dist(px, py, cx, cy) < config.MiningRange {
			return i
		}
	}
	return -1
}

// Update runs one mining tick. Releasing the mine action or losing the
// target resets progress immediately.
func (s *MiningSystem) Update(w *entity.World, mine bool) {
	if !mine {
		w.Mining.Reset()
		return
	}
	target := FindTarget(w)
	if target < 0 {
		w.Mining.Reset()
		return
	}
	if w.Mining.Target != target {
		w.Mining.Target = target
		w.Mining.Progress = 0
	}

	tile := &w.Grid.Tiles[target]
	def := tile.Kind.Def()
	speed := math.Max(1, w.Player.Tool.Def().MiningPower/def.Hardness) * config.MiningSpeedFactor
	w.Mining.Progress += speed
	w.Player.SwordVisible = true
	if w.Mining.Progress < config.MiningProgressMax {
		return
	}

	// 1. Break the tile and collect its resource.
	tile.Destroyed = true
	amount := s.rng.Intn(2) + 1
	w.Inventory.Add(def.Drop, amount)
	w.Emit(event.TileMined, event.ResourceData{Resource: def.Drop.String(), Amount: amount})
	log.WithFields(logrus.Fields{"tile": tile.Kind.String(), "amount": amount}).Debug("tile mined")

	// 2. Wear the tool.
	broken := w.Player.Tool
	if w.Player.WearTool() {
		w.Emit(event.ToolBroken, event.ResourceData{Resource: broken.String()})
		log.WithField("tool", broken.String()).Debug("tool broke")
	}

	w.Mining.Reset()
}
