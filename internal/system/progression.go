// internal/system/progression.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/tilegrid"
)

// ProgressionSystem owns level setup, level advancement and the end of the run.
type ProgressionSystem struct {
	rng utils.Source
}

func NewProgressionSystem(rng utils.Source) *ProgressionSystem {
	return &ProgressionSystem{rng: rng}
}

// StartLevel regenerates the world for level and puts both characters back
// at their spawn points. Inventory, score and upgrades carry over.
func (s *ProgressionSystem) StartLevel(w *entity.World, level int) {
	w.Progress.Level = level
	w.Progress.KillsThisLevel = 0
	w.Grid = tilegrid.Generate(level, s.rng)
	w.Enemies = nil
	w.Drops = nil
	w.Mining.Reset()

	w.Player.X, w.Player.Y = config.PlayerStartX, config.PlayerStartY
	w.Player.Hunger = config.MaxHunger
	w.Companion.Revive(config.RobotStartX, config.RobotStartY)

	log.WithFields(logrus.Fields{"level": level, "tiles": len(w.Grid.Tiles)}).Info("level started")
}

// Update ends the run on defeat or victory and advances the level once the
// kill quota is met. Defeat is checked first, so it wins a tie.
func (s *ProgressionSystem) Update(w *entity.World) {
	if w.Progress.GameOver {
		return
	}
	data := event.LevelData{Level: w.Progress.Level, Score: w.Progress.Score}

	if w.Player.Health <= 0 {
		w.Progress.GameOver = true
		w.Emit(event.GameLost, data)
		log.WithField("score", w.Progress.Score).Info("game lost")
		return
	}

	if w.Progress.KillsThisLevel < defs.RequiredKills(w.Progress.Level) {
		return
	}
	next := w.Progress.Level + 1
	if next > defs.FinalLevel {
		w.Progress.GameOver = true
		w.Progress.Won = true
		w.Emit(event.GameWon, data)
		log.WithField("score", w.Progress.Score).Info("game won")
		return
	}
	s.StartLevel(w, next)
	w.Emit(event.LevelAdvanced, event.LevelData{Level: next, Score: w.Progress.Score})
}
