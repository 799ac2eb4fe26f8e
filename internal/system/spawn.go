// internal/system/spawn.go
package system

import (
	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/utils"
)

// SpawnSystem brings in new enemies from the screen edges.
type SpawnSystem struct {
	rng utils.Source
}

func NewSpawnSystem(rng utils.Source) *SpawnSystem {
	return &SpawnSystem{rng: rng}
}

// nightMultiplier speeds up spawning and raises the cap at night.
func nightMultiplier(w *entity.World) float64 {
	if w.Progress.Night() {
		return config.NightSpawnMultiplier
	}
	return 1
}

// SpawnInterval is the time between spawns for the current level and phase.
func SpawnInterval(w *entity.World) float64 {
	return config.SpawnIntervalMs(w.Progress.Level) / nightMultiplier(w)
}

// EnemyCap is the maximum number of live enemies for the current level and phase.
func EnemyCap(w *entity.World) float64 {
	return config.MaxEnemies(w.Progress.Level) * nightMultiplier(w)
}

// ChooseKind picks the enemy kind for a spawn. Higher levels shift the pick
// towards stronger kinds and from level 7 on a dragon may appear anywhere.
func (s *SpawnSystem) ChooseKind(level int) defs.EnemyKind {
	last := int(defs.EnemyKindCount) - 1
	idx := min(level/2, last-1)
	if level >= 3 && s.rng.Float64() < 0.2+float64(level)*0.05 {
		idx = min(idx+1, last)
	}
	if level >= 7 && s.rng.Float64() < 0.3 {
		idx = last
	}
	return defs.EnemyKind(idx)
}

// Prime backdates the last spawn so the next Update of a fresh run spawns
// at once. Level advances keep the running timer.
func (s *SpawnSystem) Prime(w *entity.World) {
	w.LastSpawn = w.Clock - int64(SpawnInterval(w)) - 1
}

// Update spawns at most one enemy when the interval has passed and the
// enemy cap allows it.
func (s *SpawnSystem) Update(w *entity.World) {
	if float64(w.Clock-w.LastSpawn) <= SpawnInterval(w) || float64(len(w.Enemies)) >= EnemyCap(w) {
		return
	}
	kind := s.ChooseKind(w.Progress.Level)
	x := -config.SpawnOffscreen
	if s.rng.Float64() >= 0.5 {
		x = config.ScreenWidth + config.SpawnOffscreen
	}
	y := s.rng.Float64()*config.SpawnBandHeight + config.SpawnBandTop

	e := component.NewEnemy(w.NewEntity(), kind, x, y)
	w.Enemies = append(w.Enemies, e)
	w.LastSpawn = w.Clock
	w.Emit(event.EnemySpawned, event.EnemyData{ID: uint64(e.ID), Kind: kind.String(), X: x, Y: y})
	log.WithFields(logrus.Fields{"enemy": kind.String(), "level": w.Progress.Level}).Debug("enemy spawned")
}
