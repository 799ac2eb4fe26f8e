// internal/entity/world.go
package entity

import (
	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/pkg/tilegrid"
)

// World is the whole simulation state. A tick clones it, advances the clone
// and swaps it in, so a partially updated world is never observable.
type World struct {
	Clock     int64 // logical ms since the run started
	NextID    component.EntityID
	LastSpawn int64

	Grid      *tilegrid.Grid
	Player    component.Player
	Companion component.Companion
	Enemies   []component.Enemy
	Drops     []component.Drop
	Inventory component.Inventory
	Mining    component.Mining
	Progress  component.Progress

	// Events emitted during the last transition, in order.
	Events []event.Event
}

// NewWorld returns the state of a fresh run at level 1 with an empty grid.
func NewWorld() *World {
	w := &World{
		NextID: 1,
		Grid:   tilegrid.NewGrid(),
		Player: component.Player{
			Position:         component.Position{X: config.PlayerStartX, Y: config.PlayerStartY},
			Health:           config.PlayerMaxHP,
			MaxHealth:        config.PlayerMaxHP,
			Hunger:           config.MaxHunger,
			Speed:            config.PlayerSpeed,
			DamageMultiplier: 1,
			SelectedBlock:    defs.PlaceableTiles[0],
		},
		Companion: component.Companion{
			Position:  component.Position{X: config.RobotStartX, Y: config.RobotStartY},
			Health:    config.RobotMaxHP,
			MaxHealth: config.RobotMaxHP,
			Energy:    config.RobotMaxEnergy,
			MaxEnergy: config.RobotMaxEnergy,
		},
		Inventory: component.StartingInventory(),
		Progress:  component.Progress{Level: 1},
	}
	w.Player.EquipTool(defs.StarterTool)
	w.Mining.Reset()
	return w
}

// NewEntity allocates an id for a spawned entity.
func (w *World) NewEntity() component.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Clone returns a deep copy. Events are not carried over.
func (w *World) Clone() *World {
	c := *w
	c.Grid = w.Grid.Clone()
	c.Enemies = append([]component.Enemy(nil), w.Enemies...)
	c.Drops = append([]component.Drop(nil), w.Drops...)
	c.Events = nil
	return &c
}

// Emit records an event for the caller to dispatch after the transition.
func (w *World) Emit(t event.EventType, data interface{}) {
	w.Events = append(w.Events, event.Event{Type: t, Data: data})
}

// PlayerRect is the player's collision box.
func (w *World) PlayerRect() tilegrid.Rect {
	return tilegrid.Rect{X: w.Player.X, Y: w.Player.Y, W: config.PlayerSize, H: config.PlayerSize}
}

// CompanionRect is the companion's collision box.
func (w *World) CompanionRect() tilegrid.Rect {
	return tilegrid.Rect{X: w.Companion.X, Y: w.Companion.Y, W: config.RobotSize, H: config.RobotSize}
}

// Terminal reports whether the run has ended.
func (w *World) Terminal() bool {
	return w.Progress.GameOver
}
