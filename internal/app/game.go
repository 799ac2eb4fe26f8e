// internal/app/game.go
package app

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/logger"
)

// ErrUnknownRecipe is returned when the overlay names a recipe that does not exist.
var ErrUnknownRecipe = errors.New("unknown recipe")

// Phase is the coarse state of a run. The tick only runs while Playing.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseCrafting
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseCrafting:
		return "crafting"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// Game owns the current world snapshot and is its only writer. Ticks and
// discrete commands both replace the snapshot as a whole.
type Game struct {
	EventDispatcher *event.Dispatcher
	Systems         *Systems

	world      *entity.World
	phase      Phase
	startLevel int
	log        *logrus.Entry
}

// NewGame creates a game in the menu phase. Events of every transition are
// delivered through dispatcher.
func NewGame(rng utils.Source, dispatcher *event.Dispatcher) *Game {
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	return &Game{
		EventDispatcher: dispatcher,
		Systems:         NewSystems(rng),
		phase:           PhaseMenu,
		startLevel:      1,
		log:             logger.For("game"),
	}
}

// World returns the current snapshot. Callers must treat it as read-only.
// It is nil until Start.
func (g *Game) World() *entity.World {
	return g.world
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Start begins a fresh run at level.
func (g *Game) Start(level int) {
	level = max(1, min(level, defs.FinalLevel))
	g.startLevel = level
	w := entity.NewWorld()
	g.Systems.Progression.StartLevel(w, level)
	g.Systems.Spawn.Prime(w)
	g.world = w
	g.phase = PhasePlaying
	g.log.WithField("level", level).Info("run started")
}

// Restart begins a fresh run at the level the previous one started at.
func (g *Game) Restart() {
	g.Start(g.startLevel)
}

// Tick advances the world by one fixed step. It does nothing outside the
// playing phase and reports whether the world advanced.
func (g *Game) Tick(in input.Set) bool {
	if g.phase != PhasePlaying || g.world == nil {
		return false
	}
	g.commit(Advance(g.world, in, g.Systems))
	return true
}

// ToggleCrafting opens or closes the crafting overlay. The tick is
// suspended while it is open.
func (g *Game) ToggleCrafting() {
	switch g.phase {
	case PhasePlaying:
		g.phase = PhaseCrafting
	case PhaseCrafting:
		g.phase = PhasePlaying
	}
}

// CloseCrafting returns to play if the overlay is open.
func (g *Game) CloseCrafting() {
	if g.phase == PhaseCrafting {
		g.phase = PhasePlaying
	}
}

// CanCraft reports whether the current inventory covers kind.
func (g *Game) CanCraft(kind defs.RecipeKind) bool {
	if g.world == nil {
		return false
	}
	return g.Systems.Crafting.CanCraft(&g.world.Inventory, kind)
}

// Craft performs a recipe from the crafting overlay. A successful craft
// closes the overlay. Missing resources or a closed overlay make it a no-op.
func (g *Game) Craft(kind defs.RecipeKind) bool {
	if g.phase != PhaseCrafting {
		return false
	}
	ok := g.apply(func(w *entity.World) bool {
		return g.Systems.Crafting.Craft(w, kind)
	})
	if ok {
		g.phase = PhasePlaying
	}
	return ok
}

// CraftByName performs a recipe given its item name.
func (g *Game) CraftByName(name string) (bool, error) {
	kind, ok := defs.ParseRecipe(name)
	if !ok {
		return false, fmt.Errorf("craft %q: %w", name, ErrUnknownRecipe)
	}
	return g.Craft(kind), nil
}

// CycleBlock selects the next placeable block.
func (g *Game) CycleBlock() {
	if g.phase != PhasePlaying {
		return
	}
	g.apply(func(w *entity.World) bool {
		g.Systems.Placement.CycleBlock(w)
		return true
	})
}

// PlaceBlock places the selected block in front of the player.
func (g *Game) PlaceBlock() bool {
	if g.phase != PhasePlaying {
		return false
	}
	return g.apply(g.Systems.Placement.PlaceBlock)
}

// apply runs a discrete command on a copy of the world and swaps it in when
// the command reports a change.
func (g *Game) apply(cmd func(w *entity.World) bool) bool {
	if g.world == nil {
		return false
	}
	next := g.world.Clone()
	if !cmd(next) {
		return false
	}
	g.commit(next)
	return true
}

// commit swaps in a new snapshot, dispatches its events and stops the run on
// a terminal state.
func (g *Game) commit(next *entity.World) {
	g.world = next
	for _, e := range next.Events {
		g.EventDispatcher.Dispatch(e)
	}
	if next.Terminal() && g.phase != PhaseEnded {
		g.phase = PhaseEnded
		g.log.WithFields(logrus.Fields{
			"won":   next.Progress.Won,
			"level": next.Progress.Level,
			"score": next.Progress.Score,
		}).Info("run ended")
	}
}
