package app

import (
	"errors"
	"os"
	"reflect"
	"testing"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/input"
	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitWith("warn", "text", os.Stderr)
	os.Exit(m.Run())
}

type recorder struct {
	events []event.EventType
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e.Type) }

func (r *recorder) saw(t event.EventType) bool {
	for _, e := range r.events {
		if e == t {
			return true
		}
	}
	return false
}

func newStartedGame(seed int64) (*Game, *recorder) {
	rec := &recorder{}
	d := event.NewDispatcher()
	d.SubscribeAll(rec)
	g := NewGame(utils.NewPRNGService(seed), d)
	g.Start(1)
	return g, rec
}

func TestAdvanceLeavesPreviousUntouched(t *testing.T) {
	g, _ := newStartedGame(3)
	prev := g.World()
	snapshot := prev.Clone()
	snapshot.Events = prev.Events

	next := Advance(prev, input.NewSet(input.Up, input.Mine), g.Systems)
	if next == prev {
		t.Fatal("Advance returned the previous snapshot")
	}
	if !reflect.DeepEqual(prev, snapshot) {
		t.Error("Advance mutated the previous snapshot")
	}
	if next.Clock != prev.Clock+16 {
		t.Errorf("clock = %d, want %d", next.Clock, prev.Clock+16)
	}
}

func TestAdvanceNilAndTerminal(t *testing.T) {
	sys := NewSystems(utils.NewSequenceSource(0))
	if Advance(nil, 0, sys) != nil {
		t.Error("Advance(nil) should return nil")
	}
	w := entity.NewWorld()
	w.Progress.GameOver = true
	if Advance(w, input.NewSet(input.Right), sys) != w {
		t.Error("a finished world must not advance")
	}
}

func TestAdvanceLevelUp(t *testing.T) {
	g, rec := newStartedGame(11)
	w := g.World().Clone()
	w.Grid.Tiles[0].Destroyed = true
	w.Progress.KillsThisLevel = defs.RequiredKills(1)
	g.world = w

	g.Tick(0)
	got := g.World()
	if got.Progress.Level != 2 || got.Progress.KillsThisLevel != 0 {
		t.Fatalf("level %d kills %d, want 2 and 0", got.Progress.Level, got.Progress.KillsThisLevel)
	}
	for i, tile := range got.Grid.Tiles {
		if tile.Destroyed {
			t.Fatalf("tile %d carried over destroyed", i)
		}
	}
	if !rec.saw(event.LevelAdvanced) {
		t.Error("LevelAdvanced not dispatched")
	}
}

func TestKillScenarioThroughTick(t *testing.T) {
	g, rec := newStartedGame(5)
	w := g.World().Clone()
	w.Grid.Tiles = nil
	w.Enemies = []component.Enemy{component.NewEnemy(w.NewEntity(), defs.Zombie, 110, 300)}
	w.LastSpawn = w.Clock
	g.world = w
	before := 0
	for _, n := range w.Inventory {
		before += n
	}

	g.Tick(0)
	got := g.World()
	if len(got.Enemies) != 0 {
		t.Fatalf("zombie survived: %+v", got.Enemies)
	}
	if got.Progress.Score != 15 || got.Progress.KillsThisLevel != 1 {
		t.Errorf("score %d kills %d", got.Progress.Score, got.Progress.KillsThisLevel)
	}
	// Drops that land inside the pickup radius are collected in the same tick.
	after := 0
	for _, n := range got.Inventory {
		after += n
	}
	if loot := len(got.Drops) + after - before; loot < 1 || loot > 2 {
		t.Errorf("got %d drops on the ground and %d picked up, want 1 or 2 in total", len(got.Drops), after-before)
	}
	if got.Player.Health != 100 {
		t.Errorf("dead zombie still hit the player: %v", got.Player.Health)
	}
	if !rec.saw(event.EnemyKilled) {
		t.Error("EnemyKilled not dispatched")
	}
}

func TestFirstTickSpawnsEnemy(t *testing.T) {
	g, rec := newStartedGame(4)
	if len(g.World().Enemies) != 0 {
		t.Fatal("a fresh run starts with enemies")
	}
	g.Tick(0)
	if len(g.World().Enemies) != 1 {
		t.Fatalf("got %d enemies after the first tick, want 1", len(g.World().Enemies))
	}
	if !rec.saw(event.EnemySpawned) {
		t.Error("EnemySpawned not dispatched")
	}
}

func TestTerminalStateStopsTicks(t *testing.T) {
	g, rec := newStartedGame(8)
	w := g.World().Clone()
	w.Player.Health = 0
	g.world = w

	if !g.Tick(0) {
		t.Fatal("the defeating tick should run")
	}
	if g.Phase() != PhaseEnded || !g.World().Progress.GameOver || g.World().Progress.Won {
		t.Fatalf("phase %s progress %+v", g.Phase(), g.World().Progress)
	}
	if !rec.saw(event.GameLost) {
		t.Error("GameLost not dispatched")
	}
	final := g.World()
	for i := 0; i < 10; i++ {
		if g.Tick(input.NewSet(input.Right)) {
			t.Fatal("tick ran after the game ended")
		}
	}
	if g.World() != final {
		t.Error("world changed after the game ended")
	}
}

func TestCraftingPausesTheTick(t *testing.T) {
	g, _ := newStartedGame(1)
	if g.Craft(defs.CraftWoodenSword) {
		t.Fatal("crafting outside the overlay should be refused")
	}

	g.ToggleCrafting()
	if g.Phase() != PhaseCrafting {
		t.Fatalf("phase = %s, want crafting", g.Phase())
	}
	clock := g.World().Clock
	if g.Tick(0) || g.World().Clock != clock {
		t.Error("tick ran while crafting")
	}

	if !g.Craft(defs.CraftWoodenSword) {
		t.Fatal("craft failed with the starting inventory")
	}
	if g.Phase() != PhasePlaying {
		t.Error("a successful craft should close the overlay")
	}
	inv := g.World().Inventory
	if inv[defs.Wood] != 3 || inv[defs.Stone] != 2 {
		t.Errorf("inventory = %v", inv)
	}
}

func TestCraftByName(t *testing.T) {
	g, _ := newStartedGame(1)
	g.ToggleCrafting()

	if _, err := g.CraftByName("BANANA"); !errors.Is(err, ErrUnknownRecipe) {
		t.Errorf("err = %v, want ErrUnknownRecipe", err)
	}
	ok, err := g.CraftByName("DIAMOND_SWORD")
	if err != nil || ok {
		t.Errorf("CraftByName(DIAMOND_SWORD) = %v, %v; want a silent no-op", ok, err)
	}
	if g.Phase() != PhaseCrafting {
		t.Error("a failed craft should keep the overlay open")
	}
	if g.CanCraft(defs.CraftDiamondSword) || !g.CanCraft(defs.CraftStoneSword) {
		t.Error("CanCraft disagrees with the starting inventory")
	}
}

func TestDiscreteCommands(t *testing.T) {
	g, rec := newStartedGame(2)
	w := g.World().Clone()
	w.Grid.Tiles = nil
	w.Inventory[defs.Stone] = 1
	g.world = w

	g.CycleBlock()
	if g.World().Player.SelectedBlock != defs.StoneTile {
		t.Fatalf("selected %s, want STONE", g.World().Player.SelectedBlock)
	}
	before := g.World()
	if !g.PlaceBlock() {
		t.Fatal("PlaceBlock failed")
	}
	if g.World() == before || len(before.Grid.Tiles) != 0 {
		t.Error("placement must swap in a new snapshot and leave the old one intact")
	}
	if !rec.saw(event.BlockPlaced) {
		t.Error("BlockPlaced not dispatched")
	}
	if g.PlaceBlock() {
		t.Error("second placement without stone should fail")
	}

	g.ToggleCrafting()
	g.CycleBlock()
	if g.World().Player.SelectedBlock != defs.StoneTile {
		t.Error("block cycling should be ignored while crafting")
	}
}

func TestRestart(t *testing.T) {
	g, _ := newStartedGame(4)
	w := g.World().Clone()
	w.Progress.Score = 300
	w.Progress.GameOver = true
	g.commit(w)
	if g.Phase() != PhaseEnded {
		t.Fatalf("phase = %s, want ended", g.Phase())
	}
	g.Restart()
	if g.Phase() != PhasePlaying || g.World().Progress.Score != 0 || g.World().Progress.Level != 1 {
		t.Errorf("restart left phase %s progress %+v", g.Phase(), g.World().Progress)
	}
}

func TestTickBeforeStart(t *testing.T) {
	g := NewGame(utils.NewSequenceSource(0), nil)
	if g.Tick(0) || g.World() != nil || g.Phase() != PhaseMenu {
		t.Error("an unstarted game must not tick")
	}
	g.ToggleCrafting()
	if g.Phase() != PhaseMenu {
		t.Error("crafting cannot open from the menu")
	}
}

func TestDeterministicRuns(t *testing.T) {
	script := []input.Set{
		input.NewSet(input.Right),
		input.NewSet(input.Right, input.Mine),
		input.NewSet(input.Down, input.Mine),
		input.NewSet(input.Left),
		0,
	}
	run := func() *entity.World {
		g, _ := newStartedGame(77)
		for i := 0; i < 3000; i++ {
			g.Tick(script[(i/60)%len(script)])
		}
		return g.World()
	}
	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs with the same seed and inputs diverged")
	}
}
