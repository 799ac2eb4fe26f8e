package system

import (
	"testing"

	"go-robot-survivor/internal/component"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/event"
	"go-robot-survivor/internal/utils"
)

func TestLevelAdvance(t *testing.T) {
	w := newTestWorld()
	prog := NewProgressionSystem(utils.NewPRNGService(5))
	prog.StartLevel(w, 1)
	w.Grid.Tiles[0].Destroyed = true
	w.Enemies = []component.Enemy{component.NewEnemy(w.NewEntity(), defs.Zombie, 0, 0)}
	w.Drops = []component.Drop{{ID: w.NewEntity(), Item: defs.Wood}}
	w.Player.X, w.Player.Y, w.Player.Hunger = 500, 100, 40
	w.Companion.Health = 1
	w.Progress.Score = 75
	w.Progress.KillsThisLevel = defs.RequiredKills(1)

	prog.Update(w)

	if w.Progress.Level != 2 || w.Progress.KillsThisLevel != 0 {
		t.Fatalf("level %d kills %d, want 2 and 0", w.Progress.Level, w.Progress.KillsThisLevel)
	}
	if len(w.Grid.Tiles) == 0 {
		t.Fatal("grid not regenerated")
	}
	for i, tile := range w.Grid.Tiles {
		if tile.Destroyed {
			t.Fatalf("tile %d carried over destroyed", i)
		}
	}
	if len(w.Enemies) != 0 || len(w.Drops) != 0 {
		t.Error("enemies and drops should be cleared")
	}
	if w.Player.X != 100 || w.Player.Y != 300 || w.Player.Hunger != 100 {
		t.Errorf("player not reset: %+v", w.Player.Position)
	}
	if w.Companion.Health != w.Companion.MaxHealth || w.Companion.X != 130 {
		t.Errorf("companion not restored: %+v", w.Companion)
	}
	if w.Progress.Score != 75 || w.Progress.GameOver {
		t.Error("score must carry over and the run must continue")
	}
	if !hasEvent(w, event.LevelAdvanced) {
		t.Error("LevelAdvanced not emitted")
	}
}

func TestProgressionTerminalStates(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		kills    int
		health   float64
		wantOver bool
		wantWon  bool
		wantLvl  int
		event    event.EventType
	}{
		{"below quota", 3, 11, 50, false, false, 3, ""},
		{"victory past final level", 10, 50, 50, true, true, 10, event.GameWon},
		{"defeat", 4, 0, 0, true, false, 4, event.GameLost},
		{"defeat wins a tie", 10, 50, 0, true, false, 10, event.GameLost},
		{"defeat blocks advancing", 2, 8, 0, true, false, 2, event.GameLost},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld()
			w.Progress.Level = tt.level
			w.Progress.KillsThisLevel = tt.kills
			w.Player.Health = tt.health
			NewProgressionSystem(utils.NewPRNGService(1)).Update(w)
			if w.Progress.GameOver != tt.wantOver || w.Progress.Won != tt.wantWon || w.Progress.Level != tt.wantLvl {
				t.Errorf("over %v won %v level %d, want %v %v %d",
					w.Progress.GameOver, w.Progress.Won, w.Progress.Level, tt.wantOver, tt.wantWon, tt.wantLvl)
			}
			if tt.event != "" && !hasEvent(w, tt.event) {
				t.Errorf("%s not emitted", tt.event)
			}
		})
	}
}

func TestProgressionIgnoresEndedRun(t *testing.T) {
	w := newTestWorld()
	w.Progress.GameOver = true
	w.Progress.KillsThisLevel = 100
	NewProgressionSystem(utils.NewPRNGService(1)).Update(w)
	if w.Progress.Level != 1 || len(w.Events) != 0 {
		t.Error("ended run was advanced")
	}
}
