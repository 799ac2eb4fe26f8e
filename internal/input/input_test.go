package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestSet(t *testing.T) {
	s := NewSet(Left, Mine)
	if !s.Has(Left) || !s.Has(Mine) || s.Has(Right) {
		t.Fatalf("unexpected membership: %016b", s)
	}
	s = s.Without(Left).With(PlaceBlock)
	if s.Has(Left) || !s.Has(PlaceBlock) {
		t.Errorf("With/Without failed: %016b", s)
	}
	if int(ActionCount) > 16 {
		t.Fatal("Set cannot hold every action")
	}
}

func TestHolder(t *testing.T) {
	h := NewHolder(3)
	h.Press(Up)
	for i := 0; i < 3; i++ {
		if !h.Held().Has(Up) {
			t.Fatalf("tick %d: Up should still be held", i)
		}
		h.Tick()
	}
	if h.Held().Has(Up) {
		t.Error("Up should be released after the hold window")
	}

	h.Press(Mine)
	h.Tick()
	h.Press(Mine) // autorepeat refreshes the window
	h.Tick()
	h.Tick()
	if !h.Held().Has(Mine) {
		t.Error("repeated press should extend the hold")
	}
	h.Release(Mine)
	if h.Held() != 0 {
		t.Errorf("Held() = %016b after release, want empty", h.Held())
	}
}

func TestActionString(t *testing.T) {
	if Mine.String() != "mine" || Action(99).String() != "unknown" {
		t.Error("unexpected action names")
	}
}

func TestTerminalAction(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
		ok   bool
	}{
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Left, true},
		{"lowercase rune", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), Up, true},
		{"uppercase rune", tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModShift), ToggleCraft, true},
		{"space mines", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Mine, true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Confirm, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TerminalAction(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("TerminalAction = %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}
