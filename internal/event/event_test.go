package event

import "testing"

type recorder struct {
	got []EventType
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	kills, all := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, kills)
	d.SubscribeAll(all)

	d.Dispatch(Event{Type: EnemyKilled})
	d.Dispatch(Event{Type: TileMined})

	if len(kills.got) != 1 || kills.got[0] != EnemyKilled {
		t.Errorf("typed listener got %v", kills.got)
	}
	if len(all.got) != 2 {
		t.Errorf("catch-all listener got %v", all.got)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.Subscribe(GameWon, r)
	d.Unsubscribe(GameWon, r)
	d.Dispatch(Event{Type: GameWon})
	if len(r.got) != 0 {
		t.Errorf("unsubscribed listener still received %v", r.got)
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(BlockPlaced, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: BlockPlaced})
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}
