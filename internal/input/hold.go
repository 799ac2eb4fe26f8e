// internal/input/hold.go
package input

// Holder turns discrete key presses into held actions. Terminals report
// presses and autorepeat but never releases, so an action stays held for a
// fixed number of ticks after its most recent press.
type Holder struct {
	window    int
	remaining [ActionCount]int
}

// NewHolder creates a holder keeping each press alive for window ticks.
func NewHolder(window int) *Holder {
	return &Holder{window: max(window, 1)}
}

// Press marks a as held for the next window ticks.
func (h *Holder) Press(a Action) {
	if a >= 0 && a < ActionCount {
		h.remaining[a] = h.window
	}
}

// Release drops a immediately.
func (h *Holder) Release(a Action) {
	if a >= 0 && a < ActionCount {
		h.remaining[a] = 0
	}
}

// Held returns the current set.
func (h *Holder) Held() Set {
	var s Set
	for a, n := range h.remaining {
		if n > 0 {
			s = s.With(Action(a))
		}
	}
	return s
}

// Tick ages every held action by one tick.
func (h *Holder) Tick() {
	for a := range h.remaining {
		if h.remaining[a] > 0 {
			h.remaining[a]--
		}
	}
}
