// internal/input/input.go
package input

// Action is a logical input independent of the physical key.
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
	Mine
	ToggleCraft
	Dismiss
	CycleBlock
	PlaceBlock
	Confirm
	ActionCount
)

var actionNames = [ActionCount]string{
	"left", "right", "up", "down", "mine",
	"toggle_craft", "dismiss", "cycle_block", "place_block", "confirm",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// Set is the set of actions held during a tick.
type Set uint16

// NewSet builds a set from the given actions.
func NewSet(actions ...Action) Set {
	var s Set
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// Has reports whether a is held.
func (s Set) Has(a Action) bool {
	return s&(1<<uint(a)) != 0
}

// With returns s with a added.
func (s Set) With(a Action) Set {
	return s | 1<<uint(a)
}

// Without returns s with a removed.
func (s Set) Without(a Action) Set {
	return s &^ (1 << uint(a))
}

// Frame is the input of one update: the actions held down and the actions
// newly pressed since the previous update.
type Frame struct {
	Held    Set
	Pressed Set
}
