// internal/input/terminal.go
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var terminalKeys = map[tcell.Key]Action{
	tcell.KeyLeft:   Left,
	tcell.KeyRight:  Right,
	tcell.KeyUp:     Up,
	tcell.KeyDown:   Down,
	tcell.KeyEscape: Dismiss,
	tcell.KeyTab:    CycleBlock,
	tcell.KeyEnter:  Confirm,
}

var terminalRunes = map[rune]Action{
	'a': Left, 'h': Left,
	'd': Right, 'l': Right,
	'w': Up, 'k': Up,
	's': Down, 'j': Down,
	' ': Mine,
	'c': ToggleCraft,
	'q': CycleBlock,
	'e': PlaceBlock, 'f': PlaceBlock,
}

// TerminalAction maps a terminal key event to an action.
func TerminalAction(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := terminalRunes[unicode.ToLower(ev.Rune())]
		return a, ok
	}
	a, ok := terminalKeys[ev.Key()]
	return a, ok
}

