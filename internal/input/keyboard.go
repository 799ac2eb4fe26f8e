// internal/input/keyboard.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyMap binds physical keys to actions. Several keys may share an action.
var KeyMap = map[ebiten.Key]Action{
	ebiten.KeyArrowLeft:  Left,
	ebiten.KeyA:          Left,
	ebiten.KeyArrowRight: Right,
	ebiten.KeyD:          Right,
	ebiten.KeyArrowUp:    Up,
	ebiten.KeyW:          Up,
	ebiten.KeyArrowDown:  Down,
	ebiten.KeyS:          Down,
	ebiten.KeySpace:      Mine,
	ebiten.KeyC:          ToggleCraft,
	ebiten.KeyEscape:     Dismiss,
	ebiten.KeyQ:          CycleBlock,
	ebiten.KeyTab:        CycleBlock,
	ebiten.KeyE:          PlaceBlock,
	ebiten.KeyF:          PlaceBlock,
	ebiten.KeyEnter:      Confirm,
}

// Held reads the actions whose keys are currently down.
func Held() Set {
	var s Set
	for key, a := range KeyMap {
		if ebiten.IsKeyPressed(key) {
			s = s.With(a)
		}
	}
	return s
}

// JustPressed reads the actions whose keys went down this frame.
func JustPressed() Set {
	var s Set
	for key, a := range KeyMap {
		if inpututil.IsKeyJustPressed(key) {
			s = s.With(a)
		}
	}
	return s
}
