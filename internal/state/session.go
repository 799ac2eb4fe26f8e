// internal/state/session.go
package state

import (
	"go-robot-survivor/internal/app"
	"go-robot-survivor/internal/ui"
	"go-robot-survivor/pkg/render"
)

// Session is what the states share: the game and the widgets that draw it.
type Session struct {
	Game     *app.Game
	World    *render.WorldRenderer
	HUD      *ui.HUD
	Menu     *ui.MainMenu
	Crafting *ui.CraftingMenu
	End      *ui.EndScreen

	quit bool
}

// NewSession wires the widgets around game.
func NewSession(game *app.Game) *Session {
	return &Session{
		Game:     game,
		World:    render.NewWorldRenderer(),
		HUD:      ui.NewHUD(),
		Menu:     ui.NewMainMenu(),
		Crafting: ui.NewCraftingMenu(100, 40, 600, 470),
		End:      ui.NewEndScreen(),
	}
}

// RequestQuit asks the frontend to shut down.
func (s *Session) RequestQuit() {
	s.quit = true
}

// QuitRequested reports whether the user chose to quit.
func (s *Session) QuitRequested() bool {
	return s.quit
}

// drawField draws the play field and the HUD of the current world.
func (s *Session) drawField(surface render.Surface) {
	w := s.Game.World()
	s.World.Draw(surface, w)
	s.HUD.Draw(surface, w)
}

// Start creates a machine showing the main menu, or straight in a run at
// level when skipMenu is set.
func Start(sess *Session, level int, skipMenu bool) *StateMachine {
	sm := NewStateMachine()
	if skipMenu {
		sess.Game.Start(level)
		sm.SetState(NewPlayState(sm, sess))
		return sm
	}
	sess.Menu.Level = level
	sm.SetState(NewMenuState(sm, sess))
	return sm
}
