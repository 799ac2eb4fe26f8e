// internal/ui/main_menu.go
package ui

import (
	"fmt"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/pkg/render"
)

// MenuItem identifies an entry of the main menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuLevel
	MenuQuit
	menuItemCount
)

var controlsHelp = []string{
	"Move: arrows / WASD",
	"Mine and attack: Space",
	"Craft: C     Place block: E     Cycle block: Q",
}

// MainMenu is the title screen with a start-level selector.
type MainMenu struct {
	Selected MenuItem
	Level    int
	buttons  [menuItemCount]*Button
}

// NewMainMenu creates the menu with level 1 selected.
func NewMainMenu() *MainMenu {
	const w, h = 260.0, 50.0
	x := (config.ScreenWidth - w) / 2
	m := &MainMenu{Level: 1}
	m.buttons[MenuStart] = NewButton(x, 220, w, h, "Start")
	m.buttons[MenuLevel] = NewButton(x, 290, w, h, "")
	m.buttons[MenuQuit] = NewButton(x, 360, w, h, "Quit")
	return m
}

// Move shifts the selection by delta, wrapping around.
func (m *MainMenu) Move(delta int) {
	n := int(menuItemCount)
	m.Selected = MenuItem(((int(m.Selected)+delta)%n + n) % n)
}

// AdjustLevel changes the start level when the level entry is selected.
func (m *MainMenu) AdjustLevel(delta int) {
	if m.Selected != MenuLevel {
		return
	}
	m.Level = max(1, min(m.Level+delta, defs.FinalLevel))
}

// Draw renders the title, the buttons and the controls help.
func (m *MainMenu) Draw(s render.Surface) {
	if s == nil {
		return
	}
	top, bottom := render.SkyColors(0)
	s.VerticalGradient(0, 0, config.ScreenWidth, config.ScreenHeight, top, bottom)

	title := "ROBOT BUDDY SURVIVOR"
	s.Text(title, (config.ScreenWidth-s.TextWidth(title, 40))/2, 140, 40, config.TextDarkColor)

	m.buttons[MenuLevel].Text = fmt.Sprintf("< Level %d >", m.Level)
	for i, b := range m.buttons {
		b.Draw(s, MenuItem(i) == m.Selected)
	}
	for i, line := range controlsHelp {
		s.Text(line, (config.ScreenWidth-s.TextWidth(line, 14))/2, 460+float64(i)*22, 14, config.TextDarkColor)
	}
}
