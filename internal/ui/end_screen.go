// internal/ui/end_screen.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/entity"
	"go-robot-survivor/pkg/render"
)

const (
	endPanelW     = 420
	endPanelH     = 220
	endSlideSpeed = 20.0
	endTitleSize  = 40
	endDetailSize = 18
	endPromptSize = 14
)

// EndScreen is the victory or defeat panel. It slides up from the bottom of
// the screen when shown.
type EndScreen struct {
	currentY float64
	targetY  float64
}

// NewEndScreen creates a hidden end screen.
func NewEndScreen() *EndScreen {
	return &EndScreen{currentY: config.ScreenHeight, targetY: config.ScreenHeight}
}

// Show starts the slide-in.
func (e *EndScreen) Show() {
	e.currentY = config.ScreenHeight
	e.targetY = (config.ScreenHeight - endPanelH) / 2
}

// Hide moves the panel back off screen immediately.
func (e *EndScreen) Hide() {
	e.currentY = config.ScreenHeight
	e.targetY = config.ScreenHeight
}

// Settled reports whether the slide animation has finished.
func (e *EndScreen) Settled() bool {
	return e.currentY == e.targetY
}

// Update advances the slide animation by one frame.
func (e *EndScreen) Update() {
	if e.currentY == e.targetY {
		return
	}
	diff := e.targetY - e.currentY
	if math.Abs(diff) < endSlideSpeed {
		e.currentY = e.targetY
		return
	}
	e.currentY += math.Copysign(endSlideSpeed, diff)
}

// Draw renders the result of the finished run in w.
func (e *EndScreen) Draw(s render.Surface, w *entity.World) {
	if s == nil || w == nil {
		return
	}
	s.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)

	x := float64(config.ScreenWidth-endPanelW) / 2
	y := e.currentY
	s.FillRect(x, y, endPanelW, endPanelH, config.MenuBackColor)
	s.StrokeRect(x, y, endPanelW, endPanelH, 2, config.MenuBorderColor)

	title, clr := "GAME OVER", config.TextBadColor
	if w.Progress.Won {
		title, clr = "VICTORY!", config.VictoryColor
	}
	centre := func(str string, size, baseline float64, c color.Color) {
		s.Text(str, x+(endPanelW-s.TextWidth(str, size))/2, baseline, size, c)
	}
	centre(title, endTitleSize, y+60, clr)
	centre(fmt.Sprintf("Score: %d", w.Progress.Score), endDetailSize, y+110, config.TextLightColor)
	centre(fmt.Sprintf("Level reached: %d", w.Progress.Level), endDetailSize, y+140, config.TextLightColor)
	centre("Press Enter to play again", endPromptSize, y+190, config.TextMutedColor)
}
