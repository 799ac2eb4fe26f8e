// internal/ui/button.go
package ui

import (
	"image/color"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/pkg/render"
)

// Button is a keyboard-selectable menu entry.
type Button struct {
	X, Y, W, H float64
	Text       string
	FontSize   float64
}

// NewButton creates a new button.
func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{X: x, Y: y, W: w, H: h, Text: text, FontSize: 24}
}

// Draw renders the button, highlighted when selected.
func (b *Button) Draw(s render.Surface, selected bool) {
	var bg color.Color = config.MenuBackColor
	if selected {
		bg = config.MenuSelectColor
	}
	s.FillRect(b.X, b.Y, b.W, b.H, bg)
	s.StrokeRect(b.X, b.Y, b.W, b.H, 2, config.MenuBorderColor)

	tw := s.TextWidth(b.Text, b.FontSize)
	tx := b.X + (b.W-tw)/2
	ty := b.Y + (b.H+b.FontSize)/2 - 4
	s.Text(b.Text, tx, ty, b.FontSize, config.TextLightColor)
}
