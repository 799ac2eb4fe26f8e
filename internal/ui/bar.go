// internal/ui/bar.go
package ui

import (
	"image/color"

	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/render"
)

// Bar is a horizontal meter: a back rectangle with a fill proportional to a
// fraction.
type Bar struct {
	X, Y, W, H float64
	Back, Fill color.Color
}

// Draw renders the bar filled to frac, clamped to [0,1].
func (b Bar) Draw(s render.Surface, frac float64) {
	s.FillRect(b.X, b.Y, b.W, b.H, b.Back)
	s.FillRect(b.X, b.Y, b.W*utils.Clamp(frac, 0, 1), b.H, b.Fill)
}

// ratio returns v/limit, or 0 when limit is not positive.
func ratio(v, limit float64) float64 {
	if limit <= 0 {
		return 0
	}
	return v / limit
}
