// pkg/render/surface.go
package render

import "image/color"

// Surface is the drawing target of the renderer and the UI. Coordinates are
// in logical screen pixels (config.ScreenWidth x config.ScreenHeight); text is
// positioned by its baseline.
type Surface interface {
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	VerticalGradient(x, y, w, h float64, top, bottom color.RGBA)
	Text(s string, x, y, size float64, c color.Color)
	TextWidth(s string, size float64) float64
}
