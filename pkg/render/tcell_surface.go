// pkg/render/tcell_surface.go
package render

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"go-robot-survivor/internal/config"
)

// TcellSurface maps the logical screen onto a terminal grid. Every cell
// covers a block of logical pixels; outlines are not drawn since a cell is
// too coarse for them.
type TcellSurface struct {
	Screen     tcell.Screen
	cols, rows int
}

// NewTcellSurface wraps an initialised screen.
func NewTcellSurface(screen tcell.Screen) *TcellSurface {
	s := &TcellSurface{Screen: screen}
	s.Resize()
	return s
}

// Resize picks up the current terminal size. Call it on resize events.
func (s *TcellSurface) Resize() {
	s.cols, s.rows = s.Screen.Size()
}

func (s *TcellSurface) scaleX() float64 { return float64(s.cols) / config.ScreenWidth }
func (s *TcellSurface) scaleY() float64 { return float64(s.rows) / config.ScreenHeight }

// span converts a logical interval to the cells it touches. Anything with a
// positive size covers at least one cell.
func span(from, size, scale float64, limit int) (int, int) {
	a := int(math.Floor(from * scale))
	b := int(math.Ceil((from+size)*scale)) - 1
	if b < a {
		b = a
	}
	return max(a, 0), min(b, limit-1)
}

func (s *TcellSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := span(x, w, s.scaleX(), s.cols)
	r0, r1 := span(y, h, s.scaleY(), s.rows)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

func (s *TcellSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {}

func (s *TcellSurface) FillCircle(cx, cy, r float64, c color.Color) {
	sx, sy := s.scaleX(), s.scaleY()
	c0, c1 := span(cx-r, 2*r, sx, s.cols)
	r0, r1 := span(cy-r, 2*r, sy, s.rows)
	painted := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			px := (float64(col) + 0.5) / sx
			py := (float64(row) + 0.5) / sy
			if math.Hypot(px-cx, py-cy) <= r {
				s.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		col, row := int(cx*sx), int(cy*sy)
		if col >= 0 && col < s.cols && row >= 0 && row < s.rows {
			s.paint(col, row, c)
		}
	}
}

func (s *TcellSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {}

func (s *TcellSurface) VerticalGradient(x, y, w, h float64, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := span(x, w, s.scaleX(), s.cols)
	r0, r1 := span(y, h, s.scaleY(), s.rows)
	for row := r0; row <= r1; row++ {
		t := 0.0
		if r1 > r0 {
			t = float64(row-r0) / float64(r1-r0)
		}
		c := MixColor(top, bottom, t)
		for col := c0; col <= c1; col++ {
			s.paint(col, row, c)
		}
	}
}

func (s *TcellSurface) Text(str string, x, y, size float64, c color.Color) {
	row := int((y - 1) * s.scaleY())
	if row < 0 || row >= s.rows {
		return
	}
	fg := toTcell(c)
	col := int(x * s.scaleX())
	for _, r := range str {
		if col >= s.cols {
			break
		}
		if col >= 0 {
			_, _, style, _ := s.Screen.GetContent(col, row)
			s.Screen.SetContent(col, row, r, nil, style.Foreground(fg))
		}
		col++
	}
}

func (s *TcellSurface) TextWidth(str string, size float64) float64 {
	if s.cols == 0 {
		return 0
	}
	return float64(len([]rune(str)) * config.ScreenWidth / s.cols)
}

// paint sets the background of one cell, blending translucent colours over
// what is already there.
func (s *TcellSurface) paint(col, row int, c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0 {
		return
	}
	_, _, style, _ := s.Screen.GetContent(col, row)
	bg := tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
	if n.A < 0xff {
		_, under, _ := style.Decompose()
		ur, ug, ub := under.RGB()
		if ur < 0 {
			ur, ug, ub = 0, 0, 0
		}
		a := float64(n.A) / 0xff
		blend := func(top uint8, below int32) int32 {
			return int32(float64(top)*a + float64(below)*(1-a))
		}
		bg = tcell.NewRGBColor(blend(n.R, ur), blend(n.G, ug), blend(n.B, ub))
	}
	s.Screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(bg))
}

func toTcell(c color.Color) tcell.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}
