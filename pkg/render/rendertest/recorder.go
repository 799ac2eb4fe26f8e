// Package rendertest provides a Surface that records draw calls instead of
// drawing them.
package rendertest

import (
	"image/color"
	"strings"
)

// Op is one recorded draw call.
type Op struct {
	Kind       string // fill, stroke, circle, ring, gradient, text
	X, Y, W, H float64
	Color      color.Color
	Text       string
	Size       float64
}

// Recorder implements render.Surface. Text is measured at a fixed width per
// rune times the text size.
type Recorder struct {
	Ops []Op
}

// CharWidth is the advance of one rune at size 1.
const CharWidth = 0.5

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, rad float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, W: rad, H: rad, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, rad, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "ring", X: cx, Y: cy, W: rad, H: rad, Color: c})
}

func (r *Recorder) VerticalGradient(x, y, w, h float64, top, bottom color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: "gradient", X: x, Y: y, W: w, H: h, Color: top})
}

func (r *Recorder) Text(s string, x, y, size float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Size: size, Color: c})
}

func (r *Recorder) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * CharWidth
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of calls of kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// FindText returns the first text call containing sub.
func (r *Recorder) FindText(sub string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == "text" && strings.Contains(op.Text, sub) {
			return op, true
		}
	}
	return Op{}, false
}

// FindRect returns the first fill at exactly (x, y).
func (r *Recorder) FindRect(x, y float64) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == "fill" && op.X == x && op.Y == y {
			return op, true
		}
	}
	return Op{}, false
}

// FillsAt returns every fill at exactly (x, y), in draw order.
func (r *Recorder) FillsAt(x, y float64) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == "fill" && op.X == x && op.Y == y {
			out = append(out, op)
		}
	}
	return out
}
