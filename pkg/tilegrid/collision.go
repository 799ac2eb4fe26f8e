// pkg/tilegrid/collision.go
package tilegrid

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether the two rectangles intersect. Touching edges do
// not count as overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Blocked is true when r overlaps any live tile.
func Blocked(r Rect, tiles []Tile) bool {
	for _, t := range tiles {
		if t.Destroyed {
			continue
		}
		if r.Overlaps(t.Rect()) {
			return true
		}
	}
	return false
}

// Blocked is true when r overlaps any live tile of the grid.
func (g *Grid) Blocked(r Rect) bool {
	if g == nil {
		return false
	}
	return Blocked(r, g.Tiles)
}

// Slide moves r towards (nx, ny) one axis at a time. X is tested first
// against the current Y, then Y against the resulting X, so an entity keeps
// moving along an obstacle when only one axis is blocked.
func (g *Grid) Slide(r Rect, nx, ny float64) (x, y float64) {
	x, y = r.X, r.Y
	if !g.Blocked(Rect{X: nx, Y: y, W: r.W, H: r.H}) {
		x = nx
	}
	if !g.Blocked(Rect{X: x, Y: ny, W: r.W, H: r.H}) {
		y = ny
	}
	return x, y
}
