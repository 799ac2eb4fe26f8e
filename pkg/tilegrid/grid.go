// pkg/tilegrid/grid.go
package tilegrid

import (
	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
)

// Tile is one cell of the world. Destroyed tiles stay in the slice as
// tombstones so indices remain stable for the rest of a level.
type Tile struct {
	X, Y      float64 // top-left corner in pixels
	Kind      defs.TileKind
	Destroyed bool
}

// Rect returns the full cell rectangle of the tile.
func (t Tile) Rect() Rect {
	return Rect{X: t.X, Y: t.Y, W: config.TileSize, H: config.TileSize}
}

// Center returns the centre of the tile cell.
func (t Tile) Center() (float64, float64) {
	return t.X + config.TileSize/2, t.Y + config.TileSize/2
}

// Grid is the tile collection of the current level.
type Grid struct {
	Cols, Rows int
	Tiles      []Tile
}

// NewGrid creates an empty grid sized to the screen.
func NewGrid() *Grid {
	return &Grid{
		Cols: config.ScreenWidth / int(config.TileSize),
		Rows: config.ScreenHeight / int(config.TileSize),
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	c := *g
	c.Tiles = append([]Tile(nil), g.Tiles...)
	return &c
}

// Live counts the tiles that are not destroyed.
func (g *Grid) Live() int {
	n := 0
	for _, t := range g.Tiles {
		if !t.Destroyed {
			n++
		}
	}
	return n
}

// CellAt converts a pixel position into grid coordinates.
func (g *Grid) CellAt(x, y float64) (col, row int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	col, row = int(x/config.TileSize), int(y/config.TileSize)
	if col >= g.Cols || row >= g.Rows {
		return 0, 0, false
	}
	return col, row, true
}

// Occupied reports whether a live tile sits in the given cell.
func (g *Grid) Occupied(col, row int) bool {
	x, y := float64(col)*config.TileSize, float64(row)*config.TileSize
	for _, t := range g.Tiles {
		if !t.Destroyed && t.X == x && t.Y == y {
			return true
		}
	}
	return false
}

// Place appends a tile of the given kind to an empty in-bounds cell.
// It returns false and leaves the grid untouched otherwise.
func (g *Grid) Place(col, row int, kind defs.TileKind) bool {
	if col < 0 || row < 0 || col >= g.Cols || row >= g.Rows {
		return false
	}
	if g.Occupied(col, row) {
		return false
	}
	g.Tiles = append(g.Tiles, Tile{
		X:    float64(col) * config.TileSize,
		Y:    float64(row) * config.TileSize,
		Kind: kind,
	})
	return true
}

// CellRect returns the pixel rectangle of a cell.
func CellRect(col, row int) Rect {
	return Rect{
		X: float64(col) * config.TileSize,
		Y: float64(row) * config.TileSize,
		W: config.TileSize,
		H: config.TileSize,
	}
}
