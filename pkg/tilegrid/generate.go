// pkg/tilegrid/generate.go
package tilegrid

import (
	"math"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/internal/utils"
)

// oreTier substitutes a sub-surface tile with probability Chance once the
// level reaches MinLevel. Tiers are rolled in order and later ones win.
type oreTier struct {
	MinLevel int
	Chance   float64
	Kind     defs.TileKind
}

var oreTiers = []oreTier{
	{MinLevel: 2, Chance: 0.3, Kind: defs.StoneTile},
	{MinLevel: 3, Chance: 0.15, Kind: defs.IronOreTile},
	{MinLevel: 5, Chance: 0.05, Kind: defs.DiamondOreTile},
	{MinLevel: 7, Chance: 0.1, Kind: defs.ObsidianTile},
}

const (
	subSurfaceRows  = 3
	outcropNoise    = 0.3
	outcropBase     = 0.05
	outcropPerLevel = 0.01
	woodMaxLevel    = 2
)

// Generate builds the tile grid for a level. The bottom row is grass, the
// three rows above it are dirt with level-gated ore substitution and the
// remaining rows hold sparse wood or stone outcrops.
func Generate(level int, src utils.Source) *Grid {
	g := NewGrid()
	for x := 0; x < g.Cols; x++ {
		for y := 0; y < g.Rows; y++ {
			noise := math.Sin(float64(x)*0.3)*math.Cos(float64(y)*0.2) + src.Float64()*0.5
			switch {
			case y == g.Rows-1:
				g.Tiles = append(g.Tiles, newTile(x, y, defs.Grass))
			case y > g.Rows-1-subSurfaceRows:
				kind := defs.DirtTile
				for _, tier := range oreTiers {
					if level >= tier.MinLevel && src.Float64() < tier.Chance {
						kind = tier.Kind
					}
				}
				g.Tiles = append(g.Tiles, newTile(x, y, kind))
			case noise > outcropNoise && src.Float64() < outcropBase+float64(level)*outcropPerLevel:
				kind := defs.StoneTile
				if level <= woodMaxLevel {
					kind = defs.WoodTile
				}
				g.Tiles = append(g.Tiles, newTile(x, y, kind))
			}
		}
	}
	return g
}

func newTile(col, row int, kind defs.TileKind) Tile {
	return Tile{X: float64(col) * config.TileSize, Y: float64(row) * config.TileSize, Kind: kind}
}
