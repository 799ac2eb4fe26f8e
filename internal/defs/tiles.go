// internal/defs/tiles.go
package defs

import "image/color"

// TileKind is the type tag of a world tile.
type TileKind int

const (
	Grass TileKind = iota
	DirtTile
	StoneTile
	IronOreTile
	DiamondOreTile
	WoodTile
	ObsidianTile
	CoalOreTile
	TileKindCount
)

// TileDefinition holds the static data of a tile kind.
type TileDefinition struct {
	Name      string
	Color     color.RGBA
	Breakable bool
	Hardness  float64
	Drop      Resource
}

// TileDefs is indexed by TileKind.
var TileDefs = [TileKindCount]TileDefinition{
	Grass:          {Name: "GRASS", Color: color.RGBA{0x4a, 0x9c, 0x2d, 0xff}, Breakable: true, Hardness: 1, Drop: Dirt},
	DirtTile:       {Name: "DIRT", Color: color.RGBA{0x8b, 0x45, 0x13, 0xff}, Breakable: true, Hardness: 1, Drop: Dirt},
	StoneTile:      {Name: "STONE", Color: color.RGBA{0x66, 0x66, 0x66, 0xff}, Breakable: true, Hardness: 2, Drop: Stone},
	IronOreTile:    {Name: "IRON_ORE", Color: color.RGBA{0xcd, 0x85, 0x3f, 0xff}, Breakable: true, Hardness: 3, Drop: IronOre},
	DiamondOreTile: {Name: "DIAMOND_ORE", Color: color.RGBA{0xb9, 0xf2, 0xff, 0xff}, Breakable: true, Hardness: 5, Drop: Diamond},
	WoodTile:       {Name: "WOOD", Color: color.RGBA{0xda, 0xa5, 0x20, 0xff}, Breakable: true, Hardness: 1.5, Drop: Wood},
	ObsidianTile:   {Name: "OBSIDIAN", Color: color.RGBA{0x1a, 0x1a, 0x1a, 0xff}, Breakable: true, Hardness: 8, Drop: Obsidian},
	CoalOreTile:    {Name: "COAL_ORE", Color: color.RGBA{0x2f, 0x2f, 0x2f, 0xff}, Breakable: true, Hardness: 2, Drop: Coal},
}

// PlaceableTiles is the block-cycle order used for placement.
var PlaceableTiles = []TileKind{DirtTile, StoneTile, WoodTile, CoalOreTile, ObsidianTile}

func (k TileKind) String() string {
	if k < 0 || k >= TileKindCount {
		return "UNKNOWN"
	}
	return TileDefs[k].Name
}

// Def returns the static definition of the kind.
func (k TileKind) Def() TileDefinition {
	return TileDefs[k]
}

// NextPlaceable returns the kind after k in PlaceableTiles, wrapping around.
// A kind that is not placeable maps to the first entry.
func NextPlaceable(k TileKind) TileKind {
	for i, p := range PlaceableTiles {
		if p == k {
			return PlaceableTiles[(i+1)%len(PlaceableTiles)]
		}
	}
	return PlaceableTiles[0]
}
