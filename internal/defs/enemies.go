// internal/defs/enemies.go
package defs

import "image/color"

// EnemyKind identifies an enemy type. Kinds are ordered by strength,
// the spawner relies on that order.
type EnemyKind int

const (
	Zombie EnemyKind = iota
	Skeleton
	Creeper
	Enderman
	Dragon
	EnemyKindCount
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Name   string
	Color  color.RGBA
	Health float64
	Damage float64
	Speed  float64
	Size   float64
	Armor  float64
}

// EnemyDefs is the library of all enemy definitions, indexed by kind.
var EnemyDefs = [EnemyKindCount]EnemyDefinition{
	Zombie:   {Name: "ZOMBIE", Color: color.RGBA{0x22, 0x8b, 0x22, 0xff}, Health: 8, Damage: 4, Speed: 2.3, Size: 28, Armor: 0},
	Skeleton: {Name: "SKELETON", Color: color.RGBA{0xf5, 0xf5, 0xdc, 0xff}, Health: 6, Damage: 5, Speed: 2.4, Size: 26, Armor: 1},
	Creeper:  {Name: "CREEPER", Color: color.RGBA{0x00, 0xff, 0x00, 0xff}, Health: 10, Damage: 8, Speed: 2.5, Size: 30, Armor: 1},
	Enderman: {Name: "ENDERMAN", Color: color.RGBA{0x1a, 0x1a, 0x1a, 0xff}, Health: 12, Damage: 6, Speed: 2.6, Size: 34, Armor: 2},
	Dragon:   {Name: "DRAGON", Color: color.RGBA{0x8b, 0x00, 0x8b, 0xff}, Health: 15, Damage: 10, Speed: 2.7, Size: 48, Armor: 3},
}

func (k EnemyKind) String() string {
	if k < 0 || k >= EnemyKindCount {
		return "UNKNOWN"
	}
	return EnemyDefs[k].Name
}

// Def returns the static definition of the kind.
func (k EnemyKind) Def() EnemyDefinition {
	return EnemyDefs[k]
}
