// internal/defs/loot_tables.go
package defs

// LootEntry is one row of a drop table: the resource and its relative weight.
type LootEntry struct {
	Item   Resource
	Weight int
}

// LootTables maps each enemy kind to its drop table. Order matters:
// weighted selection walks the entries in slice order.
var LootTables = [EnemyKindCount][]LootEntry{
	Zombie:   {{Item: Wood, Weight: 40}, {Item: Stone, Weight: 30}},
	Skeleton: {{Item: Stone, Weight: 35}, {Item: Coal, Weight: 25}},
	Creeper:  {{Item: Coal, Weight: 40}, {Item: IronOre, Weight: 20}},
	Enderman: {{Item: IronOre, Weight: 30}, {Item: Diamond, Weight: 15}},
	Dragon:   {{Item: Diamond, Weight: 40}, {Item: Obsidian, Weight: 30}},
}
