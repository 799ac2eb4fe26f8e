// internal/component/crafting.go
package component

import "go-robot-survivor/internal/defs"

// Inventory counts raw resources. Counts never go negative.
type Inventory [defs.ResourceCount]int

// StartingInventory is what a new game begins with.
func StartingInventory() Inventory {
	var inv Inventory
	inv[defs.Wood] = 5
	inv[defs.Stone] = 3
	return inv
}

// Add increases a count. Non-positive amounts are ignored.
func (inv *Inventory) Add(r defs.Resource, n int) {
	if n > 0 {
		inv[r] += n
	}
}

// Has reports whether every ingredient is available.
func (inv *Inventory) Has(cost []defs.Ingredient) bool {
	for _, ing := range cost {
		if inv[ing.Resource] < ing.Amount {
			return false
		}
	}
	return true
}

// Take removes all ingredients atomically. It changes nothing and returns
// false when any of them is missing.
func (inv *Inventory) Take(cost []defs.Ingredient) bool {
	if !inv.Has(cost) {
		return false
	}
	for _, ing := range cost {
		inv[ing.Resource] -= ing.Amount
	}
	return true
}
