// internal/component/drop.go
package component

import "go-robot-survivor/internal/defs"

// Drop is a resource lying on the ground waiting to be picked up.
type Drop struct {
	ID EntityID
	Position
	Item      defs.Resource
	CreatedAt int64 // logical ms
}
