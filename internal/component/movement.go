// internal/component/movement.go
package component

import "math"

// Position is the top-left corner of an entity in pixels.
type Position struct {
	X, Y float64
}

// DistanceTo returns the euclidean distance between two positions.
func (p Position) DistanceTo(o Position) float64 {
	return math.Hypot(o.X-p.X, o.Y-p.Y)
}

// Facing is the direction the player last moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
	FacingUp
	FacingDown
)
