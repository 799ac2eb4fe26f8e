// internal/system/utils.go
package system

import (
	"math"

	"go-robot-survivor/internal/utils"
	"go-robot-survivor/pkg/logger"
)

var log = logger.For("system")

// ApplyArmor reduces damage by armor. A hit always deals at least 1.
func ApplyArmor(damage, armor float64) float64 {
	return math.Max(1, damage-armor)
}

// clampMeter keeps a survival meter inside [0, maxValue].
func clampMeter(v, maxValue float64) float64 {
	return utils.Clamp(v, 0, maxValue)
}
