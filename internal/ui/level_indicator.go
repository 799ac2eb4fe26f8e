// internal/ui/level_indicator.go
package ui

import (
	"strings"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/defs"
	"go-robot-survivor/pkg/render"
)

// LevelIndicator shows the current level in Roman numerals, centred on X.
type LevelIndicator struct {
	X, Y     float64
	FontSize float64
}

// NewLevelIndicator creates a new level indicator.
func NewLevelIndicator(x, y, fontSize float64) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y, FontSize: fontSize}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders the indicator with a one pixel outline. The final level is
// drawn in the victory colour.
func (i *LevelIndicator) Draw(s render.Surface, level int) {
	label := toRoman(level)
	if label == "" {
		return
	}
	textColor := config.TextLightColor
	if level == defs.FinalLevel {
		textColor = config.VictoryColor
	}
	x := i.X - s.TextWidth(label, i.FontSize)/2
	for dy := -1.0; dy <= 1; dy++ {
		for dx := -1.0; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			s.Text(label, x+dx, i.Y+dy, i.FontSize, config.TextDarkColor)
		}
	}
	s.Text(label, x, i.Y, i.FontSize, textColor)
}
