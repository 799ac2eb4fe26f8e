// pkg/render/color.go
package render

import (
	"image/color"

	"go-robot-survivor/internal/config"
	"go-robot-survivor/internal/utils"
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// WithAlpha returns c made translucent with opacity a in [0,1].
func WithAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(utils.Clamp(a, 0, 1) * 255)}
}

// MixColor interpolates between a and b channel by channel.
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	t = utils.Clamp(t, 0, 1)
	ch := func(x, y uint8) uint8 {
		return uint8(utils.Lerp(float64(x), float64(y), t) + 0.5)
	}
	return color.RGBA{R: ch(a.R, b.R), G: ch(a.G, b.G), B: ch(a.B, b.B), A: ch(a.A, b.A)}
}

// SkyColors returns the top and bottom stops of the background gradient for
// a day/night phase.
func SkyColors(dayNight float64) (top, bottom color.RGBA) {
	if dayNight <= config.NightThreshold {
		return config.SkyDayTop, config.SkyDayBottom
	}
	i := (dayNight - config.NightThreshold) / (config.DayNightCycle - config.NightThreshold)
	top = color.RGBA{
		R: uint8(20 - i*10),
		G: uint8(20 - i*10),
		B: uint8(60 - i*20),
		A: 0xff,
	}
	return top, config.SkyNightBottom
}
