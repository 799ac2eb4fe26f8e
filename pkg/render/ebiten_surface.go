// pkg/render/ebiten_surface.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-robot-survivor/pkg/logger"
)

var log = logger.For("render")

// gradientBand is the height of one strip of a vertical gradient.
const gradientBand = 4.0

// EbitenSurface draws onto an ebiten image.
type EbitenSurface struct {
	Image *ebiten.Image
	fonts *FontCache
}

// NewEbitenSurface wraps the frame image. Text is skipped when fonts is nil.
func NewEbitenSurface(img *ebiten.Image, fonts *FontCache) *EbitenSurface {
	return &EbitenSurface{Image: img, fonts: fonts}
}

func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.Image, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSurface) StrokeRect(x, y, w, h, width float64, c color.Color) {
	vector.StrokeRect(s.Image, float32(x), float32(y), float32(w), float32(h), float32(width), c, false)
}

func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.Image, float32(cx), float32(cy), float32(r), c, true)
}

func (s *EbitenSurface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	vector.StrokeCircle(s.Image, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *EbitenSurface) VerticalGradient(x, y, w, h float64, top, bottom color.RGBA) {
	for band := 0.0; band < h; band += gradientBand {
		c := MixColor(top, bottom, (band+gradientBand/2)/h)
		vector.DrawFilledRect(s.Image, float32(x), float32(y+band), float32(w), float32(min(gradientBand, h-band)), c, false)
	}
}

func (s *EbitenSurface) Text(str string, x, y, size float64, c color.Color) {
	if s.fonts == nil {
		return
	}
	face, err := s.fonts.Face(size)
	if err != nil {
		log.WithError(err).Warn("text skipped")
		return
	}
	text.Draw(s.Image, str, face, int(x), int(y), c)
}

func (s *EbitenSurface) TextWidth(str string, size float64) float64 {
	if s.fonts == nil {
		return 0
	}
	face, err := s.fonts.Face(size)
	if err != nil {
		return 0
	}
	return float64(text.BoundString(face, str).Dx())
}
