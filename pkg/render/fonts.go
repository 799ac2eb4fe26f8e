// pkg/render/fonts.go
package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontCache lazily builds one face per text size from the embedded Go
// Regular font.
type FontCache struct {
	mu    sync.Mutex
	tt    *sfnt.Font
	faces map[float64]font.Face
}

// NewFontCache parses the embedded font.
func NewFontCache() (*FontCache, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &FontCache{tt: tt, faces: make(map[float64]font.Face)}, nil
}

// Face returns the face for size, creating it on first use.
func (fc *FontCache) Face(size float64) (font.Face, error) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	if f, ok := fc.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.0fpt: %w", size, err)
	}
	fc.faces[size] = f
	return f, nil
}
