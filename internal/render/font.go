package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontCache hands out faces of the embedded Go fonts, one per size and weight
type FontCache struct {
	once    sync.Once
	err     error
	regular *text.FontSource
	bold    *text.FontSource

	mu    sync.Mutex
	faces map[faceKey]text.Face
}

type faceKey struct {
	size int
	bold bool
}

var defaultFonts = &FontCache{}

// DefaultFonts returns the process-wide font cache
func DefaultFonts() *FontCache {
	return defaultFonts
}

// Face returns the face at size pixels
func (fc *FontCache) Face(size int, bold bool) (text.Face, error) {
	fc.once.Do(fc.load)
	if fc.err != nil {
		return nil, fc.err
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	key := faceKey{size: size, bold: bold}
	if face, ok := fc.faces[key]; ok {
		return face, nil
	}

	source := fc.regular
	if bold {
		source = fc.bold
	}
	face := source.Face(float64(size))
	fc.faces[key] = face
	return face, nil
}

func (fc *FontCache) load() {
	fc.faces = make(map[faceKey]text.Face)

	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		fc.err = fmt.Errorf("parse bold font: %w", err)
		return
	}
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		fc.err = fmt.Errorf("parse regular font: %w", err)
		return
	}
	fc.bold = bold
	fc.regular = regular
}
