// Package ggmeasurer measures text with the gg library for font auto-fitting.
package ggmeasurer

import (
	"strings"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/photoprint/pkg/ports"
)

// Measurer implements ports.TextMeasurer with truetype faces. Families are
// registered by name; unknown families measure with the bundled fallback face
// so auto-fitting never fails outright.
type Measurer struct {
	mu       sync.Mutex
	fonts    map[string]*truetype.Font
	fallback *truetype.Font
}

// New creates a Measurer with only the fallback face loaded.
func New() *Measurer {
	// goregular always parses; ignore the impossible error.
	fallback, _ := truetype.Parse(goregular.TTF)
	return &Measurer{
		fonts:    make(map[string]*truetype.Font),
		fallback: fallback,
	}
}

// RegisterFont parses TTF data and makes it available under the family name.
func (m *Measurer) RegisterFont(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.fonts[normalizeFamily(family)] = f
	m.mu.Unlock()
	return nil
}

// MeasureWidth returns the rendered width of text at fontSize in fontFamily.
func (m *Measurer) MeasureWidth(text string, fontSize float64, fontFamily string) float64 {
	if text == "" {
		return 0
	}
	face := truetype.NewFace(m.lookup(fontFamily), &truetype.Options{Size: fontSize})
	dc := gg.NewContext(1, 1)
	dc.SetFontFace(face)
	w, _ := dc.MeasureString(text)
	return w
}

func (m *Measurer) lookup(family string) *truetype.Font {
	m.mu.Lock()
	defer m.mu.Unlock()
	// CSS-style family lists ("Dancing Script, cursive") resolve by first match.
	for _, name := range strings.Split(family, ",") {
		if f, ok := m.fonts[normalizeFamily(name)]; ok {
			return f
		}
	}
	return m.fallback
}

func normalizeFamily(name string) string {
	return strings.ToLower(strings.Trim(strings.TrimSpace(name), `'"`))
}

// Ensure Measurer implements ports.TextMeasurer
var _ ports.TextMeasurer = (*Measurer)(nil)
