package mocks

import (
	"github.com/user/photoprint/pkg/ports"
)

// TextMeasurer is a mock implementation of ports.TextMeasurer. The default
// behavior is linear: width = len(text) * fontSize * WidthFactor, which makes
// auto-fit convergence deterministic in tests.
type TextMeasurer struct {
	WidthFactor float64

	MeasureWidthFunc func(text string, fontSize float64, fontFamily string) float64
}

// NewTextMeasurer creates a measurer with a 0.5 width factor (each glyph is
// half the font size wide).
func NewTextMeasurer() *TextMeasurer {
	return &TextMeasurer{WidthFactor: 0.5}
}

func (m *TextMeasurer) MeasureWidth(text string, fontSize float64, fontFamily string) float64 {
	if m.MeasureWidthFunc != nil {
		return m.MeasureWidthFunc(text, fontSize, fontFamily)
	}
	return float64(len([]rune(text))) * fontSize * m.WidthFactor
}

var _ ports.TextMeasurer = (*TextMeasurer)(nil)
