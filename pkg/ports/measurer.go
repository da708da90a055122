package ports

// TextMeasurer abstracts text width measurement for font auto-fitting.
type TextMeasurer interface {
	// MeasureWidth returns the rendered width in pixels of text at the given
	// font size in the given font family. Unknown families fall back to a
	// default face rather than failing.
	MeasureWidth(text string, fontSize float64, fontFamily string) float64
}
