package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate render artifacts for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveScene saves the scene graph serialized as SVG at a named step
	// (e.g. "photos", "captions", "embedded").
	SaveScene(step string, data []byte) error

	// SaveBitmap saves an intermediate bitmap (cleaned or rotated photo)
	// for the given slot index.
	SaveBitmap(index int, data []byte) error

	// SaveRaster saves the final rasterized image.
	SaveRaster(img image.Image) error
}
