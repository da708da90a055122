package pipeline

import "errors"

// Sentinel errors shared across stages. Per-item failures inside a batch are
// logged where they occur and never abort sibling items; errors below surface
// only when a whole step fails.
var (
	// ErrDecode indicates a source bitmap could not be decoded.
	ErrDecode = errors.New("bitmap decode failed")

	// ErrDecodeTimeout indicates a bitmap decode exceeded its time bound.
	ErrDecodeTimeout = errors.New("bitmap decode timed out")

	// ErrFetch indicates a remote asset fetch failed. Always non-fatal to the
	// render: the slot is left blank or the asset stays a remote reference.
	ErrFetch = errors.New("remote asset fetch failed")

	// ErrRasterDecode indicates the final SVG could not be read back for
	// rasterization.
	ErrRasterDecode = errors.New("raster decode failed")

	// ErrRasterTimeout indicates rasterization exceeded its time bound.
	ErrRasterTimeout = errors.New("rasterization timed out")
)
