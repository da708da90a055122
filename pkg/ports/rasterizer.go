package ports

import (
	"context"
	"image"
)

// VectorRasterizer abstracts rasterization of a serialized SVG document.
type VectorRasterizer interface {
	// Rasterize draws the SVG stretched to exactly width x height pixels over
	// an opaque white background. The aspect ratio is not preserved; callers
	// pass dimensions matching the template's ratio.
	Rasterize(ctx context.Context, svg []byte, width, height int) (image.Image, error)
}
