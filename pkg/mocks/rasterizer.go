package mocks

import (
	"context"
	"image"
	"image/color"
	"image/draw"

	"github.com/user/photoprint/pkg/ports"
)

// VectorRasterizer is a mock implementation of ports.VectorRasterizer. The
// default behavior returns a white image of the requested dimensions.
type VectorRasterizer struct {
	RasterizeFunc func(ctx context.Context, svg []byte, width, height int) (image.Image, error)

	LastSVG []byte
}

func (m *VectorRasterizer) Rasterize(ctx context.Context, svg []byte, width, height int) (image.Image, error) {
	m.LastSVG = svg
	if m.RasterizeFunc != nil {
		return m.RasterizeFunc(ctx, svg, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, nil
}

var _ ports.VectorRasterizer = (*VectorRasterizer)(nil)
