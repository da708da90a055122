// Package svgrasterizer rasterizes serialized SVG scenes with oksvg/rasterx.
package svgrasterizer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
)

// DefaultTimeout bounds a single rasterization.
const DefaultTimeout = 10 * time.Second

// Rasterizer implements ports.VectorRasterizer.
type Rasterizer struct {
	timeout time.Duration
}

// New creates a Rasterizer with the default timeout.
func New() *Rasterizer {
	return &Rasterizer{timeout: DefaultTimeout}
}

// NewWithTimeout creates a Rasterizer with a custom timeout.
func NewWithTimeout(timeout time.Duration) *Rasterizer {
	return &Rasterizer{timeout: timeout}
}

type result struct {
	img image.Image
	err error
}

// Rasterize draws the SVG stretched over an opaque white width x height
// buffer. The template's viewBox is mapped to the full output rect, so the
// caller must pass dimensions matching the template's aspect ratio.
func (r *Rasterizer) Rasterize(ctx context.Context, svg []byte, width, height int) (image.Image, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
		if err != nil {
			ch <- result{err: fmt.Errorf("%w: %v", pipeline.ErrRasterDecode, err)}
			return
		}

		img := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

		icon.SetTarget(0, 0, float64(width), float64(height))
		scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
		icon.Draw(rasterx.NewDasher(width, height, scanner), 1)

		ch <- result{img: img}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", pipeline.ErrRasterTimeout, ctx.Err())
	case res := <-ch:
		return res.img, res.err
	}
}

// Ensure Rasterizer implements ports.VectorRasterizer
var _ ports.VectorRasterizer = (*Rasterizer)(nil)
