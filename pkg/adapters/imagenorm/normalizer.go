// Package imagenorm normalizes source bitmaps before compositing. Arbitrary
// uploads (JPEG, PNG, GIF, WebP) are re-painted into a canonical PNG so later
// stages never hit a mid-pipeline decode failure.
package imagenorm

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"time"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
)

// DefaultTimeout bounds a single decode/re-encode operation.
const DefaultTimeout = 5 * time.Second

// Normalizer implements ports.Normalizer.
type Normalizer struct {
	timeout time.Duration
}

// New creates a Normalizer with the default decode timeout.
func New() *Normalizer {
	return &Normalizer{timeout: DefaultTimeout}
}

// NewWithTimeout creates a Normalizer with a custom decode timeout.
func NewWithTimeout(timeout time.Duration) *Normalizer {
	return &Normalizer{timeout: timeout}
}

// Clean decodes the source and re-encodes it as a fresh PNG.
func (n *Normalizer) Clean(ctx context.Context, data []byte) ([]byte, error) {
	return n.run(ctx, data, func(img image.Image) image.Image {
		b := img.Bounds()
		dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
		return dst
	})
}

// RotateCW90 returns the image rotated 90 degrees clockwise with bounds
// swapped.
func (n *Normalizer) RotateCW90(ctx context.Context, data []byte) ([]byte, error) {
	return n.run(ctx, data, func(img image.Image) image.Image {
		return transform.Rotate(img, 90, &transform.RotationOptions{ResizeBounds: true})
	})
}

type result struct {
	data []byte
	err  error
}

func (n *Normalizer) run(ctx context.Context, data []byte, op func(image.Image) image.Image) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			ch <- result{err: fmt.Errorf("%w: %v", pipeline.ErrDecode, err)}
			return
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, op(img)); err != nil {
			ch <- result{err: fmt.Errorf("encode PNG: %w", err)}
			return
		}
		ch <- result{data: buf.Bytes()}
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", pipeline.ErrDecodeTimeout, ctx.Err())
	case r := <-ch:
		return r.data, r.err
	}
}

// Ensure Normalizer implements ports.Normalizer
var _ ports.Normalizer = (*Normalizer)(nil)
