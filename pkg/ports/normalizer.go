package ports

import "context"

// Normalizer abstracts bitmap normalization operations. Both operations are
// pure functions over encoded image data and are bounded by a decode timeout.
type Normalizer interface {
	// Clean decodes the source image and re-encodes it as a canonical PNG,
	// repainted into a fresh buffer.
	Clean(ctx context.Context, data []byte) ([]byte, error)

	// RotateCW90 returns the image rotated 90 degrees clockwise, with width
	// and height swapped, re-encoded as PNG.
	RotateCW90(ctx context.Context, data []byte) ([]byte, error)
}
