package gallery

import (
	"context"
	"time"

	"github.com/user/photoprint/pkg/ports"
)

// interCallDelay is the mandatory pause between background-removal calls when
// batching more than one image. The remote service rate-limits free keys.
const interCallDelay = 2 * time.Second

// BackgroundBatch removes backgrounds from every image in the collection,
// strictly serialized. Each result replaces that image's working data; the
// original bytes are always sent, so repeated runs do not compound. A failed
// image is logged and skipped, siblings still proceed. Returns the number of
// images updated.
type BackgroundBatch struct {
	remover ports.BackgroundRemover
	logger  ports.Logger

	// sleep is swappable for tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewBackgroundBatch creates a batch runner.
func NewBackgroundBatch(remover ports.BackgroundRemover, logger ports.Logger) *BackgroundBatch {
	return &BackgroundBatch{
		remover: remover,
		logger:  logger.WithComponent("removebg"),
		sleep:   sleepCtx,
	}
}

// Run processes the whole collection in order.
func (b *BackgroundBatch) Run(ctx context.Context, col *Collection) (int, error) {
	n := col.Len()
	updated := 0
	for i := 0; i < n; i++ {
		img, err := col.At(i)
		if err != nil {
			return updated, err
		}
		b.logger.Debug("Removing background %d/%d: %s", i+1, n, img.Name)

		result, err := b.remover.Remove(ctx, img.Original, img.Name)
		if err != nil {
			b.logger.Warn("Background removal failed for %s: %v", img.Name, err)
		} else {
			img.Working = result
			updated++
		}

		if n > 1 && i < n-1 {
			if err := b.sleep(ctx, interCallDelay); err != nil {
				return updated, err
			}
		}
	}
	return updated, nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
