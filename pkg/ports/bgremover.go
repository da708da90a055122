package ports

import "context"

// BackgroundRemover abstracts the remote background-removal service.
type BackgroundRemover interface {
	// Remove strips the background from the given encoded image and returns
	// the resulting PNG bytes. fileName is passed through to the service as
	// the upload name.
	Remove(ctx context.Context, image []byte, fileName string) ([]byte, error)
}
