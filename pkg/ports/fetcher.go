package ports

import "context"

// Fetcher abstracts retrieval of remote assets (fonts, emoji images,
// scannable codes, style sheets).
type Fetcher interface {
	// Fetch performs a GET request and returns the response body together
	// with its media type (e.g. "image/jpeg", "text/css").
	Fetch(ctx context.Context, url string) (data []byte, mediaType string, err error)
}
