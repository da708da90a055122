// Package httpfetcher provides a ports.Fetcher backed by net/http.
package httpfetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
)

// DefaultTimeout bounds a single asset fetch.
const DefaultTimeout = 15 * time.Second

// maxAssetBytes caps a fetched asset. Fonts and scannable codes are small;
// anything larger is a misbehaving host.
const maxAssetBytes = 32 << 20

// Fetcher implements ports.Fetcher using an http.Client.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a Fetcher with the default timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithClient creates a Fetcher using the given client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch performs a GET request and returns the body with its media type.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", pipeline.ErrFetch, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", pipeline.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("%w: GET %s: HTTP %d", pipeline.ErrFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
	if err != nil {
		return nil, "", fmt.Errorf("%w: read %s: %v", pipeline.ErrFetch, url, err)
	}

	mediaType := resp.Header.Get("Content-Type")
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	return data, mediaType, nil
}

// Ensure Fetcher implements ports.Fetcher
var _ ports.Fetcher = (*Fetcher)(nil)
