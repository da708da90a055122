// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/user/photoprint/pkg/ports"
)

// Fetcher is a mock implementation of ports.Fetcher. Responses are keyed by
// exact URL; unknown URLs fail unless FetchFunc overrides the behavior.
type Fetcher struct {
	mu        sync.Mutex
	responses map[string]fetchResponse
	Requests  []string

	FetchFunc func(ctx context.Context, url string) ([]byte, string, error)
}

type fetchResponse struct {
	data      []byte
	mediaType string
}

// NewFetcher creates a new mock Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{responses: make(map[string]fetchResponse)}
}

// Respond registers a canned response for a URL.
func (m *Fetcher) Respond(url string, data []byte, mediaType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[url] = fetchResponse{data: data, mediaType: mediaType}
}

func (m *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, url)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, url)
	if r, ok := m.responses[url]; ok {
		return r.data, r.mediaType, nil
	}
	return nil, "", fmt.Errorf("no canned response for %s", url)
}

var _ ports.Fetcher = (*Fetcher)(nil)
