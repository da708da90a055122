// Package removebg provides a ports.BackgroundRemover that talks to the
// background-removal proxy endpoint.
package removebg

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/user/photoprint/pkg/ports"
)

// DefaultTimeout bounds a single removal call. The service re-uploads the
// photo to a third-party API, so calls are slow.
const DefaultTimeout = 120 * time.Second

// Remover implements ports.BackgroundRemover against an HTTP proxy that
// accepts {imageData, fileName} JSON and answers with PNG bytes.
type Remover struct {
	endpoint string
	client   *http.Client
}

// New creates a Remover for the given endpoint URL.
func New(endpoint string) *Remover {
	return &Remover{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

type request struct {
	ImageData string `json:"imageData"`
	FileName  string `json:"fileName"`
}

// Remove sends the image and returns the background-stripped PNG.
func (r *Remover) Remove(ctx context.Context, image []byte, fileName string) ([]byte, error) {
	payload := request{
		ImageData: "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
		FileName:  fileName,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("background removal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("background removal: HTTP %d", resp.StatusCode)
	}
	result, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("background removal: read response: %w", err)
	}
	return result, nil
}

// Ensure Remover implements ports.BackgroundRemover
var _ ports.BackgroundRemover = (*Remover)(nil)
