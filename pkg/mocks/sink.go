package mocks

import (
	"image"
	"sync"

	"github.com/user/photoprint/pkg/ports"
)

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Scenes  map[string][]byte
	Bitmaps map[int][]byte
	Raster  image.Image
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Scenes:  make(map[string][]byte),
		Bitmaps: make(map[int][]byte),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveScene(step string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Scenes[step] = data
	return nil
}

func (m *DebugSink) SaveBitmap(index int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Bitmaps[index] = data
	return nil
}

func (m *DebugSink) SaveRaster(img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Raster = img
	return nil
}

var _ ports.DebugSink = (*DebugSink)(nil)
