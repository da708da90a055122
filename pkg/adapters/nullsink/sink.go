// Package nullsink provides a no-op debug sink implementation.
package nullsink

import (
	"image"

	"github.com/user/photoprint/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
// It discards all debug output.
type Sink struct{}

// New creates a new NullSink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

// SaveScene does nothing.
func (s *Sink) SaveScene(step string, data []byte) error {
	return nil
}

// SaveBitmap does nothing.
func (s *Sink) SaveBitmap(index int, data []byte) error {
	return nil
}

// SaveRaster does nothing.
func (s *Sink) SaveRaster(img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
