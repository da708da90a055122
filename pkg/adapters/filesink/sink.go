// Package filesink provides a file-based debug sink implementation.
package filesink

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"

	"github.com/user/photoprint/pkg/ports"
)

// Sink saves debug output to files.
type Sink struct {
	baseDir string
	fs      ports.FileSystem
}

// New creates a new file sink rooted at baseDir.
func New(baseDir string, fs ports.FileSystem) *Sink {
	return &Sink{
		baseDir: baseDir,
		fs:      fs,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveScene saves the scene graph serialized as SVG at a named step.
func (s *Sink) SaveScene(step string, data []byte) error {
	path := filepath.Join(s.baseDir, fmt.Sprintf("scene-%s.svg", step))
	return s.fs.WriteFile(path, data)
}

// SaveBitmap saves an intermediate bitmap for the given slot index.
func (s *Sink) SaveBitmap(index int, data []byte) error {
	dir := filepath.Join(s.baseDir, "bitmaps")
	if err := s.fs.MkdirAll(dir); err != nil {
		return err
	}
	path := filepath.Join(dir, fmt.Sprintf("slot-%02d.png", index))
	return s.fs.WriteFile(path, data)
}

// SaveRaster saves the final rasterized image.
func (s *Sink) SaveRaster(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode raster: %w", err)
	}
	path := filepath.Join(s.baseDir, "raster.png")
	return s.fs.WriteFile(path, buf.Bytes())
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
