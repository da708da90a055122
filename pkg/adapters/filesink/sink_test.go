package filesink

import (
	"image"
	"path/filepath"
	"testing"

	"github.com/user/photoprint/pkg/mocks"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveScene(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte(`<svg></svg>`)
	err := sink.SaveScene("photos", data)
	if err != nil {
		t.Fatalf("SaveScene failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "scene-photos.svg")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveBitmap(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	data := []byte{0x89, 0x50, 0x4E, 0x47} // PNG header
	err := sink.SaveBitmap(3, data)
	if err != nil {
		t.Fatalf("SaveBitmap failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "bitmaps", "slot-03.png")
	_, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Errorf("expected file to be saved at %s", expectedPath)
	}
}

func TestSink_SaveRaster(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	err := sink.SaveRaster(img)
	if err != nil {
		t.Fatalf("SaveRaster failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "raster.png")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	// PNG signature
	if len(saved) < 8 || saved[0] != 0x89 || saved[1] != 'P' {
		t.Errorf("expected PNG data, got %v", saved[:min(8, len(saved))])
	}
}

func TestSink_MultipleBitmaps(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs)

	for i := 0; i < 10; i++ {
		err := sink.SaveBitmap(i, []byte{0x89})
		if err != nil {
			t.Fatalf("SaveBitmap %d failed: %v", i, err)
		}
	}

	files := fs.GetAllFiles()
	if len(files) != 10 {
		t.Errorf("expected 10 files, got %d", len(files))
	}
}
