package raster

import (
	"context"
	"errors"
	"image"
	"strings"
	"testing"

	"github.com/user/photoprint/pkg/mocks"
	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/scene"
)

func loadScene(t *testing.T) *scene.Scene {
	t.Helper()
	sc, err := scene.Load([]byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10000 15000"><rect class="slot" x="1" y="1" width="10" height="10"/></svg>`))
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	return sc
}

func TestExecute(t *testing.T) {
	sc := loadScene(t)
	rasterizer := &mocks.VectorRasterizer{}
	sink := mocks.NewDebugSink(true)
	stage := NewStage(rasterizer, sink, mocks.NewLogger())

	result, err := stage.Execute(context.Background(), pipeline.RasterInput{
		Scene:  sc,
		Width:  1181,
		Height: 1772,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := result.Image.Bounds()
	if bounds.Dx() != 1181 || bounds.Dy() != 1772 {
		t.Errorf("unexpected raster size %dx%d", bounds.Dx(), bounds.Dy())
	}

	// The serialized scene reached the rasterizer.
	if !strings.Contains(string(rasterizer.LastSVG), "slot") {
		t.Error("expected serialized scene to be rasterized")
	}
	if sink.Raster == nil {
		t.Error("expected raster debug output")
	}
}

func TestExecute_RasterizerError(t *testing.T) {
	sc := loadScene(t)
	rasterizer := &mocks.VectorRasterizer{}
	rasterizer.RasterizeFunc = func(ctx context.Context, svg []byte, w, h int) (image.Image, error) {
		return nil, errors.New("decode failed")
	}
	stage := NewStage(rasterizer, mocks.NewDebugSink(false), mocks.NewLogger())

	if _, err := stage.Execute(context.Background(), pipeline.RasterInput{Scene: sc, Width: 10, Height: 10}); err == nil {
		t.Error("expected rasterizer error to propagate")
	}
}
