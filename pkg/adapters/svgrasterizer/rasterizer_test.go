package svgrasterizer

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/user/photoprint/pkg/pipeline"
)

const emptySVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 150"></svg>`

func TestRasterize_EmptyComposition(t *testing.T) {
	r := New()

	img, err := r.Rasterize(context.Background(), []byte(emptySVG), 118, 177)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 118 || bounds.Dy() != 177 {
		t.Errorf("expected exact requested dimensions, got %v", bounds)
	}

	// Nothing drawn: the buffer stays opaque white everywhere.
	for _, p := range [][2]int{{0, 0}, {117, 0}, {0, 176}, {117, 176}, {59, 88}} {
		c := color.NRGBAModel.Convert(img.At(p[0], p[1])).(color.NRGBA)
		if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
			t.Errorf("expected white at %v, got %v", p, c)
		}
	}
}

func TestRasterize_DrawsContent(t *testing.T) {
	r := New()
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <rect x="0" y="0" width="100" height="100" fill="#000000"/>
</svg>`

	img, err := r.Rasterize(context.Background(), []byte(svg), 50, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := color.NRGBAModel.Convert(img.At(25, 25)).(color.NRGBA)
	if c.R > 10 || c.G > 10 || c.B > 10 {
		t.Errorf("expected filled center, got %v", c)
	}
}

func TestRasterize_MalformedSVG(t *testing.T) {
	r := New()

	_, err := r.Rasterize(context.Background(), []byte("<svg><rect"), 10, 10)
	if !errors.Is(err, pipeline.ErrRasterDecode) {
		t.Errorf("expected ErrRasterDecode, got %v", err)
	}
}
