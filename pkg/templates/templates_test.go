package templates

import (
	"testing"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/scene"
)

func TestGet(t *testing.T) {
	tests := []struct {
		id         string
		outW, outH int
		mode       pipeline.AssignMode
		photoSlots int
		textSlots  int
		baseName   string
	}{
		{SheetID, 1181, 1772, pipeline.AssignSingle, 10, 0, "folha-3x4"},
		{PolaroidOneID, 1181, 1772, pipeline.AssignMulti, 1, 1, "polaroid-1up-10x15"},
		{PolaroidTwoID, 1772, 1181, pipeline.AssignMulti, 2, 2, "polaroid-2up-15x10"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			tpl, err := Get(tt.id)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tpl.OutWidth != tt.outW || tpl.OutHeight != tt.outH {
				t.Errorf("unexpected output size %dx%d", tpl.OutWidth, tpl.OutHeight)
			}
			if tpl.Mode != tt.mode {
				t.Errorf("unexpected assign mode %v", tpl.Mode)
			}
			if tpl.BaseName() != tt.baseName {
				t.Errorf("unexpected base name %q", tpl.BaseName())
			}

			// Every template must parse and expose its designed slots.
			sc, err := scene.Load(tpl.Markup)
			if err != nil {
				t.Fatalf("template markup must parse: %v", err)
			}
			if got := len(scene.ExtractPhotoSlots(sc)); got != tt.photoSlots {
				t.Errorf("expected %d photo slots, got %d", tt.photoSlots, got)
			}
			if got := len(scene.ExtractTextSlots(sc)); got != tt.textSlots {
				t.Errorf("expected %d text slots, got %d", tt.textSlots, got)
			}
		})
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown template")
	}
}

func TestIDs(t *testing.T) {
	ids := IDs()
	if len(ids) != 3 {
		t.Fatalf("expected 3 templates, got %d", len(ids))
	}
	for _, id := range ids {
		if _, err := Get(id); err != nil {
			t.Errorf("listed id %q must resolve: %v", id, err)
		}
	}
}

func TestSheetAspectRatios(t *testing.T) {
	// Output dimensions follow the template orientation: 10x15cm portrait or
	// 15x10cm landscape at 300dpi.
	for _, id := range IDs() {
		tpl, _ := Get(id)
		sc, err := scene.Load(tpl.Markup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		vbW, vbH := sc.ViewBox()
		portrait := vbH > vbW
		if portrait != (tpl.OutHeight > tpl.OutWidth) {
			t.Errorf("template %s orientation mismatch", id)
		}
	}
}
