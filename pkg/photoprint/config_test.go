package photoprint

import (
	"testing"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/templates"
)

func TestNewConfigBuilder_Defaults(t *testing.T) {
	cfg := NewConfigBuilder().Build()

	opts := pipeline.DefaultCaptionOptions()
	if cfg.Template != templates.SheetID {
		t.Errorf("unexpected default template: %s", cfg.Template)
	}
	if cfg.FontFamily != opts.FontFamily {
		t.Errorf("unexpected default font family: %s", cfg.FontFamily)
	}
	if cfg.Align != opts.Align {
		t.Errorf("unexpected default alignment: %s", cfg.Align)
	}
	if cfg.ScannableBG != opts.ScannableBG || cfg.ScannableFG != opts.ScannableFG {
		t.Error("unexpected default scannable colors")
	}
}

func TestConfigBuilder_Fluent(t *testing.T) {
	cfg := NewConfigBuilder().
		WithTemplate(templates.PolaroidTwoID).
		WithFontPreset(FontPacifico).
		WithFontSizeBase(300).
		WithAlign(pipeline.AlignLeft).
		WithUppercase(true).
		WithEmojiPixelSize(500).
		WithScannableColors("#000000ff", "white").
		WithEmojiAssetBase("/assets/emoji").
		Build()

	if cfg.Template != templates.PolaroidTwoID {
		t.Errorf("unexpected template: %s", cfg.Template)
	}
	if cfg.FontFamily != "Pacifico" {
		t.Errorf("unexpected font family: %s", cfg.FontFamily)
	}
	if cfg.FontSizeBase != 300 {
		t.Errorf("unexpected font size: %f", cfg.FontSizeBase)
	}
	if cfg.Align != pipeline.AlignLeft || !cfg.Uppercase {
		t.Error("caption options not applied")
	}
	if cfg.EmojiPixelSize != 500 {
		t.Errorf("unexpected emoji size: %f", cfg.EmojiPixelSize)
	}
	if cfg.ScannableBG != "#000000ff" || cfg.ScannableFG != "white" {
		t.Error("scannable colors not applied")
	}
	if cfg.EmojiAssetBase != "/assets/emoji" {
		t.Errorf("unexpected emoji asset base: %s", cfg.EmojiAssetBase)
	}
}

func TestConfigBuilder_Validation(t *testing.T) {
	cfg := NewConfigBuilder().
		WithTemplate("no-such-template").
		WithAlign(pipeline.Alignment("diagonal")).
		WithFontSizeBase(-10).
		Build()

	if cfg.Template != templates.SheetID {
		t.Errorf("expected fallback to sheet template, got %s", cfg.Template)
	}
	if cfg.Align != pipeline.AlignCenter {
		t.Errorf("expected fallback to center alignment, got %s", cfg.Align)
	}
	if cfg.FontSizeBase != pipeline.DefaultCaptionOptions().FontSizeBase {
		t.Errorf("expected fallback font size, got %f", cfg.FontSizeBase)
	}
}

func TestFontPreset_FontFamily(t *testing.T) {
	tests := []struct {
		preset FontPreset
		want   string
	}{
		{FontDancingScript, "Dancing Script"},
		{FontPacifico, "Pacifico"},
		{FontGreatVibes, "Great Vibes"},
		{FontSatisfy, "Satisfy"},
		{FontPreset("unknown"), "Dancing Script"},
	}
	for _, tt := range tests {
		if got := tt.preset.FontFamily(); got != tt.want {
			t.Errorf("FontFamily(%s) = %s, want %s", tt.preset, got, tt.want)
		}
	}
}

func TestToOrchestratorConfig(t *testing.T) {
	cfg := NewConfigBuilder().
		WithTemplate(templates.PolaroidOneID).
		WithUppercase(true).
		Build()

	images := [][]byte{[]byte("a"), []byte("b")}
	oc := cfg.ToOrchestratorConfig(images, 1, []string{"amor"}, "out.png")

	if oc.TemplateID != templates.PolaroidOneID {
		t.Errorf("unexpected template id: %s", oc.TemplateID)
	}
	if len(oc.Images) != 2 || oc.SelectedIndex != 1 {
		t.Error("photo inputs not carried over")
	}
	if len(oc.Texts) != 1 || oc.Texts[0] != "amor" {
		t.Errorf("unexpected texts: %v", oc.Texts)
	}
	if !oc.Uppercase {
		t.Error("expected uppercase to carry over")
	}
	if oc.OutputPath != "out.png" {
		t.Errorf("unexpected output path: %s", oc.OutputPath)
	}
}
