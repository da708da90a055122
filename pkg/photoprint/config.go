// Package photoprint provides a high-level API for composing printable photo
// sheets.
package photoprint

import (
	"github.com/user/photoprint/pkg/orchestrator"
	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/templates"
)

// FontPreset represents a caption font preset name.
type FontPreset string

const (
	FontDancingScript FontPreset = "dancing-script"
	FontPacifico      FontPreset = "pacifico"
	FontGreatVibes    FontPreset = "great-vibes"
	FontSatisfy       FontPreset = "satisfy"
)

// FontFamily returns the CSS font family for the given preset.
func (p FontPreset) FontFamily() string {
	switch p {
	case FontPacifico:
		return "Pacifico"
	case FontGreatVibes:
		return "Great Vibes"
	case FontSatisfy:
		return "Satisfy"
	default:
		return "Dancing Script"
	}
}

// Config represents the configuration for photoprint composition.
type Config struct {
	// Template
	Template string // Template id (default: "sheet-3x4")

	// Captions
	FontFamily     string             // CSS font family for captions
	FontSizeBase   float64            // Auto-fit starting font size
	Align          pipeline.Alignment // Horizontal caption alignment
	Uppercase      bool               // Force captions to upper case
	EmojiPixelSize float64            // Emoji footprint in mixed captions

	// Scannable codes
	ScannableBG string // Background hex color (e.g., "#ffffffff")
	ScannableFG string // Bar color: "black" or "white"

	// Assets
	EmojiAssetBase string // Base URL or path prefix for bundled emoji bitmaps
}

// ConfigBuilder provides a fluent interface for building Config.
type ConfigBuilder struct {
	config Config
}

// NewConfigBuilder creates a new ConfigBuilder with editor defaults.
func NewConfigBuilder() *ConfigBuilder {
	opts := pipeline.DefaultCaptionOptions()
	return &ConfigBuilder{
		config: Config{
			Template:       templates.SheetID,
			FontFamily:     opts.FontFamily,
			FontSizeBase:   opts.FontSizeBase,
			Align:          opts.Align,
			Uppercase:      opts.Uppercase,
			EmojiPixelSize: opts.EmojiPixelSize,
			ScannableBG:    opts.ScannableBG,
			ScannableFG:    opts.ScannableFG,
		},
	}
}

// Build returns the final Config, applying validation and constraints.
func (b *ConfigBuilder) Build() Config {
	cfg := b.config

	if _, err := templates.Get(cfg.Template); err != nil {
		cfg.Template = templates.SheetID
	}

	switch cfg.Align {
	case pipeline.AlignLeft, pipeline.AlignCenter, pipeline.AlignRight:
	default:
		cfg.Align = pipeline.AlignCenter
	}

	if cfg.FontSizeBase <= 0 {
		cfg.FontSizeBase = pipeline.DefaultCaptionOptions().FontSizeBase
	}

	return cfg
}

// WithTemplate sets the template id.
// Unknown ids fall back to the ID-photo sheet.
func (b *ConfigBuilder) WithTemplate(id string) *ConfigBuilder {
	b.config.Template = id
	return b
}

// WithFontFamily sets the caption font family.
func (b *ConfigBuilder) WithFontFamily(family string) *ConfigBuilder {
	b.config.FontFamily = family
	return b
}

// WithFontPreset applies a caption font preset.
func (b *ConfigBuilder) WithFontPreset(preset FontPreset) *ConfigBuilder {
	b.config.FontFamily = preset.FontFamily()
	return b
}

// WithFontSizeBase sets the auto-fit starting font size.
func (b *ConfigBuilder) WithFontSizeBase(size float64) *ConfigBuilder {
	b.config.FontSizeBase = size
	return b
}

// WithAlign sets the horizontal caption alignment.
// Unknown values fall back to center.
func (b *ConfigBuilder) WithAlign(align pipeline.Alignment) *ConfigBuilder {
	b.config.Align = align
	return b
}

// WithUppercase forces captions to upper case.
func (b *ConfigBuilder) WithUppercase(uppercase bool) *ConfigBuilder {
	b.config.Uppercase = uppercase
	return b
}

// WithEmojiPixelSize sets the emoji footprint in mixed captions.
func (b *ConfigBuilder) WithEmojiPixelSize(size float64) *ConfigBuilder {
	b.config.EmojiPixelSize = size
	return b
}

// WithScannableColors sets the scannable code background hex color and bar
// color ("black" or "white").
func (b *ConfigBuilder) WithScannableColors(bg, fg string) *ConfigBuilder {
	b.config.ScannableBG = bg
	b.config.ScannableFG = fg
	return b
}

// WithEmojiAssetBase sets the base URL or path prefix for bundled emoji
// bitmaps.
func (b *ConfigBuilder) WithEmojiAssetBase(base string) *ConfigBuilder {
	b.config.EmojiAssetBase = base
	return b
}

// ToOrchestratorConfig converts Config to orchestrator.Config for the given
// photos, captions and output path.
func (c Config) ToOrchestratorConfig(images [][]byte, selected int, texts []string, outputPath string) orchestrator.Config {
	return orchestrator.Config{
		TemplateID:    c.Template,
		Images:        images,
		SelectedIndex: selected,
		Texts:         texts,

		FontFamily:     c.FontFamily,
		FontSizeBase:   c.FontSizeBase,
		Align:          c.Align,
		Uppercase:      c.Uppercase,
		EmojiPixelSize: c.EmojiPixelSize,
		ScannableBG:    c.ScannableBG,
		ScannableFG:    c.ScannableFG,

		EmojiAssetBase: c.EmojiAssetBase,

		OutputPath: outputPath,
	}
}
