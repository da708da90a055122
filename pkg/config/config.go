// Package config provides configuration loading and management.
package config

import (
	"image/color"
	"os"

	"github.com/user/photoprint/pkg/orchestrator"
	"github.com/user/photoprint/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for photoprint.
type Config struct {
	// Input/Output
	Template   string   `yaml:"template"`
	Images     []string `yaml:"images"`
	Selected   int      `yaml:"selected"`
	OutputPath string   `yaml:"output"`
	SVGPath    string   `yaml:"svg_output"`

	// Captions
	Texts   []string   `yaml:"texts"`
	Caption TextConfig `yaml:"caption"`

	// Scannable codes
	Scannable ScannableConfig `yaml:"scannable"`

	// EmojiAssetBase is the base URL or path prefix for bundled emoji
	// bitmaps.
	EmojiAssetBase string `yaml:"emoji_asset_base"`

	// Background removal
	RemoveBG RemoveBGConfig `yaml:"removebg"`

	// Timeouts
	DecodeTimeoutMs int `yaml:"decode_timeout_ms"`
	RasterTimeoutMs int `yaml:"raster_timeout_ms"`

	// Debug
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// TextConfig represents caption styling settings.
type TextConfig struct {
	FontFamily     string  `yaml:"font_family"`
	FontSizeBase   float64 `yaml:"font_size_base"`
	Align          string  `yaml:"align"`
	Uppercase      bool    `yaml:"uppercase"`
	EmojiPixelSize float64 `yaml:"emoji_pixel_size"`
}

// ScannableConfig represents scannable code styling settings.
type ScannableConfig struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

// RemoveBGConfig represents background removal service settings.
type RemoveBGConfig struct {
	Endpoint  string `yaml:"endpoint"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	opts := pipeline.DefaultCaptionOptions()
	return Config{
		Template: "sheet-3x4",

		Caption: TextConfig{
			FontFamily:     opts.FontFamily,
			FontSizeBase:   opts.FontSizeBase,
			Align:          string(opts.Align),
			Uppercase:      opts.Uppercase,
			EmojiPixelSize: opts.EmojiPixelSize,
		},

		Scannable: ScannableConfig{
			Background: opts.ScannableBG,
			Foreground: opts.ScannableFG,
		},

		DecodeTimeoutMs: 5000,
		RasterTimeoutMs: 10000,

		RemoveBG: RemoveBGConfig{
			TimeoutMs: 120000,
		},

		DebugDir: "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// ParseColor parses a hex color string to color.Color.
func ParseColor(hex string) color.Color {
	if len(hex) == 0 {
		return color.Black
	}

	if hex[0] == '#' {
		hex = hex[1:]
	}

	if len(hex) != 6 && len(hex) != 8 {
		return color.Black
	}

	nibble := func(hi, lo byte) uint8 {
		return hexValue(hi)<<4 | hexValue(lo)
	}

	c := color.RGBA{
		R: nibble(hex[0], hex[1]),
		G: nibble(hex[2], hex[3]),
		B: nibble(hex[4], hex[5]),
		A: 255,
	}
	if len(hex) == 8 {
		c.A = nibble(hex[6], hex[7])
	}
	return c
}

func hexValue(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config. Image file
// contents are loaded separately by the caller.
func (c Config) ToOrchestratorConfig() orchestrator.Config {
	return orchestrator.Config{
		TemplateID:    c.Template,
		SelectedIndex: c.Selected,
		Texts:         c.Texts,

		FontFamily:     c.Caption.FontFamily,
		FontSizeBase:   c.Caption.FontSizeBase,
		Align:          pipeline.Alignment(c.Caption.Align),
		Uppercase:      c.Caption.Uppercase,
		EmojiPixelSize: c.Caption.EmojiPixelSize,
		ScannableBG:    c.Scannable.Background,
		ScannableFG:    c.Scannable.Foreground,

		EmojiAssetBase: c.EmojiAssetBase,

		OutputPath: c.OutputPath,
		SVGPath:    c.SVGPath,
	}
}
