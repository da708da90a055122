// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/ideamans/go-l10n"
	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
	"github.com/user/photoprint/pkg/scene"
	"github.com/user/photoprint/pkg/templates"
)

// Config contains all configuration for a composition run.
type Config struct {
	// Input
	TemplateID string

	// Images holds the encoded source photos in gallery order. In single
	// assignment templates only the image at SelectedIndex is composited.
	Images        [][]byte
	SelectedIndex int

	// Texts pair with the template's text slots by declaration order.
	Texts []string

	// Caption styling
	FontFamily     string
	FontSizeBase   float64
	Align          pipeline.Alignment
	Uppercase      bool
	EmojiPixelSize float64
	ScannableBG    string
	ScannableFG    string

	// EmojiAssetBase is the base URL or path prefix for bundled emoji
	// bitmaps referenced by caption markers.
	EmojiAssetBase string

	// Output
	OutputPath string
	// SVGPath, when set, additionally writes the composed vector document.
	SVGPath string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	opts := pipeline.DefaultCaptionOptions()
	return Config{
		TemplateID:     templates.SheetID,
		FontFamily:     opts.FontFamily,
		FontSizeBase:   opts.FontSizeBase,
		Align:          opts.Align,
		Uppercase:      opts.Uppercase,
		EmojiPixelSize: opts.EmojiPixelSize,
		ScannableBG:    opts.ScannableBG,
		ScannableFG:    opts.ScannableFG,
	}
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	photosStage   pipeline.Stage[pipeline.PhotosInput, pipeline.PhotosResult]
	captionsStage pipeline.Stage[pipeline.CaptionsInput, pipeline.CaptionsResult]
	embedStage    pipeline.Stage[pipeline.EmbedInput, pipeline.EmbedResult]
	rasterStage   pipeline.Stage[pipeline.RasterInput, pipeline.RasterResult]
	fs            ports.FileSystem
	sink          ports.DebugSink
	logger        ports.Logger
}

// New creates a new Orchestrator.
func New(
	photosStage pipeline.Stage[pipeline.PhotosInput, pipeline.PhotosResult],
	captionsStage pipeline.Stage[pipeline.CaptionsInput, pipeline.CaptionsResult],
	embedStage pipeline.Stage[pipeline.EmbedInput, pipeline.EmbedResult],
	rasterStage pipeline.Stage[pipeline.RasterInput, pipeline.RasterResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		photosStage:   photosStage,
		captionsStage: captionsStage,
		embedStage:    embedStage,
		rasterStage:   rasterStage,
		fs:            fs,
		sink:          sink,
		logger:        logger,
	}
}

// Run executes the complete pipeline.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info(l10n.T("Starting composition"))

	// 1. Load template
	tpl, err := templates.Get(config.TemplateID)
	if err != nil {
		o.logger.Error(l10n.F("Unknown template: %s", config.TemplateID))
		return RunResult{}, err
	}
	sc, err := scene.Load(tpl.Markup)
	if err != nil {
		return RunResult{}, fmt.Errorf("load template: %w", err)
	}
	photoSlots := scene.ExtractPhotoSlots(sc)
	textSlots := scene.ExtractTextSlots(sc)
	o.logger.Info(l10n.F("Template %s: %d photo slots, %d text slots", tpl.ID, len(photoSlots), len(textSlots)))

	// 2. Composite photos
	photosInput := pipeline.PhotosInput{
		Scene:    sc,
		Slots:    photoSlots,
		Images:   config.Images,
		Selected: config.SelectedIndex,
		Mode:     tpl.Mode,
	}
	photos, err := o.photosStage.Execute(ctx, photosInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite photos: %s", err))
		return RunResult{}, fmt.Errorf("photos stage: %w", err)
	}

	// 3. Composite captions
	captionsInput := pipeline.CaptionsInput{
		Scene:   sc,
		Slots:   textSlots,
		Texts:   config.Texts,
		Options: o.buildCaptionOptions(config),
	}
	captions, err := o.captionsStage.Execute(ctx, captionsInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to composite captions: %s", err))
		return RunResult{}, fmt.Errorf("captions stage: %w", err)
	}

	// 4. Embed fonts and inline images
	embedded, err := o.embedStage.Execute(ctx, pipeline.EmbedInput{Scene: sc})
	if err != nil {
		o.logger.Error(l10n.F("Failed to embed assets: %s", err))
		return RunResult{}, fmt.Errorf("embed stage: %w", err)
	}

	// 5. Write vector output (optional)
	if config.SVGPath != "" {
		svg, err := sc.Serialize()
		if err != nil {
			return RunResult{}, err
		}
		if err := o.fs.WriteFile(config.SVGPath, svg); err != nil {
			o.logger.Error(l10n.F("Failed to write output: %s", err))
			return RunResult{}, fmt.Errorf("write svg output: %w", err)
		}
	}

	// 6. Rasterize
	rasterInput := pipeline.RasterInput{
		Scene:  sc,
		Width:  tpl.OutWidth,
		Height: tpl.OutHeight,
	}
	raster, err := o.rasterStage.Execute(ctx, rasterInput)
	if err != nil {
		o.logger.Error(l10n.F("Failed to rasterize: %s", err))
		return RunResult{}, fmt.Errorf("raster stage: %w", err)
	}

	// 7. Encode and write PNG output
	var buf bytes.Buffer
	if err := png.Encode(&buf, raster.Image); err != nil {
		return RunResult{}, fmt.Errorf("encode output: %w", err)
	}
	if err := o.fs.WriteFile(config.OutputPath, buf.Bytes()); err != nil {
		o.logger.Error(l10n.F("Failed to write output: %s", err))
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}

	o.logger.Info(l10n.T("Composition completed successfully"))

	return RunResult{
		TemplateID:       tpl.ID,
		PhotoSlots:       len(photoSlots),
		TextSlots:        len(textSlots),
		PhotosInjected:   photos.Injected,
		PhotosRotated:    photos.Rotated,
		CaptionsRendered: captions.Rendered,
		Scannables:       captions.Scannable,
		FontsEmbedded:    embedded.FontsEmbedded,
		ImagesEmbedded:   embedded.ImagesEmbedded,
		OutWidth:         tpl.OutWidth,
		OutHeight:        tpl.OutHeight,
		OutputFileSize:   int64(buf.Len()),
	}, nil
}

func (o *Orchestrator) buildCaptionOptions(config Config) pipeline.CaptionOptions {
	opts := pipeline.DefaultCaptionOptions()
	if config.FontFamily != "" {
		opts.FontFamily = config.FontFamily
	}
	if config.FontSizeBase > 0 {
		opts.FontSizeBase = config.FontSizeBase
	}
	if config.Align != "" {
		opts.Align = config.Align
	}
	opts.Uppercase = config.Uppercase
	if config.EmojiPixelSize > 0 {
		opts.EmojiPixelSize = config.EmojiPixelSize
	}
	if config.ScannableBG != "" {
		opts.ScannableBG = config.ScannableBG
	}
	if config.ScannableFG != "" {
		opts.ScannableFG = config.ScannableFG
	}
	return opts
}

// RunResult contains the results of a composition run for summary generation.
type RunResult struct {
	TemplateID string

	// Slot information
	PhotoSlots int
	TextSlots  int

	// Stage outcomes
	PhotosInjected   int
	PhotosRotated    bool
	CaptionsRendered int
	Scannables       int
	FontsEmbedded    int
	ImagesEmbedded   int

	// Output information
	OutWidth       int
	OutHeight      int
	OutputFileSize int64
}
