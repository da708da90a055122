// Package main provides the CLI entry point for photoprint.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/photoprint/pkg/adapters/filesink"
	"github.com/user/photoprint/pkg/adapters/ggmeasurer"
	"github.com/user/photoprint/pkg/adapters/httpfetcher"
	"github.com/user/photoprint/pkg/adapters/imagenorm"
	"github.com/user/photoprint/pkg/adapters/logger"
	"github.com/user/photoprint/pkg/adapters/nullsink"
	"github.com/user/photoprint/pkg/adapters/osfilesystem"
	"github.com/user/photoprint/pkg/adapters/removebg"
	"github.com/user/photoprint/pkg/adapters/svgrasterizer"
	"github.com/user/photoprint/pkg/gallery"
	"github.com/user/photoprint/pkg/orchestrator"
	"github.com/user/photoprint/pkg/photoprint"
	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
	"github.com/user/photoprint/pkg/stages/captions"
	"github.com/user/photoprint/pkg/stages/embed"
	"github.com/user/photoprint/pkg/stages/photos"
	"github.com/user/photoprint/pkg/stages/raster"
	"github.com/user/photoprint/pkg/templates"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Compose   ComposeCmd   `cmd:"" help:"Compose photos and captions into a printable sheet."`
	Removebg  RemovebgCmd  `cmd:"" help:"Remove backgrounds from photos via the remote service."`
	Templates TemplatesCmd `cmd:"" help:"List available templates."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

// ComposeCmd defines the compose subcommand.
type ComposeCmd struct {
	// Required arguments
	Images []string `arg:"" help:"Photo files in gallery order."`
	Output string   `short:"o" help:"Output PNG file path (default: derived from template)."`

	// Template
	Template string `short:"t" default:"sheet-3x4" enum:"sheet-3x4,polaroid-one,polaroid-two" help:"Template id."`
	Selected int    `short:"s" default:"0" help:"Photo index used by single-photo templates."`

	// Caption options
	Text           []string `short:"T" help:"Caption text per text slot (repeatable; Spotify links become scannable codes)."`
	FontFamily     *string  `help:"Caption font family (Dancing Script, Pacifico, Great Vibes, Satisfy)."`
	FontSize       *float64 `help:"Auto-fit starting font size."`
	Align          *string  `help:"Caption alignment (left, center, right)."`
	Uppercase      bool     `help:"Force captions to upper case."`
	EmojiSize      *float64 `help:"Emoji footprint in mixed captions, in template units."`
	ScannableBG    *string  `help:"Scannable code background color (hex)."`
	ScannableFG    *string  `help:"Scannable code bar color (black or white)."`
	EmojiAssetBase string   `help:"Base URL or path prefix for bundled emoji bitmaps."`

	// Output options
	SVG string `help:"Also write the composed SVG document to this path."`

	// Debug options
	Debug    bool   `short:"d" help:"Enable debug output."`
	DebugDir string `default:"./debug" help:"Directory for debug output."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// RemovebgCmd defines the removebg subcommand.
type RemovebgCmd struct {
	Images   []string `arg:"" help:"Photo files to process."`
	Endpoint string   `short:"e" required:"" help:"Background removal service endpoint URL."`
	OutDir   string   `short:"o" default:"." help:"Directory for processed images."`

	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// TemplatesCmd lists available templates.
type TemplatesCmd struct{}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("photoprint"),
		kong.Description("Compose photos and captions into printable sheets."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the compose command.
func (cmd *ComposeCmd) Run() error {
	log := newLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()

	// Load photos preserving argument order
	col := gallery.NewCollection()
	for _, path := range cmd.Images {
		data, err := fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		col.Add(filepath.Base(path), data)
	}
	if cmd.Selected < 0 || cmd.Selected >= col.Len() {
		return fmt.Errorf("selected index %d out of range", cmd.Selected)
	}

	// Create adapters
	normalizer := imagenorm.New()
	fetcher := httpfetcher.New()
	measurer := ggmeasurer.New()
	rasterizer := svgrasterizer.New()

	// Create debug sink
	var sink ports.DebugSink
	if cmd.Debug {
		if err := fs.MkdirAll(cmd.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cmd.DebugDir, fs)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	photosStage := photos.NewStage(normalizer, sink, log)
	captionsStage := captions.NewStage(fetcher, measurer, sink, log, cmd.EmojiAssetBase)
	embedStage := embed.NewStage(fetcher, sink, log)
	rasterStage := raster.NewStage(rasterizer, sink, log)

	orch := orchestrator.New(
		photosStage,
		captionsStage,
		embedStage,
		rasterStage,
		fs,
		sink,
		log,
	)

	cfg := cmd.buildConfig()
	output := cmd.Output
	if output == "" {
		tpl, _ := templates.Get(cfg.Template)
		output = tpl.BaseName() + ".png"
	}

	orchConfig := cfg.ToOrchestratorConfig(col.WorkingData(), cmd.Selected, cmd.Text, output)
	orchConfig.SVGPath = cmd.SVG

	log.Info(l10n.F("Composing %s template...", cfg.Template))

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	log.Info(l10n.F("Output saved to %s", output))
	log.Debug("Photos: %d, captions: %d, scannables: %d", result.PhotosInjected, result.CaptionsRendered, result.Scannables)
	return nil
}

// buildConfig creates a Config from CLI options.
func (cmd *ComposeCmd) buildConfig() photoprint.Config {
	builder := photoprint.NewConfigBuilder().
		WithTemplate(cmd.Template).
		WithUppercase(cmd.Uppercase).
		WithEmojiAssetBase(cmd.EmojiAssetBase)

	if cmd.FontFamily != nil {
		builder.WithFontFamily(*cmd.FontFamily)
	}
	if cmd.FontSize != nil {
		builder.WithFontSizeBase(*cmd.FontSize)
	}
	if cmd.Align != nil {
		builder.WithAlign(pipeline.Alignment(*cmd.Align))
	}
	if cmd.EmojiSize != nil {
		builder.WithEmojiPixelSize(*cmd.EmojiSize)
	}
	if cmd.ScannableBG != nil || cmd.ScannableFG != nil {
		defaults := pipeline.DefaultCaptionOptions()
		bg, fg := defaults.ScannableBG, defaults.ScannableFG
		if cmd.ScannableBG != nil {
			bg = *cmd.ScannableBG
		}
		if cmd.ScannableFG != nil {
			fg = *cmd.ScannableFG
		}
		builder.WithScannableColors(bg, fg)
	}

	return builder.Build()
}

// Run executes the removebg command.
func (cmd *RemovebgCmd) Run() error {
	log := newLogger(cmd.Quiet, cmd.LogLevel)

	ctx, cancel := signalContext(log)
	defer cancel()

	fs := osfilesystem.New()

	col := gallery.NewCollection()
	for _, path := range cmd.Images {
		data, err := fs.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		col.Add(filepath.Base(path), data)
	}

	if err := fs.MkdirAll(cmd.OutDir); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	batch := gallery.NewBackgroundBatch(removebg.New(cmd.Endpoint), log)
	updated, err := batch.Run(ctx, col)
	if err != nil {
		return err
	}
	log.Info(l10n.F("Backgrounds removed for %d images", updated))

	for i := 0; i < col.Len(); i++ {
		img, err := col.At(i)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(img.Name, filepath.Ext(img.Name)) + "-nobg.png"
		outPath := filepath.Join(cmd.OutDir, name)
		if err := fs.WriteFile(outPath, img.Working); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		log.Info(l10n.F("Output saved to %s", outPath))
	}
	return nil
}

// Run executes the templates command.
func (cmd *TemplatesCmd) Run() error {
	for _, id := range templates.IDs() {
		tpl, err := templates.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("%-14s %dx%d px  %s\n", tpl.ID, tpl.OutWidth, tpl.OutHeight, tpl.BaseName())
	}
	return nil
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("photoprint (Go) version %s", version))
	return nil
}

func newLogger(quiet bool, level string) ports.Logger {
	if quiet {
		return logger.NewNoop()
	}
	return logger.NewConsole(ports.ParseLogLevel(level))
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(log ports.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	return ctx, cancel
}
