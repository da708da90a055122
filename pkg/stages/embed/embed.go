// Package embed implements the asset embedding stage: remote fonts and image
// references are rewritten to data: URLs so the exported document rasterizes
// without network access.
package embed

import (
	"context"
	"regexp"
	"strings"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
	"github.com/user/photoprint/pkg/scene"
)

// fontCSSURL requests every font family the caption editor offers.
const fontCSSURL = "https://fonts.googleapis.com/css2?family=Dancing+Script&family=Pacifico&family=Great+Vibes&family=Satisfy&display=swap"

// fontHost resolves relative font references in the fetched style sheet.
const fontHost = "https://fonts.gstatic.com/"

// embeddedMarker tags the injected style node so repeated embedding is a
// no-op.
const embeddedMarker = "data-embedded-fonts"

var cssURLRe = regexp.MustCompile(`url\(([^)]+)\)`)

// Stage embeds fonts and inlines image references.
type Stage struct {
	fetcher ports.Fetcher
	sink    ports.DebugSink
	logger  ports.Logger
}

// NewStage creates an embed stage.
func NewStage(fetcher ports.Fetcher, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger.WithComponent("embed"),
	}
}

// Execute embeds fonts and then inlines images. Individual fetch failures
// degrade that one asset and never abort the stage.
func (s *Stage) Execute(ctx context.Context, input pipeline.EmbedInput) (pipeline.EmbedResult, error) {
	result := pipeline.EmbedResult{}

	fonts, err := s.EmbedFonts(ctx, input.Scene)
	if err != nil {
		// A missing style sheet loses custom fonts, not the render.
		s.logger.Warn("Font file not embedded: %s: %v", fontCSSURL, err)
	}
	result.FontsEmbedded = fonts

	result.ImagesEmbedded = s.InlineImages(ctx, input.Scene)

	if s.sink.Enabled() {
		if data, err := input.Scene.Serialize(); err == nil {
			s.sink.SaveScene("embedded", data)
		}
	}
	return result, nil
}

// EmbedFonts fetches the font style sheet, converts each referenced font file
// to a data URL, rewrites the sheet, and installs it under defs. Returns the
// number of font files embedded. Idempotent: a scene that already carries the
// embedded style is left alone.
func (s *Stage) EmbedFonts(ctx context.Context, sc *scene.Scene) (int, error) {
	if hasEmbeddedStyle(sc) {
		return 0, nil
	}
	s.logger.Debug("Embedding fonts")

	cssData, _, err := s.fetcher.Fetch(ctx, fontCSSURL)
	if err != nil {
		return 0, err
	}
	cssText := string(cssData)

	embedded := make(map[string]string)
	count := 0
	for _, ref := range uniqueFontRefs(cssText) {
		full := resolveFontURL(ref)
		data, mediaType, err := s.fetcher.Fetch(ctx, full)
		if err != nil {
			s.logger.Warn("Font file not embedded: %s: %v", full, err)
			continue
		}
		if mediaType == "" {
			mediaType = "font/woff2"
		}
		embedded[ref] = scene.DataURL(mediaType, data)
		count++
	}

	cssText = cssURLRe.ReplaceAllStringFunc(cssText, func(match string) string {
		ref := stripURLToken(cssURLRe.FindStringSubmatch(match)[1])
		if data, ok := embedded[ref]; ok {
			return "url(" + data + ")"
		}
		// Keep unfetched files as absolute remote references.
		return "url(" + resolveFontURL(ref) + ")"
	})

	style := sc.Defs().CreateElement("style")
	style.CreateAttr("type", "text/css")
	style.CreateAttr(embeddedMarker, "true")
	style.SetText(cssText)

	s.logger.Debug("Embedded %d font files", count)
	return count, nil
}

// InlineImages rewrites every remote image reference to a data URL, skipping
// ones already embedded. Returns the number of images inlined. A failed fetch
// leaves that image remote; it will likely drop out of the raster, which
// beats losing the sheet.
func (s *Stage) InlineImages(ctx context.Context, sc *scene.Scene) int {
	count := 0
	for _, img := range sc.Images() {
		href := scene.ImageHref(img)
		if href == "" || strings.HasPrefix(href, "data:") {
			continue
		}
		data, mediaType, err := s.fetcher.Fetch(ctx, href)
		if err != nil {
			s.logger.Warn("Image not inlined: %s: %v", href, err)
			continue
		}
		if mediaType == "" {
			mediaType = "image/png"
		}
		scene.SetImageHref(img, scene.DataURL(mediaType, data))
		count++
	}
	s.logger.Debug("Inlined %d images", count)
	return count
}

func hasEmbeddedStyle(sc *scene.Scene) bool {
	for _, el := range sc.Defs().ChildElements() {
		if el.Tag == "style" && el.SelectAttrValue(embeddedMarker, "") == "true" {
			return true
		}
	}
	return false
}

// uniqueFontRefs extracts the distinct non-data url(...) references from the
// style sheet, in first-appearance order.
func uniqueFontRefs(cssText string) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, m := range cssURLRe.FindAllStringSubmatch(cssText, -1) {
		ref := stripURLToken(m[1])
		if ref == "" || strings.HasPrefix(ref, "data:") || seen[ref] {
			continue
		}
		seen[ref] = true
		refs = append(refs, ref)
	}
	return refs
}

func stripURLToken(token string) string {
	return strings.Trim(strings.TrimSpace(token), `'"`)
}

func resolveFontURL(ref string) string {
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return fontHost + strings.TrimLeft(ref, "/")
}
