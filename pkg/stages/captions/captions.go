// Package captions implements the text slot compositing stage. A text slot
// renders one of three ways: a fetched Spotify scannable code, a mixed run of
// text and inline emoji images, or auto-fitted plain text.
package captions

import (
	"context"
	"fmt"
	"strings"

	"github.com/user/photoprint/pkg/pipeline"
	"github.com/user/photoprint/pkg/ports"
	"github.com/user/photoprint/pkg/scene"

	"github.com/beevik/etree"
)

// textFill is the ink color for caption text.
const textFill = "#0f172a"

// emojiFloor is the minimum emoji footprint in canvas units. Templates use a
// 10000-unit-wide coordinate space, so anything smaller is illegible on print.
const emojiFloor = 400

// Stage renders captions into the scene's text slots.
type Stage struct {
	fetcher   ports.Fetcher
	measurer  ports.TextMeasurer
	sink      ports.DebugSink
	logger    ports.Logger
	emojiBase string
}

// NewStage creates a captions stage. emojiBase is the URL prefix for the
// bundled literal-emoji images.
func NewStage(fetcher ports.Fetcher, measurer ports.TextMeasurer, sink ports.DebugSink, logger ports.Logger, emojiBase string) *Stage {
	return &Stage{
		fetcher:   fetcher,
		measurer:  measurer,
		sink:      sink,
		logger:    logger.WithComponent("captions"),
		emojiBase: emojiBase,
	}
}

// Execute renders each text input into its slot, in declaration order. Slots
// beyond the text list stay untouched; a slot whose remote code fetch fails
// is left blank. Slots are processed strictly in sequence.
func (s *Stage) Execute(ctx context.Context, input pipeline.CaptionsInput) (pipeline.CaptionsResult, error) {
	result := pipeline.CaptionsResult{}

	input.Scene.RemoveByAttr("data-text-slot")
	s.logger.Debug("Rendering %d text slots", len(input.Slots))

	for i := 0; i < len(input.Slots) && i < len(input.Texts); i++ {
		slot := input.Slots[i]
		raw := input.Texts[i]

		// The slot outline is an editing aid, never part of the export.
		slot.Rect.CreateAttr("style", "display:none")

		if ref, ok := ParseSpotifyURL(raw); ok {
			if s.renderScannable(ctx, input.Scene, slot, i, ref, input.Options) {
				result.Scannable++
			} else {
				result.Skipped++
			}
			continue
		}

		if HasEmojiRun(raw) {
			s.logger.Debug("Slot %d: mixed text and emoji", i)
			s.renderMixedRun(input.Scene, slot, i, raw, input.Options)
		} else {
			s.renderPlainText(input.Scene, slot, i, raw, input.Options)
		}
		result.Rendered++
	}

	if s.sink.Enabled() {
		if data, err := input.Scene.Serialize(); err == nil {
			s.sink.SaveScene("captions", data)
		}
	}
	return result, nil
}

// renderScannable fetches the code image and injects it clipped to the slot
// with meet fit (the barcode must stay whole, unlike cover-scaled photos).
// Returns false when the fetch failed and the slot was left blank.
func (s *Stage) renderScannable(ctx context.Context, sc *scene.Scene, slot scene.TextSlot, idx int, ref SpotifyRef, opts pipeline.CaptionOptions) bool {
	codeURL := ScannableURL(ref, opts.ScannableBG, opts.ScannableFG)
	s.logger.Debug("Slot %d: scannable code (%s %s)", idx, ref.Type, ref.ID)

	data, mediaType, err := s.fetcher.Fetch(ctx, codeURL)
	if err != nil {
		s.logger.Warn("Scannable code fetch failed for slot %d: %v", idx, err)
		return false
	}
	if mediaType == "" {
		mediaType = "image/jpeg"
	}

	clipID := fmt.Sprintf("txtclip-%d", idx)
	if existingClip(sc, clipID) == nil {
		clip := sc.Defs().CreateElement("clipPath")
		clip.CreateAttr("id", clipID)
		clip.AddChild(cloneGeometry(slot.Rect))
	}

	img := sc.Root().CreateElement("image")
	scene.SetImageHref(img, scene.DataURL(mediaType, data))
	img.CreateAttr("x", scene.Ftoa(slot.BBox.X))
	img.CreateAttr("y", scene.Ftoa(slot.BBox.Y))
	img.CreateAttr("width", scene.Ftoa(slot.BBox.Width))
	img.CreateAttr("height", scene.Ftoa(slot.BBox.Height))
	img.CreateAttr("preserveAspectRatio", "xMidYMid meet")
	img.CreateAttr("clip-path", fmt.Sprintf("url(#%s)", clipID))
	img.CreateAttr("data-text-slot", fmt.Sprintf("%d", idx))
	return true
}

// runElement is one laid-out piece of a mixed run with its final footprint.
type runElement struct {
	seg      Segment
	fontSize float64
	width    float64
	height   float64
}

// renderMixedRun lays text and emoji images out horizontally as one centered
// unit. Emoji occupy a fixed square footprint with a 400-unit floor; text
// segments are fitted individually against the slot width.
func (s *Stage) renderMixedRun(sc *scene.Scene, slot scene.TextSlot, idx int, raw string, opts pipeline.CaptionOptions) {
	bbox := slot.BBox
	emojiSize := opts.EmojiPixelSize
	if emojiSize < emojiFloor {
		emojiSize = emojiFloor
	}

	var elements []runElement
	total := 0.0
	for _, seg := range SplitRun(raw, s.emojiBase) {
		switch {
		case seg.Kind == SegmentText:
			content := seg.Text
			if opts.Uppercase {
				content = strings.ToUpper(content)
			}
			size, width := FitRunText(s.measurer, content, opts.FontFamily, opts.FontSizeBase, bbox.Width)
			elements = append(elements, runElement{
				seg:      Segment{Kind: SegmentText, Text: content},
				fontSize: size,
				width:    width,
			})
			total += width
		case seg.URL == "":
			// Emoji with no resolvable image renders as a literal glyph
			// box at the emoji footprint.
			s.logger.Warn("Emoji not resolved: %s", seg.Text)
			content := seg.Text
			if content == "" {
				content = "❓"
			}
			elements = append(elements, runElement{
				seg:      Segment{Kind: SegmentText, Text: content},
				fontSize: emojiSize,
				width:    emojiSize,
			})
			total += emojiSize
		default:
			elements = append(elements, runElement{
				seg:    seg,
				width:  emojiSize,
				height: emojiSize,
			})
			total += emojiSize
		}
	}

	posX := bbox.X + (bbox.Width-total)/2
	switch opts.Align {
	case pipeline.AlignLeft:
		posX = bbox.X + opts.FontSizeBase*0.2
	case pipeline.AlignRight:
		posX = bbox.X + bbox.Width - total - opts.FontSizeBase*0.2
	}

	for _, el := range elements {
		if el.seg.Kind == SegmentText {
			t := sc.Root().CreateElement("text")
			t.SetText(el.seg.Text)
			t.CreateAttr("font-family", opts.FontFamily)
			t.CreateAttr("font-size", scene.Ftoa(el.fontSize))
			t.CreateAttr("fill", textFill)
			t.CreateAttr("text-anchor", "start")
			t.CreateAttr("x", scene.Ftoa(posX))
			t.CreateAttr("y", scene.Ftoa(bbox.Y+bbox.Height/2+el.fontSize*0.35))
			t.CreateAttr("data-text-slot", fmt.Sprintf("%d", idx))
		} else {
			img := sc.Root().CreateElement("image")
			scene.SetImageHref(img, el.seg.URL)
			img.CreateAttr("x", scene.Ftoa(posX))
			img.CreateAttr("y", scene.Ftoa(bbox.Y+(bbox.Height-el.height)/2))
			img.CreateAttr("width", scene.Ftoa(el.width))
			img.CreateAttr("height", scene.Ftoa(el.height))
			img.CreateAttr("preserveAspectRatio", "xMidYMid meet")
			img.CreateAttr("data-text-slot", fmt.Sprintf("%d", idx))
		}
		posX += el.width
	}
}

// renderPlainText fits and anchors a single text node inside the slot.
func (s *Stage) renderPlainText(sc *scene.Scene, slot scene.TextSlot, idx int, raw string, opts pipeline.CaptionOptions) {
	bbox := slot.BBox
	content := raw
	if opts.Uppercase {
		content = strings.ToUpper(content)
	}

	fontSize, _ := FitPlainText(s.measurer, content, opts.FontFamily, opts.FontSizeBase, bbox.Width)
	s.logger.Debug("Slot %d: plain text, fitted font size %.0f", idx, fontSize)

	anchor := "middle"
	x := bbox.X + bbox.Width/2
	switch opts.Align {
	case pipeline.AlignLeft:
		anchor = "start"
		x = bbox.X + fontSize*0.3
	case pipeline.AlignRight:
		anchor = "end"
		x = bbox.X + bbox.Width - fontSize*0.3
	}

	t := sc.Root().CreateElement("text")
	t.SetText(content)
	t.CreateAttr("font-family", opts.FontFamily)
	t.CreateAttr("font-size", scene.Ftoa(fontSize))
	t.CreateAttr("fill", textFill)
	t.CreateAttr("text-anchor", anchor)
	t.CreateAttr("x", scene.Ftoa(x))
	t.CreateAttr("y", scene.Ftoa(bbox.Y+bbox.Height/2+fontSize*0.35))
	t.CreateAttr("data-text-slot", fmt.Sprintf("%d", idx))
}

func existingClip(sc *scene.Scene, id string) *etree.Element {
	for _, el := range sc.Defs().ChildElements() {
		if el.Tag == "clipPath" && el.SelectAttrValue("id", "") == id {
			return el
		}
	}
	return nil
}

// cloneGeometry copies a rect keeping only geometry attributes. A clip must
// not inherit the display:none style that hides the slot outline.
func cloneGeometry(rect *etree.Element) *etree.Element {
	clone := etree.NewElement("rect")
	for _, attr := range rect.Attr {
		switch attr.Key {
		case "id", "class", "style":
			continue
		}
		clone.Attr = append(clone.Attr, attr)
	}
	return clone
}
