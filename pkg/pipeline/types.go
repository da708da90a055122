package pipeline

import (
	"image"

	"github.com/user/photoprint/pkg/scene"
)

// =============================================================================
// Common Types
// =============================================================================

// AssignMode selects how photos are distributed across photo slots.
type AssignMode int

const (
	// AssignSingle replicates one selected photo into every slot
	// (ID-photo sheet).
	AssignSingle AssignMode = iota
	// AssignMulti maps photos to slots positionally, reusing the last photo
	// for any remaining slots (polaroid layouts).
	AssignMulti
)

// Alignment specifies horizontal caption alignment inside a text slot.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// =============================================================================
// Photos Stage Types
// =============================================================================

// PhotosInput contains parameters for photo compositing.
type PhotosInput struct {
	Scene *scene.Scene
	Slots []scene.PhotoSlot

	// Images holds encoded source bitmaps in caller order. In AssignSingle
	// mode only the image at Selected is used.
	Images   [][]byte
	Selected int
	Mode     AssignMode
}

// PhotosResult reports how many slots were filled.
type PhotosResult struct {
	Injected int
	Rotated  bool
}

// =============================================================================
// Captions Stage Types
// =============================================================================

// CaptionOptions holds text styling shared by every text slot of a render.
type CaptionOptions struct {
	FontFamily     string
	FontSizeBase   float64
	Align          Alignment
	Uppercase      bool
	EmojiPixelSize float64

	// ScannableBG and ScannableFG parametrize scannable-code fetches.
	// ScannableFG is rendered "black" unless explicitly "white".
	ScannableBG string
	ScannableFG string
}

// DefaultCaptionOptions returns CaptionOptions with the editor defaults.
func DefaultCaptionOptions() CaptionOptions {
	return CaptionOptions{
		FontFamily:     "Dancing Script",
		FontSizeBase:   220,
		Align:          AlignCenter,
		Uppercase:      false,
		EmojiPixelSize: 400,
		ScannableBG:    "#ffffffff",
		ScannableFG:    "black",
	}
}

// CaptionsInput contains parameters for caption compositing. Texts pair with
// text slots by declaration order; a shorter list leaves trailing slots
// untouched.
type CaptionsInput struct {
	Scene   *scene.Scene
	Slots   []scene.TextSlot
	Texts   []string
	Options CaptionOptions
}

// CaptionsResult reports per-slot outcomes.
type CaptionsResult struct {
	Rendered  int
	Scannable int
	Skipped   int
}

// =============================================================================
// Embed Stage Types
// =============================================================================

// EmbedInput contains parameters for font and image embedding.
type EmbedInput struct {
	Scene *scene.Scene
}

// EmbedResult reports embedding outcomes.
type EmbedResult struct {
	FontsEmbedded  int
	ImagesEmbedded int
}

// =============================================================================
// Raster Stage Types
// =============================================================================

// RasterInput contains parameters for final rasterization.
type RasterInput struct {
	Scene  *scene.Scene
	Width  int
	Height int
}

// RasterResult contains the rasterized output.
type RasterResult struct {
	Image image.Image
}
