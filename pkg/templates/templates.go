// Package templates holds the built-in print layouts. Layouts are fixed:
// the engine composes photos and captions into them but never authors new
// slot arrangements.
package templates

import (
	_ "embed"
	"fmt"

	"github.com/user/photoprint/pkg/pipeline"
)

//go:embed assets/sheet-3x4.svg
var sheet3x4SVG []byte

//go:embed assets/polaroid-one.svg
var polaroidOneSVG []byte

//go:embed assets/polaroid-two.svg
var polaroidTwoSVG []byte

// Template is an immutable named print layout.
type Template struct {
	// ID identifies the template ("sheet-3x4", "polaroid-one", "polaroid-two").
	ID string

	// Markup is the template's SVG source.
	Markup []byte

	// OutWidth and OutHeight are the raster export dimensions in pixels,
	// matching the template's aspect ratio (10x15cm or 15x10cm at 300dpi).
	OutWidth  int
	OutHeight int

	// Mode selects how photos are assigned to the template's slots.
	Mode pipeline.AssignMode
}

// BaseName is the suggested export file name without extension.
func (t Template) BaseName() string {
	switch t.ID {
	case SheetID:
		return "folha-3x4"
	case PolaroidTwoID:
		return "polaroid-2up-15x10"
	default:
		return "polaroid-1up-10x15"
	}
}

// Template ids.
const (
	SheetID       = "sheet-3x4"
	PolaroidOneID = "polaroid-one"
	PolaroidTwoID = "polaroid-two"
)

var registry = map[string]Template{
	SheetID: {
		ID:        SheetID,
		Markup:    sheet3x4SVG,
		OutWidth:  1181,
		OutHeight: 1772,
		Mode:      pipeline.AssignSingle,
	},
	PolaroidOneID: {
		ID:        PolaroidOneID,
		Markup:    polaroidOneSVG,
		OutWidth:  1181,
		OutHeight: 1772,
		Mode:      pipeline.AssignMulti,
	},
	PolaroidTwoID: {
		ID:        PolaroidTwoID,
		Markup:    polaroidTwoSVG,
		OutWidth:  1772,
		OutHeight: 1181,
		Mode:      pipeline.AssignMulti,
	},
}

// Get returns the template with the given id.
func Get(id string) (Template, error) {
	t, ok := registry[id]
	if !ok {
		return Template{}, fmt.Errorf("unknown template %q", id)
	}
	return t, nil
}

// IDs returns all registered template ids in a stable order.
func IDs() []string {
	return []string{SheetID, PolaroidOneID, PolaroidTwoID}
}
