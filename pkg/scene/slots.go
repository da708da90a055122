package scene

import (
	"fmt"

	"github.com/beevik/etree"
)

// PhotoSlot is a template rectangle that receives a clipped photo.
type PhotoSlot struct {
	Rect         *etree.Element
	ClipID       string
	BBox         Rect
	HasTransform bool
}

// NeedsRotation reports whether a photo placed in this slot must be rotated
// 90 degrees: either the slot is authored with a transform, or its bounding
// box is landscape while source photos are portrait.
func (s PhotoSlot) NeedsRotation() bool {
	return s.HasTransform || s.BBox.Width > s.BBox.Height
}

// TextSlot is a template rectangle reserved for a caption, mixed text/emoji
// run, or scannable code.
type TextSlot struct {
	Rect *etree.Element
	BBox Rect
}

// ExtractPhotoSlots scans the scene for photo-slot rectangles in declaration
// order and prepares one clip region per slot. A rect whose raw geometry spans
// the whole viewBox (within a 1-unit tolerance) is the outer frame, styled as
// a slot but never photographed, and is skipped. Slot order is preserved
// because image assignment is positional.
func ExtractPhotoSlots(sc *Scene) []PhotoSlot {
	vbW, vbH := sc.ViewBox()
	defs := sc.Defs()

	var slots []PhotoSlot
	for idx, rect := range sc.RectsWithClass("slot") {
		w := parseFloatAttr(rect, "width")
		h := parseFloatAttr(rect, "height")
		if vbW > 0 && vbH > 0 && w >= vbW-1 && h >= vbH-1 {
			continue
		}
		if rect.SelectAttrValue("id", "") == "" {
			rect.CreateAttr("id", fmt.Sprintf("slot-%d", idx))
		}

		clipID := fmt.Sprintf("clip-%d", idx)
		clip := defs.CreateElement("clipPath")
		clip.CreateAttr("id", clipID)
		clip.AddChild(cloneRectGeometry(rect))

		slots = append(slots, PhotoSlot{
			Rect:         rect,
			ClipID:       clipID,
			BBox:         BoundingBox(rect),
			HasTransform: HasTransform(rect),
		})
	}
	return slots
}

// ExtractTextSlots returns the template's text slots in declaration order.
func ExtractTextSlots(sc *Scene) []TextSlot {
	var slots []TextSlot
	for _, rect := range sc.RectsWithClass("slot_text") {
		slots = append(slots, TextSlot{Rect: rect, BBox: BoundingBox(rect)})
	}
	return slots
}

// cloneRectGeometry copies a rect keeping only its geometry: identity, class
// and style attributes must not leak into clip regions (a hidden slot outline
// would otherwise hide its clip).
func cloneRectGeometry(rect *etree.Element) *etree.Element {
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
