// Package scene provides the mutable SVG scene graph that all compositing
// stages operate on. Each render owns its own Scene instance; a Scene is not
// safe for concurrent use.
package scene

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrParse indicates malformed template markup. Parse failures are fatal for
// the render.
var ErrParse = errors.New("malformed template markup")

// XlinkNS is the XML namespace used for image href attributes.
const XlinkNS = "http://www.w3.org/1999/xlink"

// Scene wraps a parsed SVG document tree.
type Scene struct {
	doc  *etree.Document
	root *etree.Element
}

// Load parses SVG template markup into a mutable scene graph. If the root has
// no defs container, an empty one is inserted as the first child; later stages
// assume it exists.
func Load(markup []byte) (*Scene, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(markup); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "svg" {
		return nil, fmt.Errorf("%w: root element is not svg", ErrParse)
	}
	sc := &Scene{doc: doc, root: root}
	sc.ensureDefs()
	return sc, nil
}

// Root returns the svg root element.
func (s *Scene) Root() *etree.Element {
	return s.root
}

// Defs returns the defs container, creating it if needed.
func (s *Scene) Defs() *etree.Element {
	return s.ensureDefs()
}

func (s *Scene) ensureDefs() *etree.Element {
	if defs := s.root.SelectElement("defs"); defs != nil {
		return defs
	}
	defs := etree.NewElement("defs")
	s.root.InsertChildAt(0, defs)
	return defs
}

// ViewBox returns the root viewBox width and height. A missing or malformed
// viewBox yields zeros.
func (s *Scene) ViewBox() (w, h float64) {
	fields := strings.Fields(s.root.SelectAttrValue("viewBox", "0 0 0 0"))
	if len(fields) != 4 {
		return 0, 0
	}
	w, _ = strconv.ParseFloat(fields[2], 64)
	h, _ = strconv.ParseFloat(fields[3], 64)
	return w, h
}

// Serialize returns the scene as SVG markup.
func (s *Scene) Serialize() ([]byte, error) {
	data, err := s.doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("serialize scene: %w", err)
	}
	return data, nil
}

// RemoveByAttr removes every element in the tree carrying the given attribute.
// Used by compositors to clear previously injected nodes before re-rendering.
func (s *Scene) RemoveByAttr(attr string) {
	removeByAttr(s.root, attr)
}

func removeByAttr(el *etree.Element, attr string) {
	for _, child := range el.ChildElements() {
		if child.SelectAttr(attr) != nil {
			el.RemoveChild(child)
			continue
		}
		removeByAttr(child, attr)
	}
}

// RectsWithClass returns every rect element whose class attribute contains the
// given class token, in document order. Token matching is exact: a rect with
// class "slot_text" does not match token "slot".
func (s *Scene) RectsWithClass(token string) []*etree.Element {
	var rects []*etree.Element
	collectRects(s.root, token, &rects)
	return rects
}

func collectRects(el *etree.Element, token string, out *[]*etree.Element) {
	for _, child := range el.ChildElements() {
		if child.Tag == "rect" && hasClassToken(child.SelectAttrValue("class", ""), token) {
			*out = append(*out, child)
		}
		collectRects(child, token, out)
	}
}

func hasClassToken(classAttr, token string) bool {
	for _, t := range strings.Fields(classAttr) {
		if t == token {
			return true
		}
	}
	return false
}

// Images returns every image element in the tree, in document order.
func (s *Scene) Images() []*etree.Element {
	var images []*etree.Element
	collectImages(s.root, &images)
	return images
}

func collectImages(el *etree.Element, out *[]*etree.Element) {
	for _, child := range el.ChildElements() {
		if child.Tag == "image" {
			*out = append(*out, child)
		}
		collectImages(child, out)
	}
}

// ImageHref returns the href of an image element, preferring the xlink form.
func ImageHref(img *etree.Element) string {
	if href := img.SelectAttrValue("xlink:href", ""); href != "" {
		return href
	}
	return img.SelectAttrValue("href", "")
}

// SetImageHref sets the xlink:href of an image element.
func SetImageHref(img *etree.Element, href string) {
	img.CreateAttr("xlink:href", href)
}

// DataURL encodes binary data as a data: URL so the document never depends on
// a live host at rasterization time.
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Ftoa formats a coordinate for an SVG attribute without trailing zeros.
func Ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
