package scene

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Rect is an axis-aligned rectangle in canvas units.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

var matrixRe = regexp.MustCompile(`matrix\(([^)]+)\)`)

// BoundingBox computes the effective axis-aligned bounding box of a rect
// element in canvas space. Untransformed rects return their raw geometry
// (x/y default to 0 when absent). Rects carrying a matrix(a b c d e f)
// transform are resolved by mapping the four corners of the raw rectangle
// through [a c e; b d f] and spanning their extremes. Slots are sometimes
// authored pre-rotated, so placement must happen in canvas space.
func BoundingBox(rect *etree.Element) Rect {
	w := parseFloatAttr(rect, "width")
	h := parseFloatAttr(rect, "height")
	x := parseFloatAttr(rect, "x")
	y := parseFloatAttr(rect, "y")

	if tf := rect.SelectAttrValue("transform", ""); tf != "" {
		if m := matrixRe.FindStringSubmatch(tf); m != nil {
			if coef, ok := parseMatrix(m[1]); ok {
				return transformedBox(coef, w, h)
			}
		}
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// HasTransform reports whether the rect carries any transform attribute.
func HasTransform(rect *etree.Element) bool {
	return rect.SelectAttr("transform") != nil
}

func parseMatrix(body string) ([6]float64, bool) {
	fields := strings.FieldsFunc(strings.TrimSpace(body), func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t' || r == '\n'
	})
	var coef [6]float64
	if len(fields) != 6 {
		return coef, false
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return coef, false
		}
		coef[i] = v
	}
	return coef, true
}

func transformedBox(m [6]float64, w, h float64) Rect {
	a, b, c, d, e, f := m[0], m[1], m[2], m[3], m[4], m[5]
	xs := [4]float64{e, a*w + e, c*h + e, a*w + c*h + e}
	ys := [4]float64{f, b*w + f, d*h + f, b*w + d*h + f}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := 1; i < 4; i++ {
		minX = math.Min(minX, xs[i])
		maxX = math.Max(maxX, xs[i])
		minY = math.Min(minY, ys[i])
		maxY = math.Max(maxY, ys[i])
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func parseFloatAttr(el *etree.Element, name string) float64 {
	v, _ := strconv.ParseFloat(el.SelectAttrValue(name, "0"), 64)
	return v
}
