package captions

import (
	"github.com/user/photoprint/pkg/ports"
)

// Auto-fit constants. These are deliberately literal: exported sheets must be
// pixel-identical across versions, and the loops below converge differently
// under any other step sizes or thresholds.
const (
	minFontSize = 50
	maxFontSize = 800

	shrinkStep = 10
	growStep   = 10
	fineStep   = 5

	// Plain text targets between 50% and 80% of the slot width; mixed-run
	// text segments shrink against a tighter 60% bound since emoji take
	// their own share of the line.
	plainUpperRatio = 0.8
	plainLowerRatio = 0.5
	runUpperRatio   = 0.6
)

// FitPlainText finds a font size for text inside a slot of the given width,
// starting from base. The loop is a convergence heuristic, not an optimal-fit
// search: it shrinks oversized text in steps of 10, grows undersized text in
// steps of 10, and backs off overshoot in steps of 5.
func FitPlainText(m ports.TextMeasurer, text, family string, base, slotWidth float64) (fontSize, width float64) {
	fontSize = base
	width = m.MeasureWidth(text, fontSize, family)

	if width > slotWidth*plainUpperRatio {
		for width > slotWidth*plainUpperRatio && fontSize > minFontSize {
			fontSize -= shrinkStep
			width = m.MeasureWidth(text, fontSize, family)
		}
	} else if width < slotWidth*plainLowerRatio {
		for width < slotWidth*plainLowerRatio && fontSize < maxFontSize {
			fontSize += growStep
			width = m.MeasureWidth(text, fontSize, family)
		}
		if width > slotWidth*plainUpperRatio {
			for width > slotWidth*plainUpperRatio && fontSize > minFontSize {
				fontSize -= fineStep
				width = m.MeasureWidth(text, fontSize, family)
			}
		}
	}
	return fontSize, width
}

// FitRunText sizes one text segment of a mixed run. Segments only ever
// shrink; short fragments between emoji keep the base size.
func FitRunText(m ports.TextMeasurer, text, family string, base, slotWidth float64) (fontSize, width float64) {
	fontSize = base
	width = m.MeasureWidth(text, fontSize, family)

	if width > slotWidth*runUpperRatio {
		for width > slotWidth*runUpperRatio && fontSize > minFontSize {
			fontSize -= shrinkStep
			width = m.MeasureWidth(text, fontSize, family)
		}
	}
	return fontSize, width
}
