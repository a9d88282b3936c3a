package checks

import (
	"fmt"
	"math"

	"accesslint/internal/colormath"
)

// Text-size boundaries and ratio thresholds from WCAG 1.4.3 / 1.4.6.
// 18.66px bold and 24px regular correspond to the 14pt/18pt definitions of
// large text.
const (
	largeTextSizePx     = 24.0
	largeTextBoldSizePx = 18.66

	contrastAANormal  = 4.5
	contrastAALarge   = 3.0
	contrastAAANormal = 7.0
	contrastAAALarge  = 4.5
)

// ContrastInput describes one foreground/background text pairing.
type ContrastInput struct {
	Foreground string   `json:"foreground" doc:"Foreground color in hex, rgb(), hsl(), or named notation"`
	Background string   `json:"background" doc:"Background color in hex, rgb(), hsl(), or named notation"`
	FontSizePx *float64 `json:"font_size_px,omitempty" doc:"Nominal font size in CSS pixels (default 16)"`
	Bold       *bool    `json:"bold,omitempty" doc:"Whether the text is bold (default false)"`
}

// CheckContrast evaluates the pairing against 1.4.3 (AA) and 1.4.6 (AAA).
// An unparseable color yields a single fail verdict under 1.4.3; both
// thresholds are evaluated against the same rounded ratio otherwise.
func CheckContrast(in ContrastInput) []Verdict {
	fg, err := colormath.Parse(in.Foreground)
	if err != nil {
		return []Verdict{
			verdict("1.4.3", StatusFail, fmt.Sprintf("Invalid color: foreground (%q)", in.Foreground)).
				withRecommendation("Supply the foreground color in a recognized CSS notation"),
		}
	}
	bg, err := colormath.Parse(in.Background)
	if err != nil {
		return []Verdict{
			verdict("1.4.3", StatusFail, fmt.Sprintf("Invalid color: background (%q)", in.Background)).
				withRecommendation("Supply the background color in a recognized CSS notation"),
		}
	}

	size := 16.0
	if in.FontSizePx != nil {
		size = *in.FontSizePx
	}
	bold := in.Bold != nil && *in.Bold

	ratio := math.Round(colormath.ContrastRatio(fg, bg)*100) / 100

	sizeClass := "normal"
	aaRequired := contrastAANormal
	aaaRequired := contrastAAANormal
	if size >= largeTextSizePx || (bold && size >= largeTextBoldSizePx) {
		sizeClass = "large"
		aaRequired = contrastAALarge
		aaaRequired = contrastAAALarge
	}

	aaPasses := ratio >= aaRequired
	aa := verdict("1.4.3", StatusPass,
		fmt.Sprintf("Contrast ratio %.2f:1 meets the %.1f:1 minimum for %s text", ratio, aaRequired, sizeClass)).
		withValues(ratio, aaRequired)
	if !aaPasses {
		aa.Status = StatusFail
		aa.Message = fmt.Sprintf("Contrast ratio %.2f:1 is below the %.1f:1 minimum for %s text", ratio, aaRequired, sizeClass)
		aa = aa.withRecommendation(fmt.Sprintf("Increase contrast to at least %.1f:1", aaRequired))
	}

	aaa := verdict("1.4.6", StatusPass,
		fmt.Sprintf("Contrast ratio %.2f:1 meets the enhanced %.1f:1 minimum for %s text", ratio, aaaRequired, sizeClass)).
		withValues(ratio, aaaRequired)
	switch {
	case ratio >= aaaRequired:
	case aaPasses:
		aaa.Status = StatusWarning
		aaa.Message = fmt.Sprintf("Contrast ratio %.2f:1 meets the minimum but not the enhanced %.1f:1 requirement for %s text", ratio, aaaRequired, sizeClass)
		aaa = aaa.withRecommendation(fmt.Sprintf("Increase contrast to at least %.1f:1 for enhanced conformance", aaaRequired))
	default:
		aaa.Status = StatusFail
		aaa.Message = fmt.Sprintf("Contrast ratio %.2f:1 is below the enhanced %.1f:1 requirement for %s text", ratio, aaaRequired, sizeClass)
		aaa = aaa.withRecommendation(fmt.Sprintf("Increase contrast to at least %.1f:1", aaaRequired))
	}

	return []Verdict{aa, aaa}
}
