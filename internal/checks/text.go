package checks

import (
	"fmt"
	"strings"
)

// Spacing multipliers of font size from WCAG 1.4.12.
const (
	lineHeightFactor       = 1.5
	paragraphSpacingFactor = 2.0
	letterSpacingFactor    = 0.12
	wordSpacingFactor      = 0.16
)

const maxLineLength = 80

// SpacingInput carries the measured text spacing values in pixels. Any
// dimension left unset is not tested.
type SpacingInput struct {
	FontSizePx         float64  `json:"font_size_px" doc:"Font size in CSS pixels"`
	LineHeightPx       *float64 `json:"line_height_px,omitempty" doc:"Line height in CSS pixels"`
	LetterSpacingPx    *float64 `json:"letter_spacing_px,omitempty" doc:"Letter spacing in CSS pixels"`
	WordSpacingPx      *float64 `json:"word_spacing_px,omitempty" doc:"Word spacing in CSS pixels"`
	ParagraphSpacingPx *float64 `json:"paragraph_spacing_px,omitempty" doc:"Paragraph spacing in CSS pixels"`
}

// CheckTextSpacing evaluates the supplied spacing dimensions against 1.4.12.
// One aggregate verdict is emitted: pass only when every tested dimension
// meets its multiplier of font size.
func CheckTextSpacing(in SpacingInput) []Verdict {
	type dim struct {
		name     string
		value    *float64
		required float64
	}
	dims := []dim{
		{"line-height", in.LineHeightPx, in.FontSizePx * lineHeightFactor},
		{"letter-spacing", in.LetterSpacingPx, in.FontSizePx * letterSpacingFactor},
		{"word-spacing", in.WordSpacingPx, in.FontSizePx * wordSpacingFactor},
		{"paragraph-spacing", in.ParagraphSpacingPx, in.FontSizePx * paragraphSpacingFactor},
	}

	tested := 0
	allPass := true
	var lines []string
	for _, d := range dims {
		if d.value == nil {
			continue
		}
		tested++
		mark := "✓"
		if *d.value < d.required {
			mark = "✗"
			allPass = false
		}
		lines = append(lines, fmt.Sprintf("%s %s: %.2fpx (minimum %.2fpx)", mark, d.name, *d.value, d.required))
	}

	if tested == 0 {
		return []Verdict{
			verdict("1.4.12", StatusInfo, "No spacing values supplied; nothing was checked"),
		}
	}

	msg := strings.Join(lines, "\n")
	if allPass {
		return []Verdict{
			verdict("1.4.12", StatusPass, msg).withValues(tested, "all tested dimensions at or above minimum"),
		}
	}
	return []Verdict{
		verdict("1.4.12", StatusFail, msg).
			withValues(tested, "all tested dimensions at or above minimum").
			withRecommendation("Ensure content remains readable when users override text spacing up to the 1.4.12 metrics"),
	}
}

// LineLengthInput is a block of text whose longest line is measured.
type LineLengthInput struct {
	Text string `json:"text" doc:"Text block; lines are split on line breaks"`
}

// CheckLineLength measures the longest line against the 80-character
// ceiling of 1.4.8. Exceeding it is a warning, not a fail: visual
// presentation is an AAA recommendation.
func CheckLineLength(in LineLengthInput) []Verdict {
	longest := 0
	for _, line := range strings.Split(in.Text, "\n") {
		if n := len([]rune(strings.TrimSuffix(line, "\r"))); n > longest {
			longest = n
		}
	}
	if longest <= maxLineLength {
		return []Verdict{
			verdict("1.4.8", StatusPass,
				fmt.Sprintf("Longest line is %d characters, within the %d-character recommendation", longest, maxLineLength)).
				withValues(longest, maxLineLength),
		}
	}
	return []Verdict{
		verdict("1.4.8", StatusWarning,
			fmt.Sprintf("Longest line is %d characters, above the %d-character recommendation", longest, maxLineLength)).
			withValues(longest, maxLineLength).
			withRecommendation("Limit text blocks to 80 characters per line"),
	}
}

// JustificationInput flags fully justified text.
type JustificationInput struct {
	IsJustified bool `json:"is_justified" doc:"Whether the text block uses full justification"`
}

// CheckJustification fails fully justified text under 1.4.8: the uneven
// word spacing it produces harms readers with cognitive disabilities.
func CheckJustification(in JustificationInput) []Verdict {
	if in.IsJustified {
		return []Verdict{
			verdict("1.4.8", StatusFail, "Text is fully justified, producing uneven word spacing").
				withRecommendation("Use left-aligned (or right-aligned for RTL) text instead of full justification"),
		}
	}
	return []Verdict{
		verdict("1.4.8", StatusPass, "Text is not fully justified"),
	}
}

// ResizeReflowInput carries two heuristic signals about scalable layout.
type ResizeReflowInput struct {
	UsesRelativeUnits  bool `json:"uses_relative_units" doc:"Whether text sizing uses relative units (em, rem, %)"`
	HasFixedContainers bool `json:"has_fixed_containers" doc:"Whether fixed-width containers constrain the content"`
}

// CheckResizeReflow emits independent verdicts for 1.4.4 and 1.4.10.
// Neither signal alone proves a violation, so shortfalls are warnings.
func CheckResizeReflow(in ResizeReflowInput) []Verdict {
	resize := verdict("1.4.4", StatusPass, "Text sizing uses relative units")
	if !in.UsesRelativeUnits {
		resize = verdict("1.4.4", StatusWarning, "Text sizing does not use relative units; 200% resize may clip content").
			withRecommendation("Size text in relative units (em, rem, %) so it scales to 200%")
	}
	reflow := verdict("1.4.10", StatusPass, "No fixed-width containers constrain the content")
	if in.HasFixedContainers {
		reflow = verdict("1.4.10", StatusWarning, "Fixed-width containers may prevent reflow at 320 CSS pixels").
			withRecommendation("Replace fixed container widths with max-width or responsive layout")
	}
	return []Verdict{resize, reflow}
}

// LanguageInput describes the page's declared language.
type LanguageInput struct {
	HasLangAttribute bool    `json:"has_lang_attribute" doc:"Whether the document root carries a lang attribute"`
	LangValue        *string `json:"lang_value,omitempty" doc:"Value of the lang attribute, if present"`
}

// CheckLanguage evaluates 3.1.1. Any value of at least two characters is
// accepted; no locale-table validation is attempted.
func CheckLanguage(in LanguageInput) []Verdict {
	if !in.HasLangAttribute {
		return []Verdict{
			verdict("3.1.1", StatusFail, "Document root is missing the lang attribute").
				withRecommendation("Declare the page language, e.g. <html lang=\"en\">"),
		}
	}
	value := ""
	if in.LangValue != nil {
		value = strings.TrimSpace(*in.LangValue)
	}
	if len(value) < 2 {
		return []Verdict{
			verdict("3.1.1", StatusFail, fmt.Sprintf("lang attribute value %q is not a valid language tag", value)).
				withValues(value, "BCP 47 language tag").
				withRecommendation("Use a valid language tag such as \"en\" or \"fr-CA\""),
		}
	}
	return []Verdict{
		verdict("3.1.1", StatusPass, fmt.Sprintf("Page language is declared as %q", value)).
			withValues(value, "BCP 47 language tag"),
	}
}

// ImagesOfTextInput flags rendered-text imagery.
type ImagesOfTextInput struct {
	HasImagesOfText bool  `json:"has_images_of_text" doc:"Whether the page renders text as images"`
	IsEssential     *bool `json:"is_essential,omitempty" doc:"Whether the presentation is essential, e.g. a logotype (default false)"`
}

// CheckImagesOfText evaluates 1.4.5. Essential presentations such as
// logotypes are exempt.
func CheckImagesOfText(in ImagesOfTextInput) []Verdict {
	if !in.HasImagesOfText {
		return []Verdict{verdict("1.4.5", StatusPass, "No images of text detected")}
	}
	if in.IsEssential != nil && *in.IsEssential {
		return []Verdict{verdict("1.4.5", StatusPass, "Images of text are marked essential (e.g. logotype) and exempt")}
	}
	return []Verdict{
		verdict("1.4.5", StatusFail, "Images of text are used where styled text would serve").
			withRecommendation("Render the text with CSS styling instead of images"),
	}
}
