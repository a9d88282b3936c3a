package checks

import (
	"strings"
	"testing"
)

func TestCheckTextSpacingBoundary(t *testing.T) {
	// L = 1.5F exactly is the pass boundary.
	vs := CheckTextSpacing(SpacingInput{FontSizePx: 16, LineHeightPx: f64(24)})
	if len(vs) != 1 || vs[0].Status != StatusPass {
		t.Fatalf("line-height at exact boundary: %+v", vs)
	}
	vs = CheckTextSpacing(SpacingInput{FontSizePx: 16, LineHeightPx: f64(23.99)})
	if vs[0].Status != StatusFail {
		t.Errorf("line-height below boundary: status = %s, want fail", vs[0].Status)
	}
}

func TestCheckTextSpacingAggregate(t *testing.T) {
	vs := CheckTextSpacing(SpacingInput{
		FontSizePx:         16,
		LineHeightPx:       f64(24),
		LetterSpacingPx:    f64(1.0), // below 16*0.12=1.92
		WordSpacingPx:      f64(3.0),
		ParagraphSpacingPx: f64(32),
	})
	if len(vs) != 1 {
		t.Fatalf("expected one aggregate verdict, got %d", len(vs))
	}
	if vs[0].Status != StatusFail {
		t.Errorf("status = %s, want fail (letter-spacing short)", vs[0].Status)
	}
	if !strings.Contains(vs[0].Message, "✗ letter-spacing") {
		t.Errorf("message should mark the failing dimension:\n%s", vs[0].Message)
	}
	if !strings.Contains(vs[0].Message, "✓ line-height") {
		t.Errorf("message should mark the passing dimensions:\n%s", vs[0].Message)
	}
}

func TestCheckTextSpacingNothingSupplied(t *testing.T) {
	vs := CheckTextSpacing(SpacingInput{FontSizePx: 16})
	if len(vs) != 1 || vs[0].Status != StatusInfo {
		t.Fatalf("expected single info verdict, got %+v", vs)
	}
}

func TestCheckLineLength(t *testing.T) {
	text := strings.Repeat("a", 10) + "\n" + strings.Repeat("b", 80) + "\n" + strings.Repeat("c", 81)
	vs := CheckLineLength(LineLengthInput{Text: text})
	if len(vs) != 1 {
		t.Fatalf("expected one verdict, got %d", len(vs))
	}
	if vs[0].Status != StatusWarning {
		t.Errorf("status = %s, want warning", vs[0].Status)
	}
	if vs[0].Observed != 81 {
		t.Errorf("observed = %v, want 81", vs[0].Observed)
	}

	vs = CheckLineLength(LineLengthInput{Text: strings.Repeat("x", 80)})
	if vs[0].Status != StatusPass {
		t.Errorf("80-char line status = %s, want pass", vs[0].Status)
	}
}

func TestCheckLineLengthCountsRunes(t *testing.T) {
	vs := CheckLineLength(LineLengthInput{Text: strings.Repeat("ä", 81)})
	if vs[0].Observed != 81 {
		t.Errorf("observed = %v, want 81 runes, not bytes", vs[0].Observed)
	}
}

func TestCheckJustification(t *testing.T) {
	if vs := CheckJustification(JustificationInput{IsJustified: true}); vs[0].Status != StatusFail {
		t.Errorf("justified text status = %s, want fail", vs[0].Status)
	}
	if vs := CheckJustification(JustificationInput{}); vs[0].Status != StatusPass {
		t.Errorf("unjustified text status = %s, want pass", vs[0].Status)
	}
}

func TestCheckResizeReflow(t *testing.T) {
	vs := CheckResizeReflow(ResizeReflowInput{UsesRelativeUnits: false, HasFixedContainers: true})
	if len(vs) != 2 {
		t.Fatalf("expected 2 verdicts, got %d", len(vs))
	}
	if v := findByID(t, vs, "1.4.4"); v.Status != StatusWarning {
		t.Errorf("1.4.4 status = %s, want warning", v.Status)
	}
	if v := findByID(t, vs, "1.4.10"); v.Status != StatusWarning {
		t.Errorf("1.4.10 status = %s, want warning", v.Status)
	}

	vs = CheckResizeReflow(ResizeReflowInput{UsesRelativeUnits: true})
	for _, v := range vs {
		if v.Status != StatusPass {
			t.Errorf("%s status = %s, want pass", v.CriterionID, v.Status)
		}
	}
}

func TestCheckLanguage(t *testing.T) {
	if vs := CheckLanguage(LanguageInput{}); vs[0].Status != StatusFail {
		t.Errorf("missing attribute status = %s, want fail", vs[0].Status)
	}
	if vs := CheckLanguage(LanguageInput{HasLangAttribute: true, LangValue: strp("x")}); vs[0].Status != StatusFail {
		t.Errorf("one-char value status = %s, want fail", vs[0].Status)
	}
	if vs := CheckLanguage(LanguageInput{HasLangAttribute: true}); vs[0].Status != StatusFail {
		t.Errorf("attribute without value status = %s, want fail", vs[0].Status)
	}
	if vs := CheckLanguage(LanguageInput{HasLangAttribute: true, LangValue: strp("fr-CA")}); vs[0].Status != StatusPass {
		t.Errorf("fr-CA status = %s, want pass", vs[0].Status)
	}
}

func TestCheckImagesOfText(t *testing.T) {
	if vs := CheckImagesOfText(ImagesOfTextInput{}); vs[0].Status != StatusPass {
		t.Errorf("no images status = %s, want pass", vs[0].Status)
	}
	if vs := CheckImagesOfText(ImagesOfTextInput{HasImagesOfText: true, IsEssential: boolp(true)}); vs[0].Status != StatusPass {
		t.Errorf("essential images status = %s, want pass", vs[0].Status)
	}
	vs := CheckImagesOfText(ImagesOfTextInput{HasImagesOfText: true})
	if vs[0].Status != StatusFail {
		t.Errorf("non-essential images status = %s, want fail", vs[0].Status)
	}
	if vs[0].Recommendation == "" {
		t.Error("fail verdict must carry a recommendation")
	}
}
