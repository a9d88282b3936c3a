package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"accesslint/internal/catalog"
	"accesslint/internal/checks"
)

func sampleVerdicts() []checks.Verdict {
	return append(
		checks.CheckContrast(checks.ContrastInput{Foreground: "#767676", Background: "#ffffff"}),
		checks.CheckLanguage(checks.LanguageInput{})...,
	)
}

func TestBuildSummaryInvariants(t *testing.T) {
	vs := sampleVerdicts()
	r := Build(vs, "Audit", catalog.CategoryText)

	s := r.Summary
	if s.Total != len(vs) {
		t.Errorf("total = %d, want %d", s.Total, len(vs))
	}
	if got := s.Passed + s.Failed + s.Warnings + s.Info; got != s.Total {
		t.Errorf("status counts sum to %d, want %d", got, s.Total)
	}

	levelPassed, levelFailed := 0, 0
	for _, tally := range s.ByLevel {
		levelPassed += tally.Passed
		levelFailed += tally.Failed
	}
	// Per-level tallies count passes and fails only.
	if levelPassed != s.Passed || levelFailed != s.Failed {
		t.Errorf("level tallies %d/%d, want %d/%d", levelPassed, levelFailed, s.Passed, s.Failed)
	}
	for _, lvl := range []catalog.Level{catalog.LevelA, catalog.LevelAA, catalog.LevelAAA} {
		if _, ok := s.ByLevel[lvl]; !ok {
			t.Errorf("level %s missing from by_level", lvl)
		}
	}
}

func TestBuildPreservesVerdictOrder(t *testing.T) {
	vs := sampleVerdicts()
	r := Build(vs, "", "")
	if len(r.Verdicts) != len(vs) {
		t.Fatalf("verdict count changed: %d != %d", len(r.Verdicts), len(vs))
	}
	for i := range vs {
		if r.Verdicts[i].CriterionID != vs[i].CriterionID {
			t.Errorf("verdict %d reordered: %s != %s", i, r.Verdicts[i].CriterionID, vs[i].CriterionID)
		}
	}
}

func TestRenderText(t *testing.T) {
	r := Build(sampleVerdicts(), "Homepage Audit", catalog.CategoryText)
	text := r.RenderText()

	if !strings.HasPrefix(text, "Homepage Audit\n==============\n") {
		t.Errorf("title not underlined:\n%s", text)
	}
	if !strings.Contains(text, "Total: 3  Passed: 1  Failed: 1  Warnings: 1  Info: 0") {
		t.Errorf("counts line wrong:\n%s", text)
	}
	if !strings.Contains(text, "[1.4.3] Contrast (Minimum) (Level AA)") {
		t.Errorf("verdict line format wrong:\n%s", text)
	}

	// Failures come before warnings, warnings before passes.
	fail := strings.Index(text, "Failures")
	warn := strings.Index(text, "Warnings\n")
	pass := strings.Index(text, "Passes")
	if fail == -1 || warn == -1 || pass == -1 || !(fail < warn && warn < pass) {
		t.Errorf("section order wrong (fail=%d warn=%d pass=%d):\n%s", fail, warn, pass, text)
	}
}

func TestRenderTextDefaultTitle(t *testing.T) {
	r := Build(nil, "", "")
	if !strings.HasPrefix(r.RenderText(), "Accessibility Report\n") {
		t.Errorf("missing default title:\n%s", r.RenderText())
	}
}

func TestMachine(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	r := Build(sampleVerdicts(), "Audit", catalog.CategoryText)
	m := r.Machine(now)

	if m.Version != "wcag2.1" {
		t.Errorf("version = %q", m.Version)
	}
	if m.GeneratedAt != "2026-03-14T09:26:53Z" {
		t.Errorf("generated_at = %q", m.GeneratedAt)
	}
	if len(m.Results) != len(r.Verdicts) {
		t.Fatalf("result count = %d, want %d", len(m.Results), len(r.Verdicts))
	}
	for _, res := range m.Results {
		if res.URL == "" {
			t.Errorf("result %s has no reference URL", res.CriterionID)
		}
	}
}

func TestMachineUnknownCriterionOmitsURL(t *testing.T) {
	vs := []checks.Verdict{{CriterionID: "9.9.9", Status: checks.StatusInfo, Message: "synthetic"}}
	m := Build(vs, "", "").Machine(time.Now())
	if m.Results[0].URL != "" {
		t.Errorf("unknown criterion resolved a URL: %q", m.Results[0].URL)
	}
}

func TestFormatResponse(t *testing.T) {
	r := Build(sampleVerdicts(), "Audit", catalog.CategoryText)
	body, err := r.FormatResponse(time.Now())
	if err != nil {
		t.Fatal(err)
	}
	idx := strings.Index(body, MachineHeader)
	if idx == -1 {
		t.Fatalf("machine header missing:\n%s", body)
	}
	jsonPart := strings.TrimSpace(body[idx+len(MachineHeader):])
	var m MachineReport
	if err := json.Unmarshal([]byte(jsonPart), &m); err != nil {
		t.Fatalf("trailing JSON does not parse: %v", err)
	}
	if m.Summary.Total != 3 {
		t.Errorf("round-tripped total = %d, want 3", m.Summary.Total)
	}
}
