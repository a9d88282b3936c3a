// Package report aggregates check verdicts into a summary with per-level
// tallies and renders the result as a human-readable text block and a
// machine-readable structure.
package report

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"accesslint/internal/catalog"
	"accesslint/internal/checks"
)

// Version tags the machine-readable output schema.
const Version = "wcag2.1"

// MachineHeader separates the human report from the serialized machine
// report in a combined response.
const MachineHeader = "=== MACHINE-READABLE REPORT ==="

// LevelTally is the pass/fail count at one conformance level. Warnings and
// info never count toward a level.
type LevelTally struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Summary is the aggregate view of one verdict sequence.
type Summary struct {
	Total    int                          `json:"total"`
	Passed   int                          `json:"passed"`
	Failed   int                          `json:"failed"`
	Warnings int                          `json:"warnings"`
	Info     int                          `json:"info"`
	ByLevel  map[catalog.Level]LevelTally `json:"by_level"`
}

// Report is the built result of one evaluation run. Verdicts keep their
// original order; the summary is computed once at build time.
type Report struct {
	Title    string           `json:"title,omitempty"`
	Category catalog.Category `json:"category,omitempty"`
	Verdicts []checks.Verdict `json:"verdicts"`
	Summary  Summary          `json:"summary"`
}

// MachineResult is one verdict annotated with the criterion's reference
// URL. The URL is omitted when the id is not in the catalog.
type MachineResult struct {
	checks.Verdict
	URL string `json:"url,omitempty"`
}

// MachineReport is the serializable form of a report.
type MachineReport struct {
	Version     string           `json:"version"`
	GeneratedAt string           `json:"generated_at"`
	Title       string           `json:"title,omitempty"`
	Category    catalog.Category `json:"category,omitempty"`
	Summary     Summary          `json:"summary"`
	Results     []MachineResult  `json:"results"`
}

// Build aggregates a verdict sequence into a report. Verdicts are never
// dropped, reordered, or deduplicated.
func Build(verdicts []checks.Verdict, title string, category catalog.Category) Report {
	s := Summary{
		Total:   len(verdicts),
		ByLevel: map[catalog.Level]LevelTally{},
	}
	for _, lvl := range []catalog.Level{catalog.LevelA, catalog.LevelAA, catalog.LevelAAA} {
		s.ByLevel[lvl] = LevelTally{}
	}
	for _, v := range verdicts {
		switch v.Status {
		case checks.StatusPass:
			s.Passed++
			if t, ok := s.ByLevel[v.Level]; ok {
				t.Passed++
				s.ByLevel[v.Level] = t
			}
		case checks.StatusFail:
			s.Failed++
			if t, ok := s.ByLevel[v.Level]; ok {
				t.Failed++
				s.ByLevel[v.Level] = t
			}
		case checks.StatusWarning:
			s.Warnings++
		case checks.StatusInfo:
			s.Info++
		}
	}
	return Report{
		Title:    title,
		Category: category,
		Verdicts: append([]checks.Verdict(nil), verdicts...),
		Summary:  s,
	}
}

// RenderText produces the human-oriented report. Sections run failures,
// warnings, info, then passes so actionable findings come first.
func (r Report) RenderText() string {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "Accessibility Report"
	}
	fmt.Fprintf(&b, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
	fmt.Fprintf(&b, "Total: %d  Passed: %d  Failed: %d  Warnings: %d  Info: %d\n",
		r.Summary.Total, r.Summary.Passed, r.Summary.Failed, r.Summary.Warnings, r.Summary.Info)
	for _, lvl := range []catalog.Level{catalog.LevelA, catalog.LevelAA, catalog.LevelAAA} {
		t := r.Summary.ByLevel[lvl]
		if t.Passed == 0 && t.Failed == 0 {
			continue
		}
		fmt.Fprintf(&b, "Level %s: %d passed, %d failed\n", lvl, t.Passed, t.Failed)
	}

	sections := []struct {
		heading string
		status  checks.Status
	}{
		{"Failures", checks.StatusFail},
		{"Warnings", checks.StatusWarning},
		{"Info", checks.StatusInfo},
		{"Passes", checks.StatusPass},
	}
	for _, sec := range sections {
		var lines []string
		for _, v := range r.Verdicts {
			if v.Status != sec.status {
				continue
			}
			lines = append(lines, formatVerdict(v))
		}
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n%s\n", sec.heading, strings.Repeat("-", len(sec.heading)))
		for _, l := range lines {
			b.WriteString(l)
		}
	}
	return b.String()
}

func formatVerdict(v checks.Verdict) string {
	var b strings.Builder
	if v.Level != "" {
		fmt.Fprintf(&b, "[%s] %s (Level %s)\n", v.CriterionID, v.Name, v.Level)
	} else {
		fmt.Fprintf(&b, "[%s] %s\n", v.CriterionID, v.Name)
	}
	for _, line := range strings.Split(v.Message, "\n") {
		fmt.Fprintf(&b, "    %s\n", line)
	}
	if v.Recommendation != "" {
		fmt.Fprintf(&b, "    → %s\n", v.Recommendation)
	}
	return b.String()
}

// Machine produces the machine-oriented structure, resolving each
// verdict's reference URL from the catalog. The timestamp is captured at
// render time, never stored in a verdict.
func (r Report) Machine(now time.Time) MachineReport {
	results := make([]MachineResult, 0, len(r.Verdicts))
	for _, v := range r.Verdicts {
		mr := MachineResult{Verdict: v}
		if c, ok := catalog.Get(v.CriterionID); ok {
			mr.URL = c.URL
		}
		results = append(results, mr)
	}
	return MachineReport{
		Version:     Version,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Title:       r.Title,
		Category:    r.Category,
		Summary:     r.Summary,
		Results:     results,
	}
}

// FormatResponse renders the combined response body: the human report, a
// fixed header line, then the serialized machine report.
func (r Report) FormatResponse(now time.Time) (string, error) {
	machine, err := json.MarshalIndent(r.Machine(now), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal machine report: %w", err)
	}
	return r.RenderText() + "\n" + MachineHeader + "\n" + string(machine) + "\n", nil
}
