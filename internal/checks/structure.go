package checks

import (
	"fmt"
	"strings"
)

// genericLinkPhrases is the blocklist of link texts that convey no purpose
// on their own.
var genericLinkPhrases = map[string]struct{}{
	"click here":  {},
	"click":       {},
	"here":        {},
	"read more":   {},
	"more":        {},
	"learn more":  {},
	"details":     {},
	"more info":   {},
	"link":        {},
	"this page":   {},
	"continue":    {},
	"go":          {},
	"start":       {},
	"right here":  {},
	"see more":    {},
	"info":        {},
	"click this":  {},
	"read on":     {},
	"find out":    {},
	"check it out": {},
}

func isGenericLinkText(text string) bool {
	_, ok := genericLinkPhrases[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// Heading is one entry in a page's heading outline.
type Heading struct {
	Level int    `json:"level" minimum:"1" maximum:"6" doc:"Heading level, 1-6"`
	Text  string `json:"text" doc:"Heading text"`
}

// HeadingsInput is the ordered heading outline of a page.
type HeadingsInput struct {
	Headings []Heading `json:"headings" doc:"Headings in document order"`
	H1Count  *int      `json:"h1_count,omitempty" doc:"Number of h1 headings; computed from the sequence when unset"`
}

// CheckHeadings evaluates the heading outline. The rules are independent:
// a page can collect an h1-count warning, a skipped-level warning, and the
// section-heading verdict in the same run.
func CheckHeadings(in HeadingsInput) []Verdict {
	if len(in.Headings) == 0 {
		return []Verdict{
			verdict("1.3.1", StatusWarning, "Page has no headings; structure cannot be conveyed").
				withRecommendation("Introduce a heading hierarchy starting with a single h1"),
		}
	}

	var out []Verdict

	h1Count := 0
	if in.H1Count != nil {
		h1Count = *in.H1Count
	} else {
		for _, h := range in.Headings {
			if h.Level == 1 {
				h1Count++
			}
		}
	}
	switch {
	case h1Count == 0:
		out = append(out, verdict("1.3.1", StatusWarning, "Page lacks an h1 heading").
			withValues(h1Count, 1).
			withRecommendation("Add a single h1 describing the page topic"))
	case h1Count > 1:
		out = append(out, verdict("1.3.1", StatusWarning,
			fmt.Sprintf("Page has %d h1 headings; one is expected", h1Count)).
			withValues(h1Count, 1).
			withRecommendation("Keep a single h1 and demote the others"))
	}

	var skips []string
	for i := 1; i < len(in.Headings); i++ {
		prev, cur := in.Headings[i-1], in.Headings[i]
		if cur.Level > prev.Level+1 {
			skips = append(skips, fmt.Sprintf("h%d → h%d (%s)", prev.Level, cur.Level, cur.Text))
		}
	}
	if len(skips) > 0 {
		out = append(out, verdict("1.3.1", StatusWarning,
			"Heading levels are skipped: "+strings.Join(skips, "; ")).
			withObservedSkips(skips).
			withRecommendation("Nest headings without skipping levels"))
	} else {
		out = append(out, verdict("1.3.1", StatusPass, "Heading levels descend without skips"))
	}

	if len(in.Headings) >= 2 {
		out = append(out, verdict("2.4.10", StatusPass,
			fmt.Sprintf("Content is organized under %d section headings", len(in.Headings))))
	} else {
		out = append(out, verdict("2.4.10", StatusWarning, "Only one heading present; consider more section headings").
			withRecommendation("Break long content into sections with headings"))
	}
	return out
}

func (v Verdict) withObservedSkips(skips []string) Verdict {
	v.Observed = skips
	return v
}

// PageTitleInput describes the document title.
type PageTitleInput struct {
	HasTitle      bool    `json:"has_title" doc:"Whether the document has a title element"`
	Title         *string `json:"title,omitempty" doc:"The title text"`
	IsDescriptive *bool   `json:"is_descriptive,omitempty" doc:"Whether the title describes topic or purpose"`
}

// CheckPageTitle evaluates 2.4.2.
func CheckPageTitle(in PageTitleInput) []Verdict {
	if !in.HasTitle {
		return []Verdict{
			verdict("2.4.2", StatusFail, "Document has no title element").
				withRecommendation("Add a title describing the page topic or purpose"),
		}
	}
	title := ""
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if title == "" {
		return []Verdict{
			verdict("2.4.2", StatusFail, "Document title is empty").
				withRecommendation("Add a title describing the page topic or purpose"),
		}
	}
	if in.IsDescriptive != nil && !*in.IsDescriptive {
		return []Verdict{
			verdict("2.4.2", StatusWarning, fmt.Sprintf("Title %q is flagged as not describing the page", title)).
				withValues(title, "descriptive title").
				withRecommendation("Rewrite the title to describe topic or purpose"),
		}
	}
	return []Verdict{
		verdict("2.4.2", StatusPass, fmt.Sprintf("Document title is %q", title)).withValues(title, "descriptive title"),
	}
}

// LinkPurposeInput describes one link and its surroundings.
type LinkPurposeInput struct {
	Text          string `json:"text" doc:"Link text"`
	HasContext    bool   `json:"has_context" doc:"Whether surrounding sentence or list context clarifies the purpose"`
	IsDescriptive bool   `json:"is_descriptive" doc:"Whether the link text itself describes the destination"`
}

// CheckLinkPurpose evaluates 2.4.4 (in context) and 2.4.9 (link only).
// Context can rescue generic text at level A, never at AAA.
func CheckLinkPurpose(in LinkPurposeInput) []Verdict {
	generic := isGenericLinkText(in.Text)

	var inContext Verdict
	switch {
	case in.IsDescriptive:
		inContext = verdict("2.4.4", StatusPass, fmt.Sprintf("Link text %q describes its destination", in.Text))
	case generic && in.HasContext:
		inContext = verdict("2.4.4", StatusPass,
			fmt.Sprintf("Generic link text %q is clarified by its surrounding context", in.Text))
	case generic:
		inContext = verdict("2.4.4", StatusFail,
			fmt.Sprintf("Generic link text %q has no clarifying context", in.Text)).
			withRecommendation("Rewrite the link text to describe its destination")
	default:
		inContext = verdict("2.4.4", StatusPass, fmt.Sprintf("Link text %q is specific", in.Text))
	}

	var linkOnly Verdict
	if in.IsDescriptive && !generic {
		linkOnly = verdict("2.4.9", StatusPass,
			fmt.Sprintf("Link text %q is self-sufficient", in.Text))
	} else {
		linkOnly = verdict("2.4.9", StatusWarning,
			fmt.Sprintf("Link text %q does not convey its purpose on its own", in.Text)).
			withRecommendation("Make each link text meaningful without surrounding context")
	}
	return []Verdict{inContext, linkOnly}
}

// BypassBlocksInput lists the mechanisms available for skipping repeated
// content.
type BypassBlocksInput struct {
	HasSkipLink  bool `json:"has_skip_link" doc:"Whether a skip-to-content link exists"`
	HasLandmarks bool `json:"has_landmarks" doc:"Whether landmark regions are present"`
	HasHeadings  bool `json:"has_headings" doc:"Whether a heading structure is present"`
}

// CheckBypassBlocks evaluates 2.4.1. Any one mechanism satisfies it.
func CheckBypassBlocks(in BypassBlocksInput) []Verdict {
	var mechanisms []string
	if in.HasSkipLink {
		mechanisms = append(mechanisms, "skip link")
	}
	if in.HasLandmarks {
		mechanisms = append(mechanisms, "landmarks")
	}
	if in.HasHeadings {
		mechanisms = append(mechanisms, "headings")
	}
	if len(mechanisms) == 0 {
		return []Verdict{
			verdict("2.4.1", StatusFail, "No mechanism exists to bypass repeated content blocks").
				withRecommendation("Add a skip link, landmark regions, or a heading structure"),
		}
	}
	return []Verdict{
		verdict("2.4.1", StatusPass, "Repeated content can be bypassed via "+strings.Join(mechanisms, ", ")).
			withValues(mechanisms, "at least one bypass mechanism"),
	}
}

// ReadingOrderInput carries signals about source-vs-visual ordering.
type ReadingOrderInput struct {
	DOMOrderMatchesVisual bool `json:"dom_order_matches_visual" doc:"Whether the source order matches the visual reading order"`
	UsesCSSOrdering       bool `json:"uses_css_ordering" doc:"Whether CSS order/flex-direction reorders content visually"`
}

// CheckReadingOrder evaluates 1.3.2.
func CheckReadingOrder(in ReadingOrderInput) []Verdict {
	var out []Verdict
	if !in.DOMOrderMatchesVisual {
		out = append(out, verdict("1.3.2", StatusFail, "Source order does not match the visual reading order").
			withRecommendation("Reorder the source so sequential navigation follows the visual flow"))
	} else {
		out = append(out, verdict("1.3.2", StatusPass, "Source order matches the visual reading order"))
	}
	if in.UsesCSSOrdering {
		out = append(out, verdict("1.3.2", StatusWarning, "CSS ordering properties reposition content; verify the programmatic order still reads correctly").
			withRecommendation("Avoid CSS order overrides that diverge from source order"))
	}
	return out
}

// InfoRelationshipsInput carries signals about structural semantics.
type InfoRelationshipsInput struct {
	UsesSemanticMarkup       *bool `json:"uses_semantic_markup,omitempty" doc:"Whether structure uses semantic elements (lists, tables, headings)"`
	UsesVisualFormattingOnly *bool `json:"uses_visual_formatting_only,omitempty" doc:"Whether structure is conveyed only by visual formatting"`
}

// CheckInfoRelationships evaluates 1.3.1. With neither signal supplied no
// judgment is possible.
func CheckInfoRelationships(in InfoRelationshipsInput) []Verdict {
	if in.UsesVisualFormattingOnly != nil && *in.UsesVisualFormattingOnly {
		return []Verdict{
			verdict("1.3.1", StatusFail, "Structure is conveyed only through visual formatting").
				withRecommendation("Express structure with semantic markup (headings, lists, table headers)"),
		}
	}
	if in.UsesSemanticMarkup != nil {
		if *in.UsesSemanticMarkup {
			return []Verdict{verdict("1.3.1", StatusPass, "Structure is expressed through semantic markup")}
		}
		return []Verdict{
			verdict("1.3.1", StatusWarning, "Structure is not expressed through semantic markup").
				withRecommendation("Express structure with semantic markup (headings, lists, table headers)"),
		}
	}
	return []Verdict{
		verdict("1.3.1", StatusInfo, "Insufficient input to judge structural relationships"),
	}
}

// MultipleWaysInput lists the navigation aids available on a page.
type MultipleWaysInput struct {
	IsProcessStep  bool `json:"is_process_step" doc:"Whether the page is a step in a process (exempt)"`
	HasNavMenu     bool `json:"has_nav_menu" doc:"Site navigation menu"`
	HasSearch      bool `json:"has_search" doc:"Site search"`
	HasSitemap     bool `json:"has_sitemap" doc:"Site map"`
	HasTOC         bool `json:"has_toc" doc:"Table of contents"`
	HasBreadcrumbs bool `json:"has_breadcrumbs" doc:"Breadcrumb trail"`
	HasIndex       bool `json:"has_index" doc:"A-Z or topic index"`
}

// CheckMultipleWays evaluates 2.4.5: at least two navigation aids, unless
// the page is a process step.
func CheckMultipleWays(in MultipleWaysInput) []Verdict {
	if in.IsProcessStep {
		return []Verdict{
			verdict("2.4.5", StatusPass, "Page is a step in a process and exempt from multiple-ways"),
		}
	}
	var aids []string
	for _, a := range []struct {
		on   bool
		name string
	}{
		{in.HasNavMenu, "navigation menu"},
		{in.HasSearch, "search"},
		{in.HasSitemap, "sitemap"},
		{in.HasTOC, "table of contents"},
		{in.HasBreadcrumbs, "breadcrumbs"},
		{in.HasIndex, "index"},
	} {
		if a.on {
			aids = append(aids, a.name)
		}
	}
	if len(aids) >= 2 {
		return []Verdict{
			verdict("2.4.5", StatusPass,
				fmt.Sprintf("%d ways to locate the page: %s", len(aids), strings.Join(aids, ", "))).
				withValues(len(aids), 2),
		}
	}
	return []Verdict{
		verdict("2.4.5", StatusFail,
			fmt.Sprintf("Only %d way(s) to locate the page; at least two are required", len(aids))).
			withValues(len(aids), 2).
			withRecommendation("Add a second navigation aid such as search or a sitemap"),
	}
}

// PageNavigation is the ordered navigation labels observed on one page.
type PageNavigation struct {
	Page     string   `json:"page" doc:"Page identifier"`
	NavItems []string `json:"nav_items" doc:"Navigation labels in presented order"`
}

// ConsistentNavigationInput compares navigation across pages.
type ConsistentNavigationInput struct {
	Pages []PageNavigation `json:"pages" doc:"Navigation observed per page"`
}

// CheckConsistentNavigation evaluates 3.2.3: repeated navigation must keep
// the exact same relative order on every page. Any divergence fails the
// whole check.
func CheckConsistentNavigation(in ConsistentNavigationInput) []Verdict {
	if len(in.Pages) < 2 {
		return []Verdict{
			verdict("3.2.3", StatusInfo, "Fewer than two pages supplied; consistency cannot be judged"),
		}
	}
	ref := in.Pages[0]
	for _, p := range in.Pages[1:] {
		if !equalStringSlices(ref.NavItems, p.NavItems) {
			return []Verdict{
				verdict("3.2.3", StatusFail,
					fmt.Sprintf("Navigation order on %q differs from %q", p.Page, ref.Page)).
					withValues(p.NavItems, ref.NavItems).
					withRecommendation("Present repeated navigation in the same relative order on every page"),
			}
		}
	}
	return []Verdict{
		verdict("3.2.3", StatusPass,
			fmt.Sprintf("Navigation order is identical across %d pages", len(in.Pages))),
	}
}

// ComponentIdentification records how one functional component is labeled.
type ComponentIdentification struct {
	Function string `json:"function" doc:"The component's function, e.g. search-submit"`
	Label    string `json:"label" doc:"The label or accessible name used"`
	Page     string `json:"page,omitempty" doc:"Page the component was observed on"`
}

// ConsistentIdentificationInput compares component labels across pages.
type ConsistentIdentificationInput struct {
	Components []ComponentIdentification `json:"components" doc:"Component observations"`
}

// CheckConsistentIdentification evaluates 3.2.4: every function must map to
// exactly one label. No partial credit.
func CheckConsistentIdentification(in ConsistentIdentificationInput) []Verdict {
	if len(in.Components) == 0 {
		return []Verdict{
			verdict("3.2.4", StatusInfo, "No components supplied; consistency cannot be judged"),
		}
	}
	labels := map[string]string{}
	for _, c := range in.Components {
		if prev, ok := labels[c.Function]; ok && prev != c.Label {
			return []Verdict{
				verdict("3.2.4", StatusFail,
					fmt.Sprintf("Function %q is labeled both %q and %q", c.Function, prev, c.Label)).
					withRecommendation("Identify components with the same function consistently across pages"),
			}
		} else if !ok {
			labels[c.Function] = c.Label
		}
	}
	return []Verdict{
		verdict("3.2.4", StatusPass,
			fmt.Sprintf("%d functions are identified consistently", len(labels))),
	}
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
