package checks

import (
	"fmt"
	"strings"
)

// NameRoleValueInput describes one UI component's accessible semantics.
type NameRoleValueInput struct {
	Tag                string            `json:"tag" doc:"HTML tag name, e.g. button or div"`
	Role               *string           `json:"role,omitempty" doc:"Explicit ARIA role, if any"`
	AccessibleName     *string           `json:"accessible_name,omitempty" doc:"Computed accessible name"`
	Focusable          *bool             `json:"focusable,omitempty" doc:"Whether the element is keyboard focusable"`
	AriaStates         map[string]string `json:"aria_states,omitempty" doc:"Supplied ARIA state and property values, e.g. aria-checked"`
	StatesCommunicated *bool             `json:"states_communicated,omitempty" doc:"Whether state changes are exposed programmatically"`
}

// effectiveRole resolves the explicit role, falling back to the tag's
// implicit role.
func effectiveRole(tag string, role *string) string {
	if role != nil && strings.TrimSpace(*role) != "" {
		return strings.ToLower(strings.TrimSpace(*role))
	}
	return implicitRoles[strings.ToLower(tag)]
}

// CheckNameRoleValue evaluates 4.1.2. The verdicts are independent: role
// validity, accessible name, state communication, and focusability each get
// their own judgment where applicable.
func CheckNameRoleValue(in NameRoleValueInput) []Verdict {
	var out []Verdict
	resolved := effectiveRole(in.Tag, in.Role)

	if in.Role != nil && strings.TrimSpace(*in.Role) != "" {
		explicit := strings.ToLower(strings.TrimSpace(*in.Role))
		if _, ok := validRoles[explicit]; !ok {
			out = append(out, verdict("4.1.2", StatusFail,
				fmt.Sprintf("Role %q is not a valid ARIA role", explicit)).
				withValues(explicit, "valid ARIA role").
				withRecommendation("Use a role from the ARIA specification"))
		} else {
			out = append(out, verdict("4.1.2", StatusPass, fmt.Sprintf("Role %q is a valid ARIA role", explicit)))
		}
	}

	if _, needsName := rolesRequiringName[resolved]; needsName {
		name := ""
		if in.AccessibleName != nil {
			name = strings.TrimSpace(*in.AccessibleName)
		}
		if name == "" {
			out = append(out, verdict("4.1.2", StatusFail,
				fmt.Sprintf("Element with role %q has no accessible name", resolved)).
				withRecommendation("Provide an accessible name via content, aria-label, or aria-labelledby"))
		} else {
			out = append(out, verdict("4.1.2", StatusPass,
				fmt.Sprintf("Element with role %q has accessible name %q", resolved, name)))
		}
	}

	if len(in.AriaStates) > 0 {
		if in.StatesCommunicated != nil && !*in.StatesCommunicated {
			out = append(out, verdict("4.1.2", StatusFail,
				"ARIA states are declared but their changes are not communicated programmatically").
				withRecommendation("Update ARIA state attributes when the component's state changes"))
		} else {
			out = append(out, verdict("4.1.2", StatusPass,
				fmt.Sprintf("%d ARIA state(s) declared and communicated", len(in.AriaStates))))
		}
	}

	if _, interactive := interactiveRoles[resolved]; interactive && in.Focusable != nil {
		if *in.Focusable {
			out = append(out, verdict("4.1.2", StatusPass,
				fmt.Sprintf("Interactive element with role %q is focusable", resolved)))
		} else {
			out = append(out, verdict("4.1.2", StatusFail,
				fmt.Sprintf("Interactive element with role %q is not keyboard focusable", resolved)).
				withRecommendation("Make the element focusable, e.g. with tabindex=\"0\""))
		}
	}

	if len(out) == 0 {
		out = append(out, verdict("4.1.2", StatusInfo,
			fmt.Sprintf("No name, role, or value requirements apply to <%s>", in.Tag)))
	}
	return out
}

// StatusMessagesInput describes dynamically injected status content.
type StatusMessagesInput struct {
	HasStatusMessages bool  `json:"has_status_messages" doc:"Whether the page injects status messages"`
	UsesLiveRegions   *bool `json:"uses_live_regions,omitempty" doc:"Whether messages use role=status/alert or aria-live"`
	MovesFocus        *bool `json:"moves_focus,omitempty" doc:"Whether focus is moved to the message"`
}

// CheckStatusMessages evaluates 4.1.3. Moving focus to the message is the
// dialog pattern, which this criterion deliberately does not cover.
func CheckStatusMessages(in StatusMessagesInput) []Verdict {
	if !in.HasStatusMessages {
		return []Verdict{verdict("4.1.3", StatusInfo, "No status messages are injected; nothing to check")}
	}
	if in.MovesFocus != nil && *in.MovesFocus {
		return []Verdict{
			verdict("4.1.3", StatusInfo, "Status content receives focus directly; the criterion covers only messages announced without focus"),
		}
	}
	if in.UsesLiveRegions != nil && *in.UsesLiveRegions {
		return []Verdict{
			verdict("4.1.3", StatusPass, "Status messages are announced through live regions"),
		}
	}
	return []Verdict{
		verdict("4.1.3", StatusFail, "Status messages are injected without live-region semantics").
			withRecommendation("Mark status messages with role=\"status\", role=\"alert\", or aria-live"),
	}
}

// AriaAttribute is one ARIA attribute occurrence.
type AriaAttribute struct {
	Name  string `json:"name" doc:"Attribute name, e.g. aria-label"`
	Value string `json:"value" doc:"Attribute value"`
}

// AriaAttributesInput lists the ARIA attributes found on an element.
type AriaAttributesInput struct {
	Attributes []AriaAttribute `json:"attributes" doc:"ARIA attributes present"`
}

// knownAriaAttributes covers the ARIA 1.1 states and properties.
var knownAriaAttributes = map[string]struct{}{
	"aria-activedescendant": {}, "aria-atomic": {}, "aria-autocomplete": {},
	"aria-busy": {}, "aria-checked": {}, "aria-colcount": {},
	"aria-colindex": {}, "aria-colspan": {}, "aria-controls": {},
	"aria-current": {}, "aria-describedby": {}, "aria-details": {},
	"aria-disabled": {}, "aria-errormessage": {}, "aria-expanded": {},
	"aria-flowto": {}, "aria-haspopup": {}, "aria-hidden": {},
	"aria-invalid": {}, "aria-keyshortcuts": {}, "aria-label": {},
	"aria-labelledby": {}, "aria-level": {}, "aria-live": {},
	"aria-modal": {}, "aria-multiline": {}, "aria-multiselectable": {},
	"aria-orientation": {}, "aria-owns": {}, "aria-placeholder": {},
	"aria-posinset": {}, "aria-pressed": {}, "aria-readonly": {},
	"aria-relevant": {}, "aria-required": {}, "aria-roledescription": {},
	"aria-rowcount": {}, "aria-rowindex": {}, "aria-rowspan": {},
	"aria-selected": {}, "aria-setsize": {}, "aria-sort": {},
	"aria-valuemax": {}, "aria-valuemin": {}, "aria-valuenow": {},
	"aria-valuetext": {},
}

// CheckAriaAttributes evaluates attribute validity under 4.1.2: unknown
// attribute names fail, empty values on known attributes warn.
func CheckAriaAttributes(in AriaAttributesInput) []Verdict {
	if len(in.Attributes) == 0 {
		return []Verdict{verdict("4.1.2", StatusInfo, "No ARIA attributes supplied; nothing to check")}
	}
	var out []Verdict
	valid := 0
	for _, a := range in.Attributes {
		name := strings.ToLower(strings.TrimSpace(a.Name))
		if _, ok := knownAriaAttributes[name]; !ok {
			out = append(out, verdict("4.1.2", StatusFail,
				fmt.Sprintf("Attribute %q is not a recognized ARIA attribute", a.Name)).
				withValues(a.Name, "ARIA 1.1 state or property").
				withRecommendation("Use attributes defined by the ARIA specification"))
			continue
		}
		if strings.TrimSpace(a.Value) == "" {
			out = append(out, verdict("4.1.2", StatusWarning,
				fmt.Sprintf("Attribute %q has an empty value", name)).
				withRecommendation("Remove the attribute or give it a meaningful value"))
			continue
		}
		valid++
	}
	if valid > 0 {
		out = append(out, verdict("4.1.2", StatusPass,
			fmt.Sprintf("%d ARIA attribute(s) are valid", valid)))
	}
	return out
}

// Landmark is one landmark region observed on a page.
type Landmark struct {
	Role  string `json:"role" doc:"Landmark role, e.g. navigation"`
	Label string `json:"label,omitempty" doc:"Accessible label, if any"`
}

// LandmarksInput lists a page's landmark regions.
type LandmarksInput struct {
	Landmarks []Landmark `json:"landmarks" doc:"Landmark regions in document order"`
}

// CheckLandmarks evaluates landmark labeling under 1.3.1: any role used
// more than once needs distinct non-empty labels on every instance.
func CheckLandmarks(in LandmarksInput) []Verdict {
	if len(in.Landmarks) == 0 {
		return []Verdict{
			verdict("1.3.1", StatusWarning, "No landmark regions are present").
				withRecommendation("Mark page regions with landmark roles such as main and navigation"),
		}
	}
	byRole := map[string][]string{}
	for _, l := range in.Landmarks {
		byRole[strings.ToLower(l.Role)] = append(byRole[strings.ToLower(l.Role)], strings.TrimSpace(l.Label))
	}
	var out []Verdict
	ok := true
	for role, labels := range byRole {
		if len(labels) < 2 {
			continue
		}
		seen := map[string]struct{}{}
		for _, label := range labels {
			if label == "" {
				ok = false
				out = append(out, verdict("1.3.1", StatusFail,
					fmt.Sprintf("Multiple %q landmarks exist but at least one is unlabeled", role)).
					withRecommendation("Give each repeated landmark a distinct label via aria-label"))
				break
			}
			if _, dup := seen[label]; dup {
				ok = false
				out = append(out, verdict("1.3.1", StatusFail,
					fmt.Sprintf("Multiple %q landmarks share the label %q", role, label)).
					withRecommendation("Give each repeated landmark a distinct label via aria-label"))
				break
			}
			seen[label] = struct{}{}
		}
	}
	if ok {
		out = append(out, verdict("1.3.1", StatusPass,
			fmt.Sprintf("%d landmark region(s) are distinctly identified", len(in.Landmarks))))
	}
	return out
}

// LabelInNameInput pairs a control's visible label with its accessible name.
type LabelInNameInput struct {
	VisibleLabel   string `json:"visible_label" doc:"Text presented visually on the control"`
	AccessibleName string `json:"accessible_name" doc:"Computed accessible name"`
}

// CheckLabelInName evaluates 2.5.3: the accessible name must contain the
// visible label. A name that buries the label mid-string passes but earns a
// warning, since speech-input users usually say the label first.
func CheckLabelInName(in LabelInNameInput) []Verdict {
	label := strings.ToLower(strings.TrimSpace(in.VisibleLabel))
	name := strings.ToLower(strings.TrimSpace(in.AccessibleName))
	if label == "" {
		return []Verdict{verdict("2.5.3", StatusInfo, "Control has no visible text label; nothing to compare")}
	}
	if !strings.Contains(name, label) {
		return []Verdict{
			verdict("2.5.3", StatusFail,
				fmt.Sprintf("Accessible name %q does not contain the visible label %q", in.AccessibleName, in.VisibleLabel)).
				withValues(in.AccessibleName, in.VisibleLabel).
				withRecommendation("Start the accessible name with the visible label text"),
		}
	}
	out := []Verdict{
		verdict("2.5.3", StatusPass,
			fmt.Sprintf("Accessible name %q contains the visible label %q", in.AccessibleName, in.VisibleLabel)).
			withValues(in.AccessibleName, in.VisibleLabel),
	}
	if !strings.HasPrefix(name, label) {
		out = append(out, verdict("2.5.3", StatusWarning,
			fmt.Sprintf("Visible label %q is not at the start of the accessible name %q", in.VisibleLabel, in.AccessibleName)).
			withRecommendation("Place the visible label at the start of the accessible name"))
	}
	return out
}
