package checks

import (
	"fmt"
	"strings"
)

// FormField is one form control and its labeling.
type FormField struct {
	Name         string  `json:"name" doc:"Field name or identifier"`
	HasLabel     bool    `json:"has_label" doc:"Whether a programmatic label is associated"`
	LabelText    *string `json:"label_text,omitempty" doc:"The label text, if any"`
	Required     *bool   `json:"required,omitempty" doc:"Whether the field is required"`
	RequiredMark *bool   `json:"required_marked,omitempty" doc:"Whether the required state is indicated to the user"`
}

// FormLabelsInput lists a form's controls.
type FormLabelsInput struct {
	Fields []FormField `json:"fields" doc:"Form controls"`
}

// CheckFormLabels evaluates 3.3.2: every control needs a label or
// instructions, and required fields must say so.
func CheckFormLabels(in FormLabelsInput) []Verdict {
	if len(in.Fields) == 0 {
		return []Verdict{verdict("3.3.2", StatusInfo, "No form fields supplied; nothing to check")}
	}
	var out []Verdict
	labeled := 0
	for _, f := range in.Fields {
		if !f.HasLabel {
			out = append(out, verdict("3.3.2", StatusFail,
				fmt.Sprintf("Field %q has no associated label", f.Name)).
				withRecommendation("Associate a visible label with the field, e.g. a label element"))
			continue
		}
		if f.LabelText != nil && strings.TrimSpace(*f.LabelText) == "" {
			out = append(out, verdict("3.3.2", StatusFail,
				fmt.Sprintf("Field %q has an empty label", f.Name)).
				withRecommendation("Give the label meaningful text"))
			continue
		}
		labeled++
		if f.Required != nil && *f.Required && f.RequiredMark != nil && !*f.RequiredMark {
			out = append(out, verdict("3.3.2", StatusWarning,
				fmt.Sprintf("Required field %q does not indicate that it is required", f.Name)).
				withRecommendation("Indicate required fields in the label or instructions"))
		}
	}
	if labeled == len(in.Fields) {
		out = append(out, verdict("3.3.2", StatusPass,
			fmt.Sprintf("All %d field(s) have labels", labeled)))
	}
	return out
}

// InputPurposeInput describes one field collecting user information.
type InputPurposeInput struct {
	FieldName         string  `json:"field_name" doc:"Field name or identifier"`
	CollectsUserInfo  bool    `json:"collects_user_info" doc:"Whether the field collects information about the user"`
	AutocompleteValue *string `json:"autocomplete_value,omitempty" doc:"Value of the autocomplete attribute"`
}

// CheckInputPurpose evaluates 1.3.5. The final space-separated autocomplete
// token is looked up in the purposes table; unknown tokens warn rather than
// fail, since section names and webauthn extensions precede the token.
func CheckInputPurpose(in InputPurposeInput) []Verdict {
	if !in.CollectsUserInfo {
		return []Verdict{
			verdict("1.3.5", StatusInfo,
				fmt.Sprintf("Field %q does not collect user information; the criterion does not apply", in.FieldName)),
		}
	}
	if in.AutocompleteValue == nil || strings.TrimSpace(*in.AutocompleteValue) == "" {
		return []Verdict{
			verdict("1.3.5", StatusFail,
				fmt.Sprintf("Field %q collects user information but declares no input purpose", in.FieldName)).
				withRecommendation("Add an autocomplete attribute naming the field's purpose"),
		}
	}
	tokens := strings.Fields(strings.ToLower(*in.AutocompleteValue))
	final := tokens[len(tokens)-1]
	if _, ok := autocompleteTokens[final]; !ok {
		return []Verdict{
			verdict("1.3.5", StatusWarning,
				fmt.Sprintf("Autocomplete token %q on field %q is not a recognized input purpose", final, in.FieldName)).
				withValues(final, "HTML input-purpose token").
				withRecommendation("Use a token from the HTML autofill field list"),
		}
	}
	return []Verdict{
		verdict("1.3.5", StatusPass,
			fmt.Sprintf("Field %q declares input purpose %q", in.FieldName, final)).
			withValues(final, "HTML input-purpose token"),
	}
}

// ErrorIdentificationInput describes how form errors are surfaced.
type ErrorIdentificationInput struct {
	HasValidation       bool  `json:"has_validation" doc:"Whether input errors are detected at all"`
	ErrorsIdentified    *bool `json:"errors_identified,omitempty" doc:"Whether the erroneous field is identified in text"`
	ErrorsDescribedText *bool `json:"errors_described_in_text,omitempty" doc:"Whether the error is described to the user in text"`
	HasSuggestions      *bool `json:"has_suggestions,omitempty" doc:"Whether correction suggestions are offered when known"`
}

// CheckErrorIdentification evaluates 3.3.1 and, when the suggestion signal
// is supplied, 3.3.3.
func CheckErrorIdentification(in ErrorIdentificationInput) []Verdict {
	if !in.HasValidation {
		return []Verdict{verdict("3.3.1", StatusInfo, "No input validation occurs; the criterion does not apply")}
	}
	var out []Verdict
	identified := in.ErrorsIdentified != nil && *in.ErrorsIdentified
	described := in.ErrorsDescribedText != nil && *in.ErrorsDescribedText
	switch {
	case identified && described:
		out = append(out, verdict("3.3.1", StatusPass, "Input errors are identified and described in text"))
	case identified:
		out = append(out, verdict("3.3.1", StatusFail, "Erroneous fields are identified but the error is not described in text").
			withRecommendation("Describe each detected error to the user in text"))
	default:
		out = append(out, verdict("3.3.1", StatusFail, "Detected input errors do not identify the erroneous field").
			withRecommendation("Identify the field in error and describe the problem in text"))
	}
	if in.HasSuggestions != nil {
		if *in.HasSuggestions {
			out = append(out, verdict("3.3.3", StatusPass, "Correction suggestions are offered for detected errors"))
		} else {
			out = append(out, verdict("3.3.3", StatusWarning, "No correction suggestions are offered for detected errors").
				withRecommendation("Suggest corrections when they are known and do not compromise security"))
		}
	}
	return out
}

// ErrorPreventionInput describes the safeguards around a data submission.
type ErrorPreventionInput struct {
	TransactionType string `json:"transaction_type" doc:"One of legal, financial, data, test, or other"`
	Reversible      bool   `json:"reversible" doc:"Submissions can be reversed"`
	Checked         bool   `json:"checked" doc:"Input is checked for errors with a chance to correct"`
	Reviewable      bool   `json:"reviewable" doc:"A review step precedes final submission"`
	Confirmed       bool   `json:"confirmed" doc:"An explicit confirmation step exists"`
}

// legalFinancialData reports whether the transaction type falls under the
// 3.3.4 scope.
func legalFinancialData(t string) bool {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "legal", "financial", "data", "test":
		return true
	}
	return false
}

// CheckErrorPrevention evaluates 3.3.4 for legal, financial, and data
// transactions, and 3.3.6 at AAA strictness for every submission type. One
// safeguard satisfies either level.
func CheckErrorPrevention(in ErrorPreventionInput) []Verdict {
	safeguarded := in.Reversible || in.Checked || in.Reviewable || in.Confirmed

	var out []Verdict
	if legalFinancialData(in.TransactionType) {
		if safeguarded {
			out = append(out, verdict("3.3.4", StatusPass,
				fmt.Sprintf("Transaction of type %q has at least one error-prevention safeguard", in.TransactionType)))
		} else {
			out = append(out, verdict("3.3.4", StatusFail,
				fmt.Sprintf("Transaction of type %q has no reversal, checking, review, or confirmation step", in.TransactionType)).
				withRecommendation("Make submissions reversible, checked, reviewable, or confirmed"))
		}
	} else {
		out = append(out, verdict("3.3.4", StatusInfo,
			fmt.Sprintf("Transaction type %q is outside the legal/financial/data scope", in.TransactionType)))
	}

	if safeguarded {
		out = append(out, verdict("3.3.6", StatusPass, "Submission has at least one error-prevention safeguard"))
	} else {
		out = append(out, verdict("3.3.6", StatusWarning, "Submission has no error-prevention safeguard").
			withRecommendation("Make all submissions reversible, checked, reviewable, or confirmed"))
	}
	return out
}

// InputConstraintsInput describes format expectations on a field.
type InputConstraintsInput struct {
	FieldName           string `json:"field_name" doc:"Field name or identifier"`
	HasFormatConstraint bool   `json:"has_format_constraint" doc:"Whether the field expects a specific format, e.g. a date"`
	FormatDocumented    bool   `json:"format_documented" doc:"Whether the expected format is described to the user"`
	HasExample          bool   `json:"has_example" doc:"Whether an example value is shown"`
}

// CheckInputConstraints evaluates format documentation under 3.3.2.
func CheckInputConstraints(in InputConstraintsInput) []Verdict {
	if !in.HasFormatConstraint {
		return []Verdict{
			verdict("3.3.2", StatusPass,
				fmt.Sprintf("Field %q imposes no format constraint", in.FieldName)),
		}
	}
	if in.FormatDocumented {
		return []Verdict{
			verdict("3.3.2", StatusPass,
				fmt.Sprintf("Field %q documents its expected format", in.FieldName)),
		}
	}
	if in.HasExample {
		return []Verdict{
			verdict("3.3.2", StatusWarning,
				fmt.Sprintf("Field %q shows only an example of its expected format", in.FieldName)).
				withRecommendation("Describe the expected format in the label or instructions, not only via placeholder"),
		}
	}
	return []Verdict{
		verdict("3.3.2", StatusFail,
			fmt.Sprintf("Field %q expects a specific format but does not describe it", in.FieldName)).
			withRecommendation("Describe the expected format in the label or instructions"),
	}
}

// OnInputInput describes context changes triggered while entering data.
type OnInputInput struct {
	ChangesContextOnInput bool  `json:"changes_context_on_input" doc:"Whether changing a setting triggers a context change"`
	UserAdvised           *bool `json:"user_advised,omitempty" doc:"Whether the behavior is described before use"`
}

// CheckOnInput evaluates 3.2.2.
func CheckOnInput(in OnInputInput) []Verdict {
	if !in.ChangesContextOnInput {
		return []Verdict{verdict("3.2.2", StatusPass, "Changing a setting does not trigger a context change")}
	}
	if in.UserAdvised != nil && *in.UserAdvised {
		return []Verdict{verdict("3.2.2", StatusPass, "Context changes on input are described to the user beforehand")}
	}
	return []Verdict{
		verdict("3.2.2", StatusFail, "Changing a setting triggers an unannounced context change").
			withRecommendation("Trigger context changes from an explicit action, or describe the behavior before use"),
	}
}
