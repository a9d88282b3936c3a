package checks

import (
	"strings"
	"testing"
)

func TestCheckFormLabels(t *testing.T) {
	vs := CheckFormLabels(FormLabelsInput{Fields: []FormField{
		{Name: "email", HasLabel: true, LabelText: strp("Email address")},
		{Name: "phone", HasLabel: false},
		{Name: "zip", HasLabel: true, LabelText: strp("  ")},
	}})
	if countByStatus(vs, StatusFail) != 2 {
		t.Errorf("missing and empty labels should both fail: %+v", vs)
	}
	if countByStatus(vs, StatusPass) != 0 {
		t.Errorf("no aggregate pass when fields fail: %+v", vs)
	}

	vs = CheckFormLabels(FormLabelsInput{Fields: []FormField{
		{Name: "email", HasLabel: true, LabelText: strp("Email")},
		{Name: "name", HasLabel: true, LabelText: strp("Name"), Required: boolp(true), RequiredMark: boolp(false)},
	}})
	if countByStatus(vs, StatusWarning) != 1 {
		t.Errorf("unmarked required field should warn: %+v", vs)
	}
	found := false
	for _, v := range vs {
		if v.Status == StatusPass && strings.Contains(v.Message, "All 2 field(s)") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected aggregate pass verdict: %+v", vs)
	}

	vs = CheckFormLabels(FormLabelsInput{})
	if len(vs) != 1 || vs[0].Status != StatusInfo {
		t.Errorf("no fields: %+v, want single info", vs)
	}
}

func TestCheckInputPurpose(t *testing.T) {
	if vs := CheckInputPurpose(InputPurposeInput{FieldName: "q"}); vs[0].Status != StatusInfo {
		t.Errorf("not collecting user info: %s, want info", vs[0].Status)
	}
	if vs := CheckInputPurpose(InputPurposeInput{FieldName: "email", CollectsUserInfo: true}); vs[0].Status != StatusFail {
		t.Errorf("no autocomplete: %s, want fail", vs[0].Status)
	}

	// The purpose token is the final space-separated token.
	vs := CheckInputPurpose(InputPurposeInput{
		FieldName:         "email",
		CollectsUserInfo:  true,
		AutocompleteValue: strp("section-billing email"),
	})
	if vs[0].Status != StatusPass {
		t.Errorf("sectioned token: %s, want pass", vs[0].Status)
	}
	if vs[0].Observed != "email" {
		t.Errorf("observed = %v, want final token", vs[0].Observed)
	}

	// Unknown tokens warn rather than fail.
	vs = CheckInputPurpose(InputPurposeInput{
		FieldName:         "email",
		CollectsUserInfo:  true,
		AutocompleteValue: strp("e-mail"),
	})
	if vs[0].Status != StatusWarning {
		t.Errorf("unknown token: %s, want warning", vs[0].Status)
	}
}

func TestCheckErrorIdentification(t *testing.T) {
	if vs := CheckErrorIdentification(ErrorIdentificationInput{}); vs[0].Status != StatusInfo {
		t.Errorf("no validation: %s, want info", vs[0].Status)
	}

	vs := CheckErrorIdentification(ErrorIdentificationInput{
		HasValidation:       true,
		ErrorsIdentified:    boolp(true),
		ErrorsDescribedText: boolp(true),
		HasSuggestions:      boolp(false),
	})
	if v := findByID(t, vs, "3.3.1"); v.Status != StatusPass {
		t.Errorf("3.3.1 = %s, want pass", v.Status)
	}
	if v := findByID(t, vs, "3.3.3"); v.Status != StatusWarning {
		t.Errorf("no suggestions: 3.3.3 = %s, want warning", v.Status)
	}

	vs = CheckErrorIdentification(ErrorIdentificationInput{
		HasValidation:    true,
		ErrorsIdentified: boolp(true),
	})
	if vs[0].Status != StatusFail {
		t.Errorf("identified but not described: %s, want fail", vs[0].Status)
	}
	if len(vs) != 1 {
		t.Errorf("suggestion signal absent, no 3.3.3 expected: %+v", vs)
	}
}

func TestCheckErrorPrevention(t *testing.T) {
	vs := CheckErrorPrevention(ErrorPreventionInput{TransactionType: "financial"})
	if v := findByID(t, vs, "3.3.4"); v.Status != StatusFail {
		t.Errorf("unsafeguarded financial: 3.3.4 = %s, want fail", v.Status)
	}
	if v := findByID(t, vs, "3.3.6"); v.Status != StatusWarning {
		t.Errorf("unsafeguarded: 3.3.6 = %s, want warning (AAA)", v.Status)
	}

	vs = CheckErrorPrevention(ErrorPreventionInput{TransactionType: "Legal", Reviewable: true})
	if v := findByID(t, vs, "3.3.4"); v.Status != StatusPass {
		t.Errorf("reviewed legal: 3.3.4 = %s, want pass", v.Status)
	}
	if v := findByID(t, vs, "3.3.6"); v.Status != StatusPass {
		t.Errorf("reviewed: 3.3.6 = %s, want pass", v.Status)
	}

	// Other transaction types are out of 3.3.4 scope but still rated at AAA.
	vs = CheckErrorPrevention(ErrorPreventionInput{TransactionType: "comment"})
	if v := findByID(t, vs, "3.3.4"); v.Status != StatusInfo {
		t.Errorf("out-of-scope type: 3.3.4 = %s, want info", v.Status)
	}
	if v := findByID(t, vs, "3.3.6"); v.Status != StatusWarning {
		t.Errorf("out-of-scope unsafeguarded: 3.3.6 = %s, want warning", v.Status)
	}
}

func TestCheckInputConstraints(t *testing.T) {
	if vs := CheckInputConstraints(InputConstraintsInput{FieldName: "notes"}); vs[0].Status != StatusPass {
		t.Errorf("no constraint: %s, want pass", vs[0].Status)
	}
	if vs := CheckInputConstraints(InputConstraintsInput{FieldName: "dob", HasFormatConstraint: true, FormatDocumented: true}); vs[0].Status != StatusPass {
		t.Errorf("documented format: %s, want pass", vs[0].Status)
	}
	if vs := CheckInputConstraints(InputConstraintsInput{FieldName: "dob", HasFormatConstraint: true, HasExample: true}); vs[0].Status != StatusWarning {
		t.Errorf("example only: %s, want warning", vs[0].Status)
	}
	if vs := CheckInputConstraints(InputConstraintsInput{FieldName: "dob", HasFormatConstraint: true}); vs[0].Status != StatusFail {
		t.Errorf("undocumented format: %s, want fail", vs[0].Status)
	}
}

func TestCheckOnInput(t *testing.T) {
	if vs := CheckOnInput(OnInputInput{}); vs[0].Status != StatusPass {
		t.Errorf("no context change: %s, want pass", vs[0].Status)
	}
	if vs := CheckOnInput(OnInputInput{ChangesContextOnInput: true, UserAdvised: boolp(true)}); vs[0].Status != StatusPass {
		t.Errorf("advised change: %s, want pass", vs[0].Status)
	}
	if vs := CheckOnInput(OnInputInput{ChangesContextOnInput: true}); vs[0].Status != StatusFail {
		t.Errorf("unannounced change: %s, want fail", vs[0].Status)
	}
}
