// Package checks implements the WCAG 2.1 rule evaluation core. Every check
// is a pure function from one typed input to an ordered list of verdicts;
// nothing in this package performs I/O or keeps state between calls.
package checks

import (
	"accesslint/internal/catalog"
)

// Status is the outcome of a single criterion evaluation.
type Status string

const (
	// StatusPass means the requirement is demonstrably met.
	StatusPass Status = "pass"
	// StatusFail means the requirement is demonstrably violated.
	StatusFail Status = "fail"
	// StatusWarning means risk or ambiguity exists without a definite
	// violation, e.g. an AAA threshold missed while AA passes.
	StatusWarning Status = "warning"
	// StatusInfo means no verdict is possible or applicable.
	StatusInfo Status = "info"
)

// Verdict is one evaluation result against a single success criterion.
// Name and level are denormalized from the catalog at creation time so a
// verdict stays self-describing without catalog access.
type Verdict struct {
	CriterionID    string        `json:"criterion_id"`
	Name           string        `json:"name"`
	Level          catalog.Level `json:"level"`
	Status         Status        `json:"status"`
	Observed       any           `json:"observed,omitempty"`
	Required       any           `json:"required,omitempty"`
	Message        string        `json:"message"`
	Recommendation string        `json:"recommendation,omitempty"`
}

func verdict(criterionID string, status Status, message string) Verdict {
	v := Verdict{
		CriterionID: criterionID,
		Status:      status,
		Message:     message,
	}
	if c, ok := catalog.Get(criterionID); ok {
		v.Name = c.Name
		v.Level = c.Level
	}
	return v
}

func (v Verdict) withValues(observed, required any) Verdict {
	v.Observed = observed
	v.Required = required
	return v
}

func (v Verdict) withRecommendation(rec string) Verdict {
	v.Recommendation = rec
	return v
}
