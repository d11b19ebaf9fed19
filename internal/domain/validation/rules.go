package validation

import (
	"fmt"

	"labsync/internal/domain/sample"
)

// Rule is one check run against a sample payload. Implementations must be
// stateless and safe for concurrent use.
type Rule interface {
	Name() string
	Evaluate(data sample.Metadata) []Issue
}

// requiredFields reports an error for every listed key that is absent or
// null in the payload.
type requiredFields struct {
	fields []string
}

func (requiredFields) Name() string { return "required_fields" }

func (r requiredFields) Evaluate(data sample.Metadata) []Issue {
	var issues []Issue
	for _, f := range r.fields {
		if v, ok := data[f]; !ok || v == nil {
			issues = append(issues, Issue{
				Severity:   SeverityError,
				Field:      f,
				Message:    fmt.Sprintf("Required field '%s' is missing", f),
				Suggestion: fmt.Sprintf("Provide a valid %s", f),
			})
		}
	}
	return issues
}

// dataTypes enforces primitive types on well-known keys.
type dataTypes struct{}

func (dataTypes) Name() string { return "data_types" }

func (dataTypes) Evaluate(data sample.Metadata) []Issue {
	var issues []Issue
	if v, ok := data["sample_id"]; ok {
		if _, isStr := v.(string); !isStr {
			issues = append(issues, Issue{
				Severity: SeverityError,
				Field:    "sample_id",
				Message:  "sample_id must be a string",
			})
		}
	}
	return issues
}

// numericRanges checks measurement values against physical limits. Values
// that are present but non-numeric are left to the type checks.
type numericRanges struct{}

func (numericRanges) Name() string { return "numeric_ranges" }

func (numericRanges) Evaluate(data sample.Metadata) []Issue {
	var issues []Issue

	if ph, ok := data.Float("pH"); ok && (ph < 0 || ph > 14) {
		issues = append(issues, Issue{
			Severity:   SeverityError,
			Field:      "pH",
			Message:    fmt.Sprintf("pH value %v out of valid range (0-14)", ph),
			Suggestion: "Verify measurement accuracy",
		})
	}

	if temp, ok := data.Float("temperature"); ok && (temp < -273 || temp > 500) {
		issues = append(issues, Issue{
			Severity:   SeverityWarning,
			Field:      "temperature",
			Message:    fmt.Sprintf("Temperature %v°C outside typical range", temp),
			Suggestion: "Confirm measurement is correct",
		})
	}

	return issues
}

// referenceIntegrity is the reserved hook for cross-record checks, such as
// batch existence or linked test results. It reports nothing until a
// concrete check is registered in its place.
type referenceIntegrity struct{}

func (referenceIntegrity) Name() string { return "reference_integrity" }

func (referenceIntegrity) Evaluate(sample.Metadata) []Issue { return nil }

// businessRules is the reserved hook for domain rules, such as matching the
// sample type against the requested test type.
type businessRules struct{}

func (businessRules) Name() string { return "business_rules" }

func (businessRules) Evaluate(sample.Metadata) []Issue { return nil }
