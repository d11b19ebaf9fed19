package validate

import (
	"labsync/internal/domain/sample"
	"labsync/internal/domain/validation"
)

type validateSampleInput struct {
	Body ValidationRequest
}

type validateSampleOutput struct {
	Body validation.Result
}

// ValidationRequest carries one sample payload through the tiered checks.
// Both scorers default to on; clients opt out explicitly.
type ValidationRequest struct {
	SampleData      sample.Metadata  `json:"sample_data" doc:"Sample payload to validate"`
	ValidationLevel validation.Level `json:"validation_level,omitempty" default:"standard"`
	CheckAnomalies  bool             `json:"check_anomalies,omitempty" default:"true" doc:"Run the anomaly scorer"`
	CheckCompliance bool             `json:"check_compliance,omitempty" default:"true" doc:"Run the compliance scorer"`
}

// The batch endpoint takes a bare array of payloads and validates each one
// independently at standard level.
type validateBatchInput struct {
	Body []sample.Metadata
}

type validateBatchOutput struct {
	Body validation.BatchResult
}

type testResultInput struct {
	Body sample.Metadata
}

type testResultOutput struct {
	Body validation.TestResultCheck
}
