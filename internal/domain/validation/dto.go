package validation

import (
	"labsync/internal/domain/sample"
)

// Severity grades a validation issue. Only errors make a payload invalid.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is a single finding reported by the validation pipeline.
type Issue struct {
	Severity   Severity `json:"severity"`
	Field      string   `json:"field,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Request carries one validation invocation.
type Request struct {
	Data            sample.Metadata
	Level           Level
	CheckAnomalies  bool
	CheckCompliance bool
}

// Result is the outcome of one validation run. Scores are nil when the
// corresponding check was not requested.
type Result struct {
	Valid           bool     `json:"valid"`
	Level           Level    `json:"validation_level"`
	Issues          []Issue  `json:"issues"`
	AnomalyScore    *float64 `json:"anomaly_score,omitempty"`
	ComplianceScore *float64 `json:"compliance_score,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// BatchItem summarizes the validation of one payload within a batch.
type BatchItem struct {
	SampleID string `json:"sample_id,omitempty"`
	Valid    bool   `json:"valid"`
	Issues   int    `json:"issues"`
}

// BatchResult aggregates a batch validation run.
type BatchResult struct {
	Total   int         `json:"total"`
	Valid   int         `json:"valid"`
	Invalid int         `json:"invalid"`
	Results []BatchItem `json:"results"`
}

// TestResultCheck is the outcome of validating a single test result payload.
type TestResultCheck struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}
