package client

import (
	"time"
)

// Wire models for the labsync v1 API. Field names mirror the server's JSON
// contract; the client never imports server packages.

// SyncRequest pushes one sample payload from a source into a target system.
type SyncRequest struct {
	SampleID     string         `json:"sample_id,omitempty"`
	SourceSystem string         `json:"source_system"`
	TargetSystem string         `json:"target_system"`
	Data         map[string]any `json:"data"`
	ForceSync    bool           `json:"force_sync,omitempty"`
}

// SyncResponse reports one sync attempt.
type SyncResponse struct {
	Success        bool      `json:"success"`
	Outcome        string    `json:"outcome"`
	Message        string    `json:"message"`
	SampleID       string    `json:"sample_id"`
	SourceSystem   string    `json:"source_system"`
	TargetSystem   string    `json:"target_system"`
	SyncTimestamp  time.Time `json:"sync_timestamp"`
	ChangesApplied int       `json:"changes_applied"`
	Warnings       []string  `json:"warnings,omitempty"`
}

// BatchSyncRequest syncs a list of sample ids in one call.
type BatchSyncRequest struct {
	SampleIDs    []string `json:"sample_ids"`
	SourceSystem string   `json:"source_system"`
	TargetSystem string   `json:"target_system"`
	ForceSync    bool     `json:"force_sync,omitempty"`
}

// BatchSyncResponse aggregates the per-sample results in request order.
type BatchSyncResponse struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Results    []SyncResponse `json:"results"`
}

// StatusResponse is the sync state projection for one sample.
type StatusResponse struct {
	SampleID   string     `json:"sample_id"`
	Status     string     `json:"status"`
	LIMSSynced *time.Time `json:"lims_synced,omitempty"`
	ELNSynced  *time.Time `json:"eln_synced,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// ValidationRequest carries one payload through the server's tiered checks.
type ValidationRequest struct {
	SampleData      map[string]any `json:"sample_data"`
	ValidationLevel string         `json:"validation_level,omitempty"`
	CheckAnomalies  bool           `json:"check_anomalies"`
	CheckCompliance bool           `json:"check_compliance"`
}

// ValidationIssue is a single finding reported by the server.
type ValidationIssue struct {
	Severity   string `json:"severity"`
	Field      string `json:"field,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidationResponse is the outcome of one validation run.
type ValidationResponse struct {
	Valid           bool              `json:"valid"`
	Level           string            `json:"validation_level"`
	Issues          []ValidationIssue `json:"issues"`
	AnomalyScore    *float64          `json:"anomaly_score,omitempty"`
	ComplianceScore *float64          `json:"compliance_score,omitempty"`
	Recommendations []string          `json:"recommendations,omitempty"`
}
