package sample

import (
	"labsync/internal/domain/sample"
)

type getSampleInput struct {
	SampleID string `path:"sampleId" example:"LAB-2024-0001" doc:"Business sample identifier"`
}

type getSampleOutput struct {
	Body sample.Sample
}

type auditTrailInput struct {
	SampleID string `path:"sampleId" example:"LAB-2024-0001" doc:"Business sample identifier"`
	Limit    int    `query:"limit" default:"100" minimum:"1" maximum:"1000" doc:"Maximum number of entries"`
}

type auditTrailOutput struct {
	Body AuditTrailResponse
}

// AuditTrailResponse lists the newest audit entries for one sample, most
// recent first.
type AuditTrailResponse struct {
	SampleID string              `json:"sample_id"`
	Total    int                 `json:"total"`
	Entries  []sample.AuditEntry `json:"entries"`
}
