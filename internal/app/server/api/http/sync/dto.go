package sync

import (
	"time"

	"labsync/internal/domain/sample"
	"labsync/internal/domain/sync"
)

type syncSampleInput struct {
	Body SyncRequest
}

type syncSampleOutput struct {
	Body SyncResponse
}

// SyncRequest pushes one sample payload from the source into the target
// system.
type SyncRequest struct {
	SampleID     string          `json:"sample_id,omitempty" doc:"Business sample identifier; falls back to data.sample_id"`
	SourceSystem sample.System   `json:"source_system"`
	TargetSystem sample.System   `json:"target_system"`
	Data         sample.Incoming `json:"data"`
	ForceSync    bool            `json:"force_sync,omitempty" doc:"Sync even if the target already saw this sample"`
}

// SyncResponse reports one sync attempt. Success covers both applied and
// skipped outcomes.
type SyncResponse struct {
	Success        bool      `json:"success"`
	Outcome        string    `json:"outcome" doc:"One of applied, skipped, invalid, failed"`
	Message        string    `json:"message"`
	SampleID       string    `json:"sample_id"`
	SourceSystem   string    `json:"source_system"`
	TargetSystem   string    `json:"target_system"`
	SyncTimestamp  time.Time `json:"sync_timestamp"`
	ChangesApplied int       `json:"changes_applied"`
	Warnings       []string  `json:"warnings,omitempty"`
}

type batchSyncInput struct {
	Body BatchSyncRequest
}

type batchSyncOutput struct {
	Body BatchSyncResponse
}

// BatchSyncRequest syncs a list of sample ids in one call. Payloads are
// pulled per sample, so only identifiers travel here.
type BatchSyncRequest struct {
	SampleIDs    []string      `json:"sample_ids" minItems:"1" doc:"Sample identifiers to sync"`
	SourceSystem sample.System `json:"source_system"`
	TargetSystem sample.System `json:"target_system"`
	ForceSync    bool          `json:"force_sync,omitempty"`
}

// BatchSyncResponse aggregates the per-sample results in request order.
type BatchSyncResponse struct {
	Total      int            `json:"total"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Results    []SyncResponse `json:"results"`
}

type statusInput struct {
	SampleID string `path:"sampleId" example:"LAB-2024-0001" doc:"Business sample identifier"`
}

type statusOutput struct {
	Body StatusResponse
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

func toSyncResponse(r sync.Result) SyncResponse {
	return SyncResponse{
		Success:        r.Outcome.OK(),
		Outcome:        r.Outcome.String(),
		Message:        r.Message,
		SampleID:       r.SampleID,
		SourceSystem:   r.Source.String(),
		TargetSystem:   r.Target.String(),
		SyncTimestamp:  r.SyncedAt,
		ChangesApplied: r.ChangesApplied,
		Warnings:       r.Warnings,
	}
}
