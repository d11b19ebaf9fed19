package sync

import (
	"time"

	"labsync/internal/domain/sample"
)

// Request carries one sample sync invocation.
type Request struct {
	SampleID string
	Source   sample.System
	Target   sample.System
	Data     sample.Incoming
	Force    bool
}

// Result is the outcome of a single sample sync.
type Result struct {
	Outcome        Outcome
	Message        string
	SampleID       string
	Source         sample.System
	Target         sample.System
	SyncedAt       time.Time
	ChangesApplied int
	Warnings       []string
}

// BatchRequest syncs a list of samples in one call.
type BatchRequest struct {
	SampleIDs []string
	Source    sample.System
	Target    sample.System
	Force     bool
}

// BatchResult aggregates a batch sync. Results keep the input order and
// every requested id yields exactly one entry.
type BatchResult struct {
	Total      int
	Successful int
	Failed     int
	Results    []Result
}

// StatusInfo is the sync state projection for one sample.
type StatusInfo struct {
	SampleID   string
	Status     sample.Status
	LIMSSynced *time.Time
	ELNSynced  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
