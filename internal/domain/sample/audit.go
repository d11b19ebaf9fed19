package sample

import (
	"time"
)

// Audit event types.
const (
	EventSync = "sync"
)

// Audit source systems. SourceIntegration marks entries written by this
// service rather than by LIMS or ELN directly.
const (
	SourceIntegration = "integration"
)

// AuditEntry is one row of the compliance trail attached to a sample.
type AuditEntry struct {
	ID        int       `json:"id"`
	SampleRef int       `json:"sample_ref"`
	EventType string    `json:"event_type"`
	Action    string    `json:"action"`
	Resource  string    `json:"resource,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Changes   Metadata  `json:"changes,omitempty"`
	Source    string    `json:"source,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
