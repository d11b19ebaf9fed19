package sample

import (
	"time"
)

// Sample is the canonical laboratory sample record shared by the LIMS and
// ELN systems. The integration layer owns this row; the per-system sync
// timestamps track which side has already seen the current state.
type Sample struct {
	ID             int        `json:"id"`
	SampleID       string     `json:"sample_id"`
	BatchNumber    string     `json:"batch_number,omitempty"`
	SampleType     string     `json:"sample_type,omitempty"`
	SourceLocation string     `json:"source_location,omitempty"`
	CollectionDate *time.Time `json:"collection_date,omitempty"`
	Status         Status     `json:"status"`
	LIMSID         string     `json:"lims_id,omitempty"`
	ELNID          string     `json:"eln_id,omitempty"`
	LIMSSynced     *time.Time `json:"lims_synced,omitempty"`
	ELNSynced      *time.Time `json:"eln_synced,omitempty"`
	Metadata       Metadata   `json:"metadata,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	CreatedBy      string     `json:"created_by,omitempty"`
	UpdatedBy      string     `json:"updated_by,omitempty"`
}

// New builds a fresh sample from an incoming payload. The sample starts in
// StatusRegistered with no sync timestamps. Only fields outside the
// reconciliation whitelist are seeded here; batch_number, sample_type and
// metadata flow through ApplyIncoming, so the first sync reports them as
// applied changes.
func New(sampleID string, in Incoming) *Sample {
	s := &Sample{
		SampleID: sampleID,
		Status:   StatusRegistered,
	}
	if in.SourceLocation != nil {
		s.SourceLocation = *in.SourceLocation
	}
	if in.CollectionDate != nil {
		d := *in.CollectionDate
		s.CollectionDate = &d
	}
	return s
}

// SyncedAt returns the sync timestamp for the given system, nil if the
// sample has never been pushed there.
func (s *Sample) SyncedAt(sys System) *time.Time {
	if sys == SystemLIMS {
		return s.LIMSSynced
	}
	return s.ELNSynced
}

// MarkSynced records that the sample state reached the given system at t.
func (s *Sample) MarkSynced(sys System, t time.Time) {
	if sys == SystemLIMS {
		s.LIMSSynced = &t
		return
	}
	s.ELNSynced = &t
}

// Clone returns a deep copy of the sample, safe to mutate independently.
func (s *Sample) Clone() *Sample {
	out := *s
	out.Metadata = s.Metadata.Clone()
	if s.CollectionDate != nil {
		d := *s.CollectionDate
		out.CollectionDate = &d
	}
	if s.LIMSSynced != nil {
		t := *s.LIMSSynced
		out.LIMSSynced = &t
	}
	if s.ELNSynced != nil {
		t := *s.ELNSynced
		out.ELNSynced = &t
	}
	return &out
}
