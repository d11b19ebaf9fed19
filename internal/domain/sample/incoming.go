package sample

import (
	"time"
)

// Incoming is the payload a source system pushes for one sample. Pointer
// fields distinguish "absent" from "present but empty": only fields present
// in the payload take part in reconciliation.
type Incoming struct {
	SampleID       string     `json:"sample_id,omitempty" doc:"Business sample identifier"`
	BatchNumber    *string    `json:"batch_number,omitempty" doc:"Batch the sample belongs to"`
	SampleType     *string    `json:"sample_type,omitempty" doc:"Sample type, free-form"`
	SourceLocation *string    `json:"source_location,omitempty" doc:"Where the sample was collected"`
	CollectionDate *time.Time `json:"collection_date,omitempty" doc:"When the sample was collected"`
	Metadata       Metadata   `json:"metadata,omitempty" doc:"Free-form sample metadata"`
}
