package sample

// FieldChange records one field rewritten during reconciliation.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"old_value,omitempty"`
	NewValue any    `json:"new_value,omitempty"`
}

// ApplyIncoming reconciles an incoming payload into the sample and returns
// the list of applied changes. Only batch_number, sample_type and metadata
// take part; everything else in the payload is ignored.
//
// A payload carrying a metadata key always counts as one change, even when
// the merge leaves every value as it was. Downstream consumers treat a
// metadata touch as a state change, so the conservative count is the
// contract here.
func (s *Sample) ApplyIncoming(in Incoming) []FieldChange {
	var changes []FieldChange

	if in.BatchNumber != nil && s.BatchNumber != *in.BatchNumber {
		changes = append(changes, FieldChange{
			Field:    "batch_number",
			OldValue: s.BatchNumber,
			NewValue: *in.BatchNumber,
		})
		s.BatchNumber = *in.BatchNumber
	}

	if in.SampleType != nil && s.SampleType != *in.SampleType {
		changes = append(changes, FieldChange{
			Field:    "sample_type",
			OldValue: s.SampleType,
			NewValue: *in.SampleType,
		})
		s.SampleType = *in.SampleType
	}

	if in.Metadata != nil {
		old := s.Metadata.Clone()
		s.Metadata = s.Metadata.Merge(in.Metadata)
		changes = append(changes, FieldChange{
			Field:    "metadata",
			OldValue: old,
			NewValue: s.Metadata.Clone(),
		})
	}

	return changes
}
