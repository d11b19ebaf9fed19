package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestApplyIncoming_AppliesChangedFields(t *testing.T) {
	s := &Sample{
		SampleID:    "LAB-001",
		BatchNumber: "B-001",
		SampleType:  "blood",
	}

	changes := s.ApplyIncoming(Incoming{
		BatchNumber: strp("B-002"),
		SampleType:  strp("plasma"),
	})

	require.Len(t, changes, 2)
	assert.Equal(t, "batch_number", changes[0].Field)
	assert.Equal(t, "B-001", changes[0].OldValue)
	assert.Equal(t, "B-002", changes[0].NewValue)
	assert.Equal(t, "sample_type", changes[1].Field)
	assert.Equal(t, "B-002", s.BatchNumber)
	assert.Equal(t, "plasma", s.SampleType)
}

func TestApplyIncoming_SkipsEqualValues(t *testing.T) {
	s := &Sample{
		SampleID:    "LAB-001",
		BatchNumber: "B-001",
		SampleType:  "blood",
	}

	changes := s.ApplyIncoming(Incoming{
		BatchNumber: strp("B-001"),
		SampleType:  strp("blood"),
	})

	assert.Empty(t, changes)
	assert.Equal(t, "B-001", s.BatchNumber)
}

func TestApplyIncoming_SkipsAbsentFields(t *testing.T) {
	s := &Sample{
		SampleID:    "LAB-001",
		BatchNumber: "B-001",
	}

	changes := s.ApplyIncoming(Incoming{})

	assert.Empty(t, changes)
	assert.Equal(t, "B-001", s.BatchNumber)
}

func TestApplyIncoming_IgnoresFieldsOutsideWhitelist(t *testing.T) {
	s := &Sample{
		SampleID:       "LAB-001",
		SourceLocation: "site-a",
	}

	changes := s.ApplyIncoming(Incoming{
		SourceLocation: strp("site-b"),
	})

	assert.Empty(t, changes)
	assert.Equal(t, "site-a", s.SourceLocation)
}

func TestApplyIncoming_MetadataMergeKeepsExistingKeys(t *testing.T) {
	s := &Sample{
		SampleID: "LAB-001",
		Metadata: Metadata{"k1": "v1"},
	}

	changes := s.ApplyIncoming(Incoming{
		Metadata: Metadata{"k2": "v2"},
	})

	require.Len(t, changes, 1)
	assert.Equal(t, "metadata", changes[0].Field)
	assert.Equal(t, Metadata{"k1": "v1", "k2": "v2"}, s.Metadata)
}

func TestApplyIncoming_MetadataPresenceCountsAsChange(t *testing.T) {
	s := &Sample{
		SampleID: "LAB-001",
		Metadata: Metadata{"k1": "v1"},
	}

	// Re-sending identical metadata still counts as one change.
	changes := s.ApplyIncoming(Incoming{
		Metadata: Metadata{"k1": "v1"},
	})

	require.Len(t, changes, 1)
	assert.Equal(t, "metadata", changes[0].Field)
	assert.Equal(t, Metadata{"k1": "v1"}, s.Metadata)
}

func TestApplyIncoming_EmptyMetadataStillCounts(t *testing.T) {
	s := &Sample{SampleID: "LAB-001"}

	changes := s.ApplyIncoming(Incoming{
		Metadata: Metadata{},
	})

	require.Len(t, changes, 1)
	assert.Equal(t, "metadata", changes[0].Field)
}

func TestApplyIncoming_MetadataOverwritesValue(t *testing.T) {
	s := &Sample{
		SampleID: "LAB-001",
		Metadata: Metadata{"priority": "low", "owner": "qa"},
	}

	changes := s.ApplyIncoming(Incoming{
		Metadata: Metadata{"priority": "high"},
	})

	require.Len(t, changes, 1)
	assert.Equal(t, Metadata{"priority": "high", "owner": "qa"}, s.Metadata)
	assert.Equal(t, Metadata{"priority": "low", "owner": "qa"}, changes[0].OldValue)
}
