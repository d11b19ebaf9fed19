package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := NewJournal(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { j.Close() })

	return j
}

func TestJournal_RecordAndList(t *testing.T) {
	j := newTestJournal(t)

	entries := []*JournalEntry{
		{SampleID: "LAB-001", Source: "lims", Target: "eln", Outcome: "applied", Changes: 2, Message: "Sync completed successfully"},
		{SampleID: "LAB-002", Source: "lims", Target: "eln", Outcome: "skipped", Message: "Sample already synced"},
		{SampleID: "LAB-003", Source: "eln", Target: "lims", Outcome: "failed", Message: "server error: status 500"},
	}
	for _, e := range entries {
		require.NoError(t, j.Record(e))
		assert.NotZero(t, e.ID)
		assert.False(t, e.CreatedAt.IsZero())
	}

	got, err := j.List(0)
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Newest first.
	assert.Equal(t, "LAB-003", got[0].SampleID)
	assert.Equal(t, "failed", got[0].Outcome)
	assert.Equal(t, "LAB-001", got[2].SampleID)
	assert.Equal(t, 2, got[2].Changes)
}

func TestJournal_ListLimit(t *testing.T) {
	j := newTestJournal(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, j.Record(&JournalEntry{
			SampleID: "LAB-001",
			Source:   "lims",
			Target:   "eln",
			Outcome:  "applied",
		}))
	}

	got, err := j.List(2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestJournal_Clear(t *testing.T) {
	j := newTestJournal(t)

	require.NoError(t, j.Record(&JournalEntry{SampleID: "LAB-001", Source: "lims", Target: "eln", Outcome: "applied"}))
	require.NoError(t, j.Record(&JournalEntry{SampleID: "LAB-002", Source: "lims", Target: "eln", Outcome: "applied"}))

	n, err := j.Clear()
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	got, err := j.List(0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
